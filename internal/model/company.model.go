package model

type Company struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// CompanySummary is the list projection of a company.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyDetail is a company with the industries it is associated with.
type CompanyDetail struct {
	Code        string         `json:"code"`
	Name        string         `json:"name"`
	Description *string        `json:"description"`
	Industries  []*IndustryRef `json:"industries"`
}

// CompanyCreateRequest is the input for creating a company. Code is derived
// from Name when it is not supplied. Nil fields reach the database as NULL.
type CompanyCreateRequest struct {
	Code        *string
	Name        *string
	Description *string
}

type CompanyUpdateRequest struct {
	Name        *string
	Description *string
}
