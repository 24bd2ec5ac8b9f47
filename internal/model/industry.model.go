package model

type IndustryRef struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Industry carries the codes of every company associated with it, an empty
// list when there is none.
type Industry struct {
	Code         string   `json:"code"`
	Industry     string   `json:"industry"`
	CompanyCodes []string `json:"company_codes"`
}

type IndustryCreateRequest struct {
	Code     *string
	Industry *string
}
