package model

// DateLayout is how DATE columns are rendered in responses.
const DateLayout = "2006-01-02"

type Invoice struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceDetail embeds the owning company instead of its code.
type InvoiceDetail struct {
	ID       int64   `json:"id"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
	Company  Company `json:"company"`
}

type InvoiceCreateRequest struct {
	CompCode *string
	Amt      *float64
}

type InvoiceUpdateRequest struct {
	Amt *float64
}
