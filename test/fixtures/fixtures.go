package fixtures

import "github.com/nimasrn/biztime/internal/model"

func strPtr(s string) *string { return &s }

var (
	Apple = model.Company{Code: "apple", Name: "Apple", Description: strPtr("Maker of OSX.")}
	IBM   = model.Company{Code: "ibm", Name: "IBM", Description: strPtr("Big blue.")}

	Companies = []model.Company{Apple, IBM}

	Accounting = model.IndustryRef{Code: "acct", Industry: "Accounting"}
	Technology = model.IndustryRef{Code: "tech", Industry: "Technology"}

	Industries = []model.IndustryRef{Accounting, Technology}

	// Associations pairs company codes with industry codes.
	Associations = [][2]string{
		{Apple.Code, Accounting.Code},
		{IBM.Code, Technology.Code},
	}
)

// SeedInvoice is an invoice row to insert, PaidDate is YYYY-MM-DD or empty.
type SeedInvoice struct {
	CompCode string
	Amt      float64
	Paid     bool
	PaidDate string
}

var Invoices = []SeedInvoice{
	{CompCode: "apple", Amt: 100},
	{CompCode: "apple", Amt: 200},
	{CompCode: "apple", Amt: 300, Paid: true, PaidDate: "2018-01-01"},
	{CompCode: "ibm", Amt: 400},
}

// NewCompanyBody is a POST /companies payload, code is left out when empty.
func NewCompanyBody(code, name, description string) map[string]any {
	body := map[string]any{"name": name, "description": description}
	if code != "" {
		body["code"] = code
	}
	return body
}
