package repository

import (
	"github.com/nimasrn/biztime/internal/model"
)

type InvoiceEntity struct {
	ID       int64          `db:"id"        gorm:"primaryKey;autoIncrement;column:id"`
	CompCode string         `db:"comp_code" gorm:"column:comp_code;not null;index"`
	Company  *CompanyEntity `gorm:"foreignKey:CompCode;references:Code;constraint:OnDelete:CASCADE"`
	Amt      *float64       `db:"amt"       gorm:"column:amt;not null;check:amt > 0"`
	Paid     bool           `db:"paid"      gorm:"column:paid;not null;default:false"`
	AddDate  Date           `db:"add_date"  gorm:"column:add_date;type:date;not null;default:CURRENT_DATE"`
	PaidDate Date           `db:"paid_date" gorm:"column:paid_date;type:date"`
}

func (InvoiceEntity) TableName() string {
	return "invoices"
}

func toInvoiceModel(e *InvoiceEntity) *model.Invoice {
	if e == nil {
		return nil
	}
	m := &model.Invoice{
		ID:       e.ID,
		CompCode: e.CompCode,
		Paid:     e.Paid,
		AddDate:  e.AddDate.String(),
		PaidDate: e.PaidDate.Ptr(),
	}
	if e.Amt != nil {
		m.Amt = *e.Amt
	}
	return m
}

func toInvoiceSummaries(entities []*InvoiceEntity) []*model.InvoiceSummary {
	summaries := make([]*model.InvoiceSummary, len(entities))
	for i, e := range entities {
		summaries[i] = &model.InvoiceSummary{ID: e.ID, CompCode: e.CompCode}
	}
	return summaries
}

// invoiceCompanyRow is one row of invoices JOIN companies.
type invoiceCompanyRow struct {
	ID          int64   `gorm:"column:id"`
	Amt         float64 `gorm:"column:amt"`
	Paid        bool    `gorm:"column:paid"`
	AddDate     Date    `gorm:"column:add_date"`
	PaidDate    Date    `gorm:"column:paid_date"`
	Code        string  `gorm:"column:code"`
	Name        string  `gorm:"column:name"`
	Description *string `gorm:"column:description"`
}

func toInvoiceDetail(r *invoiceCompanyRow) *model.InvoiceDetail {
	if r == nil {
		return nil
	}
	return &model.InvoiceDetail{
		ID:       r.ID,
		Amt:      r.Amt,
		Paid:     r.Paid,
		AddDate:  r.AddDate.String(),
		PaidDate: r.PaidDate.Ptr(),
		Company: model.Company{
			Code:        r.Code,
			Name:        r.Name,
			Description: r.Description,
		},
	}
}
