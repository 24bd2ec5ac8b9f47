package repository

import (
	"github.com/nimasrn/biztime/internal/model"
)

type IndustryEntity struct {
	Code     string  `db:"code"     gorm:"primaryKey;column:code"`
	Industry *string `db:"industry" gorm:"column:industry;not null"`
}

func (IndustryEntity) TableName() string {
	return "industries"
}

// CompanyIndustryEntity is the association row. The composite primary key
// makes a repeated association fail instead of duplicating.
type CompanyIndustryEntity struct {
	CompanyCode  string          `db:"company_code"  gorm:"primaryKey;column:company_code"`
	IndustryCode string          `db:"industry_code" gorm:"primaryKey;column:industry_code"`
	Company      *CompanyEntity  `gorm:"foreignKey:CompanyCode;references:Code;constraint:OnDelete:CASCADE"`
	Industry     *IndustryEntity `gorm:"foreignKey:IndustryCode;references:Code;constraint:OnDelete:CASCADE"`
}

func (CompanyIndustryEntity) TableName() string {
	return "company_industries"
}

func toIndustryRef(e *IndustryEntity) *model.IndustryRef {
	if e == nil {
		return nil
	}
	m := &model.IndustryRef{Code: e.Code}
	if e.Industry != nil {
		m.Industry = *e.Industry
	}
	return m
}

// industryCompanyRow is one row of industries LEFT JOIN company_industries.
type industryCompanyRow struct {
	Code        string  `gorm:"column:code"`
	Industry    string  `gorm:"column:industry"`
	CompanyCode *string `gorm:"column:company_code"`
}

// toIndustries groups joined rows by industry, keeping the row order.
func toIndustries(rows []*industryCompanyRow) []*model.Industry {
	industries := make([]*model.Industry, 0)
	byCode := make(map[string]*model.Industry)
	for _, r := range rows {
		ind, ok := byCode[r.Code]
		if !ok {
			ind = &model.Industry{Code: r.Code, Industry: r.Industry, CompanyCodes: []string{}}
			byCode[r.Code] = ind
			industries = append(industries, ind)
		}
		if r.CompanyCode != nil {
			ind.CompanyCodes = append(ind.CompanyCodes, *r.CompanyCode)
		}
	}
	return industries
}
