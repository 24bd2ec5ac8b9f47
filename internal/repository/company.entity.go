package repository

import (
	"github.com/nimasrn/biztime/internal/model"
)

type CompanyEntity struct {
	Code        string  `db:"code"        gorm:"primaryKey;column:code"`
	Name        *string `db:"name"        gorm:"column:name;not null"`
	Description *string `db:"description" gorm:"column:description"`
}

func (CompanyEntity) TableName() string {
	return "companies"
}

func toCompanyModel(e *CompanyEntity) *model.Company {
	if e == nil {
		return nil
	}
	m := &model.Company{
		Code:        e.Code,
		Description: e.Description,
	}
	if e.Name != nil {
		m.Name = *e.Name
	}
	return m
}

func toCompanySummaries(entities []*CompanyEntity) []*model.CompanySummary {
	summaries := make([]*model.CompanySummary, len(entities))
	for i, e := range entities {
		summaries[i] = &model.CompanySummary{Code: e.Code}
		if e.Name != nil {
			summaries[i].Name = *e.Name
		}
	}
	return summaries
}

// companyIndustryRow is one row of companies LEFT JOIN industries.
type companyIndustryRow struct {
	Code         string  `gorm:"column:code"`
	Name         *string `gorm:"column:name"`
	Description  *string `gorm:"column:description"`
	IndustryCode *string `gorm:"column:industry_code"`
	Industry     *string `gorm:"column:industry"`
}

// toCompanyDetail folds the joined rows of a single company. Rows with a
// NULL industry come from the LEFT JOIN of an unassociated company.
func toCompanyDetail(rows []*companyIndustryRow) *model.CompanyDetail {
	if len(rows) == 0 {
		return nil
	}
	first := rows[0]
	d := &model.CompanyDetail{
		Code:        first.Code,
		Description: first.Description,
		Industries:  []*model.IndustryRef{},
	}
	if first.Name != nil {
		d.Name = *first.Name
	}
	for _, r := range rows {
		if r.IndustryCode == nil {
			continue
		}
		ref := &model.IndustryRef{Code: *r.IndustryCode}
		if r.Industry != nil {
			ref.Industry = *r.Industry
		}
		d.Industries = append(d.Industries, ref)
	}
	return d
}
