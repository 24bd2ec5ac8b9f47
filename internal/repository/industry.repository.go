package repository

import (
	"context"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
)

type IndustryRepository struct {
	*pg.DB
}

func NewIndustryRepository(db *pg.DB) *IndustryRepository {
	return &IndustryRepository{
		db,
	}
}

func (r *IndustryRepository) Create(ctx context.Context, p model.IndustryCreateRequest) (*model.IndustryRef, error) {
	entity := &IndustryEntity{Industry: p.Industry}
	if p.Code != nil {
		entity.Code = *p.Code
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toIndustryRef(entity), nil
}

// ListWithCompanies returns every industry with the codes of its companies.
// The join rows are grouped here so the query stays portable.
func (r *IndustryRepository) ListWithCompanies(ctx context.Context) ([]*model.Industry, error) {
	var rows []*industryCompanyRow
	err := r.Read(ctx).
		Table("industries AS i").
		Select("i.code AS code, i.industry AS industry, ci.company_code AS company_code").
		Joins("LEFT JOIN company_industries AS ci ON ci.industry_code = i.code").
		Order("i.code, ci.company_code").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	return toIndustries(rows), nil
}

// Associate links a company to an industry. A repeated pair or an unknown
// code is rejected by the database and returned untouched.
func (r *IndustryRepository) Associate(ctx context.Context, companyCode, industryCode string) error {
	entity := &CompanyIndustryEntity{
		CompanyCode:  companyCode,
		IndustryCode: industryCode,
	}
	return r.Write(ctx).Create(entity).Error
}
