package repository

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/pkg/pg"
	"gorm.io/gorm/clause"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
)

type CompanyRepository struct {
	*pg.DB
}

func NewCompanyRepository(db *pg.DB) *CompanyRepository {
	return &CompanyRepository{
		db,
	}
}

func (r *CompanyRepository) List(ctx context.Context) ([]*model.CompanySummary, error) {
	var entities []*CompanyEntity
	if err := r.Read(ctx).Select("code", "name").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toCompanySummaries(entities), nil
}

// GetWithIndustries loads a company and its industries in one join query.
func (r *CompanyRepository) GetWithIndustries(ctx context.Context, code string) (*model.CompanyDetail, error) {
	var rows []*companyIndustryRow
	err := r.Read(ctx).
		Table("companies AS c").
		Select(`
            c.code        AS code,
            c.name        AS name,
            c.description AS description,
            i.code        AS industry_code,
            i.industry    AS industry
        `).
		Joins("LEFT JOIN company_industries AS ci ON ci.company_code = c.code").
		Joins("LEFT JOIN industries AS i ON i.code = ci.industry_code").
		Where("c.code = ?", code).
		Order("i.code").
		Scan(&rows).
		Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrCompanyNotFound
	}
	return toCompanyDetail(rows), nil
}

func (r *CompanyRepository) Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error) {
	entity := &CompanyEntity{
		Name:        p.Name,
		Description: p.Description,
	}
	if p.Code != nil {
		entity.Code = *p.Code
	}

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toCompanyModel(entity), nil
}

// Update overwrites name and description, a nil field is written as NULL.
func (r *CompanyRepository) Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error) {
	var entity CompanyEntity
	result := r.Write(ctx).
		Model(&entity).
		Clauses(clause.Returning{}).
		Where("code = ?", code).
		Updates(map[string]any{
			"name":        p.Name,
			"description": p.Description,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCompanyNotFound
	}
	return toCompanyModel(&entity), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, code string) error {
	result := r.Write(ctx).Where("code = ?", code).Delete(&CompanyEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}
