package services

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/repository"
)

var ErrEmptyCompanyCode = errors.New("company code cannot be derived from an empty name")

type CompanyRepository interface {
	List(ctx context.Context) ([]*model.CompanySummary, error)
	GetWithIndustries(ctx context.Context, code string) (*model.CompanyDetail, error)
	Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error)
	Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error)
	Delete(ctx context.Context, code string) error
}

type IndustryRepository interface {
	Create(ctx context.Context, p model.IndustryCreateRequest) (*model.IndustryRef, error)
	ListWithCompanies(ctx context.Context) ([]*model.Industry, error)
	Associate(ctx context.Context, companyCode, industryCode string) error
}

type CompanyService struct {
	companyRepo  CompanyRepository
	industryRepo IndustryRepository
}

func NewCompanyService(companyRepo CompanyRepository, industryRepo IndustryRepository) *CompanyService {
	return &CompanyService{
		companyRepo:  companyRepo,
		industryRepo: industryRepo,
	}
}

func (s *CompanyService) List(ctx context.Context) ([]*model.CompanySummary, error) {
	return s.companyRepo.List(ctx)
}

func (s *CompanyService) Get(ctx context.Context, code string) (*model.CompanyDetail, error) {
	c, err := s.companyRepo.GetWithIndustries(ctx, code)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, companyNotFound(code)
	}
	return c, err
}

// Create inserts a company. A missing or empty code is derived from the name.
func (s *CompanyService) Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error) {
	if p.Code == nil || *p.Code == "" {
		var name string
		if p.Name != nil {
			name = *p.Name
		}
		code := DeriveCompanyCode(name)
		if code == "" {
			return nil, ErrEmptyCompanyCode
		}
		p.Code = &code
	}
	return s.companyRepo.Create(ctx, p)
}

func (s *CompanyService) Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error) {
	c, err := s.companyRepo.Update(ctx, code, p)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return nil, companyNotFound(code)
	}
	return c, err
}

func (s *CompanyService) Delete(ctx context.Context, code string) error {
	err := s.companyRepo.Delete(ctx, code)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return companyNotFound(code)
	}
	return err
}

func (s *CompanyService) CreateIndustry(ctx context.Context, p model.IndustryCreateRequest) (*model.IndustryRef, error) {
	return s.industryRepo.Create(ctx, p)
}

func (s *CompanyService) ListIndustries(ctx context.Context) ([]*model.Industry, error) {
	return s.industryRepo.ListWithCompanies(ctx)
}

// AssociateIndustry links a company to an industry. Unknown keys and repeated
// pairs are rejected by the database and returned unchanged.
func (s *CompanyService) AssociateIndustry(ctx context.Context, companyCode, industryCode string) error {
	return s.industryRepo.Associate(ctx, companyCode, industryCode)
}

// DeriveCompanyCode lower-cases name and drops every whitespace rune,
// "Taco Time" becomes "tacotime".
func DeriveCompanyCode(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func companyNotFound(code string) *apperr.Error {
	return apperr.NotFoundf("Company with code '%s' not found", code)
}
