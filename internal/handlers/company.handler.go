package handlers

import (
	"context"

	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/model"
	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type CompanyService interface {
	List(ctx context.Context) ([]*model.CompanySummary, error)
	Get(ctx context.Context, code string) (*model.CompanyDetail, error)
	Create(ctx context.Context, p model.CompanyCreateRequest) (*model.Company, error)
	Update(ctx context.Context, code string, p model.CompanyUpdateRequest) (*model.Company, error)
	Delete(ctx context.Context, code string) error
	CreateIndustry(ctx context.Context, p model.IndustryCreateRequest) (*model.IndustryRef, error)
	ListIndustries(ctx context.Context) ([]*model.Industry, error)
	AssociateIndustry(ctx context.Context, companyCode, industryCode string) error
}

type CompanyHandler struct {
	errorWriter
	svc CompanyService
}

// RegisterCompanyRoutes mounts the company and industry routes. The static
// /companies/industries segment wins over /companies/{code}.
func RegisterCompanyRoutes(e Routes, h *CompanyHandler) {
	e.GET("/companies", h.ListCompanies)
	e.POST("/companies", h.CreateCompany)
	e.GET("/companies/industries", h.ListIndustries)
	e.POST("/companies/industries", h.CreateIndustry)
	e.GET("/companies/{code}", h.GetCompany)
	e.PUT("/companies/{code}", h.UpdateCompany)
	e.DELETE("/companies/{code}", h.DeleteCompany)
	e.POST("/companies/{code}/industries", h.AssociateIndustry)
}

func NewCompanyHandler(companyService CompanyService, translator apperr.Translator) *CompanyHandler {
	return &CompanyHandler{
		errorWriter: errorWriter{translator: translator},
		svc:         companyService,
	}
}

type companyRequest struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type industryRequest struct {
	Code     *string `json:"code"`
	Industry *string `json:"industry"`
}

type associateRequest struct {
	IndustryCode string `json:"industryCode"`
}

type companyResponse struct {
	Company any `json:"company"`
}

type companiesResponse struct {
	Companies []*model.CompanySummary `json:"companies"`
}

type industryResponse struct {
	Industry *model.IndustryRef `json:"industry"`
}

type industriesResponse struct {
	Industries []*model.Industry `json:"industries"`
}

type statusResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *CompanyHandler) ListCompanies(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if items == nil {
		items = []*model.CompanySummary{}
	}
	writeJSON(ctx, xhttp.StatusOK, companiesResponse{Companies: items})
}

func (h *CompanyHandler) GetCompany(ctx *xhttp.RequestCtx) {
	c, err := h.svc.Get(ctx, pathParam(ctx, "code"))
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companyResponse{Company: c})
}

func (h *CompanyHandler) CreateCompany(ctx *xhttp.RequestCtx) {
	var req companyRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	c, err := h.svc.Create(ctx, model.CompanyCreateRequest{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, companyResponse{Company: c})
}

func (h *CompanyHandler) UpdateCompany(ctx *xhttp.RequestCtx) {
	var req companyRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	// code in the body is ignored, the key never changes
	c, err := h.svc.Update(ctx, pathParam(ctx, "code"), model.CompanyUpdateRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, companyResponse{Company: c})
}

func (h *CompanyHandler) DeleteCompany(ctx *xhttp.RequestCtx) {
	if err := h.svc.Delete(ctx, pathParam(ctx, "code")); err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, statusResponse{Status: "deleted"})
}

func (h *CompanyHandler) CreateIndustry(ctx *xhttp.RequestCtx) {
	var req industryRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	ind, err := h.svc.CreateIndustry(ctx, model.IndustryCreateRequest{
		Code:     req.Code,
		Industry: req.Industry,
	})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, industryResponse{Industry: ind})
}

func (h *CompanyHandler) ListIndustries(ctx *xhttp.RequestCtx) {
	items, err := h.svc.ListIndustries(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if items == nil {
		items = []*model.Industry{}
	}
	writeJSON(ctx, xhttp.StatusOK, industriesResponse{Industries: items})
}

func (h *CompanyHandler) AssociateIndustry(ctx *xhttp.RequestCtx) {
	var req associateRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	if err := h.svc.AssociateIndustry(ctx, pathParam(ctx, "code"), req.IndustryCode); err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, messageResponse{Message: "Industry associated with company successfully"})
}
