package services

import (
	"context"
	"errors"

	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/repository"
)

type InvoiceRepository interface {
	List(ctx context.Context) ([]*model.InvoiceSummary, error)
	GetWithCompany(ctx context.Context, id int64) (*model.InvoiceDetail, error)
	Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error)
	UpdateAmount(ctx context.Context, id int64, amt *float64) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type InvoiceService struct {
	invoiceRepo InvoiceRepository
}

func NewInvoiceService(invoiceRepo InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

func (s *InvoiceService) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	return s.invoiceRepo.List(ctx)
}

func (s *InvoiceService) Get(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	inv, err := s.invoiceRepo.GetWithCompany(ctx, id)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, InvoiceNotFound(id)
	}
	return inv, err
}

func (s *InvoiceService) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	return s.invoiceRepo.Create(ctx, p)
}

// Update changes the amount only, every other column is left as stored.
func (s *InvoiceService) Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error) {
	inv, err := s.invoiceRepo.UpdateAmount(ctx, id, p.Amt)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, InvoiceNotFound(id)
	}
	return inv, err
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) error {
	err := s.invoiceRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return InvoiceNotFound(id)
	}
	return err
}

// InvoiceNotFound is also raised by the handler for ids that cannot be parsed.
func InvoiceNotFound(id any) *apperr.Error {
	return apperr.NotFoundf("Invoice with ID '%v' not found", id)
}
