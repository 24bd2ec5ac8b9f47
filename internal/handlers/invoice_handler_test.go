package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) List(ctx context.Context) ([]*model.InvoiceSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.InvoiceSummary), args.Error(1)
}

func (m *MockInvoiceService) Get(ctx context.Context, id int64) (*model.InvoiceDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.InvoiceDetail), args.Error(1)
}

func (m *MockInvoiceService) Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Invoice), args.Error(1)
}

func (m *MockInvoiceService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestInvoiceHandler_ListInvoices(t *testing.T) {
	svc := new(MockInvoiceService)
	handler := NewInvoiceHandler(svc, apperr.Translator{})

	svc.On("List", mock.Anything).Return([]*model.InvoiceSummary{{ID: 1, CompCode: "apple"}}, nil)

	ctx := setupTestContext("GET", "/invoices", nil)
	handler.ListInvoices(ctx)

	assert.Equal(t, 200, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"invoices":[{"id":1,"comp_code":"apple"}]}`, string(ctx.Response.Body()))
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		svc.On("Get", mock.Anything, int64(1)).Return(&model.InvoiceDetail{
			ID:      1,
			Amt:     100,
			AddDate: "2024-01-02",
			Company: model.Company{Code: "apple", Name: "Apple", Description: strPtr("Maker of OSX.")},
		}, nil)

		ctx := setupTestContext("GET", "/invoices/1", nil)
		ctx.SetUserValue("id", "1")
		handler.GetInvoice(ctx)

		assert.Equal(t, 200, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"invoice":{"id":1,"amt":100,"paid":false,"add_date":"2024-01-02","paid_date":null,
			"company":{"code":"apple","name":"Apple","description":"Maker of OSX."}}}`, string(ctx.Response.Body()))
	})

	t.Run("not found", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		svc.On("Get", mock.Anything, int64(999)).Return(nil, services.InvoiceNotFound(int64(999)))

		ctx := setupTestContext("GET", "/invoices/999", nil)
		ctx.SetUserValue("id", "999")
		handler.GetInvoice(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
		assert.Equal(t, "Invoice with ID '999' not found", decodeError(t, ctx).Message)
	})

	t.Run("non numeric id", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		ctx := setupTestContext("GET", "/invoices/abc", nil)
		ctx.SetUserValue("id", "abc")
		handler.GetInvoice(ctx)

		assert.Equal(t, 404, ctx.Response.StatusCode())
		assert.Equal(t, "Invoice with ID 'abc' not found", decodeError(t, ctx).Message)
		svc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		svc.On("Create", mock.Anything, mock.MatchedBy(func(p model.InvoiceCreateRequest) bool {
			return *p.CompCode == "apple" && *p.Amt == 100
		})).Return(&model.Invoice{ID: 3, CompCode: "apple", Amt: 100, AddDate: "2024-01-02"}, nil)

		ctx := setupTestContext("POST", "/invoices", []byte(`{"comp_code":"apple","amt":100}`))
		handler.CreateInvoice(ctx)

		assert.Equal(t, 201, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"invoice":{"id":3,"comp_code":"apple","amt":100,"paid":false,"add_date":"2024-01-02","paid_date":null}}`,
			string(ctx.Response.Body()))
	})

	t.Run("unknown company", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		svc.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("FOREIGN KEY constraint failed"))

		ctx := setupTestContext("POST", "/invoices", []byte(`{"comp_code":"blargh","amt":100}`))
		handler.CreateInvoice(ctx)

		assert.Equal(t, 500, ctx.Response.StatusCode())
	})

	t.Run("invalid JSON", func(t *testing.T) {
		svc := new(MockInvoiceService)
		handler := NewInvoiceHandler(svc, apperr.Translator{})

		ctx := setupTestContext("POST", "/invoices", []byte(`{"amt":`))
		handler.CreateInvoice(ctx)

		assert.Equal(t, 400, ctx.Response.StatusCode())
	})
}

func TestInvoiceHandler_CreateInvoice_Strict(t *testing.T) {
	svc := new(MockInvoiceService)
	handler := NewInvoiceHandler(svc, apperr.Translator{Strict: true})
	svc.On("Create", mock.Anything, mock.Anything).Return(nil, &pgconn.PgError{Code: "23503"})

	ctx := setupTestContext("POST", "/invoices", []byte(`{"comp_code":"blargh","amt":100}`))
	handler.CreateInvoice(ctx)

	assert.Equal(t, 400, ctx.Response.StatusCode())
	assert.Equal(t, "BAD_REQUEST", decodeError(t, ctx).Error.Code)
}

func TestInvoiceHandler_UpdateInvoice(t *testing.T) {
	svc := new(MockInvoiceService)
	handler := NewInvoiceHandler(svc, apperr.Translator{})

	amt := 250.0
	svc.On("Update", mock.Anything, int64(1), model.InvoiceUpdateRequest{Amt: &amt}).
		Return(&model.Invoice{ID: 1, CompCode: "apple", Amt: amt, AddDate: "2024-01-02"}, nil)

	ctx := setupTestContext("PUT", "/invoices/1", []byte(`{"amt":250}`))
	ctx.SetUserValue("id", "1")
	handler.UpdateInvoice(ctx)

	assert.Equal(t, 200, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"invoice":{"id":1,"comp_code":"apple","amt":250,"paid":false,"add_date":"2024-01-02","paid_date":null}}`,
		string(ctx.Response.Body()))
	svc.AssertExpectations(t)
}

func TestInvoiceHandler_DeleteInvoice(t *testing.T) {
	svc := new(MockInvoiceService)
	handler := NewInvoiceHandler(svc, apperr.Translator{})

	svc.On("Delete", mock.Anything, int64(1)).Return(nil)
	svc.On("Delete", mock.Anything, int64(2)).Return(services.InvoiceNotFound(int64(2)))

	ctx := setupTestContext("DELETE", "/invoices/1", nil)
	ctx.SetUserValue("id", "1")
	handler.DeleteInvoice(ctx)
	assert.Equal(t, 200, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"deleted"}`, string(ctx.Response.Body()))

	ctx = setupTestContext("DELETE", "/invoices/2", nil)
	ctx.SetUserValue("id", "2")
	handler.DeleteInvoice(ctx)
	assert.Equal(t, 404, ctx.Response.StatusCode())
}
