package handlers

import (
	"context"
	"strconv"

	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/model"
	"github.com/nimasrn/biztime/internal/services"
	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type InvoiceService interface {
	List(ctx context.Context) ([]*model.InvoiceSummary, error)
	Get(ctx context.Context, id int64) (*model.InvoiceDetail, error)
	Create(ctx context.Context, p model.InvoiceCreateRequest) (*model.Invoice, error)
	Update(ctx context.Context, id int64, p model.InvoiceUpdateRequest) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type InvoiceHandler struct {
	errorWriter
	svc InvoiceService
}

func RegisterInvoiceRoutes(e Routes, h *InvoiceHandler) {
	e.GET("/invoices", h.ListInvoices)
	e.POST("/invoices", h.CreateInvoice)
	e.GET("/invoices/{id}", h.GetInvoice)
	e.PUT("/invoices/{id}", h.UpdateInvoice)
	e.DELETE("/invoices/{id}", h.DeleteInvoice)
}

func NewInvoiceHandler(invoiceService InvoiceService, translator apperr.Translator) *InvoiceHandler {
	return &InvoiceHandler{
		errorWriter: errorWriter{translator: translator},
		svc:         invoiceService,
	}
}

type createInvoiceRequest struct {
	CompCode *string  `json:"comp_code"`
	Amt      *float64 `json:"amt"`
}

type updateInvoiceRequest struct {
	Amt *float64 `json:"amt"`
}

type invoiceResponse struct {
	Invoice any `json:"invoice"`
}

type invoicesResponse struct {
	Invoices []*model.InvoiceSummary `json:"invoices"`
}

/* --------------------------------- Routes ----------------------------------- */

func (h *InvoiceHandler) ListInvoices(ctx *xhttp.RequestCtx) {
	items, err := h.svc.List(ctx)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	if items == nil {
		items = []*model.InvoiceSummary{}
	}
	writeJSON(ctx, xhttp.StatusOK, invoicesResponse{Invoices: items})
}

func (h *InvoiceHandler) GetInvoice(ctx *xhttp.RequestCtx) {
	id, ok := h.invoiceID(ctx)
	if !ok {
		return
	}
	inv, err := h.svc.Get(ctx, id)
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) CreateInvoice(ctx *xhttp.RequestCtx) {
	var req createInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	inv, err := h.svc.Create(ctx, model.InvoiceCreateRequest{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusCreated, invoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) UpdateInvoice(ctx *xhttp.RequestCtx) {
	id, ok := h.invoiceID(ctx)
	if !ok {
		return
	}
	var req updateInvoiceRequest
	if err := readJSON(ctx, &req); err != nil {
		h.writeInvalidJSON(ctx, err)
		return
	}
	inv, err := h.svc.Update(ctx, id, model.InvoiceUpdateRequest{Amt: req.Amt})
	if err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, invoiceResponse{Invoice: inv})
}

func (h *InvoiceHandler) DeleteInvoice(ctx *xhttp.RequestCtx) {
	id, ok := h.invoiceID(ctx)
	if !ok {
		return
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		h.writeError(ctx, err)
		return
	}
	writeJSON(ctx, xhttp.StatusOK, statusResponse{Status: "deleted"})
}

// invoiceID parses the {id} segment. An id that is not an integer cannot
// match any row, so it is answered with 404 directly.
func (h *InvoiceHandler) invoiceID(ctx *xhttp.RequestCtx) (int64, bool) {
	raw := pathParam(ctx, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.writeError(ctx, services.InvoiceNotFound(raw))
		return 0, false
	}
	return id, true
}
