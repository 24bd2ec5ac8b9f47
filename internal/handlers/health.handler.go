package handlers

import (
	"context"

	xhttp "github.com/nimasrn/biztime/pkg/http"
)

type HealthService interface {
	Get(ctx context.Context) error
}
type HealthHandler struct {
	healthService HealthService
}

func RegisterHealthRoutes(e Routes, h *HealthHandler) {
	e.GET("/health", h.GetHealth)
}

func NewHealthHandler(healthService HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

func (h *HealthHandler) GetHealth(ctx *xhttp.RequestCtx) {
	if err := h.healthService.Get(ctx); err != nil {
		xhttp.WriteError(ctx, xhttp.StatusServiceUnavailable, err.Error())
		return
	}
	ctx.Response.SetBodyString("success")
}
