package handlers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type healthFunc func(ctx context.Context) error

func (f healthFunc) Get(ctx context.Context) error { return f(ctx) }

func TestHealthHandler_GetHealth(t *testing.T) {
	handler := NewHealthHandler(healthFunc(func(context.Context) error { return nil }))
	ctx := setupTestContext("GET", "/health", nil)
	handler.GetHealth(ctx)
	assert.Equal(t, 200, ctx.Response.StatusCode())
	assert.Equal(t, "success", string(ctx.Response.Body()))

	handler = NewHealthHandler(healthFunc(func(context.Context) error { return errors.New("db down") }))
	ctx = setupTestContext("GET", "/health", nil)
	handler.GetHealth(ctx)
	assert.Equal(t, 503, ctx.Response.StatusCode())
}
