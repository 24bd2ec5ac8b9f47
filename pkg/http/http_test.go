package xhttp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func newCtx(method, path string) *RequestCtx {
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	return ctx
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", StatusCode(StatusNotFound))
	assert.Equal(t, "INTERNAL_SERVER_ERROR", StatusCode(StatusInternalServerError))
	assert.Equal(t, "BAD_REQUEST", StatusCode(StatusBadRequest))
}

func TestWriteError(t *testing.T) {
	ctx := newCtx("GET", "/")
	WriteError(ctx, 0, "boom")

	assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
	var body ErrorBody
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, ErrorBody{Error: ErrorDetail{Code: "INTERNAL_SERVER_ERROR", Status: 500}, Message: "boom"}, body)
}

func TestEngine_Handler(t *testing.T) {
	s := NewServer(DefaultServerOption)

	var order []string
	trace := func(name string) MiddlewareFunc {
		return func(next RequestHandler) RequestHandler {
			return func(ctx *RequestCtx) {
				order = append(order, name)
				next(ctx)
			}
		}
	}
	s.Use(RecoverMiddleware)
	s.Use(RequestIDMiddleware)
	s.Use(trace("first"))
	s.Use(trace("second"))
	s.GET("/companies/{code}", func(ctx *RequestCtx) {
		order = append(order, "handler")
		WriteJSON(ctx, StatusOK, map[string]string{"code": ctx.UserValue("code").(string)})
	})
	s.GET("/panic", func(ctx *RequestCtx) { panic("boom") })
	h := s.Handler()

	t.Run("middleware order and params", func(t *testing.T) {
		ctx := newCtx("GET", "/companies/apple")
		h(ctx)
		assert.Equal(t, []string{"first", "second", "handler"}, order)
		assert.JSONEq(t, `{"code":"apple"}`, string(ctx.Response.Body()))
		assert.Equal(t, "/companies/{code}", MatchedRoute(ctx))
		assert.NotEmpty(t, ctx.Response.Header.Peek(HeaderRequestID))
	})

	t.Run("caller request id kept", func(t *testing.T) {
		ctx := newCtx("GET", "/companies/apple")
		ctx.Request.Header.Set(HeaderRequestID, "abc-123")
		h(ctx)
		assert.Equal(t, "abc-123", string(ctx.Response.Header.Peek(HeaderRequestID)))
	})

	t.Run("unknown route", func(t *testing.T) {
		ctx := newCtx("GET", "/nope")
		h(ctx)
		assert.Equal(t, StatusNotFound, ctx.Response.StatusCode())
		assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","status":404},"message":"Not Found"}`, string(ctx.Response.Body()))
		assert.Equal(t, "unmatched", MatchedRoute(ctx))
	})

	t.Run("trailing slash and case are not redirected", func(t *testing.T) {
		for _, path := range []string{"/companies/apple/", "/Companies/apple"} {
			ctx := newCtx("GET", path)
			h(ctx)
			assert.Equal(t, StatusNotFound, ctx.Response.StatusCode(), path)
			assert.Empty(t, ctx.Response.Header.Peek("Location"), path)
			assert.JSONEq(t, `{"error":{"code":"NOT_FOUND","status":404},"message":"Not Found"}`, string(ctx.Response.Body()))
		}
	})

	t.Run("method not allowed answers 404", func(t *testing.T) {
		ctx := newCtx("DELETE", "/panic")
		h(ctx)
		assert.Equal(t, StatusNotFound, ctx.Response.StatusCode())
	})

	t.Run("panic recovered", func(t *testing.T) {
		ctx := newCtx("GET", "/panic")
		h(ctx)
		assert.Equal(t, StatusInternalServerError, ctx.Response.StatusCode())
	})
}
