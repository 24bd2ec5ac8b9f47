package xhttp

import (
	"strings"

	"github.com/valyala/fasthttp"
)

const (
	StatusOK                  = fasthttp.StatusOK
	StatusCreated             = fasthttp.StatusCreated
	StatusBadRequest          = fasthttp.StatusBadRequest
	StatusNotFound            = fasthttp.StatusNotFound
	StatusConflict            = fasthttp.StatusConflict
	StatusRequestTimeout      = fasthttp.StatusRequestTimeout
	StatusInternalServerError = fasthttp.StatusInternalServerError
	StatusServiceUnavailable  = fasthttp.StatusServiceUnavailable
)

// StatusText returns the reason phrase for the given status code.
func StatusText(code int) string {
	return fasthttp.StatusMessage(code)
}

// StatusCode turns a status into a machine readable code, 404 -> "NOT_FOUND".
func StatusCode(code int) string {
	return strings.ToUpper(strings.ReplaceAll(StatusText(code), " ", "_"))
}
