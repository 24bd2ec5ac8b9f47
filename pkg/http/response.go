package xhttp

import (
	"encoding/json"
)

// ErrorDetail is the "error" member of every failure body.
type ErrorDetail struct {
	Code   string `json:"code"`
	Status int    `json:"status"`
}

// ErrorBody is the shape of every failure response: {"error": {...}, "message": "..."}.
type ErrorBody struct {
	Error   ErrorDetail `json:"error"`
	Message string      `json:"message"`
}

func WriteJSON(ctx *RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		WriteError(ctx, StatusInternalServerError, err.Error())
		return
	}
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}

// WriteError is the terminal error writer. A zero status is treated as 500.
func WriteError(ctx *RequestCtx, status int, message string) {
	if status == 0 {
		status = StatusInternalServerError
	}
	b, _ := json.Marshal(ErrorBody{
		Error:   ErrorDetail{Code: StatusCode(status), Status: status},
		Message: message,
	})
	ctx.Response.Header.Set("Content-Type", "application/json; charset=utf-8")
	ctx.Response.SetStatusCode(status)
	ctx.Response.SetBodyRaw(b)
}
