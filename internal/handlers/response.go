package handlers

import (
	"bytes"
	"encoding/json"

	"github.com/nimasrn/biztime/internal/apperr"
	xhttp "github.com/nimasrn/biztime/pkg/http"
	"github.com/nimasrn/biztime/pkg/logger"
)

// Routes is satisfied by both the root router and its groups.
type Routes interface {
	GET(path string, handler xhttp.RequestHandler)
	POST(path string, handler xhttp.RequestHandler)
	PUT(path string, handler xhttp.RequestHandler)
	DELETE(path string, handler xhttp.RequestHandler)
}

// errorWriter classifies errors with its translator before writing them.
type errorWriter struct {
	translator apperr.Translator
}

// readJSON decodes the request body. An empty body decodes as {}.
func readJSON(ctx *xhttp.RequestCtx, dst any) error {
	body := bytes.TrimSpace(ctx.PostBody())
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, dst)
}

func writeJSON(ctx *xhttp.RequestCtx, status int, v any) {
	xhttp.WriteJSON(ctx, status, v)
}

func (w errorWriter) writeError(ctx *xhttp.RequestCtx, err error) {
	e := w.translator.Translate(err)
	status := e.Status()
	if status >= xhttp.StatusInternalServerError {
		logger.Error("request failed",
			"method", string(ctx.Method()),
			"path", string(ctx.Path()),
			"request_id", string(ctx.Request.Header.Peek(xhttp.HeaderRequestID)),
			"error", err)
	}
	xhttp.WriteError(ctx, status, e.Message)
}

func (w errorWriter) writeInvalidJSON(ctx *xhttp.RequestCtx, err error) {
	w.writeError(ctx, apperr.InvalidWrap(err, "invalid JSON"))
}

func pathParam(ctx *xhttp.RequestCtx, name string) string {
	v, _ := ctx.UserValue(name).(string)
	return v
}
