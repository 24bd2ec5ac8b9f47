package handlers

import (
	"time"

	xhttp "github.com/nimasrn/biztime/pkg/http"
	"github.com/nimasrn/biztime/pkg/prom"
)

// UseMiddlewares installs the request chain on s. Everything registered
// after the timeout runs in its goroutine, so recover has to stay last.
func UseMiddlewares(s *xhttp.Engine, requestTimeout time.Duration) {
	s.Use(xhttp.CompressMiddleware(6))
	s.Use(xhttp.TimeoutMiddleware(requestTimeout))
	s.Use(xhttp.RequestIDMiddleware)
	s.Use(xhttp.RequestLoggerMiddleware)
	s.Use(prom.HTTPMiddleware)
	s.Use(xhttp.RecoverMiddleware)
}
