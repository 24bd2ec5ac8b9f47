package xhttp

import (
	"time"

	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/valyala/fasthttp"
)

var DefaultServerOption = ServerOption{
	Name:               "biztime",
	IdleTimeout:        time.Second * 10,
	TCPKeepalivePeriod: time.Minute * 120, // linux default
	MaxRequestBodySize: 1 * 1024 * 1024,   // 1MB, bodies here are tiny json documents
	ReadBufferSize:     1024 * 4,          // also, max header size
	WriteBufferSize:    1024 * 4,
	ReadTimeout:        time.Millisecond * 2500,
	WriteTimeout:       time.Millisecond * 2500,
	Concurrency:        30_000,
	MaxConnsPerIP:      10_000,
	ErrorHandler: func(ctx *RequestCtx, err error) {
		logger.Warn("[xhttp] connection error", "error", err)
		WriteError(ctx, StatusBadRequest, err.Error())
	},
	CloseOnShutdown: true,
}

type Server = fasthttp.Server

type ServerOption struct {
	Name string

	// idle keep-alive connections are dropped after this long so we do not
	// pile up open files under bursty clients
	IdleTimeout        time.Duration
	TCPKeepalivePeriod time.Duration

	MaxRequestBodySize int

	// ReadBufferSize is the per-connection buffer size for requests' reading.
	ReadBufferSize  int
	WriteBufferSize int

	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Concurrency   int
	MaxConnsPerIP int

	ErrorHandler    func(ctx *RequestCtx, err error)
	CloseOnShutdown bool
}

type Engine struct {
	*Router
	*Server
	middle []MiddlewareFunc
}

func newServer(options ServerOption) *fasthttp.Server {
	return &fasthttp.Server{
		Name:                  options.Name,
		ErrorHandler:          options.ErrorHandler,
		Concurrency:           options.Concurrency,
		ReadBufferSize:        options.ReadBufferSize,
		WriteBufferSize:       options.WriteBufferSize,
		ReadTimeout:           options.ReadTimeout,
		WriteTimeout:          options.WriteTimeout,
		IdleTimeout:           options.IdleTimeout,
		MaxConnsPerIP:         options.MaxConnsPerIP,
		TCPKeepalivePeriod:    options.TCPKeepalivePeriod,
		TCPKeepalive:          true,
		MaxRequestBodySize:    options.MaxRequestBodySize,
		NoDefaultServerHeader: true,
		NoDefaultContentType:  true,
		CloseOnShutdown:       options.CloseOnShutdown,
		Logger:                logger.GetLogger(),
	}
}

func NewServer(options ServerOption) *Engine {
	return &Engine{
		Server: newServer(options),
		Router: CreateDefaultRouter(),
	}
}

func (e *Engine) ListenAndServe(addr string) error {
	e.DoRouting()
	logger.Info("[xhttp] server is listening", "addr", addr)
	return e.Server.ListenAndServe(addr)
}

// DoRouting installs the router behind the middleware chain. The first
// middleware registered with Use is the outermost one.
func (e *Engine) DoRouting() {
	for method, routes := range e.Router.List() {
		for _, r := range routes {
			logger.Debug("[xhttp] route registered", "method", method, "path", r)
		}
	}
	e.Server.Handler = e.Handler()
}

// Handler returns the router wrapped by every registered middleware.
func (e *Engine) Handler() RequestHandler {
	h := e.Router.Handler
	for i := len(e.middle) - 1; i >= 0; i-- {
		h = e.middle[i](h)
	}
	return h
}

// Use adds middleware to the chain which is run for every request.
func (e *Engine) Use(middleware MiddlewareFunc) {
	e.middle = append(e.middle, middleware)
}

// Shutdown gracefully shuts down the server without interrupting any active connections.
func (e *Engine) Shutdown() error {
	logger.Info("[xhttp] server is shutting down, closing all connections")
	return e.Server.Shutdown()
}
