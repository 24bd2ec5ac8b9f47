package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/nimasrn/biztime/internal/apperr"
	"github.com/nimasrn/biztime/internal/config"
	"github.com/nimasrn/biztime/internal/handlers"
	"github.com/nimasrn/biztime/internal/repository"
	"github.com/nimasrn/biztime/internal/services"
	xhttp "github.com/nimasrn/biztime/pkg/http"
	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/nimasrn/biztime/pkg/pg"
	"github.com/nimasrn/biztime/pkg/prom"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	defer logger.Sync()
	logger.Info("starting biztime api", "version", version, "commit", commit, "date", date)

	err := config.Load(argContainsEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return
	}
	cfg := config.Get()

	if cfg.AppDebugMetricsAddr != "" {
		host, _ := os.Hostname()
		if err = prom.Create(host, cfg.AppEnv, cfg.PromNamespace); err != nil {
			logger.Error("failed to register metrics", "error", err)
			return
		}
		go prom.ListenAndServer(cfg.AppDebugMetricsAddr, cfg.AppDebugMetricsURI)
	}

	// transport (tcp for now)
	opts := xhttp.DefaultServerOption
	opts.Name = cfg.AppName
	if cfg.HttpServerReadTimeout > 0 {
		opts.ReadTimeout = time.Duration(cfg.HttpServerReadTimeout) * time.Millisecond
	}
	if cfg.HttpServerWriteTimeout > 0 {
		opts.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeout) * time.Millisecond
	}
	s := xhttp.NewServer(opts)
	handlers.UseMiddlewares(s, time.Duration(cfg.HttpRequestTimeout)*time.Millisecond)

	readConf := pg.Config{
		User:         cfg.PostgresReadUser,
		Host:         cfg.PostgresReadHost,
		Port:         cfg.PostgresReadPort,
		Password:     cfg.PostgresReadPassword,
		Database:     cfg.PostgresReadDatabase,
		SSLMode:      cfg.PostgresSSLMode,
		MaxOpenConns: cfg.PostgresMaxOpenConns,
		MaxIdleConns: cfg.PostgresMaxIdleConns,
	}
	writeConf := pg.Config{
		User:         cfg.PostgresWriteUser,
		Host:         cfg.PostgresWriteHost,
		Port:         cfg.PostgresWritePort,
		Password:     cfg.PostgresWritePassword,
		Database:     cfg.PostgresWriteDatabase,
		SSLMode:      cfg.PostgresSSLMode,
		MaxOpenConns: cfg.PostgresMaxOpenConns,
		MaxIdleConns: cfg.PostgresMaxIdleConns,
	}

	pgDebug := false
	if cfg.AppEnv == "dev" {
		pgDebug = true
	}
	db, err := pg.CreateReadWrite(readConf, writeConf, pgDebug)
	if err != nil {
		logger.Error("failed connecting to pg", "error", err)
		return
	}

	companyRepo := repository.NewCompanyRepository(db)
	industryRepo := repository.NewIndustryRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// services
	companyService := services.NewCompanyService(companyRepo, industryRepo)
	invoiceService := services.NewInvoiceService(invoiceRepo)
	healthService := services.NewHealthService(db)

	// handlers
	translator := apperr.Translator{Strict: cfg.AppStrictErrors}
	handlers.RegisterRoutes(s.Router,
		handlers.NewCompanyHandler(companyService, translator),
		handlers.NewInvoiceHandler(invoiceService, translator),
		handlers.NewHealthHandler(healthService),
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		errc <- s.ListenAndServe(cfg.HttpListenAddr)
	}()

	select {
	case sig := <-c:
		logger.Info("shutdown signal received", "signal", sig.String())
		if err = s.Shutdown(); err != nil {
			logger.Error("error shutting down http-server", "error", err)
		}
	case err = <-errc:
		if err != nil {
			logger.Error("error in running http-server", "error", err)
		}
	}

	if err = db.Close(); err != nil {
		logger.Error("error closing database", "error", err)
	}
}

func argContainsEnvPath() string {
	for _, v := range os.Args {
		if strings.HasPrefix(v, "--env=") {
			s := strings.SplitN(v, "=", 2)
			if _, err := os.Stat(s[1]); err != nil {
				logger.Error("failed to open the passed env file, got error " + err.Error())
				return ""
			}
			return s[1]
		}
	}
	return ""
}
