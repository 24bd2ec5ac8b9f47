package main

import (
	"os"
	"strings"

	"github.com/nimasrn/biztime/internal/config"
	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/nimasrn/biztime/pkg/pg"
)

// main.go [migrate|rollback] --dir=./migrations --env=.env
func main() {
	defer logger.Sync()

	err := config.Load(getEnvPath())
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Get()
	pgConf := pg.Config{
		User:     cfg.PostgresWriteUser,
		Host:     cfg.PostgresWriteHost,
		Port:     cfg.PostgresWritePort,
		Password: cfg.PostgresWritePassword,
		Database: cfg.PostgresWriteDatabase,
		SSLMode:  cfg.PostgresSSLMode,
	}

	dir := getMigrationPath()
	switch command() {
	case "rollback":
		err = pg.Rollback(pgConf, dir)
	case "migrate":
		err = pg.Migrate(pgConf, dir)
	default:
		logger.Error("unknown command, expected migrate or rollback", "command", command())
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration: error running migrations", "error", err)
		os.Exit(1)
	}
}

// command is the first positional argument, migrate when absent.
func command() string {
	for _, v := range os.Args[1:] {
		if !strings.HasPrefix(v, "--") {
			return v
		}
	}
	return "migrate"
}

func getEnvPath() string {
	if v, ok := flagValue("--env="); ok {
		if _, err := os.Stat(v); err != nil {
			logger.Error("failed to open the passed env file, got error " + err.Error())
			return ""
		}
		return v
	}
	if _, err := os.Stat(".env"); err != nil {
		logger.Warn("no .env file found, reading configuration from the environment")
		return ""
	}
	return ".env"
}

func getMigrationPath() string {
	if v, ok := flagValue("--dir="); ok {
		return v
	}
	return "./migrations"
}

func flagValue(prefix string) (string, bool) {
	for _, v := range os.Args[1:] {
		if strings.HasPrefix(v, prefix) {
			return strings.TrimPrefix(v, prefix), true
		}
	}
	return "", false
}
