package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/nimasrn/biztime/pkg/logger"
	"github.com/pkg/errors"
)

var config *Config

// Config holds every configuration value of the service. Only this struct
// must be used to read configuration, no direct access to env or any other
// source should be made elsewhere.
type Config struct {
	AppEnv              string `env:"APP_ENV,default=dev"`
	AppName             string `env:"APP_NAME,default=biztime"`
	AppDebugMetricsAddr string `env:"APP_DEBUG_METRIC_ADDR"`
	AppDebugMetricsURI  string `env:"APP_DEBUG_METRIC_URI,default=/metrics"`

	// AppStrictErrors classifies constraint violations (409/400) instead of
	// answering every database failure with 500.
	AppStrictErrors bool `env:"APP_STRICT_ERRORS,default=false"`

	HttpListenAddr         string `env:"HTTP_LISTEN_ADDR,default=:3000"`
	HttpServerReadTimeout  int    `env:"HTTP_SERVER_READ_TIMEOUT"`  // milliseconds
	HttpServerWriteTimeout int    `env:"HTTP_SERVER_WRITE_TIMEOUT"` // milliseconds
	HttpRequestTimeout     int    `env:"HTTP_REQUEST_TIMEOUT,default=5000"`

	PostgresReadHost     string `env:"POSTGRES_READ_HOST"`
	PostgresReadPort     string `env:"POSTGRES_READ_PORT"`
	PostgresReadUser     string `env:"POSTGRES_READ_USER"`
	PostgresReadPassword string `env:"POSTGRES_READ_PASSWORD"`
	PostgresReadDatabase string `env:"POSTGRES_READ_DBNAME"`

	PostgresWriteHost     string `env:"POSTGRES_WRITE_HOST"`
	PostgresWritePort     string `env:"POSTGRES_WRITE_PORT"`
	PostgresWriteUser     string `env:"POSTGRES_WRITE_USER"`
	PostgresWritePassword string `env:"POSTGRES_WRITE_PASSWORD"`
	PostgresWriteDatabase string `env:"POSTGRES_WRITE_DBNAME"`

	PostgresSSLMode      string `env:"POSTGRES_SSLMODE,default=disable"`
	PostgresMaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS,default=20"`
	PostgresMaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS,default=5"`

	PromNamespace string `env:"PROM_NAMESPACE,default=biztime"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.Wrapf(err, "failed to load configuration file %s", path)
		}
	}

	_, err = env.UnmarshalFromEnviron(c)
	if err != nil {
		return errors.Wrap(err, "failed to map env variables to Configuration object")
	}

	c.ReadFallsBackToWrite()
	if err = c.validate(); err != nil {
		return err
	}

	config = c
	return nil
}

func (c *Config) validate() error {
	if c.PostgresWriteHost == "" || c.PostgresWriteDatabase == "" {
		return errors.New("POSTGRES_WRITE_HOST and POSTGRES_WRITE_DBNAME must be set")
	}
	return nil
}

// ReadFallsBackToWrite fills every unset read replica setting from the
// write settings, a single database serves both in most deployments.
func (c *Config) ReadFallsBackToWrite() {
	if c.PostgresReadHost == "" {
		c.PostgresReadHost = c.PostgresWriteHost
	}
	if c.PostgresReadPort == "" {
		c.PostgresReadPort = c.PostgresWritePort
	}
	if c.PostgresReadUser == "" {
		c.PostgresReadUser = c.PostgresWriteUser
	}
	if c.PostgresReadPassword == "" {
		c.PostgresReadPassword = c.PostgresWritePassword
	}
	if c.PostgresReadDatabase == "" {
		c.PostgresReadDatabase = c.PostgresWriteDatabase
	}
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
