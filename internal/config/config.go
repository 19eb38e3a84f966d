// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"pharmapos"`
		Env  string `envconfig:"APP_ENV" default:"development"`
		Port int    `envconfig:"APP_PORT" default:"8080"`
	}

	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"pharmapos"`
		MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"25"`
		MinConns int32  `envconfig:"DB_MIN_CONNS" default:"5"`
	}

	Server struct {
		ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
		WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"30s"`
		IdleTimeout     time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
		ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`
	}

	JWT struct {
		// Plaintext credential storage is a carried-forward limitation of the
		// original system; the token secret is still configurable.
		Secret   string        `envconfig:"JWT_SECRET" default:"change-me-in-production"`
		TokenTTL time.Duration `envconfig:"JWT_TOKEN_TTL" default:"8h"`
	}

	Invoice struct {
		OutputDir string `envconfig:"INVOICE_DIR" default:"invoices"`
	}
}

// ConnectionString builds the PostgreSQL DSN.
func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
