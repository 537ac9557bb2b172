// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/Dhanushcr18/Edu-wealth/internal/models"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	DatabaseURL      string
	HTTPAddr         string
	LogLevel         string
	DefaultCurrency  string
	SeedCatalog      bool
	OTLPEndpoint     string
	ServiceName      string
	SearchQueueSize  int
	SearchResultsCap int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		HTTPAddr:        os.Getenv("HTTP_ADDR"),
		LogLevel:        os.Getenv("LOG_LEVEL"),
		DefaultCurrency: os.Getenv("DEFAULT_CURRENCY"),
		OTLPEndpoint:    os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:     os.Getenv("OTEL_SERVICE_NAME"),
	}

	if cfg.HTTPAddr == "" {
		cfg.HTTPAddr = ":8080"
	}
	if cfg.DefaultCurrency == "" {
		cfg.DefaultCurrency = models.DefaultCurrency
	}
	if cfg.ServiceName == "" {
		cfg.ServiceName = "eduwealth"
	}

	// Seeding is on unless explicitly disabled.
	cfg.SeedCatalog = os.Getenv("SEED_CATALOG") != "false"

	cfg.SearchQueueSize = 64
	cfg.SearchResultsCap = 10

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks that all required configuration is present.
func (c *Config) validate() error {
	var errs []string

	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}

	if _, ok := models.SupportedCurrencies[c.DefaultCurrency]; !ok {
		errs = append(errs, fmt.Sprintf("DEFAULT_CURRENCY %q is not supported", c.DefaultCurrency))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
