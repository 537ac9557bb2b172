package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("loads all config from env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("HTTP_ADDR", ":9090")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		require.Equal(t, ":9090", cfg.HTTPAddr)
		require.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails when database URL missing", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "DATABASE_URL is required")
	})

	t.Run("defaults HTTP addr", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("HTTP_ADDR", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ":8080", cfg.HTTPAddr)
	})

	t.Run("defaults currency to INR", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("DEFAULT_CURRENCY", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "INR", cfg.DefaultCurrency)
	})

	t.Run("accepts supported currency override", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("DEFAULT_CURRENCY", "USD")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "USD", cfg.DefaultCurrency)
	})

	t.Run("rejects unsupported currency", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("DEFAULT_CURRENCY", "XYZ")

		_, err := Load()
		require.Error(t, err)
		require.Contains(t, err.Error(), "not supported")
	})

	t.Run("catalog seeding on by default", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, cfg.SeedCatalog)
	})

	t.Run("catalog seeding can be disabled", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("SEED_CATALOG", "false")

		cfg, err := Load()
		require.NoError(t, err)
		require.False(t, cfg.SeedCatalog)
	})

	t.Run("loads OTLP endpoint", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "http://collector:4318")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "http://collector:4318", cfg.OTLPEndpoint)
	})

	t.Run("defaults service name", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/test")
		t.Setenv("OTEL_SERVICE_NAME", "")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "eduwealth", cfg.ServiceName)
	})
}
