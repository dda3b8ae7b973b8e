package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"DATABASE_DSN", "API_PORT", "DEBUG", "BOOKRETREATS_API_URL",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "https://api.bookretreats.com/", cfg.RetreatsAPIURL)
	assert.Contains(t, cfg.DatabaseDSN, "host=localhost")
	assert.Contains(t, cfg.DatabaseDSN, "port=5432")
}

func TestLoadExplicitDSN(t *testing.T) {
	t.Setenv("DATABASE_DSN", "host=db port=5433 user=app dbname=retreats sslmode=disable")
	t.Setenv("DEBUG", "1")
	t.Setenv("API_PORT", "9090")

	cfg := Load()
	assert.Equal(t, "host=db port=5433 user=app dbname=retreats sslmode=disable", cfg.DatabaseDSN)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoadAssemblesDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASS", "secret")
	t.Setenv("DB_NAME", "retreats")

	cfg := Load()
	assert.Equal(t, "host=pg port=6543 user=app password=secret dbname=retreats sslmode=disable", cfg.DatabaseDSN)
}
