package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clipclic-storefront-backend/internal/model"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "server:\n  port: 0\n"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 10.0, cfg.Server.RateLimitPerSec)
	assert.Equal(t, 5, cfg.Server.RateLimitBurst)
	assert.Equal(t, 5*time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:storefront.db", cfg.Database.DSN)
	assert.Equal(t, "warn", cfg.Database.LogLevel)
	assert.Equal(t, model.LanguageSpanish, cfg.Locale.Default)
}

func TestLoad_Full(t *testing.T) {
	body := `
server:
  port: 9090
  rate_limit_per_sec: 2.5
  rate_limit_burst: 10
  cache_ttl_seconds: 60
database:
  driver: postgres
  dsn: "host=localhost user=shop dbname=catalog sslmode=disable"
  max_open_conns: 10
  max_idle_conns: 2
  conn_max_lifetime_minutes: 30
  log_level: info
locale:
  default: en
`
	cfg, err := Load(writeConfig(t, body))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 2.5, cfg.Server.RateLimitPerSec)
	assert.Equal(t, time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, model.LanguageEnglish, cfg.Locale.Default)
}

func TestLoad_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"Unknown driver", "database:\n  driver: mysql\n  dsn: x\n"},
		{"Postgres without DSN", "database:\n  driver: postgres\n"},
		{"Unknown language", "locale:\n  default: pt\n"},
		{"Unknown log level", "database:\n  log_level: loud\n"},
		{"Malformed YAML", "server: [\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
