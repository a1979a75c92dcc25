package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoadFromEnvDefaults verifies the defaults used when nothing is set
func TestLoadFromEnvDefaults(t *testing.T) {
	for _, key := range []string{
		"API_PORT", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME",
		"DB_SSL_MODE", "MIGRATIONS_PATH", "RATES_SCHEDULE", "RATES_ENABLED",
		"RATE_LIMIT_REQUESTS", "RATE_LIMIT_WINDOW", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "8080", cfg.API.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "postgres", cfg.Database.User)
	require.Equal(t, "postgres", cfg.Database.Password)
	require.Equal(t, "taskmint", cfg.Database.DBName)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, "migrations", cfg.Database.MigrationsPath)
	require.Equal(t, "0 * * * *", cfg.Rates.Schedule)
	require.True(t, cfg.Rates.Enabled)
	require.Equal(t, 1000, cfg.RateLimit.Requests)
	require.Equal(t, 60, cfg.RateLimit.Window)
	require.Equal(t, 50, cfg.RateLimit.Burst)
}

// TestLoadFromEnvOverrides verifies environment variables take precedence
func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("DB_NAME", "taskmint_test")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("RATES_ENABLED", "false")
	t.Setenv("RATES_SCHEDULE", "*/30 * * * *")
	t.Setenv("RATE_LIMIT_REQUESTS", "10")

	cfg := &Config{}
	require.NoError(t, cfg.LoadFromEnv())

	require.Equal(t, "9090", cfg.API.Port)
	require.Equal(t, "taskmint_test", cfg.Database.DBName)
	require.Equal(t, 5433, cfg.Database.Port)
	require.False(t, cfg.Rates.Enabled)
	require.Equal(t, "*/30 * * * *", cfg.Rates.Schedule)
	require.Equal(t, 10, cfg.RateLimit.Requests)
}

// TestLoadFromEnvRejectsBadRateLimit verifies invalid limits are refused
func TestLoadFromEnvRejectsBadRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "-5")

	cfg := &Config{}
	require.Error(t, cfg.LoadFromEnv())
}
