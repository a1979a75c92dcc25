package db

import (
	"path/filepath"
	"runtime"
	"testing"
	"taskmint/internal/config"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
)

// LoadTestConfig builds a configuration for integration tests. A .env.test
// file at the project root is honored when present; otherwise the defaults
// from LoadFromEnv apply, with the database name switched to taskmint_test.
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()

	// Get the absolute path to this file
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok, "Failed to get current file path")

	// Calculate project root (3 levels up from this file)
	projectRoot := filepath.Join(filepath.Dir(filename), "..", "..", "..")
	projectRoot, err := filepath.Abs(projectRoot)
	require.NoError(t, err, "Failed to get absolute project root path")

	// Optional: integration test overrides
	_ = godotenv.Load(filepath.Join(projectRoot, ".env.test"))

	cfg := &config.Config{}
	err = cfg.LoadFromEnv()
	require.NoError(t, err, "Failed to load config")

	if cfg.Database.DBName == "taskmint" {
		cfg.Database.DBName = "taskmint_test"
	}
	cfg.Database.MigrationsPath = filepath.Join(projectRoot, "migrations")

	return cfg
}
