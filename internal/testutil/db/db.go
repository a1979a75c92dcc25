// Package db provides database utilities for testing
package db

import (
	"database/sql"
	"fmt"
	"strings"
	"testing"
	"taskmint/internal/config"
	"taskmint/internal/database"

	"github.com/stretchr/testify/require"
)

// CleanupTestDB drops all tables in the test database
func CleanupTestDB(db *sql.DB) error {
	rows, err := db.Query(`
		SELECT tablename
		FROM pg_tables
		WHERE schemaname = 'public'
	`)
	if err != nil {
		return fmt.Errorf("failed to get table names: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, tableName)
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating over table names: %w", err)
	}

	if len(tables) > 0 {
		dropQuery := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE",
			strings.Join(tables, ", "))
		if _, err := db.Exec(dropQuery); err != nil {
			return fmt.Errorf("failed to drop tables: %w", err)
		}
	}

	return nil
}

// SetupTestDB connects to the test database, resets its schema and runs all
// migrations. The test is skipped when no database is reachable, so the
// integration suite degrades to a no-op on machines without PostgreSQL.
func SetupTestDB(t *testing.T, cfg *config.DatabaseConfig) *sql.DB {
	t.Helper()

	testDB, err := database.Connect(*cfg)
	require.NoError(t, err, "Failed to open test database")

	if err := testDB.Ping(); err != nil {
		testDB.Close()
		t.Skipf("test database not available: %v", err)
	}

	require.NoError(t, CleanupTestDB(testDB), "Failed to clean test database")
	require.NoError(t, database.RunMigrations(*cfg), "Failed to run migrations")

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}
