// Package testutil provides utilities for testing
package testutil

import (
	"database/sql"
	"strings"
	"testing"
	"taskmint/internal/config"
	"taskmint/internal/repository"
	"taskmint/internal/repository/postgres"
	"taskmint/internal/testutil/db"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// LoadTestConfig loads the test configuration
func LoadTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return db.LoadTestConfig(t)
}

// TestContext holds common test dependencies
type TestContext struct {
	T              *testing.T
	DB             *sql.DB
	Config         *config.Config
	TodoRepo       repository.TodoRepository
	ConversionRepo repository.ConversionRepository
}

// NewTestContext creates a new test context with all dependencies.
// Skips the test when no test database is reachable.
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	// Set Gin to test mode
	gin.SetMode(gin.TestMode)

	// Initialize validators
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		err := v.RegisterValidation("nospaces", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			return strings.TrimSpace(value) != ""
		})
		if err != nil {
			t.Fatal("Failed to register validator:", err)
		}
	}

	// Load test config
	cfg := LoadTestConfig(t)

	// Setup test database
	testDB := db.SetupTestDB(t, &cfg.Database)

	return &TestContext{
		T:              t,
		DB:             testDB,
		Config:         cfg,
		TodoRepo:       postgres.NewTodoRepository(testDB),
		ConversionRepo: postgres.NewConversionRepository(testDB),
	}
}
