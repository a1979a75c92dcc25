// Package routes handles the setup and configuration of API routes
package routes

import (
	"database/sql"
	_ "taskmint/docs" // Import swagger docs
	"taskmint/internal/api/handlers"
	"taskmint/internal/api/middleware"
	"taskmint/internal/config"
	"taskmint/internal/rates"
	"taskmint/internal/repository/postgres"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRoutes configures all routes: the JSON API, the swagger UI and the
// server-rendered pages
func SetupRoutes(cfg *config.Config, db *sql.DB, ratesService *rates.Service) *gin.Engine {
	// Create router
	r := gin.Default()

	// Apply compression middleware globally
	r.Use(middleware.Compression(middleware.DefaultCompressionConfig()))

	// Server-rendered pages and static assets
	r.LoadHTMLGlob(cfg.Web.TemplatesGlob)
	r.Static("/static", cfg.Web.StaticDir)

	// Initialize health handler for basic routes
	healthHandler := handlers.NewHealthHandler(db)

	// Routes without rate limiting
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Apply rate limiting to all other routes
	r.Use(middleware.NewRateLimiter(cfg).Middleware())

	// Initialize repositories
	todoRepo := postgres.NewTodoRepository(db)
	conversionRepo := postgres.NewConversionRepository(db)

	// Initialize handlers
	todoHandler := handlers.NewTodoHandler(todoRepo)
	conversionHandler := handlers.NewConversionHandler(conversionRepo)
	ratesHandler := handlers.NewRatesHandler(ratesService)
	pageHandler := handlers.NewPageHandler()

	// Pages
	r.GET("/", pageHandler.TodoPage)
	r.GET("/currency", pageHandler.CurrencyPage)

	// API routes
	api := r.Group("/api")
	{
		// Health check
		api.GET("/health", healthHandler.Health)

		// Todo routes
		todos := api.Group("/todos")
		{
			todos.GET("", todoHandler.ListTodos)
			todos.POST("", todoHandler.CreateTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}

		// Conversion history routes
		currency := api.Group("/currency")
		{
			currency.GET("", conversionHandler.ListConversions)
			currency.POST("", conversionHandler.CreateConversion)
		}

		// Exchange-rate routes
		api.GET("/rates", ratesHandler.GetRates)
		api.POST("/rates/refresh", ratesHandler.RefreshRates)
	}

	return r
}
