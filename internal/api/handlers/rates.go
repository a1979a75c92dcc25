package handlers

import (
	"log"
	"net/http"
	"taskmint/internal/models"
	"taskmint/internal/rates"

	"github.com/gin-gonic/gin"
)

// RatesHandler serves the cached exchange-rate table
type RatesHandler struct {
	service *rates.Service
}

// NewRatesHandler creates a new RatesHandler
func NewRatesHandler(service *rates.Service) *RatesHandler {
	return &RatesHandler{service: service}
}

// GetRates godoc
// @Summary Get the current exchange rates
// @Description Returns the most recently fetched USD rate table
// @Tags currency
// @Accept json
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 503 {object} models.ErrorResponse "No rates fetched yet"
// @Router /rates [get]
func (h *RatesHandler) GetRates(c *gin.Context) {
	snap, err := h.service.Latest()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "Rates not available yet"})
		return
	}

	c.JSON(http.StatusOK, models.RatesResponse{
		Base:      snap.Base,
		FetchedAt: snap.FetchedAt,
		Rates:     snap.Rates,
	})
}

// RefreshRates godoc
// @Summary Refresh the exchange rates
// @Description Fetches a fresh USD rate table from the upstream service
// @Tags currency
// @Accept json
// @Produce json
// @Success 200 {object} models.RatesResponse
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} models.ErrorResponse "Upstream fetch failed"
// @Router /rates/refresh [post]
func (h *RatesHandler) RefreshRates(c *gin.Context) {
	snap, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		log.Printf("Failed to refresh rates: %v", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{Error: "Failed to fetch rates"})
		return
	}

	c.JSON(http.StatusOK, models.RatesResponse{
		Base:      snap.Base,
		FetchedAt: snap.FetchedAt,
		Rates:     snap.Rates,
	})
}
