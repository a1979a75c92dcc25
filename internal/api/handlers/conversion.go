package handlers

import (
	"log"
	"net/http"
	"taskmint/internal/models"
	"taskmint/internal/repository"

	"github.com/gin-gonic/gin"
)

// ConversionHandler handles conversion-history requests
type ConversionHandler struct {
	repo repository.ConversionRepository
}

// NewConversionHandler creates a new ConversionHandler
func NewConversionHandler(repo repository.ConversionRepository) *ConversionHandler {
	return &ConversionHandler{repo: repo}
}

// ListConversions godoc
// @Summary List conversion history
// @Description Returns all logged conversions ordered by creation time, newest first
// @Tags currency
// @Accept json
// @Produce json
// @Success 200 {array} models.Conversion
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currency [get]
func (h *ConversionHandler) ListConversions(c *gin.Context) {
	conversions, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("Failed to fetch conversion history: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch history"})
		return
	}

	if conversions == nil {
		conversions = []models.Conversion{}
	}

	c.JSON(http.StatusOK, conversions)
}

// CreateConversion godoc
// @Summary Log a conversion
// @Description Appends one USD conversion to the history
// @Tags currency
// @Accept json
// @Produce json
// @Param conversion body models.CreateConversionRequest true "Conversion to log"
// @Success 201 {object} models.Conversion
// @Failure 400 {object} models.ErrorResponse "Invalid request body"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal Server Error"
// @Router /currency [post]
func (h *ConversionHandler) CreateConversion(c *gin.Context) {
	var req models.CreateConversionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	conversion := models.Conversion{
		USDValue:          req.USDValue,
		ConvertedCurrency: req.ConvertedCurrency,
		Rate:              req.Rate,
		ConvertedValue:    req.ConvertedValue,
	}
	if err := h.repo.Create(c.Request.Context(), &conversion); err != nil {
		log.Printf("Failed to create conversion: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to create history"})
		return
	}

	c.JSON(http.StatusCreated, conversion)
}
