package models

import (
	"time"

	"github.com/google/uuid"
)

// Conversion represents one logged USD conversion
type Conversion struct {
	ID                uuid.UUID `json:"id" db:"id"`
	USDValue          float64   `json:"usdValue" db:"usd_value" example:"100"`
	ConvertedCurrency string    `json:"convertedCurrency" db:"converted_currency" example:"EUR"`
	Rate              float64   `json:"rate" db:"rate" example:"0.92"`
	ConvertedValue    float64   `json:"convertedValue" db:"converted_value" example:"92"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// CreateConversionRequest represents the request to log a conversion
type CreateConversionRequest struct {
	USDValue          float64 `json:"usdValue" binding:"required,gt=0" example:"100"`
	ConvertedCurrency string  `json:"convertedCurrency" binding:"required,len=3" message:"Currency code must be exactly 3 letters (e.g. USD, EUR)" example:"EUR"`
	Rate              float64 `json:"rate" binding:"required,gt=0" example:"0.92"`
	ConvertedValue    float64 `json:"convertedValue" binding:"required,gt=0" example:"92"`
}

// RatesResponse is the exchange-rate table served to the currency page
type RatesResponse struct {
	Base      string             `json:"base" example:"USD"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Rates     map[string]float64 `json:"rates"`
}
