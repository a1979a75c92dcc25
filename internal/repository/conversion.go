package repository

import (
	"context"
	"taskmint/internal/models"
)

// ConversionRepository defines the interface for conversion-history database
// operations. The history is append-only: rows are never updated or deleted.
type ConversionRepository interface {
	Create(ctx context.Context, conversion *models.Conversion) error
	List(ctx context.Context) ([]models.Conversion, error)
}
