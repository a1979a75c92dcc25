package postgres

import (
	"context"
	"database/sql"
	"taskmint/internal/models"
	"taskmint/internal/repository"
	"time"

	"github.com/google/uuid"
)

type conversionRepository struct {
	repository.BaseRepository
}

// NewConversionRepository creates a new PostgreSQL conversion-history repository
func NewConversionRepository(db *sql.DB) repository.ConversionRepository {
	return &conversionRepository{
		BaseRepository: repository.NewBaseRepository(db),
	}
}

func (r *conversionRepository) Create(ctx context.Context, conversion *models.Conversion) error {
	query := `
		INSERT INTO conversions (id, usd_value, converted_currency, rate, converted_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`

	conversion.ID = uuid.New()

	return r.DB().QueryRowContext(ctx, query,
		conversion.ID,
		conversion.USDValue,
		conversion.ConvertedCurrency,
		conversion.Rate,
		conversion.ConvertedValue,
		time.Now(),
	).Scan(&conversion.ID, &conversion.CreatedAt)
}

func (r *conversionRepository) List(ctx context.Context) ([]models.Conversion, error) {
	query := `
		SELECT id, usd_value, converted_currency, rate, converted_value, created_at
		FROM conversions
		ORDER BY created_at DESC`

	rows, err := r.DB().QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversions []models.Conversion
	for rows.Next() {
		var conversion models.Conversion
		if err := rows.Scan(
			&conversion.ID,
			&conversion.USDValue,
			&conversion.ConvertedCurrency,
			&conversion.Rate,
			&conversion.ConvertedValue,
			&conversion.CreatedAt,
		); err != nil {
			return nil, err
		}
		conversions = append(conversions, conversion)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return conversions, nil
}
