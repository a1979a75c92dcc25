package postgres_test

import (
	"context"
	"testing"
	"time"

	"taskmint/internal/models"
	"taskmint/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestConversionRepository_Create(t *testing.T) {
	tc := testutil.NewTestContext(t)

	conversion := models.Conversion{
		USDValue:          100,
		ConvertedCurrency: "EUR",
		Rate:              0.92,
		ConvertedValue:    92,
	}
	err := tc.ConversionRepo.Create(context.Background(), &conversion)
	require.NoError(t, err)

	require.NotEqual(t, uuid.Nil, conversion.ID)
	require.False(t, conversion.CreatedAt.IsZero())
}

func TestConversionRepository_List_NewestFirst(t *testing.T) {
	tc := testutil.NewTestContext(t)

	for i, currency := range []string{"EUR", "SEK", "GBP"} {
		conversion := models.Conversion{
			USDValue:          float64(10 * (i + 1)),
			ConvertedCurrency: currency,
			Rate:              1.5,
			ConvertedValue:    float64(15 * (i + 1)),
		}
		require.NoError(t, tc.ConversionRepo.Create(context.Background(), &conversion))
		time.Sleep(5 * time.Millisecond)
	}

	history, err := tc.ConversionRepo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, history, 3)

	require.Equal(t, "GBP", history[0].ConvertedCurrency)
	require.Equal(t, "SEK", history[1].ConvertedCurrency)
	require.Equal(t, "EUR", history[2].ConvertedCurrency)

	require.InDelta(t, 30, history[0].USDValue, 1e-9)
	require.InDelta(t, 45, history[0].ConvertedValue, 1e-9)
	require.InDelta(t, 1.5, history[0].Rate, 1e-9)
}
