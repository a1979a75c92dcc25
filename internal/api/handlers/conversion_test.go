package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"taskmint/internal/api/handlers"
	"taskmint/internal/models"
	"taskmint/internal/repository"
	"taskmint/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConversionRepo is an in-memory ConversionRepository for handler tests
type fakeConversionRepo struct {
	conversions []models.Conversion
	err         error
}

func (f *fakeConversionRepo) Create(ctx context.Context, conversion *models.Conversion) error {
	if f.err != nil {
		return f.err
	}
	conversion.ID = uuid.New()
	conversion.CreatedAt = time.Now()
	f.conversions = append(f.conversions, *conversion)
	return nil
}

func (f *fakeConversionRepo) List(ctx context.Context) ([]models.Conversion, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Conversion, len(f.conversions))
	copy(out, f.conversions)
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func newConversionRouter(repo repository.ConversionRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validation.Initialize()

	handler := handlers.NewConversionHandler(repo)
	router := gin.New()
	router.GET("/api/currency", handler.ListConversions)
	router.POST("/api/currency", handler.CreateConversion)
	return router
}

func TestConversionHandler_ListConversions(t *testing.T) {
	repo := &fakeConversionRepo{}
	router := newConversionRouter(repo)

	base := time.Now()
	for i, currency := range []string{"EUR", "SEK"} {
		repo.conversions = append(repo.conversions, models.Conversion{
			ID:                uuid.New(),
			USDValue:          100,
			ConvertedCurrency: currency,
			Rate:              1,
			ConvertedValue:    100,
			CreatedAt:         base.Add(time.Duration(i) * time.Second),
		})
	}

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/currency", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var history []models.Conversion
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &history))
	require.Len(t, history, 2)

	// Newest first
	assert.Equal(t, "SEK", history[0].ConvertedCurrency)
	assert.Equal(t, "EUR", history[1].ConvertedCurrency)
}

func TestConversionHandler_ListConversions_Empty(t *testing.T) {
	router := newConversionRouter(&fakeConversionRepo{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/currency", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestConversionHandler_ListConversions_StorageError(t *testing.T) {
	router := newConversionRouter(&fakeConversionRepo{err: errStorage})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/currency", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestConversionHandler_CreateConversion(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		storageErr error
		wantStatus int
		wantStored int
	}{
		{
			name:       "Valid Conversion",
			body:       `{"usdValue":100,"convertedCurrency":"EUR","rate":0.92,"convertedValue":92}`,
			wantStatus: http.StatusCreated,
			wantStored: 1,
		},
		{
			name:       "Missing Fields",
			body:       `{"usdValue":100}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Zero USD Value",
			body:       `{"usdValue":0,"convertedCurrency":"EUR","rate":0.92,"convertedValue":0}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Negative USD Value",
			body:       `{"usdValue":-5,"convertedCurrency":"EUR","rate":0.92,"convertedValue":-4.6}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Bad Currency Code",
			body:       `{"usdValue":100,"convertedCurrency":"EURO","rate":0.92,"convertedValue":92}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "Storage Error",
			body:       `{"usdValue":100,"convertedCurrency":"EUR","rate":0.92,"convertedValue":92}`,
			storageErr: errStorage,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeConversionRepo{err: tt.storageErr}
			router := newConversionRouter(repo)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/api/currency", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Len(t, repo.conversions, tt.wantStored)

			if tt.wantStatus == http.StatusCreated {
				var conversion models.Conversion
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &conversion))
				assert.Equal(t, "EUR", conversion.ConvertedCurrency)
				assert.InDelta(t, 92, conversion.ConvertedValue, 1e-9)
				assert.NotEqual(t, uuid.Nil, conversion.ID)
			}
		})
	}
}
