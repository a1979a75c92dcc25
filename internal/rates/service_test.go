package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ratesBody = `{"result":"success","base_code":"USD","rates":{"USD":1,"EUR":0.92}}`

func TestServiceLatestBeforeFetch(t *testing.T) {
	svc := NewService(Config{})

	_, err := svc.Latest()
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestServiceRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	svc := NewService(Config{BaseURL: srv.URL})

	snap, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "USD", snap.Base)

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, snap, latest)
}

func TestServiceRefreshKeepsSnapshotOnFailure(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	svc := NewService(Config{BaseURL: srv.URL})

	first, err := svc.Refresh(context.Background())
	require.NoError(t, err)

	fail.Store(true)
	_, err = svc.Refresh(context.Background())
	require.Error(t, err)

	// A failed refresh must not clobber the cached table
	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.Equal(t, first, latest)
}

func TestServiceStartDisabled(t *testing.T) {
	svc := NewService(Config{Enabled: false})

	require.NoError(t, svc.Start(context.Background()))

	_, err := svc.Latest()
	require.ErrorIs(t, err, ErrNoSnapshot)
}

func TestServiceStartWithoutSchedule(t *testing.T) {
	svc := NewService(Config{Enabled: true})

	require.Error(t, svc.Start(context.Background()))
}

func TestServiceStartFetchesImmediately(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ratesBody))
	}))
	defer srv.Close()

	svc := NewService(Config{Enabled: true, Schedule: "0 * * * *", BaseURL: srv.URL})
	defer svc.Stop()

	require.NoError(t, svc.Start(context.Background()))

	latest, err := svc.Latest()
	require.NoError(t, err)
	assert.InDelta(t, 0.92, latest.Rates["EUR"], 1e-9)
}
