package rates

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almokadam/backoffice/internal/pkg/apperrors"
)

func TestGetFetchesAndCaches(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, "/MYR", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"MYR","rates":{"USD":0.21,"GBP":0.17}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "MYR", time.Hour, zerolog.Nop())

	table, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "MYR", table.Base)
	assert.Equal(t, 0.21, table.Rates["USD"])
	assert.False(t, table.Stale)

	// Second call within the TTL serves the cache
	_, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGetServesStaleOnRefreshFailure(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"MYR","rates":{"USD":0.21}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "MYR", 0, zerolog.Nop())

	table, err := client.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, table.Stale)

	fail.Store(true)

	table, err = client.Get(context.Background())
	require.NoError(t, err)
	assert.True(t, table.Stale)
	assert.Equal(t, 0.21, table.Rates["USD"])
}

func TestGetFailsWithoutCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "MYR", time.Hour, zerolog.Nop())

	_, err := client.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrRatesUnavailable)
}
