package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domrepo "SmartFlow/internal/domain/repository"
)

func TestBinanceFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v3/klines", r.URL.Path)
		assert.Equal(t, "BTCUSDT", r.URL.Query().Get("symbol"))
		assert.Equal(t, "4h", r.URL.Query().Get("interval"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			[1700000000000, "35000.1", "35100.5", "34900.0", "35050.2", "120.5", 1700014399999, "0", 0, "0", "0", "0"],
			[1700014400000, "35050.2", "35200.0", "35000.0", "35150.7", "98.1", 1700028799999, "0", 0, "0", "0", "0"]
		]`))
	}))
	defer srv.Close()

	b := NewBinance(Config{BaseURL: srv.URL, Timeout: 2 * time.Second})
	candles, err := b.Fetch(context.Background(), "BTCUSDT", domrepo.Interval4h, 2)
	require.NoError(t, err)
	require.Len(t, candles, 2)

	assert.Equal(t, int64(1700000000), candles[0].Time)
	assert.Equal(t, 35000.1, candles[0].Open)
	assert.Equal(t, 35100.5, candles[0].High)
	assert.Equal(t, 34900.0, candles[0].Low)
	assert.Equal(t, 35050.2, candles[0].Close)
}

func TestBinanceFetchEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	b := NewBinance(Config{BaseURL: srv.URL})
	candles, err := b.Fetch(context.Background(), "BTCUSDT", domrepo.Interval1h, 10)
	require.NoError(t, err)
	assert.Empty(t, candles)
}

func TestBinanceFetchNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"code":-1121,"msg":"Invalid symbol."}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	b := NewBinance(Config{BaseURL: srv.URL})
	_, err := b.Fetch(context.Background(), "NOPE", domrepo.Interval1h, 10)
	assert.Error(t, err)
}

func TestBinanceUnknownIntervalPassesThrough(t *testing.T) {
	var gotInterval string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotInterval = r.URL.Query().Get("interval")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	b := NewBinance(Config{BaseURL: srv.URL})
	_, err := b.Fetch(context.Background(), "BTCUSDT", domrepo.Interval("3m"), 10)
	require.NoError(t, err)
	assert.Equal(t, "3m", gotInterval)
}
