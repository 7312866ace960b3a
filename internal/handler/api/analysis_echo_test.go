package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartFlow/internal/domain/models"
	domrepo "SmartFlow/internal/domain/repository"
	icache "SmartFlow/internal/service/cache"
	"SmartFlow/internal/services/structure"
	"SmartFlow/internal/usecase"
	applogger "SmartFlow/pkg/logger"

	json "github.com/goccy/go-json"
)

type stubSource struct {
	calls atomic.Int32
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Fetch(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, error) {
	s.calls.Add(1)
	candles := make([]models.Candle, 0, limit)
	for i := 0; i < limit; i++ {
		price := 100 + float64(i%5)
		candles = append(candles, models.Candle{
			Time:  int64(1700000000 + i*60),
			Open:  price,
			High:  price + 1,
			Low:   price - 1,
			Close: price + 0.5,
		})
	}
	return candles, nil
}

func newTestHandler(t *testing.T, src *stubSource) *AnalysisEchoHandler {
	t.Helper()
	logger, err := applogger.New(&applogger.Config{Level: "error", Format: "json", Output: "stderr"})
	require.NoError(t, err)
	agg := usecase.NewCandleAggregator([]domrepo.CandleSource{src}, logger)
	uc := usecase.NewAnalysisUseCase(agg, structure.NewAnalyzer(0), 0, 0)
	return NewAnalysisEchoHandler(logger, uc)
}

func doRequest(h *AnalysisEchoHandler, target string) *httptest.ResponseRecorder {
	e := echo.New()
	h.RegisterRoutes(e)
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestAnalysisEndpoint(t *testing.T) {
	src := &stubSource{}
	h := newTestHandler(t, src)

	rec := doRequest(h, "/api/analysis?symbol=BTCUSDT")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Status int                   `json:"status"`
		Data   models.AnalysisResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, http.StatusOK, envelope.Status)
	assert.Equal(t, "BTCUSDT", envelope.Data.Symbol)
	assert.Equal(t, "4h", envelope.Data.HigherInterval)
	assert.Equal(t, "15m", envelope.Data.LowerInterval)
	assert.Equal(t, "stub", envelope.Data.DataSource)
	assert.Len(t, envelope.Data.HigherTimeframe.Candles, 200)
	assert.Len(t, envelope.Data.LowerTimeframe.Candles, 300)
	assert.NotNil(t, envelope.Data.Confluence.ExecutionSignals)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestAnalysisEndpointMissingSymbol(t *testing.T) {
	h := newTestHandler(t, &stubSource{})
	rec := doRequest(h, "/api/analysis")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisEndpointRejectsUnknownInterval(t *testing.T) {
	h := newTestHandler(t, &stubSource{})
	rec := doRequest(h, "/api/analysis?symbol=BTCUSDT&htf=7h")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalysisEndpointCacheHit(t *testing.T) {
	src := &stubSource{}
	h := newTestHandler(t, src)
	h.SetCache(icache.NewTTLCache(), time.Minute)

	target := "/api/analysis?symbol=ETHUSDT&htf=1h&ltf=5m"
	first := doRequest(h, target)
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, int32(2), src.calls.Load())

	second := doRequest(h, target)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, int32(2), src.calls.Load(), "second request should be served from cache")
	assert.JSONEq(t, first.Body.String(), second.Body.String())
}

func TestAnalysisEndpointCacheKeyIncludesLimits(t *testing.T) {
	src := &stubSource{}
	h := newTestHandler(t, src)
	h.SetCache(icache.NewTTLCache(), time.Minute)

	doRequest(h, "/api/analysis?symbol=ETHUSDT&htfLimit=50&ltfLimit=50")
	require.Equal(t, int32(2), src.calls.Load())

	doRequest(h, "/api/analysis?symbol=ETHUSDT&htfLimit=60&ltfLimit=60")
	assert.Equal(t, int32(4), src.calls.Load(), "different limits must not share a cache entry")
}

func TestBacktestStub(t *testing.T) {
	h := newTestHandler(t, &stubSource{})
	rec := doRequest(h, "/api/backtest?symbol=BTCUSDT")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "not_implemented", envelope.Data["status"])
	assert.Equal(t, "1h", envelope.Data["interval"])
}

func TestBacktestAlignsWindow(t *testing.T) {
	h := newTestHandler(t, &stubSource{})
	rec := doRequest(h, "/api/backtest?symbol=BTCUSDT&interval=4h&from=2024-10-10T10:07:30Z&to=2024-10-11T13:59:59Z")
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data struct {
			FromEpoch int64 `json:"fromEpoch"`
			ToEpoch   int64 `json:"toEpoch"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, time.Date(2024, 10, 10, 8, 0, 0, 0, time.UTC).Unix(), envelope.Data.FromEpoch)
	assert.Equal(t, time.Date(2024, 10, 11, 12, 0, 0, 0, time.UTC).Unix(), envelope.Data.ToEpoch)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t, &stubSource{})
	rec := doRequest(h, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}
