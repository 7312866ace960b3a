package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	models "SmartFlow/internal/domain/models"
	domrepo "SmartFlow/internal/domain/repository"
	icache "SmartFlow/internal/service/cache"
	"SmartFlow/internal/service/metrics"
	"SmartFlow/internal/usecase"
	xhttp "SmartFlow/pkg/http"
	xlogger "SmartFlow/pkg/logger"
	xutil "SmartFlow/pkg/util"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// AnalysisEchoHandler exposes the structure-analysis endpoints over Echo.
type AnalysisEchoHandler struct {
	logger   *xlogger.Logger
	uc       *usecase.AnalysisUseCase
	cache    icache.BytesCache
	cacheTTL time.Duration
}

func NewAnalysisEchoHandler(logger *xlogger.Logger, uc *usecase.AnalysisUseCase) *AnalysisEchoHandler {
	metrics.Register()
	return &AnalysisEchoHandler{logger: logger, uc: uc}
}

// SetCache enables short-lived response caching at the HTTP boundary. The
// core below always recomputes; this only trades freshness for fan-out.
func (h *AnalysisEchoHandler) SetCache(c icache.BytesCache, ttl time.Duration) {
	h.cache = c
	h.cacheTTL = ttl
}

func (h *AnalysisEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", h.Health)
	g := e.Group("/api")
	g.GET("/analysis", h.Analysis)
	g.GET("/backtest", h.Backtest)
}

func (h *AnalysisEchoHandler) Analysis(c echo.Context) error {
	start := time.Now()
	endpoint := "analysis"
	defer func() {
		metrics.AnalysisLatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	req := &models.AnalysisRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	cacheKey := fmt.Sprintf("analysis:%s:%s:%s:%d:%d",
		req.Symbol, req.HigherInterval, req.LowerInterval, req.HigherLimit, req.LowerLimit)
	if h.cache != nil && h.cacheTTL > 0 {
		if b, ok, err := h.cache.GetBytes(cacheKey); err != nil {
			h.logger.Warn("analysis cache_get_error", xlogger.Error(err))
		} else if ok {
			return c.JSONBlob(http.StatusOK, b)
		}
	}

	res, err := h.uc.Analyze(c.Request().Context(), usecase.AnalyzeParams{
		Symbol:         req.Symbol,
		HigherInterval: domrepo.NormalizeInterval(req.HigherInterval, domrepo.DefaultHigherInterval()),
		LowerInterval:  domrepo.NormalizeInterval(req.LowerInterval, domrepo.DefaultLowerInterval()),
		HigherLimit:    req.HigherLimit,
		LowerLimit:     req.LowerLimit,
	})
	if err != nil {
		metrics.AnalysisErrors.WithLabelValues(endpoint).Inc()
		h.logger.Error("analysis usecase error",
			xlogger.String("symbol", req.Symbol),
			xlogger.Error(err),
		)
		if errors.Is(err, usecase.ErrSymbolRequired) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
		}
		return xhttp.AppErrorResponse(c, xhttp.InternalError(err.Error()).WithError(err))
	}

	if h.cache != nil && h.cacheTTL > 0 {
		envelope := xhttp.APIResponse{
			Status:  http.StatusOK,
			Message: http.StatusText(http.StatusOK),
			Data:    res,
		}
		if b, err := json.Marshal(envelope); err == nil {
			if err := h.cache.SetBytes(cacheKey, b, h.cacheTTL); err != nil {
				h.logger.Warn("analysis cache_set_error", xlogger.Error(err))
			}
		}
	}
	return xhttp.SuccessResponse(c, res)
}

// backtestWindowBars sizes the default lookback when the caller gives no range.
const backtestWindowBars = 500

// Backtest is a placeholder. The charting client expects the route to exist;
// the requested window is normalized to bar boundaries, strategy backtesting
// itself is not implemented.
func (h *AnalysisEchoHandler) Backtest(c echo.Context) error {
	req := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	to := xutil.ParseTimeDefault(req.To, time.Now())
	from := xutil.ParseTimeDefault(req.From, to.Add(-backtestWindowBars*xutil.IntervalDuration(req.Interval)))
	from, to = xutil.AlignFromTo(from, to, req.Interval)

	return xhttp.SuccessResponse(c, map[string]interface{}{
		"symbol":    req.Symbol,
		"interval":  req.Interval,
		"fromEpoch": from.Unix(),
		"toEpoch":   to.Unix(),
		"status":    "not_implemented",
		"message":   "backtesting is not available yet",
	})
}

func (h *AnalysisEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
