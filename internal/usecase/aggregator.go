package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"SmartFlow/internal/domain/models"
	domrepo "SmartFlow/internal/domain/repository"
	"SmartFlow/internal/service/metrics"
	applogger "SmartFlow/pkg/logger"
)

// ErrAllProvidersExhausted is the only fatal aggregator condition: every
// configured provider either failed or returned no candles. It wraps the most
// recent soft error (last-write-wins, not an aggregate).
var ErrAllProvidersExhausted = errors.New("all candle providers exhausted")

// ErrEmptyResult marks a provider response that parsed cleanly but carried no
// candles. Soft; the aggregator advances to the next provider.
var ErrEmptyResult = errors.New("provider returned no candles")

// CandleAggregator tries providers strictly in priority order and returns the
// first non-empty normalized sequence, sorted ascending by time. Fallback is
// sequential and short-circuiting: providers are never raced, so the venue
// backing a computation is deterministic.
type CandleAggregator struct {
	sources []domrepo.CandleSource
	logger  *applogger.Logger
}

func NewCandleAggregator(sources []domrepo.CandleSource, logger *applogger.Logger) *CandleAggregator {
	return &CandleAggregator{sources: sources, logger: logger}
}

// Fetch returns the candle sequence and the name of the provider that served it.
func (a *CandleAggregator) Fetch(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, string, error) {
	var lastErr error
	for _, src := range a.sources {
		candles, err := src.Fetch(ctx, symbol, interval, limit)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", src.Name(), err)
			metrics.ProviderAttempts.WithLabelValues(src.Name(), "error").Inc()
			if a.logger != nil {
				a.logger.Warn("provider fetch failed",
					applogger.String("provider", src.Name()),
					applogger.String("symbol", symbol),
					applogger.String("interval", string(interval)),
					applogger.Error(err),
				)
			}
			continue
		}
		if len(candles) == 0 {
			lastErr = fmt.Errorf("%s: %w", src.Name(), ErrEmptyResult)
			metrics.ProviderAttempts.WithLabelValues(src.Name(), "empty").Inc()
			if a.logger != nil {
				a.logger.Warn("provider returned no candles",
					applogger.String("provider", src.Name()),
					applogger.String("symbol", symbol),
					applogger.String("interval", string(interval)),
				)
			}
			continue
		}

		sort.SliceStable(candles, func(i, j int) bool {
			return candles[i].Time < candles[j].Time
		})
		metrics.ProviderAttempts.WithLabelValues(src.Name(), "ok").Inc()
		return candles, src.Name(), nil
	}

	metrics.ProviderExhausted.Inc()
	if lastErr != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrAllProvidersExhausted, lastErr)
	}
	return nil, "", ErrAllProvidersExhausted
}
