package repository

import (
	"context"

	"SmartFlow/internal/domain/models"
)

// CandleSource fetches candles for one symbol/interval from a single upstream
// venue and maps the venue's wire format into the normalized Candle shape.
// Implementations do not guarantee response order; the aggregator sorts.
type CandleSource interface {
	Name() string
	Fetch(ctx context.Context, symbol string, interval Interval, limit int) ([]models.Candle, error)
}
