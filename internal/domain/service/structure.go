package service

import (
	"SmartFlow/internal/domain/models"
)

// StructureAnalyzer derives structural events, zones, and entry markers from
// one timeframe's candle sequence. Implementations must be pure: the same
// sequence always yields the same analysis.
type StructureAnalyzer interface {
	Analyze(interval string, candles []models.Candle) models.TimeframeAnalysis
}
