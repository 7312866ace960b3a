package structure

import (
	"SmartFlow/internal/domain/models"
)

// DefaultZoneDepth bounds how far back the zone collectors scan.
const DefaultZoneDepth = 60

// CollectFairValueGaps scans the tail of the sequence for three-candle price
// imbalances. Gaps are appended in chronological order and are never retired
// once later price action fills them.
func CollectFairValueGaps(candles []models.Candle, depth int) []models.ImbalanceZone {
	n := len(candles)
	if depth <= 0 {
		depth = DefaultZoneDepth
	}
	start := n - depth
	if start < 2 {
		start = 2
	}

	var zones []models.ImbalanceZone
	for i := start; i < n; i++ {
		left, cur := candles[i-2], candles[i]
		if left.High < cur.Low {
			zones = append(zones, models.ImbalanceZone{
				Direction: models.Bullish,
				Lower:     left.High,
				Upper:     cur.Low,
				Time:      cur.Time,
			})
		} else if left.Low > cur.High {
			zones = append(zones, models.ImbalanceZone{
				Direction: models.Bearish,
				Lower:     cur.High,
				Upper:     left.Low,
				Time:      cur.Time,
			})
		}
	}
	return zones
}

// CollectOrderBlocks scans the same tail window for an opposite-bodied candle
// immediately followed by a candle whose close punches through its range. The
// zone is the opposite candle's high/low. Like gaps, order blocks are never
// invalidated.
func CollectOrderBlocks(candles []models.Candle, depth int) []models.OrderBlockZone {
	n := len(candles)
	if depth <= 0 {
		depth = DefaultZoneDepth
	}
	start := n - depth
	if start < 2 {
		start = 2
	}

	var zones []models.OrderBlockZone
	for i := start; i < n; i++ {
		prev, last := candles[i-1], candles[i]
		bearishPrev := prev.Close < prev.Open
		bullishPrev := prev.Close > prev.Open
		bullishLast := last.Close > last.Open
		bearishLast := last.Close < last.Open

		if bearishPrev && bullishLast && last.Close > prev.High {
			zones = append(zones, models.OrderBlockZone{
				Direction: models.Bullish,
				High:      prev.High,
				Low:       prev.Low,
				Time:      prev.Time,
			})
		} else if bullishPrev && bearishLast && last.Close < prev.Low {
			zones = append(zones, models.OrderBlockZone{
				Direction: models.Bearish,
				High:      prev.High,
				Low:       prev.Low,
				Time:      prev.Time,
			})
		}
	}
	return zones
}
