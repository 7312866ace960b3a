package usecase

import (
	"SmartFlow/internal/domain/models"
)

// CombineTimeframes derives the higher-timeframe bias and filters the
// lower-timeframe markers against the most recent higher-timeframe zones.
// Pure; an empty signal list is the common outcome.
func CombineTimeframes(htf, ltf models.TimeframeAnalysis) models.ConfluenceResult {
	result := models.ConfluenceResult{
		HigherTimeframeBias: deriveBias(htf),
		ExecutionSignals:    []models.ExecutionSignal{},
	}
	if result.HigherTimeframeBias == models.BiasNeutral || len(ltf.Candles) == 0 {
		return result
	}

	bullGap := lastGap(htf.FairValueGaps, models.Bullish)
	bearGap := lastGap(htf.FairValueGaps, models.Bearish)
	bullBlock := lastBlock(htf.OrderBlocks, models.Bullish)
	bearBlock := lastBlock(htf.OrderBlocks, models.Bearish)

	// Trigger price is the LTF close at combination time, not at marker time.
	trigger := ltf.Candles[len(ltf.Candles)-1].Close

	for _, m := range ltf.Markers {
		switch {
		case m.Side == models.MarkerBuy && result.HigherTimeframeBias == models.BiasBullish:
			if bullGap != nil && trigger >= bullGap.Lower && trigger <= bullGap.Upper {
				result.ExecutionSignals = append(result.ExecutionSignals, models.ExecutionSignal{
					Marker:       m,
					Reason:       "price inside bullish fair value gap",
					TriggerPrice: trigger,
				})
			}
			if bullBlock != nil && trigger >= bullBlock.Low && trigger <= bullBlock.High {
				result.ExecutionSignals = append(result.ExecutionSignals, models.ExecutionSignal{
					Marker:       m,
					Reason:       "price inside bullish order block",
					TriggerPrice: trigger,
				})
			}
		case m.Side == models.MarkerSell && result.HigherTimeframeBias == models.BiasBearish:
			if bearGap != nil && trigger >= bearGap.Lower && trigger <= bearGap.Upper {
				result.ExecutionSignals = append(result.ExecutionSignals, models.ExecutionSignal{
					Marker:       m,
					Reason:       "price inside bearish fair value gap",
					TriggerPrice: trigger,
				})
			}
			if bearBlock != nil && trigger >= bearBlock.Low && trigger <= bearBlock.High {
				result.ExecutionSignals = append(result.ExecutionSignals, models.ExecutionSignal{
					Marker:       m,
					Reason:       "price inside bearish order block",
					TriggerPrice: trigger,
				})
			}
		}
	}
	return result
}

// deriveBias reads the higher timeframe's CHOCH and BOS as equally
// authoritative. Bullish is evaluated first, so a bullish CHOCH outranks a
// bearish BOS when they disagree.
func deriveBias(htf models.TimeframeAnalysis) models.Bias {
	if (htf.CHOCH != nil && htf.CHOCH.Direction == models.Bullish) ||
		(htf.BOS != nil && htf.BOS.Direction == models.Bullish) {
		return models.BiasBullish
	}
	if (htf.CHOCH != nil && htf.CHOCH.Direction == models.Bearish) ||
		(htf.BOS != nil && htf.BOS.Direction == models.Bearish) {
		return models.BiasBearish
	}
	return models.BiasNeutral
}

// lastGap returns the most recently appended gap of the given direction. Zones
// are never pruned, so "most recent" means last in collection order.
func lastGap(zones []models.ImbalanceZone, dir models.Direction) *models.ImbalanceZone {
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Direction == dir {
			return &zones[i]
		}
	}
	return nil
}

func lastBlock(zones []models.OrderBlockZone, dir models.Direction) *models.OrderBlockZone {
	for i := len(zones) - 1; i >= 0; i-- {
		if zones[i].Direction == dir {
			return &zones[i]
		}
	}
	return nil
}
