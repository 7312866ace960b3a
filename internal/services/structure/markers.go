package structure

import (
	"SmartFlow/internal/domain/models"
)

// SynthesizeMarkers combines one timeframe's detector outputs into entry
// markers. A buy needs a bullish character change confirmed by a stop-run
// below; a sell is the mirror. Both conditions are evaluated independently,
// and marker time is always the latest candle regardless of when the
// underlying events occurred.
func SynthesizeMarkers(candles []models.Candle, choch *models.CharacterChange, sweep *models.LiquiditySweep) []models.Marker {
	if len(candles) == 0 || choch == nil || sweep == nil {
		return nil
	}
	now := candles[len(candles)-1].Time

	var markers []models.Marker
	if choch.Direction == models.Bullish && sweep.Direction == models.SweepLow {
		markers = append(markers, models.Marker{
			Time:     now,
			Side:     models.MarkerBuy,
			Position: "belowBar",
			Shape:    "arrowUp",
			Color:    "#26a69a",
			Text:     "CHOCH + sweep low",
		})
	}
	if choch.Direction == models.Bearish && sweep.Direction == models.SweepHigh {
		markers = append(markers, models.Marker{
			Time:     now,
			Side:     models.MarkerSell,
			Position: "aboveBar",
			Shape:    "arrowDown",
			Color:    "#ef5350",
			Text:     "CHOCH + sweep high",
		})
	}
	return markers
}
