// Package structure implements the smart-money pattern detectors: break of
// structure, change of character, liquidity sweeps, fair value gaps, and order
// blocks. Every function is pure over a read-only ascending candle slice, so
// the package is unit-testable without any network boundary.
package structure

import (
	"SmartFlow/internal/domain/models"
)

// DetectBreakOfStructure checks whether the latest candle broke the swing set
// three candles back while the middle candle failed to. Returns nil when
// neither side fires or the sequence is shorter than 3.
func DetectBreakOfStructure(candles []models.Candle) *models.StructureBreak {
	n := len(candles)
	if n < 3 {
		return nil
	}
	a, b, d := candles[n-3], candles[n-2], candles[n-1]

	if d.High > a.High && b.High <= a.High {
		return &models.StructureBreak{
			Direction: models.Bullish,
			Time:      d.Time,
			Level:     a.High,
		}
	}
	if d.Low < a.Low && b.Low >= a.Low {
		return &models.StructureBreak{
			Direction: models.Bearish,
			Time:      d.Time,
			Level:     a.Low,
		}
	}
	return nil
}

// DetectCharacterChange checks for a reversal signature: the swing candle two
// back dipped beyond the extreme four candles back, and the latest candle
// broke the swing the other way. The candle at n-3 plays no role.
func DetectCharacterChange(candles []models.Candle) *models.CharacterChange {
	n := len(candles)
	if n < 4 {
		return nil
	}
	prev, swing, last := candles[n-4], candles[n-2], candles[n-1]

	if last.High > swing.High && swing.Low < prev.Low {
		return &models.CharacterChange{Direction: models.Bullish, Time: last.Time}
	}
	if last.Low < swing.Low && swing.High > prev.High {
		return &models.CharacterChange{Direction: models.Bearish, Time: last.Time}
	}
	return nil
}

// DetectLiquiditySweep checks whether the latest candle poked beyond a prior
// extreme and closed back past the previous candle's close. Requires 4 candles
// to stay aligned with the character-change window even though only the last
// three are examined.
func DetectLiquiditySweep(candles []models.Candle) *models.LiquiditySweep {
	n := len(candles)
	if n < 4 {
		return nil
	}
	a, b, d := candles[n-3], candles[n-2], candles[n-1]

	if d.High > a.High && d.Close < b.Close {
		return &models.LiquiditySweep{Direction: models.SweepHigh, Level: a.High, Time: d.Time}
	}
	if d.Low < a.Low && d.Close > b.Close {
		return &models.LiquiditySweep{Direction: models.SweepLow, Level: a.Low, Time: d.Time}
	}
	return nil
}
