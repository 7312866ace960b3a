package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartFlow/internal/domain/models"
)

func candle(t int64, o, h, l, c float64) models.Candle {
	return models.Candle{Time: t, Open: o, High: h, Low: l, Close: c}
}

func TestDetectBreakOfStructure(t *testing.T) {
	tests := []struct {
		name    string
		candles []models.Candle
		want    *models.StructureBreak
	}{
		{
			name: "too short",
			candles: []models.Candle{
				candle(1, 10, 11, 9, 10),
				candle(2, 10, 12, 9, 11),
			},
			want: nil,
		},
		{
			name: "bullish break of prior swing high",
			candles: []models.Candle{
				candle(1, 9.5, 10, 9, 9.8),
				candle(2, 9.8, 9, 8.5, 8.8),
				candle(3, 8.8, 11, 8.7, 10.9),
			},
			want: &models.StructureBreak{Direction: models.Bullish, Time: 3, Level: 10},
		},
		{
			name: "no break when middle candle already exceeded the swing",
			candles: []models.Candle{
				candle(1, 9.5, 10, 9, 9.8),
				candle(2, 9.8, 10.5, 9.5, 10.2),
				candle(3, 10.2, 11, 10, 10.9),
			},
			want: nil,
		},
		{
			name: "bearish break of prior swing low",
			candles: []models.Candle{
				candle(1, 10, 10.5, 9, 9.5),
				candle(2, 9.5, 10.2, 9.2, 9.8),
				candle(3, 9.8, 10, 8.5, 8.7),
			},
			want: &models.StructureBreak{Direction: models.Bearish, Time: 3, Level: 9},
		},
		{
			name: "flat sequence yields nothing",
			candles: []models.Candle{
				candle(1, 10, 10, 10, 10),
				candle(2, 10, 10, 10, 10),
				candle(3, 10, 10, 10, 10),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectBreakOfStructure(tt.candles)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectCharacterChange(t *testing.T) {
	tests := []struct {
		name    string
		candles []models.Candle
		want    *models.CharacterChange
	}{
		{
			name: "too short",
			candles: []models.Candle{
				candle(1, 10, 11, 9, 10),
				candle(2, 10, 11, 9, 10),
				candle(3, 10, 11, 9, 10),
			},
			want: nil,
		},
		{
			name: "bullish after swing dips below prior low",
			candles: []models.Candle{
				candle(1, 10, 10.5, 9.5, 10),   // prev, low 9.5
				candle(2, 10, 10.4, 9.6, 10),   // skipped entirely
				candle(3, 10, 10.2, 9.0, 9.3),  // swing, dipped below 9.5
				candle(4, 9.3, 10.8, 9.2, 10.6), // last, broke swing high
			},
			want: &models.CharacterChange{Direction: models.Bullish, Time: 4},
		},
		{
			name: "bearish after swing pops above prior high",
			candles: []models.Candle{
				candle(1, 10, 10.5, 9.5, 10),
				candle(2, 10, 10.4, 9.6, 10),
				candle(3, 10, 11.0, 9.8, 10.5),
				candle(4, 10.5, 10.6, 9.4, 9.5),
			},
			want: &models.CharacterChange{Direction: models.Bearish, Time: 4},
		},
		{
			name: "swing held above prior low, no change",
			candles: []models.Candle{
				candle(1, 10, 10.5, 9.5, 10),
				candle(2, 10, 10.4, 9.6, 10),
				candle(3, 10, 10.2, 9.6, 9.8),
				candle(4, 9.8, 10.8, 9.7, 10.6),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCharacterChange(tt.candles)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectCharacterChangeIgnoresThirdFromLast(t *testing.T) {
	base := []models.Candle{
		candle(1, 10, 10.5, 9.5, 10),
		candle(2, 10, 10.4, 9.6, 10),
		candle(3, 10, 10.2, 9.0, 9.3),
		candle(4, 9.3, 10.8, 9.2, 10.6),
	}
	got := DetectCharacterChange(base)
	require.NotNil(t, got)

	// Mutating the skipped candle must not change the outcome.
	mutated := append([]models.Candle(nil), base...)
	mutated[1] = candle(2, 1, 100, 0.5, 50)
	assert.Equal(t, got, DetectCharacterChange(mutated))
}

func TestDetectLiquiditySweep(t *testing.T) {
	tests := []struct {
		name    string
		candles []models.Candle
		want    *models.LiquiditySweep
	}{
		{
			name: "too short",
			candles: []models.Candle{
				candle(1, 10, 11, 9, 10),
				candle(2, 10, 11, 9, 10),
				candle(3, 10, 12, 9, 10),
			},
			want: nil,
		},
		{
			name: "sweep high: wick above prior high, close back under",
			candles: []models.Candle{
				candle(1, 10, 10.4, 9.6, 10),
				candle(2, 10, 10.5, 9.5, 10),  // a, high 10.5
				candle(3, 10, 10.3, 9.8, 10.1), // b, close 10.1
				candle(4, 10.1, 10.9, 9.9, 10.0),
			},
			want: &models.LiquiditySweep{Direction: models.SweepHigh, Level: 10.5, Time: 4},
		},
		{
			name: "sweep low: wick below prior low, close back above",
			candles: []models.Candle{
				candle(1, 10, 10.4, 9.6, 10),
				candle(2, 10, 10.5, 9.5, 10),
				candle(3, 10, 10.2, 9.7, 9.9),
				candle(4, 9.9, 10.1, 9.2, 10.0),
			},
			want: &models.LiquiditySweep{Direction: models.SweepLow, Level: 9.5, Time: 4},
		},
		{
			name: "break that holds its close is not a sweep",
			candles: []models.Candle{
				candle(1, 10, 10.4, 9.6, 10),
				candle(2, 10, 10.5, 9.5, 10),
				candle(3, 10, 10.3, 9.8, 10.1),
				candle(4, 10.1, 10.9, 10.0, 10.8),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectLiquiditySweep(tt.candles)
			assert.Equal(t, tt.want, got)
		})
	}
}
