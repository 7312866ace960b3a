package structure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SmartFlow/internal/domain/models"
)

func TestCollectFairValueGaps(t *testing.T) {
	t.Run("bullish gap between candle highs and lows", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 4, 5, 3, 4.5),   // high 5
			candle(2, 5, 6, 4.5, 5.5), // middle, irrelevant
			candle(3, 7, 8, 7, 7.5),   // low 7 > 5
		}
		zones := CollectFairValueGaps(candles, DefaultZoneDepth)
		require.Len(t, zones, 1)
		assert.Equal(t, models.ImbalanceZone{
			Direction: models.Bullish,
			Lower:     5,
			Upper:     7,
			Time:      3,
		}, zones[0])
	})

	t.Run("bearish gap mirrors", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 8, 9, 7, 8),  // low 7
			candle(2, 7, 7.5, 6, 6.5),
			candle(3, 5, 5.5, 4, 5), // high 5.5 < 7
		}
		zones := CollectFairValueGaps(candles, DefaultZoneDepth)
		require.Len(t, zones, 1)
		assert.Equal(t, models.ImbalanceZone{
			Direction: models.Bearish,
			Lower:     5.5,
			Upper:     7,
			Time:      3,
		}, zones[0])
	})

	t.Run("touching ranges leave no gap", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 4, 5, 3, 4.5),
			candle(2, 5, 6, 4.5, 5.5),
			candle(3, 5, 6, 5, 5.5), // low equals prior high
		}
		assert.Empty(t, CollectFairValueGaps(candles, DefaultZoneDepth))
	})

	t.Run("depth bounds the scan window", func(t *testing.T) {
		// A gap at the head of a long sequence falls outside depth=3.
		candles := []models.Candle{
			candle(1, 4, 5, 3, 4.5),
			candle(2, 5, 6, 4.5, 5.5),
			candle(3, 7, 8, 7, 7.5), // gap here vs index 0
			candle(4, 7.5, 8, 5, 7.5),
			candle(5, 7.5, 8, 7, 7.5),
			candle(6, 7.5, 8, 7, 7.5),
			candle(7, 7.5, 8, 7, 7.5),
		}
		assert.Empty(t, CollectFairValueGaps(candles, 3))
		assert.Len(t, CollectFairValueGaps(candles, DefaultZoneDepth), 1)
	})

	t.Run("gaps accumulate in chronological order", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 4, 5, 3, 4.5),
			candle(2, 5, 6, 4.5, 5.5),
			candle(3, 7, 8, 7, 7.5),    // gap vs idx 0
			candle(4, 9, 10, 8.8, 9.5), // gap vs idx 1 (low 8.8 > high 6)
		}
		zones := CollectFairValueGaps(candles, DefaultZoneDepth)
		require.Len(t, zones, 2)
		assert.Less(t, zones[0].Time, zones[1].Time)
	})
}

func TestCollectOrderBlocks(t *testing.T) {
	t.Run("bearish candle engulfed by bullish close above its high", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 10, 10.5, 9.5, 10),
			candle(2, 10, 10.2, 9.4, 9.6),  // bearish body, high 10.2 low 9.4
			candle(3, 9.6, 10.8, 9.5, 10.6), // bullish, close 10.6 > 10.2
		}
		zones := CollectOrderBlocks(candles, DefaultZoneDepth)
		require.Len(t, zones, 1)
		assert.Equal(t, models.OrderBlockZone{
			Direction: models.Bullish,
			High:      10.2,
			Low:       9.4,
			Time:      2,
		}, zones[0])
	})

	t.Run("bearish order block mirrors", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 10, 10.5, 9.5, 10),
			candle(2, 10, 10.6, 9.9, 10.4), // bullish body
			candle(3, 10.4, 10.5, 9.0, 9.2), // bearish, close 9.2 < 9.9
		}
		zones := CollectOrderBlocks(candles, DefaultZoneDepth)
		require.Len(t, zones, 1)
		assert.Equal(t, models.Bearish, zones[0].Direction)
		assert.Equal(t, 10.6, zones[0].High)
		assert.Equal(t, 9.9, zones[0].Low)
	})

	t.Run("reversal two candles later does not qualify", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 10, 10.5, 9.5, 10),
			candle(2, 10, 10.2, 9.4, 9.6),   // bearish
			candle(3, 9.6, 9.8, 9.5, 9.7),   // small bullish, close below 10.2
			candle(4, 9.7, 10.9, 9.6, 10.8), // strong bullish, but not adjacent
		}
		assert.Empty(t, CollectOrderBlocks(candles, DefaultZoneDepth))
	})

	t.Run("bullish close inside the bearish range does not qualify", func(t *testing.T) {
		candles := []models.Candle{
			candle(1, 10, 10.5, 9.5, 10),
			candle(2, 10, 10.2, 9.4, 9.6),
			candle(3, 9.6, 10.1, 9.5, 10.0), // close 10.0 <= prev high 10.2
		}
		assert.Empty(t, CollectOrderBlocks(candles, DefaultZoneDepth))
	})
}
