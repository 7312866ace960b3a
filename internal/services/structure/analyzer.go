package structure

import (
	"SmartFlow/internal/domain/models"
	domsvc "SmartFlow/internal/domain/service"
)

// Analyzer runs every detector and the marker synthesizer over one timeframe
// in a single pass. Stateless; safe for concurrent use across timeframes.
type Analyzer struct {
	zoneDepth int
}

// NewAnalyzer builds an Analyzer with the given zone scan depth (0 uses the default).
func NewAnalyzer(zoneDepth int) *Analyzer {
	if zoneDepth <= 0 {
		zoneDepth = DefaultZoneDepth
	}
	return &Analyzer{zoneDepth: zoneDepth}
}

func (a *Analyzer) Analyze(interval string, candles []models.Candle) models.TimeframeAnalysis {
	choch := DetectCharacterChange(candles)
	sweep := DetectLiquiditySweep(candles)

	return models.TimeframeAnalysis{
		Interval:      interval,
		Candles:       candles,
		BOS:           DetectBreakOfStructure(candles),
		CHOCH:         choch,
		Sweep:         sweep,
		FairValueGaps: CollectFairValueGaps(candles, a.zoneDepth),
		OrderBlocks:   CollectOrderBlocks(candles, a.zoneDepth),
		Markers:       SynthesizeMarkers(candles, choch, sweep),
	}
}

var _ domsvc.StructureAnalyzer = (*Analyzer)(nil)
