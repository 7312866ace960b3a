package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"SmartFlow/internal/domain/models"
	domrepo "SmartFlow/internal/domain/repository"
	domsvc "SmartFlow/internal/domain/service"
)

const (
	defaultHigherLimit = 200
	defaultLowerLimit  = 300
	maxCandleLimit     = 1000
)

// ErrSymbolRequired is returned when a request carries no symbol.
var ErrSymbolRequired = errors.New("symbol required")

// AnalysisUseCase orchestrates one request: fetch both timeframes
// concurrently, analyze each independently, then combine. Stateless across
// requests; every call recomputes from freshly fetched candles.
type AnalysisUseCase struct {
	agg         *CandleAggregator
	analyzer    domsvc.StructureAnalyzer
	higherLimit int
	lowerLimit  int
}

// NewAnalysisUseCase builds the orchestrator. higherLimit and lowerLimit are
// the per-timeframe candle counts used when a request does not set its own;
// zero or negative values fall back to the built-in defaults.
func NewAnalysisUseCase(agg *CandleAggregator, analyzer domsvc.StructureAnalyzer, higherLimit, lowerLimit int) *AnalysisUseCase {
	if higherLimit <= 0 {
		higherLimit = defaultHigherLimit
	}
	if lowerLimit <= 0 {
		lowerLimit = defaultLowerLimit
	}
	return &AnalysisUseCase{agg: agg, analyzer: analyzer, higherLimit: higherLimit, lowerLimit: lowerLimit}
}

type AnalyzeParams struct {
	Symbol         string
	HigherInterval domrepo.Interval
	LowerInterval  domrepo.Interval
	HigherLimit    int
	LowerLimit     int
}

type timeframeRun struct {
	analysis models.TimeframeAnalysis
	source   string
	err      error
}

func (uc *AnalysisUseCase) Analyze(ctx context.Context, p AnalyzeParams) (*models.AnalysisResult, error) {
	if p.Symbol == "" {
		return nil, ErrSymbolRequired
	}
	if p.HigherLimit <= 0 {
		p.HigherLimit = uc.higherLimit
	}
	if p.LowerLimit <= 0 {
		p.LowerLimit = uc.lowerLimit
	}
	if p.HigherLimit > maxCandleLimit {
		p.HigherLimit = maxCandleLimit
	}
	if p.LowerLimit > maxCandleLimit {
		p.LowerLimit = maxCandleLimit
	}

	var htf, ltf timeframeRun
	var wg sync.WaitGroup
	wg.Add(2)
	go uc.runTimeframe(ctx, &wg, p.Symbol, p.HigherInterval, p.HigherLimit, &htf)
	go uc.runTimeframe(ctx, &wg, p.Symbol, p.LowerInterval, p.LowerLimit, &ltf)
	wg.Wait()

	if htf.err != nil {
		return nil, fmt.Errorf("higher timeframe %s: %w", p.HigherInterval, htf.err)
	}
	if ltf.err != nil {
		return nil, fmt.Errorf("lower timeframe %s: %w", p.LowerInterval, ltf.err)
	}

	return &models.AnalysisResult{
		Symbol:          p.Symbol,
		HigherInterval:  string(p.HigherInterval),
		LowerInterval:   string(p.LowerInterval),
		DataSource:      dataSourceLabel(htf.source, ltf.source),
		HigherTimeframe: htf.analysis,
		LowerTimeframe:  ltf.analysis,
		Confluence:      CombineTimeframes(htf.analysis, ltf.analysis),
		GeneratedAt:     time.Now().UnixMilli(),
	}, nil
}

func (uc *AnalysisUseCase) runTimeframe(ctx context.Context, wg *sync.WaitGroup, symbol string, interval domrepo.Interval, limit int, out *timeframeRun) {
	defer wg.Done()
	candles, source, err := uc.agg.Fetch(ctx, symbol, interval, limit)
	if err != nil {
		out.err = err
		return
	}
	out.analysis = uc.analyzer.Analyze(string(interval), candles)
	out.source = source
}

// dataSourceLabel reports the HTF provider; when fallback produced different
// venues per timeframe both are named.
func dataSourceLabel(htfSource, ltfSource string) string {
	if htfSource == ltfSource {
		return htfSource
	}
	return htfSource + "," + ltfSource
}
