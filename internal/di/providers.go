package di

import (
	"fmt"

	"SmartFlow/internal/domain/repository"
	"SmartFlow/internal/handler/api"
	icache "SmartFlow/internal/service/cache"
	"SmartFlow/internal/service/provider"
	"SmartFlow/internal/services/structure"
	"SmartFlow/internal/usecase"
	"SmartFlow/pkg/config"
	xhttp "SmartFlow/pkg/http"
	applogger "SmartFlow/pkg/logger"
	"SmartFlow/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	lc := &applogger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	}
	if lc.Level == "" {
		lc.Level = "info"
	}
	if lc.Format == "" {
		lc.Format = "console"
	}
	if lc.Output == "" {
		lc.Output = "stdout"
	}
	l, err := applogger.New(lc)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideCandleSources builds the priority-ordered provider list from config.
// Order in the slice is the failover order.
func ProvideCandleSources(cfg *config.Config) ([]repository.CandleSource, error) {
	sources := make([]repository.CandleSource, 0, len(cfg.Providers.Order))
	for _, name := range cfg.Providers.Order {
		switch name {
		case "binance":
			sources = append(sources, provider.NewBinance(provider.Config{
				BaseURL: cfg.Providers.Binance.BaseURL,
				Timeout: cfg.Providers.Timeout,
			}))
		case "bybit":
			sources = append(sources, provider.NewBybit(provider.Config{
				BaseURL: cfg.Providers.Bybit.BaseURL,
				Timeout: cfg.Providers.Timeout,
			}, cfg.Providers.Bybit.Category))
		case "okx":
			sources = append(sources, provider.NewOKX(provider.Config{
				BaseURL: cfg.Providers.OKX.BaseURL,
				Timeout: cfg.Providers.Timeout,
			}))
		default:
			return nil, fmt.Errorf("unknown provider '%s'", name)
		}
	}
	return sources, nil
}

// ProvideCandleAggregator creates the failover aggregator.
func ProvideCandleAggregator(sources []repository.CandleSource, logger *applogger.Logger) *usecase.CandleAggregator {
	return usecase.NewCandleAggregator(sources, logger)
}

// ProvideStructureAnalyzer creates the detector pipeline.
func ProvideStructureAnalyzer(cfg *config.Config) *structure.Analyzer {
	return structure.NewAnalyzer(cfg.Analysis.ZoneDepth)
}

// ProvideAnalysisUseCase creates the per-request orchestrator with the
// configured per-timeframe default limits.
func ProvideAnalysisUseCase(cfg *config.Config, agg *usecase.CandleAggregator, analyzer *structure.Analyzer) *usecase.AnalysisUseCase {
	return usecase.NewAnalysisUseCase(agg, analyzer, cfg.Analysis.HigherLimit, cfg.Analysis.LowerLimit)
}

// ProvideHandler creates the Echo handler, with the optional response cache.
func ProvideHandler(cfg *config.Config, logger *applogger.Logger, uc *usecase.AnalysisUseCase) xhttp.Handler {
	h := api.NewAnalysisEchoHandler(logger, uc)
	if cfg.Cache.Enabled {
		var c icache.BytesCache
		if cfg.Cache.Redis.Enabled {
			c = icache.NewRedisCache(icache.RedisConfig{
				Addr:     cfg.Cache.Redis.Addr,
				Password: cfg.Cache.Redis.Password,
				DB:       cfg.Cache.Redis.DB,
			})
		} else {
			c = icache.NewTTLCache()
		}
		h.SetCache(c, cfg.Cache.TTL)
	}
	return h
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, logger *applogger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, logger, handler)
}
