//go:build wireinject
// +build wireinject

package di

import (
	"SmartFlow/pkg/config"
	"SmartFlow/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,

		// Candle acquisition
		ProvideCandleSources,
		ProvideCandleAggregator,

		// Analysis pipeline
		ProvideStructureAnalyzer,
		ProvideAnalysisUseCase,

		// HTTP boundary
		ProvideHandler,
		ProvideApp,
	)
	return &server.App{}, nil
}
