package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	AnalysisLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "smartflow",
			Subsystem: "analysis",
			Name:      "latency_seconds",
			Help:      "Latency of analysis endpoints",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	AnalysisErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartflow",
			Subsystem: "analysis",
			Name:      "errors_total",
			Help:      "Errors by analysis endpoint",
		},
		[]string{"endpoint"},
	)

	ProviderAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "smartflow",
			Subsystem: "provider",
			Name:      "attempts_total",
			Help:      "Candle fetch attempts by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	ProviderExhausted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "smartflow",
			Subsystem: "provider",
			Name:      "exhausted_total",
			Help:      "Fetches where every provider failed",
		},
	)
)

func Register() {
	once.Do(func() {
		prometheus.MustRegister(AnalysisLatency, AnalysisErrors, ProviderAttempts, ProviderExhausted)
	})
}
