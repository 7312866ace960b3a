// Package provider implements CandleSource adapters for the supported
// exchanges. Each source owns its request construction (symbol and interval
// translated through a per-venue table; unknown intervals pass through
// unchanged) and its response mapping into the normalized Candle shape.
package provider

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	xhttp "SmartFlow/pkg/http"
)

// Config holds the settings shared by every provider adapter.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

func newClient(cfg Config) *xhttp.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return xhttp.NewClient(xhttp.WithTimeout(timeout))
}

// parsePrice converts a price field that may arrive as a JSON string or number.
func parsePrice(v interface{}) (float64, error) {
	switch x := v.(type) {
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, fmt.Errorf("parse price %q: %w", x, err)
		}
		return f, nil
	case float64:
		return x, nil
	default:
		return 0, fmt.Errorf("unexpected price type %T", v)
	}
}

// parseMillis converts an epoch-milliseconds field (string or number) to epoch seconds.
func parseMillis(v interface{}) (int64, error) {
	switch x := v.(type) {
	case string:
		ms, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("parse timestamp %q: %w", x, err)
		}
		return ms / 1000, nil
	case float64:
		return int64(x) / 1000, nil
	default:
		return 0, fmt.Errorf("unexpected timestamp type %T", v)
	}
}

// quoteAssets are the quote currencies recognized when splitting an
// exchange-style ticker like BTCUSDT into an instrument pair.
var quoteAssets = []string{"USDT", "USDC", "BUSD", "BTC", "ETH", "EUR", "USD"}

// splitSymbol converts "BTCUSDT" to "BTC-USDT" for venues that address
// instruments with a dashed pair. Symbols without a known quote suffix are
// returned unchanged.
func splitSymbol(symbol string) string {
	upper := strings.ToUpper(symbol)
	for _, quote := range quoteAssets {
		if strings.HasSuffix(upper, quote) && len(upper) > len(quote) {
			return upper[:len(upper)-len(quote)] + "-" + quote
		}
	}
	return upper
}
