package provider

import (
	"context"
	"fmt"
	"strconv"

	json "github.com/goccy/go-json"

	"SmartFlow/internal/domain/models"
	domrepo "SmartFlow/internal/domain/repository"
	xhttp "SmartFlow/pkg/http"
)

// Binance fetches klines from the Binance spot REST API. Rows arrive as
// heterogeneous arrays: open time in epoch milliseconds followed by OHLCV as
// numeric strings.
type Binance struct {
	baseURL string
	client  *xhttp.Client
}

func NewBinance(cfg Config) *Binance {
	return &Binance{baseURL: cfg.BaseURL, client: newClient(cfg)}
}

func (b *Binance) Name() string { return "binance" }

var binanceIntervals = map[domrepo.Interval]string{
	domrepo.Interval1m:  "1m",
	domrepo.Interval5m:  "5m",
	domrepo.Interval15m: "15m",
	domrepo.Interval30m: "30m",
	domrepo.Interval1h:  "1h",
	domrepo.Interval4h:  "4h",
	domrepo.Interval1d:  "1d",
	domrepo.Interval1w:  "1w",
	domrepo.Interval1M:  "1M",
}

func (b *Binance) Fetch(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, error) {
	code, ok := binanceIntervals[interval]
	if !ok {
		code = string(interval)
	}

	var raw []byte
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    b.baseURL + "/api/v3/klines",
		QueryParams: map[string][]string{
			"symbol":   {symbol},
			"interval": {code},
			"limit":    {strconv.Itoa(limit)},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("binance klines: %w", err)
	}

	var rows [][]interface{}
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, fmt.Errorf("binance decode: %w", err)
	}

	candles := make([]models.Candle, 0, len(rows))
	for _, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("binance kline row has %d fields", len(row))
		}
		c, err := mapKlineRow(row[0], row[1], row[2], row[3], row[4])
		if err != nil {
			return nil, fmt.Errorf("binance kline: %w", err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

// mapKlineRow builds a Candle from (time, open, high, low, close) wire fields.
func mapKlineRow(t, o, h, l, c interface{}) (models.Candle, error) {
	ts, err := parseMillis(t)
	if err != nil {
		return models.Candle{}, err
	}
	open, err := parsePrice(o)
	if err != nil {
		return models.Candle{}, err
	}
	high, err := parsePrice(h)
	if err != nil {
		return models.Candle{}, err
	}
	low, err := parsePrice(l)
	if err != nil {
		return models.Candle{}, err
	}
	cls, err := parsePrice(c)
	if err != nil {
		return models.Candle{}, err
	}
	return models.Candle{Time: ts, Open: open, High: high, Low: low, Close: cls}, nil
}

var _ domrepo.CandleSource = (*Binance)(nil)
