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

// Bybit fetches klines from the Bybit v5 market API. The payload nests rows
// under result.list as string arrays, newest first; callers must not assume
// any ordering from this source.
type Bybit struct {
	baseURL  string
	category string
	client   *xhttp.Client
}

func NewBybit(cfg Config, category string) *Bybit {
	if category == "" {
		category = "spot"
	}
	return &Bybit{baseURL: cfg.BaseURL, category: category, client: newClient(cfg)}
}

func (b *Bybit) Name() string { return "bybit" }

var bybitIntervals = map[domrepo.Interval]string{
	domrepo.Interval1m:  "1",
	domrepo.Interval5m:  "5",
	domrepo.Interval15m: "15",
	domrepo.Interval30m: "30",
	domrepo.Interval1h:  "60",
	domrepo.Interval4h:  "240",
	domrepo.Interval1d:  "D",
	domrepo.Interval1w:  "W",
	domrepo.Interval1M:  "M",
}

type bybitKlineResponse struct {
	RetCode int    `json:"retCode"`
	RetMsg  string `json:"retMsg"`
	Result  struct {
		Symbol string     `json:"symbol"`
		List   [][]string `json:"list"`
	} `json:"result"`
}

func (b *Bybit) Fetch(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, error) {
	code, ok := bybitIntervals[interval]
	if !ok {
		code = string(interval)
	}

	var raw []byte
	err := b.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    b.baseURL + "/v5/market/kline",
		QueryParams: map[string][]string{
			"category": {b.category},
			"symbol":   {symbol},
			"interval": {code},
			"limit":    {strconv.Itoa(limit)},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("bybit kline: %w", err)
	}

	var resp bybitKlineResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("bybit decode: %w", err)
	}
	if resp.RetCode != 0 {
		return nil, fmt.Errorf("bybit error %d: %s", resp.RetCode, resp.RetMsg)
	}

	candles := make([]models.Candle, 0, len(resp.Result.List))
	for _, row := range resp.Result.List {
		if len(row) < 5 {
			return nil, fmt.Errorf("bybit kline row has %d fields", len(row))
		}
		c, err := mapKlineRow(row[0], row[1], row[2], row[3], row[4])
		if err != nil {
			return nil, fmt.Errorf("bybit kline: %w", err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

var _ domrepo.CandleSource = (*Bybit)(nil)
