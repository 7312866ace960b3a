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

// OKX fetches candles from the OKX v5 market API. Instruments are addressed
// as dashed pairs (BTC-USDT), hour-and-above bar codes are uppercase, and
// rows come newest first.
type OKX struct {
	baseURL string
	client  *xhttp.Client
}

func NewOKX(cfg Config) *OKX {
	return &OKX{baseURL: cfg.BaseURL, client: newClient(cfg)}
}

func (o *OKX) Name() string { return "okx" }

var okxBars = map[domrepo.Interval]string{
	domrepo.Interval1m:  "1m",
	domrepo.Interval5m:  "5m",
	domrepo.Interval15m: "15m",
	domrepo.Interval30m: "30m",
	domrepo.Interval1h:  "1H",
	domrepo.Interval4h:  "4H",
	domrepo.Interval1d:  "1D",
	domrepo.Interval1w:  "1W",
	domrepo.Interval1M:  "1M",
}

type okxCandlesResponse struct {
	Code string     `json:"code"`
	Msg  string     `json:"msg"`
	Data [][]string `json:"data"`
}

func (o *OKX) Fetch(ctx context.Context, symbol string, interval domrepo.Interval, limit int) ([]models.Candle, error) {
	bar, ok := okxBars[interval]
	if !ok {
		bar = string(interval)
	}

	var raw []byte
	err := o.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    o.baseURL + "/api/v5/market/candles",
		QueryParams: map[string][]string{
			"instId": {splitSymbol(symbol)},
			"bar":    {bar},
			"limit":  {strconv.Itoa(limit)},
		},
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("okx candles: %w", err)
	}

	var resp okxCandlesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("okx decode: %w", err)
	}
	if resp.Code != "0" {
		return nil, fmt.Errorf("okx error %s: %s", resp.Code, resp.Msg)
	}

	candles := make([]models.Candle, 0, len(resp.Data))
	for _, row := range resp.Data {
		if len(row) < 5 {
			return nil, fmt.Errorf("okx candle row has %d fields", len(row))
		}
		c, err := mapKlineRow(row[0], row[1], row[2], row[3], row[4])
		if err != nil {
			return nil, fmt.Errorf("okx candle: %w", err)
		}
		candles = append(candles, c)
	}
	return candles, nil
}

var _ domrepo.CandleSource = (*OKX)(nil)
