package models

// Candle is one OHLC bar normalized from a provider response.
// Time is seconds since epoch; within a sequence times are ascending and the
// sequence is never mutated after the aggregator hands it out.
type Candle struct {
	Time  int64   `json:"time"`
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}
