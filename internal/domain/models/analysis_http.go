package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency and reuse.

type AnalysisRequest struct {
	Symbol         string `query:"symbol" json:"symbol" validate:"required"`
	HigherInterval string `query:"htf" json:"htf" default:"4h" validate:"oneof=1m 5m 15m 30m 1h 4h 1d 1w 1M"`
	LowerInterval  string `query:"ltf" json:"ltf" default:"15m" validate:"oneof=1m 5m 15m 30m 1h 4h 1d 1w 1M"`
	// Zero means "use the configured default" so the knob in config.yaml
	// stays effective; explicit values are bounded.
	HigherLimit int `query:"htfLimit" json:"htfLimit" validate:"omitempty,gte=10,lte=1000"`
	LowerLimit  int `query:"ltfLimit" json:"ltfLimit" validate:"omitempty,gte=10,lte=1000"`
}

type BacktestRequest struct {
	Symbol   string `query:"symbol" json:"symbol" validate:"required"`
	Interval string `query:"interval" json:"interval" default:"1h" validate:"oneof=1m 5m 15m 30m 1h 4h 1d 1w 1M"`
	// RFC3339 or unix seconds; empty falls back to a recent window.
	From string `query:"from" json:"from"`
	To   string `query:"to" json:"to"`
}
