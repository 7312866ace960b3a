package repository

// Interval is a candle resolution from the service's fixed vocabulary.
// Providers translate it to their own interval codes; unknown values pass
// through translation unchanged.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval4h  Interval = "4h"
	Interval1d  Interval = "1d"
	Interval1w  Interval = "1w"
	Interval1M  Interval = "1M"
)

// IsValidInterval returns true if iv is a supported interval.
func IsValidInterval(iv Interval) bool {
	switch iv {
	case Interval1m, Interval5m, Interval15m, Interval30m,
		Interval1h, Interval4h, Interval1d, Interval1w, Interval1M:
		return true
	default:
		return false
	}
}

// DefaultHigherInterval returns the default higher-timeframe interval.
func DefaultHigherInterval() Interval { return Interval4h }

// DefaultLowerInterval returns the default lower-timeframe interval.
func DefaultLowerInterval() Interval { return Interval15m }

// NormalizeInterval converts a raw string to a valid interval (or the given default).
func NormalizeInterval(s string, def Interval) Interval {
	if s == "" {
		return def
	}
	iv := Interval(s)
	if IsValidInterval(iv) {
		return iv
	}
	return def
}
