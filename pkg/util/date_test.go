package util

import (
	"strconv"
	"testing"
	"time"
)

func TestParseTimeRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseTime(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseTimeUnix(t *testing.T) {
	ts := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC).Unix()
	got, ok := ParseTime(strconv.FormatInt(ts, 10))
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Unix() != ts {
		t.Fatalf("unexpected unix %v", got.Unix())
	}
}

func TestParseTimeDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 10, 10, 10, 0, time.UTC)
	got := ParseTimeDefault("", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestIntervalDuration(t *testing.T) {
	if d := IntervalDuration("4h"); d != 4*time.Hour {
		t.Fatalf("unexpected duration %v", d)
	}
	if d := IntervalDuration("1w"); d != 7*24*time.Hour {
		t.Fatalf("unexpected duration %v", d)
	}
	if d := IntervalDuration("bogus"); d != time.Minute {
		t.Fatalf("expected fallback, got %v", d)
	}
}

func TestAlignFromTo(t *testing.T) {
	from := time.Date(2024, 10, 10, 10, 7, 30, 0, time.UTC)
	to := time.Date(2024, 10, 10, 12, 59, 59, 0, time.UTC)
	af, at := AlignFromTo(from, to, "15m")
	if af.Minute() != 0 || at.Minute() != 45 {
		t.Fatalf("unexpected alignment %v %v", af, at)
	}
}
