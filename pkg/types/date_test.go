package types

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2025, 3, 9, 23, 59, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "2025-03-09" {
		t.Fatalf("unexpected date %q", got)
	}
}

func TestEpochMillis(t *testing.T) {
	ts := time.Date(1970, 1, 1, 0, 0, 1, 500_000_000, time.UTC)
	if got := EpochMillis(ts); got != 1500 {
		t.Fatalf("expected 1500ms, got %d", got)
	}
}
