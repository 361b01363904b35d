package config

import (
	"testing"
	"time"
)

func TestConstants(t *testing.T) {
	if MaxFieldLength != 2 {
		t.Fatalf("MaxFieldLength should be 2, got %d", MaxFieldLength)
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if ConfigFileName == "" || LogFileName == "" {
		t.Fatalf("file names should not be empty")
	}
	if FramePeriod >= IntervalPeriod {
		t.Fatalf("frame refresh should be faster than interval refresh")
	}
	if MinProgressWidth > ProgressWidth {
		t.Fatalf("MinProgressWidth must not exceed ProgressWidth")
	}
}

func TestRefreshPeriod(t *testing.T) {
	if got := RefreshPeriod(RefreshInterval); got != time.Second {
		t.Fatalf("interval period = %v", got)
	}
	if got := RefreshPeriod(RefreshFrame); got != FramePeriod {
		t.Fatalf("frame period = %v", got)
	}
	if got := RefreshPeriod("bogus"); got != time.Second {
		t.Fatalf("unknown refresh should fall back to interval, got %v", got)
	}
}
