package request

import (
	"testing"
	"time"

	"towdispatch/internal/domain/pricing"
)

func TestQuoteRequest_ResolvePeriod(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)

	r := QuoteRequest{Period: " after_hours "}
	if got := r.ResolvePeriod(now); got != pricing.PeriodAfterHours {
		t.Fatalf("expected pinned period, got %q", got)
	}

	r2 := QuoteRequest{}
	if got := r2.ResolvePeriod(now); got != pricing.PeriodNight {
		t.Fatalf("expected night for 23:30, got %q", got)
	}
}
