package request

import (
	"strings"
	"time"

	"towdispatch/internal/domain/pricing"
)

// QuoteRequest prices a prospective route. Via points cover the round trip
// supplier -> pickup -> dropoff when a supplier location is already known.
type QuoteRequest struct {
	From   LocationRequest   `json:"from" binding:"required"`
	Via    []LocationRequest `json:"via"`
	To     LocationRequest   `json:"to" binding:"required"`
	Period string            `json:"period"`
}

// ResolvePeriod falls back to classifying the current wall clock when the
// caller did not pin a fee band.
func (r QuoteRequest) ResolvePeriod(now time.Time) pricing.TimePeriod {
	if p := strings.TrimSpace(r.Period); p != "" {
		return pricing.TimePeriod(p)
	}
	return pricing.PeriodForTime(now)
}
