package pricing

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"time"
)

var ErrNegativeDistance = errors.New("distance must not be negative")

// TimePeriod selects the callout fee band for a quote.

type TimePeriod string

const (
	PeriodBusinessHours TimePeriod = "business_hours"
	PeriodAfterHours    TimePeriod = "after_hours"
	PeriodNight         TimePeriod = "night"
)

// RateTable is quote configuration, not logic. It is swappable without code
// change via the PRICING_RATE_TABLE env var (JSON) and never mutated by a
// manual price override.
type RateTable struct {
	RatePerKmCents  int64                `json:"rate_per_km_cents"`
	CalloutFeeCents map[TimePeriod]int64 `json:"callout_fee_cents"`
}

// DefaultRateTable mirrors the dispatch desk's standing rates.
func DefaultRateTable() RateTable {
	return RateTable{
		RatePerKmCents: 250,
		CalloutFeeCents: map[TimePeriod]int64{
			PeriodBusinessHours: 7500,
			PeriodAfterHours:    9500,
			PeriodNight:         12500,
		},
	}
}

// RateTableFromEnv loads the rate table from PRICING_RATE_TABLE (JSON) and
// falls back to defaults when unset or malformed.
func RateTableFromEnv() RateTable {
	raw := os.Getenv("PRICING_RATE_TABLE")
	if raw == "" {
		return DefaultRateTable()
	}
	var t RateTable
	if err := json.Unmarshal([]byte(raw), &t); err != nil {
		log.Printf("[pricing] invalid PRICING_RATE_TABLE, using defaults err=%v", err)
		return DefaultRateTable()
	}
	if t.RatePerKmCents <= 0 || len(t.CalloutFeeCents) == 0 {
		log.Printf("[pricing] incomplete PRICING_RATE_TABLE, using defaults")
		return DefaultRateTable()
	}
	return t
}

// Breakdown is the itemized result of a quote.
type Breakdown struct {
	DistanceCostCents int64 `json:"distance_cost_cents"`
	CalloutFeeCents   int64 `json:"callout_fee_cents"`
	TotalCents        int64 `json:"total_cents"`
}

// Calculator turns a round-trip distance and a time-of-day period into a
// money amount. It is pure: no state beyond the table, no I/O. Distance comes
// from the caller (the geo provider adapter); the calculator never performs
// network lookups.
type Calculator struct {
	table RateTable
}

func NewCalculator(table RateTable) *Calculator {
	return &Calculator{table: table}
}

// Quote prices distanceKm for the given period. The only rejected input is a
// negative distance.
func (c *Calculator) Quote(distanceKm float64, period TimePeriod) (Breakdown, error) {
	if distanceKm < 0 {
		return Breakdown{}, ErrNegativeDistance
	}

	fee, ok := c.table.CalloutFeeCents[period]
	if !ok {
		fee = c.table.CalloutFeeCents[PeriodBusinessHours]
	}

	distanceCost := int64(math.Round(distanceKm * float64(c.table.RatePerKmCents)))
	return Breakdown{
		DistanceCostCents: distanceCost,
		CalloutFeeCents:   fee,
		TotalCents:        distanceCost + fee,
	}, nil
}

// PeriodForTime classifies a wall-clock time into a fee band:
// business hours 08-18, after hours 18-22 and 06-08, night 22-06.
func PeriodForTime(t time.Time) TimePeriod {
	h := t.Hour()
	switch {
	case h >= 8 && h < 18:
		return PeriodBusinessHours
	case h >= 18 && h < 22, h >= 6 && h < 8:
		return PeriodAfterHours
	default:
		return PeriodNight
	}
}
