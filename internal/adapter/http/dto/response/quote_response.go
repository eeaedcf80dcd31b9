package response

import "towdispatch/internal/domain/pricing"

type QuoteResponse struct {
	DistanceKm        float64 `json:"distance_km"`
	Period            string  `json:"period"`
	DistanceCostCents int64   `json:"distance_cost_cents"`
	CalloutFeeCents   int64   `json:"callout_fee_cents"`
	TotalCents        int64   `json:"total_cents"`
}

func FromQuote(distanceKm float64, period pricing.TimePeriod, b pricing.Breakdown) QuoteResponse {
	return QuoteResponse{
		DistanceKm:        distanceKm,
		Period:            string(period),
		DistanceCostCents: b.DistanceCostCents,
		CalloutFeeCents:   b.CalloutFeeCents,
		TotalCents:        b.TotalCents,
	}
}
