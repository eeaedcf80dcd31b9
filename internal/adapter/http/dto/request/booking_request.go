package request

import (
	"strings"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/domain/pricing"
	"towdispatch/internal/usecase"
)

type LocationRequest struct {
	Address string   `json:"address" binding:"required"`
	Lat     *float64 `json:"lat"`
	Lng     *float64 `json:"lng"`
}

func (r LocationRequest) ToLocation() entities.Location {
	return entities.Location{
		Address: strings.TrimSpace(r.Address),
		Lat:     r.Lat,
		Lng:     r.Lng,
	}
}

type ContactRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email"`
}

// CreateBookingRequest is the booking draft accepted from the booking wizard.
// The wizard resolves the route distance through the quote endpoint first and
// sends it along, so booking creation itself stays free of network lookups.
type CreateBookingRequest struct {
	Pickup           LocationRequest `json:"pickup" binding:"required"`
	Dropoff          LocationRequest `json:"dropoff" binding:"required"`
	Customer         ContactRequest  `json:"customer" binding:"required"`
	DistanceKm       float64         `json:"distance_km"`
	Period           string          `json:"period"`
	ManualPriceCents *int64          `json:"manual_price_cents"`
	ActorID          string          `json:"actor_id"`
}

func (r CreateBookingRequest) ToCommand() usecase.CreateBookingCommand {
	period := pricing.TimePeriod(strings.TrimSpace(r.Period))
	if period == "" {
		period = pricing.PeriodBusinessHours
	}
	return usecase.CreateBookingCommand{
		Pickup:  r.Pickup.ToLocation(),
		Dropoff: r.Dropoff.ToLocation(),
		Customer: entities.ContactDetails{
			Name:  strings.TrimSpace(r.Customer.Name),
			Phone: strings.TrimSpace(r.Customer.Phone),
			Email: strings.TrimSpace(r.Customer.Email),
		},
		DistanceKm:       r.DistanceKm,
		Period:           period,
		ManualPriceCents: r.ManualPriceCents,
		ActorID:          actorOrDefault(r.ActorID),
	}
}

type UpdatePriceRequest struct {
	NewPriceCents int64  `json:"new_price_cents" binding:"required"`
	ActorID       string `json:"actor_id"`
}

type CancelJobRequest struct {
	Reason  string `json:"reason" binding:"required"`
	ActorID string `json:"actor_id"`
}

// ActorRequest covers operations whose only payload is who did it.
type ActorRequest struct {
	ActorID string `json:"actor_id"`
}

func actorOrDefault(actorID string) string {
	actorID = strings.TrimSpace(actorID)
	if actorID == "" {
		return "system"
	}
	return actorID
}
