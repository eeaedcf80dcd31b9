package request

import (
	"strings"
	"time"
)

type BuildBatchRequest struct {
	AsOf *time.Time `json:"as_of"`
}

func (r BuildBatchRequest) ResolveAsOf() time.Time {
	if r.AsOf != nil {
		return r.AsOf.UTC()
	}
	return time.Now().UTC()
}

// ConfirmPayoutRequest marks one batch entry as executed by the payment rail.
type ConfirmPayoutRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
	ActorID   string `json:"actor_id"`
}

func (r ConfirmPayoutRequest) ResolveBookingID() string {
	return strings.TrimSpace(r.BookingID)
}
