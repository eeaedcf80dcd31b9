package entities

import "time"

// ChargeStatus represents the settlement state of an additional charge.

type ChargeStatus string

const (
	ChargeStatusPending   ChargeStatus = "pending"
	ChargeStatusPaid      ChargeStatus = "paid"
	ChargeStatusCancelled ChargeStatus = "cancelled"
)

// AdditionalCharge is a supplementary amount billed to the customer after the
// initial booking (winching, after-hours surcharge, extra distance, ...).
//
// Lifecycle: created pending; pending -> paid on confirmed provider
// settlement; pending -> cancelled. A paid charge is never cancelled.
// TransactionID is the provider transaction id used for idempotent replay
// of settlement webhooks.
type AdditionalCharge struct {
	ID            string       `json:"id"`
	AmountCents   int64        `json:"amount_cents"`
	Reason        string       `json:"reason"`
	Status        ChargeStatus `json:"status"`
	TransactionID string       `json:"transaction_id,omitempty"`
	AddedBy       string       `json:"added_by"`
	AddedAt       time.Time    `json:"added_at"`
	SettledAt     *time.Time   `json:"settled_at,omitempty"`
}
