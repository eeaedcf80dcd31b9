package entities

import "time"

// JobStatus represents the lifecycle state of a towing job.
//
// Domain notes:
//   - The dispatch-service is the source of truth for job/payment state.
//   - Every legality check routes through the lifecycle use case; callers
//     never reimplement transition rules.
//   - completed, closed and cancelled are terminal. The only sanctioned
//     moves out of a terminal-ish state are completed -> closed (one-way
//     finalization) and purge (administrative deletion, not a transition).

type JobStatus string

const (
	JobStatusPending          JobStatus = "pending"
	JobStatusBooked           JobStatus = "booked"
	JobStatusAwaitingSupplier JobStatus = "awaiting_supplier"
	JobStatusAssigned         JobStatus = "assigned"
	JobStatusInProgress       JobStatus = "in_progress"
	JobStatusCompleted        JobStatus = "completed"
	JobStatusClosed           JobStatus = "closed"
	JobStatusCancelled        JobStatus = "cancelled"
)

// IsTerminal reports whether no lifecycle transition may leave this status.
// completed still allows the one-way closed finalization, which the lifecycle
// use case permits explicitly.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusClosed, JobStatusCancelled:
		return true
	}
	return false
}

// Location is a pickup or dropoff point. Coordinates are optional; they are
// filled when the booking wizard resolved the address through geocoding.
type Location struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// ContactDetails is a party contact snapshot carried on the job.
type ContactDetails struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// PaymentRecord is the confirmed customer payment for the base booking price.
// TransactionID is the payment-provider transaction id and doubles as the
// idempotency key for webhook replays.
type PaymentRecord struct {
	TransactionID string    `json:"transaction_id"`
	AmountCents   int64     `json:"amount_cents"`
	RecordedAt    time.Time `json:"recorded_at"`
}

// Job is the aggregate root for a towing engagement.
//
// Storage model (DynamoDB):
//   - PK: booking_id
//   - the whole aggregate (charges, history, assignments) is one item so a
//     conditional write on `version` gives atomic read-modify-write.
//
// Monetary representation: integer cents throughout. CustomerPriceCents never
// decreases once a payment is recorded.
type Job struct {
	BookingID string    `json:"booking_id"`
	Status    JobStatus `json:"status"`

	CustomerPriceCents int64          `json:"customer_price_cents"`
	Payment            *PaymentRecord `json:"payment,omitempty"`

	Pickup   Location       `json:"pickup"`
	Dropoff  Location       `json:"dropoff"`
	Customer ContactDetails `json:"customer"`

	Supplier      *SupplierAssignment  `json:"supplier,omitempty"`
	PastSuppliers []SupplierAssignment `json:"past_suppliers,omitempty"`

	Charges []AdditionalCharge `json:"charges,omitempty"`
	History []HistoryEntry     `json:"history"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	// Version backs optimistic concurrency at the store boundary.
	Version int64 `json:"version"`
}

// FindCharge returns a pointer into Charges for the given charge id, or nil.
func (j *Job) FindCharge(chargeID string) *AdditionalCharge {
	for i := range j.Charges {
		if j.Charges[i].ID == chargeID {
			return &j.Charges[i]
		}
	}
	return nil
}

// AppendHistory records a transition event on the aggregate. History is
// append-only; entries are never edited or removed.
func (j *Job) AppendHistory(action, actorID string, before, after JobStatus, metadata map[string]string) {
	j.History = append(j.History, HistoryEntry{
		Action:       action,
		Timestamp:    time.Now().UTC(),
		ActorID:      actorID,
		BeforeStatus: before,
		AfterStatus:  after,
		Metadata:     metadata,
	})
}

// Clone returns a deep copy of the aggregate. Store implementations hand out
// clones so callers can never mutate persisted state outside AtomicUpdate.
func (j *Job) Clone() *Job {
	cp := *j
	if j.Payment != nil {
		p := *j.Payment
		cp.Payment = &p
	}
	if j.Supplier != nil {
		s := j.Supplier.Clone()
		cp.Supplier = &s
	}
	if j.PastSuppliers != nil {
		cp.PastSuppliers = make([]SupplierAssignment, len(j.PastSuppliers))
		for i := range j.PastSuppliers {
			cp.PastSuppliers[i] = j.PastSuppliers[i].Clone()
		}
	}
	if j.Charges != nil {
		cp.Charges = make([]AdditionalCharge, len(j.Charges))
		copy(cp.Charges, j.Charges)
	}
	if j.History != nil {
		cp.History = make([]HistoryEntry, len(j.History))
		for i := range j.History {
			cp.History[i] = j.History[i].Clone()
		}
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		cp.CompletedAt = &t
	}
	if j.CancelledAt != nil {
		t := *j.CancelledAt
		cp.CancelledAt = &t
	}
	return &cp
}
