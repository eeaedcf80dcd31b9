package entities

import "time"

// History action names appended by the lifecycle use case.
const (
	HistoryActionCreated          = "created"
	HistoryActionPaymentRecorded  = "payment_recorded"
	HistoryActionPriceUpdated     = "price_updated"
	HistoryActionSupplierAssigned = "supplier_assigned"
	HistoryActionSupplierAccepted = "supplier_accepted"
	HistoryActionSupplierDeclined = "supplier_declined"
	HistoryActionChargeAdded      = "charge_added"
	HistoryActionChargeSettled    = "charge_settled"
	HistoryActionChargeCancelled  = "charge_cancelled"
	HistoryActionPayoutApproved   = "payout_approved"
	HistoryActionPayoutPaid       = "payout_paid"
	HistoryActionCompleted        = "completed"
	HistoryActionClosed           = "closed"
	HistoryActionCancelled        = "cancelled"
)

// HistoryEntry is one immutable audit record on a job. The log is the source
// used for dispute resolution and idempotency checks; entries are appended in
// the same atomic write as the mutation they describe.
type HistoryEntry struct {
	Action       string            `json:"action"`
	Timestamp    time.Time         `json:"timestamp"`
	ActorID      string            `json:"actor_id"`
	BeforeStatus JobStatus         `json:"before_status"`
	AfterStatus  JobStatus         `json:"after_status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

// Clone returns a copy with its own metadata map.
func (h HistoryEntry) Clone() HistoryEntry {
	cp := h
	if h.Metadata != nil {
		cp.Metadata = make(map[string]string, len(h.Metadata))
		for k, v := range h.Metadata {
			cp.Metadata[k] = v
		}
	}
	return cp
}

// PurgeRecord is the audit row written when a job is permanently removed.
// It lives outside the job aggregate because the job ceases to exist.
type PurgeRecord struct {
	BookingID  string    `json:"booking_id"`
	ActorID    string    `json:"actor_id"`
	PurgedAt   time.Time `json:"purged_at"`
	LastStatus JobStatus `json:"last_status"`
}
