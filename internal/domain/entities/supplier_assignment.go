package entities

import "time"

// SupplierAssignment pairs a job with a tow operator.
//
// The supplier contact and bank details are snapshotted at assignment time so
// historical jobs are not retroactively altered when the supplier master
// record changes. Reassignment supersedes (never deletes) the previous
// assignment; the superseded snapshot moves to Job.PastSuppliers.
type SupplierAssignment struct {
	SupplierID     string `json:"supplier_id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	BankAccountRef string `json:"bank_account_ref"`

	SupplierPriceCents  int64  `json:"supplier_price_cents"`
	ApprovedAmountCents *int64 `json:"approved_amount_cents,omitempty"`

	Notified      bool       `json:"notified"`
	AssignedAt    time.Time  `json:"assigned_at"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	DeclinedAt    *time.Time `json:"declined_at,omitempty"`
	DeclineReason string     `json:"decline_reason,omitempty"`

	// PaidAt and PaidBatchID are set only by the payout confirmation step,
	// never by batch construction.
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	PaidBatchID string     `json:"paid_batch_id,omitempty"`
}

// PayoutPending reports whether this assignment is approved for payout and
// not yet marked paid.
func (a *SupplierAssignment) PayoutPending() bool {
	return a != nil && a.ApprovedAmountCents != nil && a.PaidAt == nil
}

// Clone returns a deep copy of the assignment.
func (a SupplierAssignment) Clone() SupplierAssignment {
	cp := a
	if a.ApprovedAmountCents != nil {
		v := *a.ApprovedAmountCents
		cp.ApprovedAmountCents = &v
	}
	if a.AcceptedAt != nil {
		t := *a.AcceptedAt
		cp.AcceptedAt = &t
	}
	if a.DeclinedAt != nil {
		t := *a.DeclinedAt
		cp.DeclinedAt = &t
	}
	if a.PaidAt != nil {
		t := *a.PaidAt
		cp.PaidAt = &t
	}
	return cp
}
