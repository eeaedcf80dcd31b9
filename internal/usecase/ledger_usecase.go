package usecase

import (
	"towdispatch/internal/domain/entities"
)

// Ledger is the derived financial view of a job. All values are computed; the
// engine never persists them.
type Ledger struct {
	CustomerOwedCents      int64 `json:"customer_owed_cents"`
	CustomerPaidCents      int64 `json:"customer_paid_cents"`
	OutstandingChargeCents int64 `json:"outstanding_charge_cents"`
	SupplierCostCents      int64 `json:"supplier_cost_cents"`
	MarginCents            int64 `json:"margin_cents"`
}

// ILedgerUseCase reconciles a job's money facts.
type ILedgerUseCase interface {
	Reconcile(job *entities.Job) (Ledger, error)
}

// LedgerUseCase is a pure function of the job's persisted state: no I/O, no
// side effects, safe to call at any rate.
type LedgerUseCase struct{}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase() *LedgerUseCase {
	return &LedgerUseCase{}
}

// Reconcile computes owed/paid/outstanding/cost/margin. A negative
// outstanding balance is a data-integrity fault: the ledger is still returned
// with the best-known figures, alongside an IntegrityFault for investigation.
// It is never clamped or auto-corrected.
func (u *LedgerUseCase) Reconcile(job *entities.Job) (Ledger, error) {
	var ledger Ledger

	ledger.CustomerOwedCents = job.CustomerPriceCents
	for _, c := range job.Charges {
		if c.Status != entities.ChargeStatusCancelled {
			ledger.CustomerOwedCents += c.AmountCents
		}
		if c.Status == entities.ChargeStatusPaid {
			ledger.CustomerPaidCents += c.AmountCents
		}
	}
	if job.Payment != nil {
		// The recorded amount, not the current price: the price may have been
		// raised after the base payment landed.
		ledger.CustomerPaidCents += job.Payment.AmountCents
	}

	ledger.OutstandingChargeCents = ledger.CustomerOwedCents - ledger.CustomerPaidCents

	if s := job.Supplier; s != nil {
		if s.ApprovedAmountCents != nil {
			ledger.SupplierCostCents = *s.ApprovedAmountCents
		} else {
			ledger.SupplierCostCents = s.SupplierPriceCents
		}
	}

	// Margin may legitimately be negative; that is a business call for a
	// human, not a defect.
	ledger.MarginCents = ledger.CustomerOwedCents - ledger.SupplierCostCents

	if ledger.OutstandingChargeCents < 0 {
		return ledger, &IntegrityFault{
			BookingID: job.BookingID,
			Reason:    "collected funds exceed amount owed",
		}
	}
	return ledger, nil
}
