package response

import "towdispatch/internal/usecase"

// LedgerResponse carries the reconciled money view. IntegrityFault is set
// when the figures violate an invariant; the numbers are still the best-known
// data and are deliberately not corrected server-side.
type LedgerResponse struct {
	BookingID              string `json:"booking_id"`
	CustomerOwedCents      int64  `json:"customer_owed_cents"`
	CustomerPaidCents      int64  `json:"customer_paid_cents"`
	OutstandingChargeCents int64  `json:"outstanding_charge_cents"`
	SupplierCostCents      int64  `json:"supplier_cost_cents"`
	MarginCents            int64  `json:"margin_cents"`
	IntegrityFault         string `json:"integrity_fault,omitempty"`
}

func FromLedger(bookingID string, l usecase.Ledger, fault string) LedgerResponse {
	return LedgerResponse{
		BookingID:              bookingID,
		CustomerOwedCents:      l.CustomerOwedCents,
		CustomerPaidCents:      l.CustomerPaidCents,
		OutstandingChargeCents: l.OutstandingChargeCents,
		SupplierCostCents:      l.SupplierCostCents,
		MarginCents:            l.MarginCents,
		IntegrityFault:         fault,
	}
}
