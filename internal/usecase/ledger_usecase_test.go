package usecase

import (
	"errors"
	"testing"
	"time"

	"towdispatch/internal/domain/entities"
)

func ledgerJob() *entities.Job {
	return &entities.Job{
		BookingID:          "job-1",
		Status:             entities.JobStatusBooked,
		CustomerPriceCents: 17000,
	}
}

func TestLedgerUseCase_Reconcile(t *testing.T) {
	uc := NewLedgerUseCase()

	t.Run("unpaid booking", func(t *testing.T) {
		ledger, err := uc.Reconcile(ledgerJob())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.CustomerOwedCents != 17000 || ledger.CustomerPaidCents != 0 || ledger.OutstandingChargeCents != 17000 {
			t.Fatalf("unexpected ledger: %+v", ledger)
		}
	})

	t.Run("paid booking with mixed charges", func(t *testing.T) {
		job := ledgerJob()
		job.Payment = &entities.PaymentRecord{TransactionID: "txn-1", AmountCents: 17000, RecordedAt: time.Now().UTC()}
		job.Charges = []entities.AdditionalCharge{
			{ID: "c1", AmountCents: 4500, Status: entities.ChargeStatusPaid},
			{ID: "c2", AmountCents: 2000, Status: entities.ChargeStatusPending},
			{ID: "c3", AmountCents: 9999, Status: entities.ChargeStatusCancelled},
		}

		ledger, err := uc.Reconcile(job)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// Cancelled charges count toward nothing.
		if ledger.CustomerOwedCents != 17000+4500+2000 {
			t.Fatalf("expected owed 23500, got %d", ledger.CustomerOwedCents)
		}
		if ledger.CustomerPaidCents != 17000+4500 {
			t.Fatalf("expected paid 21500, got %d", ledger.CustomerPaidCents)
		}
		if ledger.OutstandingChargeCents != 2000 {
			t.Fatalf("expected outstanding 2000, got %d", ledger.OutstandingChargeCents)
		}
	})

	t.Run("supplier cost prefers the approved amount", func(t *testing.T) {
		approved := int64(12000)
		job := ledgerJob()
		job.Supplier = &entities.SupplierAssignment{SupplierID: "sup-7", SupplierPriceCents: 11000, ApprovedAmountCents: &approved}

		ledger, err := uc.Reconcile(job)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.SupplierCostCents != 12000 {
			t.Fatalf("expected 12000, got %d", ledger.SupplierCostCents)
		}
		if ledger.MarginCents != 17000-12000 {
			t.Fatalf("expected margin 5000, got %d", ledger.MarginCents)
		}
	})

	t.Run("supplier cost falls back to quoted price", func(t *testing.T) {
		job := ledgerJob()
		job.Supplier = &entities.SupplierAssignment{SupplierID: "sup-7", SupplierPriceCents: 11000}

		ledger, err := uc.Reconcile(job)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.SupplierCostCents != 11000 {
			t.Fatalf("expected 11000, got %d", ledger.SupplierCostCents)
		}
	})

	t.Run("price raise after payment leaves a balance", func(t *testing.T) {
		job := ledgerJob()
		job.Payment = &entities.PaymentRecord{TransactionID: "txn-1", AmountCents: 17000, RecordedAt: time.Now().UTC()}
		job.CustomerPriceCents = 19000

		ledger, err := uc.Reconcile(job)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if ledger.OutstandingChargeCents != 2000 {
			t.Fatalf("expected outstanding 2000, got %d", ledger.OutstandingChargeCents)
		}
	})

	t.Run("negative outstanding is flagged, not corrected", func(t *testing.T) {
		// Corrupt storage: the recorded payment exceeds everything owed.
		job := ledgerJob()
		job.Payment = &entities.PaymentRecord{TransactionID: "txn-1", AmountCents: 25000, RecordedAt: time.Now().UTC()}

		ledger, err := uc.Reconcile(job)
		var fault *IntegrityFault
		if !errors.As(err, &fault) {
			t.Fatalf("expected IntegrityFault, got %v", err)
		}
		if fault.BookingID != "job-1" {
			t.Fatalf("expected fault on job-1, got %s", fault.BookingID)
		}
		if ledger.OutstandingChargeCents != -8000 {
			t.Fatalf("expected outstanding -8000, got %d", ledger.OutstandingChargeCents)
		}
	})
}
