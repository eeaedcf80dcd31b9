package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"towdispatch/internal/adapter/persistence/repository"
	"towdispatch/internal/domain/entities"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// seedApprovedJob walks a booking through payment, assignment and payout
// approval so it is eligible for the next batch.
func seedApprovedJob(t *testing.T, uc *JobLifecycleUseCase, approvedCents int64) *entities.Job {
	t.Helper()
	job := mustCreateBooking(t, uc)
	mustRecordPayment(t, uc, job, "txn-"+job.BookingID)
	if _, err := uc.AssignSupplier(context.Background(), job.BookingID, supplierSnapshot(), false, "admin-1"); err != nil {
		t.Fatalf("assign: %v", err)
	}
	approved, err := uc.ApproveSupplierPayment(context.Background(), job.BookingID, approvedCents, "admin-1")
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	return approved
}

func TestPayoutUseCase_BuildBatch(t *testing.T) {
	t.Run("includes only approved unpaid assignments", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		approved := seedApprovedJob(t, lifecycle, 10000)

		// Assigned but never approved: not eligible.
		unapproved := mustCreateBooking(t, lifecycle)
		mustRecordPayment(t, lifecycle, unapproved, "txn-"+unapproved.BookingID)
		if _, err := lifecycle.AssignSupplier(context.Background(), unapproved.BookingID, supplierSnapshot(), false, "admin-1"); err != nil {
			t.Fatalf("assign: %v", err)
		}

		payout := NewPayoutUseCase(repo, nil)
		batch, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if batch.BatchID == "" {
			t.Fatal("expected a batch id")
		}
		if len(batch.Entries) != 1 {
			t.Fatalf("expected 1 entry, got %d", len(batch.Entries))
		}
		entry := batch.Entries[0]
		if entry.BookingID != approved.BookingID || entry.AmountCents != 10000 {
			t.Fatalf("unexpected entry: %+v", entry)
		}
		if entry.SupplierAccountRef != "BSB-123456" {
			t.Fatalf("expected bank snapshot on the entry, got %s", entry.SupplierAccountRef)
		}
	})

	t.Run("building is read-only until confirmation", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		seedApprovedJob(t, lifecycle, 10000)
		payout := NewPayoutUseCase(repo, nil)

		first, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		if err != nil {
			t.Fatalf("first build: %v", err)
		}
		second, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		if err != nil {
			t.Fatalf("second build: %v", err)
		}
		if len(first.Entries) != 1 || len(second.Entries) != 1 {
			t.Fatalf("expected the entry in both builds, got %d and %d", len(first.Entries), len(second.Entries))
		}
		if first.BatchID == second.BatchID {
			t.Fatal("expected distinct batch ids")
		}
	})

	t.Run("cancelled and closed jobs are excluded", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		live := seedApprovedJob(t, lifecycle, 10000)

		cancelled := seedApprovedJob(t, lifecycle, 9000)
		if _, err := lifecycle.CancelJob(context.Background(), cancelled.BookingID, "customer no-show", "admin-1"); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		closed := seedApprovedJob(t, lifecycle, 8000)
		if _, err := lifecycle.CompleteJob(context.Background(), closed.BookingID, "admin-1"); err != nil {
			t.Fatalf("complete: %v", err)
		}
		if _, err := lifecycle.CloseJob(context.Background(), closed.BookingID, "admin-1"); err != nil {
			t.Fatalf("close: %v", err)
		}

		payout := NewPayoutUseCase(repo, nil)
		batch, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if len(batch.Entries) != 1 || batch.Entries[0].BookingID != live.BookingID {
			t.Fatalf("expected only the live job, got %+v", batch.Entries)
		}
	})

	t.Run("lock busy returns a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIBatchLock(ctrl)
		lock.EXPECT().Acquire(gomock.Any(), "payout:batch:build", gomock.Any()).Return(false, nil)

		payout := NewPayoutUseCase(repository.NewJobMemoryRepository(), lock)
		_, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		var conflict *ConflictError
		if !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("lock is released after the build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		lock := mock_interfaces.NewMockIBatchLock(ctrl)
		lock.EXPECT().Acquire(gomock.Any(), "payout:batch:build", gomock.Any()).Return(true, nil)
		lock.EXPECT().Release(gomock.Any(), "payout:batch:build").Return(nil)

		payout := NewPayoutUseCase(repository.NewJobMemoryRepository(), lock)
		if _, err := payout.BuildBatch(context.Background(), time.Now().UTC()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPayoutUseCase_MarkSupplierPaid(t *testing.T) {
	t.Run("marks exactly once", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		job := seedApprovedJob(t, lifecycle, 10000)
		payout := NewPayoutUseCase(repo, nil)

		paid, err := payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-1", "admin-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if paid.Supplier.PaidAt == nil || paid.Supplier.PaidBatchID != "batch-1" {
			t.Fatalf("expected paid supplier, got %+v", paid.Supplier)
		}

		_, err = payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-2", "admin-1")
		if code := preconditionCode(t, err); code != PreconditionAlreadyPaidOut {
			t.Fatalf("expected %s, got %s", PreconditionAlreadyPaidOut, code)
		}
	})

	t.Run("confirmed entries drop out of the next build", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		job := seedApprovedJob(t, lifecycle, 10000)
		payout := NewPayoutUseCase(repo, nil)

		if _, err := payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-1", "admin-1"); err != nil {
			t.Fatalf("mark paid: %v", err)
		}
		batch, err := payout.BuildBatch(context.Background(), time.Now().UTC())
		if err != nil {
			t.Fatalf("build: %v", err)
		}
		if len(batch.Entries) != 0 {
			t.Fatalf("expected no entries, got %d", len(batch.Entries))
		}
	})

	t.Run("unapproved payout rejected", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		job := mustCreateBooking(t, lifecycle)
		mustRecordPayment(t, lifecycle, job, "txn-1")
		if _, err := lifecycle.AssignSupplier(context.Background(), job.BookingID, supplierSnapshot(), false, "admin-1"); err != nil {
			t.Fatalf("assign: %v", err)
		}

		payout := NewPayoutUseCase(repo, nil)
		_, err := payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-1", "admin-1")
		if code := preconditionCode(t, err); code != PreconditionNotApproved {
			t.Fatalf("expected %s, got %s", PreconditionNotApproved, code)
		}
	})

	t.Run("cancelled job rejected", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		job := seedApprovedJob(t, lifecycle, 10000)
		if _, err := lifecycle.CancelJob(context.Background(), job.BookingID, "customer no-show", "admin-1"); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		payout := NewPayoutUseCase(repo, nil)
		_, err := payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-1", "admin-1")
		if code := preconditionCode(t, err); code != PreconditionJobTerminal {
			t.Fatalf("expected %s, got %s", PreconditionJobTerminal, code)
		}
	})

	t.Run("no supplier assignment rejected", func(t *testing.T) {
		lifecycle, repo := newLifecycleFixture()
		job := mustCreateBooking(t, lifecycle)

		payout := NewPayoutUseCase(repo, nil)
		_, err := payout.MarkSupplierPaid(context.Background(), job.BookingID, "batch-1", "admin-1")
		if code := preconditionCode(t, err); code != PreconditionNoAssignment {
			t.Fatalf("expected %s, got %s", PreconditionNoAssignment, code)
		}
	})

	t.Run("invalid ids", func(t *testing.T) {
		payout := NewPayoutUseCase(repository.NewJobMemoryRepository(), nil)
		if _, err := payout.MarkSupplierPaid(context.Background(), " ", "batch-1", "admin-1"); !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
		if _, err := payout.MarkSupplierPaid(context.Background(), "job-1", "  ", "admin-1"); !errors.Is(err, ErrInvalidBatchID) {
			t.Fatalf("expected ErrInvalidBatchID, got %v", err)
		}
	})
}
