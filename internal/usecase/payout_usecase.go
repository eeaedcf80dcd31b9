package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	batchBuildLockKey = "payout:batch:build"
	batchBuildLockTTL = 30 * time.Second
)

// BatchEntry is one payout line: the supplier's bank snapshot, the approved
// amount and a back-reference to the job. The on-wire file encoding belongs
// to the export collaborator.
type BatchEntry struct {
	BookingID          string `json:"booking_id"`
	SupplierID         string `json:"supplier_id"`
	SupplierAccountRef string `json:"supplier_account_ref"`
	AmountCents        int64  `json:"amount_cents"`
	ReferenceText      string `json:"reference_text"`
}

// Batch is an export of every approved-but-unpaid supplier amount as of its
// build time.
type Batch struct {
	BatchID string       `json:"batch_id"`
	AsOf    time.Time    `json:"as_of"`
	Entries []BatchEntry `json:"entries"`
}

// IPayoutUseCase builds payout batches and confirms executed entries.
//
// Batch construction is read-only with respect to job records: nothing is
// marked paid until the external payment rail confirms execution and the
// operator calls MarkSupplierPaid. A failed or partial file transmission
// therefore never falsely marks suppliers as paid. Building a batch twice
// before confirmation returns entries that are still pending.
type IPayoutUseCase interface {
	BuildBatch(ctx context.Context, asOf time.Time) (Batch, error)
	MarkSupplierPaid(ctx context.Context, bookingID, batchID, actorID string) (*entities.Job, error)
}

type PayoutUseCase struct {
	repo interfaces.IJobRepository
	lock interfaces.IBatchLock
}

var _ IPayoutUseCase = (*PayoutUseCase)(nil)

func NewPayoutUseCase(repo interfaces.IJobRepository, lock interfaces.IBatchLock) *PayoutUseCase {
	return &PayoutUseCase{repo: repo, lock: lock}
}

// BuildBatch scans for approved-unpaid supplier assignments and emits a batch
// with a fresh id. Builds are serialized behind a distributed lock so a build
// sees a stable snapshot while approvals and confirmations race elsewhere.
func (u *PayoutUseCase) BuildBatch(ctx context.Context, asOf time.Time) (Batch, error) {
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	if u.lock != nil {
		ok, err := u.lock.Acquire(ctx, batchBuildLockKey, batchBuildLockTTL)
		if err != nil {
			return Batch{}, err
		}
		if !ok {
			return Batch{}, &ConflictError{Err: errors.New("another payout batch build is in flight")}
		}
		defer func() {
			if err := u.lock.Release(ctx, batchBuildLockKey); err != nil {
				log.Printf("[payout][usecase] lock release failed err=%v", err)
			}
		}()
	}

	jobs, err := u.repo.ListPayoutPending(ctx)
	if err != nil {
		return Batch{}, err
	}

	batch := Batch{
		BatchID: uuid.NewString(),
		AsOf:    asOf,
		Entries: make([]BatchEntry, 0, len(jobs)),
	}
	for _, job := range jobs {
		// Cancelled and closed jobs have frozen books; their assignments are
		// never exported for payment.
		if job.Status == entities.JobStatusCancelled || job.Status == entities.JobStatusClosed {
			continue
		}
		s := job.Supplier
		if !s.PayoutPending() {
			continue
		}
		batch.Entries = append(batch.Entries, BatchEntry{
			BookingID:          job.BookingID,
			SupplierID:         s.SupplierID,
			SupplierAccountRef: s.BankAccountRef,
			AmountCents:        *s.ApprovedAmountCents,
			ReferenceText:      fmt.Sprintf("TOW %s %s -> %s", job.BookingID, job.Pickup.Address, job.Dropoff.Address),
		})
	}

	log.Printf("[payout][usecase] batch built batch_id=%s entries=%d", batch.BatchID, len(batch.Entries))
	return batch, nil
}

// MarkSupplierPaid records that the external rail executed the payout for one
// job's supplier. The precondition check and the write share one version of
// the job, so a concurrent confirmation for the same entry loses cleanly:
// an entry is paid exactly once, never zero or twice.
func (u *PayoutUseCase) MarkSupplierPaid(ctx context.Context, bookingID, batchID, actorID string) (*entities.Job, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	batchID = strings.TrimSpace(batchID)
	if batchID == "" {
		return nil, ErrInvalidBatchID
	}

	job, err := u.repo.AtomicUpdate(ctx, bookingID, func(job *entities.Job) error {
		if err := moneyFrozen(job); err != nil {
			return err
		}
		if job.Supplier == nil {
			return newPreconditionError(PreconditionNoAssignment, "job %s has no supplier assignment", job.BookingID)
		}
		if job.Supplier.PaidAt != nil {
			return newPreconditionError(PreconditionAlreadyPaidOut, "supplier already paid in batch %s", job.Supplier.PaidBatchID)
		}
		if job.Supplier.ApprovedAmountCents == nil {
			return newPreconditionError(PreconditionNotApproved, "job %s has no approved payout amount", job.BookingID)
		}

		now := time.Now().UTC()
		job.Supplier.PaidAt = &now
		job.Supplier.PaidBatchID = batchID
		job.AppendHistory(entities.HistoryActionPayoutPaid, actorID, job.Status, job.Status, map[string]string{
			"supplier_id":  job.Supplier.SupplierID,
			"batch_id":     batchID,
			"amount_cents": fmt.Sprintf("%d", *job.Supplier.ApprovedAmountCents),
		})
		return nil
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return nil, &ConflictError{Err: fmt.Errorf("booking %s: %w", bookingID, err)}
		}
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}
