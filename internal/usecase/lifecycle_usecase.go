package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"towdispatch/internal/domain/entities"
	"towdispatch/internal/domain/pricing"
	"towdispatch/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PurgeConfirmToken is the fixed sentinel an operator must supply to purge a
// job. Purge is administrative data deletion, not a lifecycle transition.
const PurgeConfirmToken = "PURGE-CONFIRMED"

// CreateBookingCommand is the validated draft for a new towing job. Distance
// comes from the geo collaborator at the boundary; the engine itself never
// performs lookups. ManualPriceCents substitutes the final total without
// touching the rate table; the computed quote is still recorded for audit.
type CreateBookingCommand struct {
	Pickup           entities.Location
	Dropoff          entities.Location
	Customer         entities.ContactDetails
	DistanceKm       float64
	Period           pricing.TimePeriod
	ManualPriceCents *int64
	ActorID          string
}

// IJobLifecycleUseCase is the single place job status legality is decided.
// Every operation is one atomic read-modify-write against the job store:
// either the precondition check and the mutation commit the same version of
// the job, or nothing is written.
type IJobLifecycleUseCase interface {
	CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*entities.Job, error)
	GetJob(ctx context.Context, bookingID string) (*entities.Job, error)
	RecordPayment(ctx context.Context, bookingID string, amountCents int64, providerTransactionID string) (*entities.Job, error)
	UpdateCustomerPrice(ctx context.Context, bookingID string, newPriceCents int64, actorID string) (*entities.Job, error)
	AssignSupplier(ctx context.Context, bookingID string, snapshot entities.SupplierAssignment, notify bool, actorID string) (*entities.Job, error)
	SupplierAccept(ctx context.Context, bookingID, actorID string) (*entities.Job, error)
	SupplierDecline(ctx context.Context, bookingID, reason, actorID string) (*entities.Job, error)
	AddAdditionalCharge(ctx context.Context, bookingID string, amountCents int64, reason, actorID string) (*entities.Job, error)
	SettleAdditionalCharge(ctx context.Context, bookingID, chargeID, providerTransactionID string) (*entities.Job, error)
	CancelAdditionalCharge(ctx context.Context, bookingID, chargeID, actorID string) (*entities.Job, error)
	ApproveSupplierPayment(ctx context.Context, bookingID string, approvedAmountCents int64, actorID string) (*entities.Job, error)
	CompleteJob(ctx context.Context, bookingID, actorID string) (*entities.Job, error)
	CloseJob(ctx context.Context, bookingID, actorID string) (*entities.Job, error)
	CancelJob(ctx context.Context, bookingID, reason, actorID string) (*entities.Job, error)
	Purge(ctx context.Context, bookingID, confirmToken, actorID string) error
}

type JobLifecycleUseCase struct {
	repo       interfaces.IJobRepository
	calculator *pricing.Calculator
	dispatcher interfaces.INotificationDispatcher
}

var _ IJobLifecycleUseCase = (*JobLifecycleUseCase)(nil)

func NewJobLifecycleUseCase(repo interfaces.IJobRepository, calculator *pricing.Calculator, dispatcher interfaces.INotificationDispatcher) *JobLifecycleUseCase {
	return &JobLifecycleUseCase{repo: repo, calculator: calculator, dispatcher: dispatcher}
}

func (u *JobLifecycleUseCase) CreateBooking(ctx context.Context, cmd CreateBookingCommand) (*entities.Job, error) {
	if strings.TrimSpace(cmd.Pickup.Address) == "" || strings.TrimSpace(cmd.Dropoff.Address) == "" {
		return nil, newValidationError("pickup and dropoff addresses are required")
	}
	if strings.TrimSpace(cmd.Customer.Name) == "" || strings.TrimSpace(cmd.Customer.Phone) == "" {
		return nil, newValidationError("customer name and phone are required")
	}
	if cmd.ManualPriceCents != nil && *cmd.ManualPriceCents <= 0 {
		return nil, newValidationError("manual price must be positive")
	}

	quote, err := u.calculator.Quote(cmd.DistanceKm, cmd.Period)
	if err != nil {
		return nil, newValidationError("quote failed: %v", err)
	}

	price := quote.TotalCents
	meta := map[string]string{
		"quoted_total_cents": strconv.FormatInt(quote.TotalCents, 10),
		"callout_fee_cents":  strconv.FormatInt(quote.CalloutFeeCents, 10),
		"distance_km":        strconv.FormatFloat(cmd.DistanceKm, 'f', 2, 64),
		"period":             string(cmd.Period),
	}
	if cmd.ManualPriceCents != nil {
		price = *cmd.ManualPriceCents
		meta["manual_override_cents"] = strconv.FormatInt(price, 10)
	}

	now := time.Now().UTC()
	job := &entities.Job{
		BookingID:          uuid.NewString(),
		Status:             entities.JobStatusPending,
		CustomerPriceCents: price,
		Pickup:             cmd.Pickup,
		Dropoff:            cmd.Dropoff,
		Customer:           cmd.Customer,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	job.AppendHistory(entities.HistoryActionCreated, cmd.ActorID, "", entities.JobStatusPending, meta)

	created, err := u.repo.Create(ctx, job)
	if err != nil {
		return nil, err
	}
	log.Printf("[job][usecase] booking created booking_id=%s price_cents=%d", created.BookingID, created.CustomerPriceCents)
	return created, nil
}

func (u *JobLifecycleUseCase) GetJob(ctx context.Context, bookingID string) (*entities.Job, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	job, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

func (u *JobLifecycleUseCase) RecordPayment(ctx context.Context, bookingID string, amountCents int64, providerTransactionID string) (*entities.Job, error) {
	providerTransactionID = strings.TrimSpace(providerTransactionID)
	if providerTransactionID == "" {
		return nil, newValidationError("provider transaction id is required")
	}
	if amountCents <= 0 {
		return nil, newValidationError("payment amount must be positive")
	}

	return u.update(ctx, bookingID, func(job *entities.Job) error {
		// Idempotent replay: the provider delivers webhooks at least once.
		if job.Payment != nil && job.Payment.TransactionID == providerTransactionID {
			log.Printf("[job][usecase] payment replay ignored booking_id=%s txn=%s", job.BookingID, providerTransactionID)
			return nil
		}
		if job.Status.IsTerminal() {
			return newPreconditionError(PreconditionJobTerminal, "job %s is %s", job.BookingID, job.Status)
		}
		if job.Payment != nil {
			return newPreconditionError(PreconditionDuplicatePayment, "job %s already paid with txn %s", job.BookingID, job.Payment.TransactionID)
		}
		if job.Status != entities.JobStatusPending {
			return newPreconditionError(PreconditionInvalidStatus, "cannot record payment while %s", job.Status)
		}
		if amountCents != job.CustomerPriceCents {
			return newPreconditionError(PreconditionPaymentUnverified, "paid amount %d does not match booking price %d", amountCents, job.CustomerPriceCents)
		}

		now := time.Now().UTC()
		job.Payment = &entities.PaymentRecord{
			TransactionID: providerTransactionID,
			AmountCents:   amountCents,
			RecordedAt:    now,
		}
		before := job.Status
		job.Status = entities.JobStatusBooked
		job.AppendHistory(entities.HistoryActionPaymentRecorded, "payment-provider", before, job.Status, map[string]string{
			"transaction_id": providerTransactionID,
			"amount_cents":   strconv.FormatInt(amountCents, 10),
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) UpdateCustomerPrice(ctx context.Context, bookingID string, newPriceCents int64, actorID string) (*entities.Job, error) {
	if newPriceCents <= 0 {
		return nil, newValidationError("price must be positive")
	}
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status.IsTerminal() {
			return newPreconditionError(PreconditionJobTerminal, "job %s is %s", job.BookingID, job.Status)
		}
		// The customer price is monotonic for the life of the job; a decrease
		// would strand funds already confirmed paid.
		if newPriceCents < job.CustomerPriceCents {
			return newPreconditionError(PreconditionPriceDecrease, "price %d is below current %d", newPriceCents, job.CustomerPriceCents)
		}
		old := job.CustomerPriceCents
		job.CustomerPriceCents = newPriceCents
		job.AppendHistory(entities.HistoryActionPriceUpdated, actorID, job.Status, job.Status, map[string]string{
			"old_price_cents": strconv.FormatInt(old, 10),
			"new_price_cents": strconv.FormatInt(newPriceCents, 10),
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) AssignSupplier(ctx context.Context, bookingID string, snapshot entities.SupplierAssignment, notify bool, actorID string) (*entities.Job, error) {
	if strings.TrimSpace(snapshot.SupplierID) == "" || strings.TrimSpace(snapshot.Name) == "" {
		return nil, newValidationError("supplier id and name are required")
	}
	if snapshot.SupplierPriceCents < 0 {
		return nil, newValidationError("supplier price must not be negative")
	}

	job, err := u.update(ctx, bookingID, func(job *entities.Job) error {
		switch job.Status {
		case entities.JobStatusBooked, entities.JobStatusAwaitingSupplier, entities.JobStatusAssigned:
			// Reassignment is allowed until the supplier starts the job.
		default:
			return newPreconditionError(PreconditionInvalidStatus, "cannot assign supplier while %s", job.Status)
		}

		meta := map[string]string{
			"supplier_id":          snapshot.SupplierID,
			"supplier_price_cents": strconv.FormatInt(snapshot.SupplierPriceCents, 10),
			"notified":             strconv.FormatBool(notify),
		}
		if prev := job.Supplier; prev != nil {
			// Keep the superseded snapshot so reassignment is auditable.
			job.PastSuppliers = append(job.PastSuppliers, prev.Clone())
			meta["previous_supplier_id"] = prev.SupplierID
			meta["previous_supplier_price_cents"] = strconv.FormatInt(prev.SupplierPriceCents, 10)
		}

		assignment := snapshot.Clone()
		assignment.Notified = notify
		assignment.AssignedAt = time.Now().UTC()
		assignment.AcceptedAt = nil
		assignment.DeclinedAt = nil
		assignment.DeclineReason = ""
		assignment.PaidAt = nil
		assignment.PaidBatchID = ""
		job.Supplier = &assignment

		before := job.Status
		if notify {
			job.Status = entities.JobStatusAwaitingSupplier
		} else {
			job.Status = entities.JobStatusAssigned
		}
		job.AppendHistory(entities.HistoryActionSupplierAssigned, actorID, before, job.Status, meta)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if notify {
		u.notifyAsync(interfaces.NotificationEvent{
			Type:       interfaces.NotificationSupplierAssigned,
			BookingID:  job.BookingID,
			Recipients: []string{snapshot.Phone, snapshot.Email},
			Payload: map[string]string{
				"pickup":  job.Pickup.Address,
				"dropoff": job.Dropoff.Address,
			},
		})
	}
	return job, nil
}

func (u *JobLifecycleUseCase) SupplierAccept(ctx context.Context, bookingID, actorID string) (*entities.Job, error) {
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status != entities.JobStatusAwaitingSupplier {
			return newPreconditionError(PreconditionInvalidStatus, "cannot accept while %s", job.Status)
		}
		if job.Supplier == nil {
			return newPreconditionError(PreconditionNoAssignment, "job %s has no supplier assignment", job.BookingID)
		}
		now := time.Now().UTC()
		job.Supplier.AcceptedAt = &now
		before := job.Status
		job.Status = entities.JobStatusInProgress
		job.AppendHistory(entities.HistoryActionSupplierAccepted, actorID, before, job.Status, nil)
		return nil
	})
}

// SupplierDecline reverts the job to booked so the dispatcher can reassign.
// This is the one sanctioned backward transition in the lifecycle.
func (u *JobLifecycleUseCase) SupplierDecline(ctx context.Context, bookingID, reason, actorID string) (*entities.Job, error) {
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status != entities.JobStatusAwaitingSupplier {
			return newPreconditionError(PreconditionInvalidStatus, "cannot decline while %s", job.Status)
		}
		if job.Supplier == nil {
			return newPreconditionError(PreconditionNoAssignment, "job %s has no supplier assignment", job.BookingID)
		}

		now := time.Now().UTC()
		declined := job.Supplier.Clone()
		declined.DeclinedAt = &now
		declined.DeclineReason = reason
		job.PastSuppliers = append(job.PastSuppliers, declined)
		job.Supplier = nil

		before := job.Status
		job.Status = entities.JobStatusBooked
		job.AppendHistory(entities.HistoryActionSupplierDeclined, actorID, before, job.Status, map[string]string{
			"supplier_id": declined.SupplierID,
			"reason":      reason,
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) AddAdditionalCharge(ctx context.Context, bookingID string, amountCents int64, reason, actorID string) (*entities.Job, error) {
	if amountCents <= 0 {
		return nil, newValidationError("charge amount must be positive")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, newValidationError("charge reason is required")
	}
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status.IsTerminal() {
			return newPreconditionError(PreconditionJobTerminal, "job %s is %s", job.BookingID, job.Status)
		}
		charge := entities.AdditionalCharge{
			ID:          uuid.NewString(),
			AmountCents: amountCents,
			Reason:      reason,
			Status:      entities.ChargeStatusPending,
			AddedBy:     actorID,
			AddedAt:     time.Now().UTC(),
		}
		job.Charges = append(job.Charges, charge)
		// Adding a charge never changes the job status.
		job.AppendHistory(entities.HistoryActionChargeAdded, actorID, job.Status, job.Status, map[string]string{
			"charge_id":    charge.ID,
			"amount_cents": strconv.FormatInt(amountCents, 10),
			"reason":       reason,
		})
		return nil
	})
}

// moneyFrozen guards mutations of a job's money fields. Cancellation and
// closure freeze the books; a completed job stays open for settlements and
// payout approvals until it is closed.
func moneyFrozen(job *entities.Job) error {
	switch job.Status {
	case entities.JobStatusCancelled:
		return newPreconditionError(PreconditionJobTerminal, "job %s is %s", job.BookingID, job.Status)
	case entities.JobStatusClosed:
		return newPreconditionError(PreconditionAlreadyClosed, "job %s is closed", job.BookingID)
	}
	return nil
}

func (u *JobLifecycleUseCase) SettleAdditionalCharge(ctx context.Context, bookingID, chargeID, providerTransactionID string) (*entities.Job, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return nil, ErrInvalidChargeID
	}
	providerTransactionID = strings.TrimSpace(providerTransactionID)
	if providerTransactionID == "" {
		return nil, newValidationError("provider transaction id is required")
	}
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		charge := job.FindCharge(chargeID)
		if charge == nil {
			return ErrChargeNotFound
		}
		if charge.Status == entities.ChargeStatusPaid && charge.TransactionID == providerTransactionID {
			log.Printf("[job][usecase] charge settlement replay ignored booking_id=%s charge_id=%s txn=%s", job.BookingID, chargeID, providerTransactionID)
			return nil
		}
		if err := moneyFrozen(job); err != nil {
			return err
		}
		if charge.Status != entities.ChargeStatusPending {
			return newPreconditionError(PreconditionChargeNotPending, "charge %s is %s", chargeID, charge.Status)
		}

		now := time.Now().UTC()
		charge.Status = entities.ChargeStatusPaid
		charge.TransactionID = providerTransactionID
		charge.SettledAt = &now
		job.AppendHistory(entities.HistoryActionChargeSettled, "payment-provider", job.Status, job.Status, map[string]string{
			"charge_id":      chargeID,
			"transaction_id": providerTransactionID,
			"amount_cents":   strconv.FormatInt(charge.AmountCents, 10),
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) CancelAdditionalCharge(ctx context.Context, bookingID, chargeID, actorID string) (*entities.Job, error) {
	chargeID = strings.TrimSpace(chargeID)
	if chargeID == "" {
		return nil, ErrInvalidChargeID
	}
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if err := moneyFrozen(job); err != nil {
			return err
		}
		charge := job.FindCharge(chargeID)
		if charge == nil {
			return ErrChargeNotFound
		}
		// A settled charge stays settled; only pending charges can be voided.
		if charge.Status != entities.ChargeStatusPending {
			return newPreconditionError(PreconditionChargeNotPending, "charge %s is %s", chargeID, charge.Status)
		}
		charge.Status = entities.ChargeStatusCancelled
		job.AppendHistory(entities.HistoryActionChargeCancelled, actorID, job.Status, job.Status, map[string]string{
			"charge_id": chargeID,
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) ApproveSupplierPayment(ctx context.Context, bookingID string, approvedAmountCents int64, actorID string) (*entities.Job, error) {
	if approvedAmountCents <= 0 {
		return nil, newValidationError("approved amount must be positive")
	}
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if err := moneyFrozen(job); err != nil {
			return err
		}
		if job.Supplier == nil {
			return newPreconditionError(PreconditionNoAssignment, "job %s has no supplier assignment", job.BookingID)
		}
		if job.Supplier.PaidAt != nil {
			return newPreconditionError(PreconditionAlreadyPaidOut, "supplier already paid at %s", job.Supplier.PaidAt.Format(time.RFC3339))
		}
		// Revisions up or down are allowed any number of times before payout.
		job.Supplier.ApprovedAmountCents = &approvedAmountCents
		job.AppendHistory(entities.HistoryActionPayoutApproved, actorID, job.Status, job.Status, map[string]string{
			"supplier_id":           job.Supplier.SupplierID,
			"approved_amount_cents": strconv.FormatInt(approvedAmountCents, 10),
		})
		return nil
	})
}

func (u *JobLifecycleUseCase) CompleteJob(ctx context.Context, bookingID, actorID string) (*entities.Job, error) {
	job, err := u.update(ctx, bookingID, func(job *entities.Job) error {
		switch job.Status {
		case entities.JobStatusInProgress:
		case entities.JobStatusAssigned:
			// Admin override: suppliers sometimes report completion without
			// ever flipping through in_progress. Both paths converge here.
		default:
			return newPreconditionError(PreconditionInvalidStatus, "cannot complete while %s", job.Status)
		}
		now := time.Now().UTC()
		job.CompletedAt = &now
		before := job.Status
		job.Status = entities.JobStatusCompleted
		job.AppendHistory(entities.HistoryActionCompleted, actorID, before, job.Status, nil)
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifyAsync(interfaces.NotificationEvent{
		Type:       interfaces.NotificationCustomerReceipt,
		BookingID:  job.BookingID,
		Recipients: []string{job.Customer.Email, job.Customer.Phone},
		Payload: map[string]string{
			"total_cents": strconv.FormatInt(job.CustomerPriceCents, 10),
		},
	})
	return job, nil
}

// CloseJob finalizes a completed job. One-way, exactly once; never backward.
func (u *JobLifecycleUseCase) CloseJob(ctx context.Context, bookingID, actorID string) (*entities.Job, error) {
	return u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status == entities.JobStatusClosed {
			return newPreconditionError(PreconditionAlreadyClosed, "job %s already closed", job.BookingID)
		}
		if job.Status != entities.JobStatusCompleted {
			return newPreconditionError(PreconditionInvalidStatus, "cannot close while %s", job.Status)
		}
		before := job.Status
		job.Status = entities.JobStatusClosed
		job.AppendHistory(entities.HistoryActionClosed, actorID, before, job.Status, nil)
		return nil
	})
}

func (u *JobLifecycleUseCase) CancelJob(ctx context.Context, bookingID, reason, actorID string) (*entities.Job, error) {
	job, err := u.update(ctx, bookingID, func(job *entities.Job) error {
		if job.Status.IsTerminal() {
			return newPreconditionError(PreconditionJobTerminal, "job %s is %s", job.BookingID, job.Status)
		}
		now := time.Now().UTC()
		job.CancelledAt = &now
		before := job.Status
		job.Status = entities.JobStatusCancelled
		job.AppendHistory(entities.HistoryActionCancelled, actorID, before, job.Status, map[string]string{
			"reason": reason,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	recipients := []string{job.Customer.Phone, job.Customer.Email}
	if job.Supplier != nil {
		recipients = append(recipients, job.Supplier.Phone, job.Supplier.Email)
	}
	u.notifyAsync(interfaces.NotificationEvent{
		Type:       interfaces.NotificationJobCancelled,
		BookingID:  job.BookingID,
		Recipients: recipients,
		Payload:    map[string]string{"reason": reason},
	})
	return job, nil
}

// Purge permanently removes the job and everything it owns. It bypasses the
// state machine and notifications; the audit record lands outside the job
// because the job ceases to exist.
func (u *JobLifecycleUseCase) Purge(ctx context.Context, bookingID, confirmToken, actorID string) error {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return ErrInvalidBookingID
	}
	if confirmToken != PurgeConfirmToken {
		return newPreconditionError(PreconditionBadConfirmToken, "purge requires the confirmation token")
	}

	job, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if job == nil {
		return ErrJobNotFound
	}

	record := entities.PurgeRecord{
		BookingID:  bookingID,
		ActorID:    actorID,
		PurgedAt:   time.Now().UTC(),
		LastStatus: job.Status,
	}
	if err := u.repo.Purge(ctx, bookingID, record); err != nil {
		return err
	}
	log.Printf("[job][usecase] job purged booking_id=%s actor=%s last_status=%s", bookingID, actorID, job.Status)
	return nil
}

// update wraps repo.AtomicUpdate with booking id validation and maps store
// errors onto the use-case taxonomy.
func (u *JobLifecycleUseCase) update(ctx context.Context, bookingID string, mutate func(*entities.Job) error) (*entities.Job, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	job, err := u.repo.AtomicUpdate(ctx, bookingID, mutate)
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

// notifyAsync requests an outbound message strictly after commit. Delivery is
// best effort and never blocks or rolls back a transition.
func (u *JobLifecycleUseCase) notifyAsync(event interfaces.NotificationEvent) {
	if u.dispatcher == nil {
		return
	}
	go u.dispatcher.Notify(context.Background(), event)
}
