package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrJobNotFound      = errors.New("job not found")
	ErrChargeNotFound   = errors.New("additional charge not found")
	ErrInvalidBookingID = errors.New("invalid booking id")
	ErrInvalidChargeID  = errors.New("invalid charge id")
	ErrInvalidBatchID   = errors.New("invalid batch id")
)

// Precondition reason codes. The engine supplies the code; wording for the
// user is the transport layer's concern.
const (
	PreconditionJobTerminal       = "JOB_TERMINAL"
	PreconditionInvalidStatus     = "INVALID_STATUS"
	PreconditionPriceDecrease     = "PRICE_DECREASE"
	PreconditionChargeNotPending  = "CHARGE_NOT_PENDING"
	PreconditionNoAssignment      = "NO_SUPPLIER_ASSIGNMENT"
	PreconditionAlreadyPaidOut    = "SUPPLIER_ALREADY_PAID"
	PreconditionNotApproved       = "PAYOUT_NOT_APPROVED"
	PreconditionBadConfirmToken   = "BAD_CONFIRM_TOKEN"
	PreconditionDuplicatePayment  = "DUPLICATE_TRANSACTION"
	PreconditionAlreadyClosed     = "ALREADY_CLOSED"
	PreconditionPaymentUnverified = "PAYMENT_UNVERIFIED"
)

// ValidationError rejects malformed input before it reaches the state
// machine (negative amounts, empty ids, bad payload shapes).
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation: " + e.Reason
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// PreconditionError rejects an operation that is not legal for the job's
// current state. No partial mutation has occurred when it is returned.
type PreconditionError struct {
	Code   string
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition " + e.Code + ": " + e.Reason
}

func newPreconditionError(code, format string, args ...any) *PreconditionError {
	return &PreconditionError{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// ConflictError signals a lost concurrent-write race. The operation had no
// side effects and the caller may retry.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return "conflict: " + e.Err.Error()
}

func (e *ConflictError) Unwrap() error { return e.Err }

// IntegrityFault reports a violated reconciliation invariant found in stored
// data. It is never auto-corrected; the read that discovered it still returns
// the best-known data, flagged for human investigation.
type IntegrityFault struct {
	BookingID string
	Reason    string
}

func (e *IntegrityFault) Error() string {
	return "integrity fault on " + e.BookingID + ": " + e.Reason
}
