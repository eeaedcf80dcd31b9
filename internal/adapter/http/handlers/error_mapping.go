package handlers

import (
	"errors"
	"net/http"

	"towdispatch/internal/usecase"
	"towdispatch/pkg"
)

// mapJobError translates the engine's error taxonomy to the HTTP boundary.
// Precondition rejections keep their reason code so clients can word the
// message themselves; conflicts are retryable by the caller.
func mapJobError(err error) *pkg.AppError {
	var validationErr *usecase.ValidationError
	var preconditionErr *usecase.PreconditionError
	var conflictErr *usecase.ConflictError
	var integrityFault *usecase.IntegrityFault

	switch {
	// Checked first: a lost write race presents as a retryable conflict no
	// matter which error it wraps.
	case errors.As(err, &conflictErr):
		return pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Concurrent update lost, retry the request", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrChargeNotFound):
		return pkg.NewDomainErrorSimple("CHARGE_NOT_FOUND", "Additional charge not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidChargeID),
		errors.Is(err, usecase.ErrInvalidBatchID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.As(err, &validationErr):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", validationErr.Reason, http.StatusBadRequest)
	case errors.As(err, &preconditionErr):
		return pkg.NewDomainErrorSimple(preconditionErr.Code, preconditionErr.Reason, http.StatusConflict)
	case errors.As(err, &integrityFault):
		return pkg.NewDomainError("INTEGRITY_FAULT", "Reconciliation invariant violated", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
