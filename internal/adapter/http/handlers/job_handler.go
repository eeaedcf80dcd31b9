package handlers

import (
	"errors"
	"net/http"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)

// JobHandler handles booking lifecycle requests from the admin desk and the
// customer booking wizard.

type JobHandler struct {
	lifecycle usecase.IJobLifecycleUseCase
	ledger    usecase.ILedgerUseCase
}

func NewJobHandler(lifecycle usecase.IJobLifecycleUseCase, ledger usecase.ILedgerUseCase) *JobHandler {
	return &JobHandler{lifecycle: lifecycle, ledger: ledger}
}

func (h *JobHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.CreateBooking(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.lifecycle.GetJob(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetLedger reconciles and returns the job's money view. An integrity fault
// does not fail the read: the best-known figures are returned flagged.
func (h *JobHandler) GetLedger(c *gin.Context) {
	job, err := h.lifecycle.GetJob(c.Request.Context(), c.Param("booking_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	ledger, err := h.ledger.Reconcile(job)
	fault := ""
	if err != nil {
		var integrityFault *usecase.IntegrityFault
		if !errors.As(err, &integrityFault) {
			appErr := mapJobError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		fault = integrityFault.Reason
	}
	c.JSON(http.StatusOK, response.FromLedger(job.BookingID, ledger, fault))
}

func (h *JobHandler) UpdatePrice(c *gin.Context) {
	var payload request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.UpdateCustomerPrice(c.Request.Context(), c.Param("booking_id"), payload.NewPriceCents, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) CompleteJob(c *gin.Context) {
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	job, err := h.lifecycle.CompleteJob(c.Request.Context(), c.Param("booking_id"), payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) CloseJob(c *gin.Context) {
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	job, err := h.lifecycle.CloseJob(c.Request.Context(), c.Param("booking_id"), payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *JobHandler) CancelJob(c *gin.Context) {
	var payload request.CancelJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.CancelJob(c.Request.Context(), c.Param("booking_id"), payload.Reason, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// PurgeJob permanently deletes a job. The caller must send the confirmation
// sentinel in X-Confirm-Purge; anything else is rejected before the use case
// even loads the job.
func (h *JobHandler) PurgeJob(c *gin.Context) {
	token := c.GetHeader("X-Confirm-Purge")
	actorID := c.GetHeader("X-Actor-Id")

	if err := h.lifecycle.Purge(c.Request.Context(), c.Param("booking_id"), token, actorID); err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
