package handlers

import (
	"net/http"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSupplierPayload = pkg.NewDomainErrorSimple("INVALID_SUPPLIER_INPUT", "Invalid supplier payload", http.StatusBadRequest)

// SupplierHandler handles supplier assignment and payout approval from the
// admin desk plus accept/decline from the supplier portal.

type SupplierHandler struct {
	lifecycle usecase.IJobLifecycleUseCase
}

func NewSupplierHandler(lifecycle usecase.IJobLifecycleUseCase) *SupplierHandler {
	return &SupplierHandler{lifecycle: lifecycle}
}

func (h *SupplierHandler) AssignSupplier(c *gin.Context) {
	var payload request.AssignSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.AssignSupplier(c.Request.Context(), c.Param("booking_id"), payload.ToSnapshot(), payload.Notify, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *SupplierHandler) AcceptJob(c *gin.Context) {
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	job, err := h.lifecycle.SupplierAccept(c.Request.Context(), c.Param("booking_id"), payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *SupplierHandler) DeclineJob(c *gin.Context) {
	var payload request.DeclineSupplierRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.SupplierDecline(c.Request.Context(), c.Param("booking_id"), payload.Reason, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *SupplierHandler) ApprovePayout(c *gin.Context) {
	var payload request.ApprovePayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSupplierPayload.HTTPStatus, errInvalidSupplierPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.ApproveSupplierPayment(c.Request.Context(), c.Param("booking_id"), payload.ApprovedAmountCents, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}
