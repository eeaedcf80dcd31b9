package handlers

import (
	"net/http"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidPayoutPayload = pkg.NewDomainErrorSimple("INVALID_PAYOUT_INPUT", "Invalid payout payload", http.StatusBadRequest)

// PayoutHandler builds supplier payout batches and confirms executed entries.
// Building never marks anything paid; confirmation is a separate call made
// only after the payment rail reports success.

type PayoutHandler struct {
	payout usecase.IPayoutUseCase
}

func NewPayoutHandler(payout usecase.IPayoutUseCase) *PayoutHandler {
	return &PayoutHandler{payout: payout}
}

func (h *PayoutHandler) BuildBatch(c *gin.Context) {
	var payload request.BuildBatchRequest
	_ = c.ShouldBindJSON(&payload)

	batch, err := h.payout.BuildBatch(c.Request.Context(), payload.ResolveAsOf())
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromBatch(batch))
}

func (h *PayoutHandler) ConfirmPayout(c *gin.Context) {
	var payload request.ConfirmPayoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveBookingID() == "" {
		c.JSON(errInvalidPayoutPayload.HTTPStatus, errInvalidPayoutPayload.ToHTTPError())
		return
	}

	job, err := h.payout.MarkSupplierPaid(c.Request.Context(), payload.ResolveBookingID(), c.Param("batch_id"), payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}
