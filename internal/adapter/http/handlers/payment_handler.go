package handlers

import (
	"log"
	"net/http"
	"strings"

	request "towdispatch/internal/adapter/http/dto/request"
	response "towdispatch/internal/adapter/http/dto/response"
	"towdispatch/internal/usecase"
	"towdispatch/internal/usecase/interfaces"
	"towdispatch/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	errProviderUnavailable   = pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider lookup failed", http.StatusBadGateway)
	errPaymentNotApproved    = pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Provider transaction is not approved", http.StatusConflict)
	errPaymentAmountMismatch = pkg.NewDomainErrorSimple("PAYMENT_AMOUNT_MISMATCH", "Provider amount does not match the charge", http.StatusConflict)
)

// PaymentHandler handles the payment-provider webhook paths and additional
// charge management. Webhook payloads only name a transaction id; the
// authoritative status and amount are fetched back from the provider before
// the engine records anything.

type PaymentHandler struct {
	lifecycle usecase.IJobLifecycleUseCase
	gateway   interfaces.IPaymentGateway
}

func NewPaymentHandler(lifecycle usecase.IJobLifecycleUseCase, gateway interfaces.IPaymentGateway) *PaymentHandler {
	return &PaymentHandler{lifecycle: lifecycle, gateway: gateway}
}

// RecordPayment settles the base booking price from a provider webhook.
// Replays with the same transaction id are no-ops returning current state.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	bookingID := c.Param("booking_id")

	var payload request.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveTransactionID() == "" {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	txn := payload.ResolveTransactionID()

	status, amountCents, _, err := h.gateway.VerifyPayment(c.Request.Context(), txn)
	if err != nil {
		log.Printf("[payment][handler] provider verify failed booking_id=%s txn=%s err=%v", bookingID, txn, err)
		c.JSON(errProviderUnavailable.HTTPStatus, errProviderUnavailable.ToHTTPError())
		return
	}
	if !strings.EqualFold(status, "approved") {
		c.JSON(errPaymentNotApproved.HTTPStatus, errPaymentNotApproved.ToHTTPError())
		return
	}

	if amountCents == 0 {
		// Mock-mode providers report no amount; fall back to the booked price.
		job, err := h.lifecycle.GetJob(c.Request.Context(), bookingID)
		if err != nil {
			appErr := mapJobError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		amountCents = job.CustomerPriceCents
	}

	job, err := h.lifecycle.RecordPayment(c.Request.Context(), bookingID, amountCents, txn)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *PaymentHandler) AddCharge(c *gin.Context) {
	var payload request.AddChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	job, err := h.lifecycle.AddAdditionalCharge(c.Request.Context(), c.Param("booking_id"), payload.AmountCents, payload.Reason, payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromJob(job))
}

// SettleCharge marks one additional charge paid from a provider webhook,
// idempotent on the transaction id.
func (h *PaymentHandler) SettleCharge(c *gin.Context) {
	bookingID := c.Param("booking_id")
	chargeID := c.Param("charge_id")

	var payload request.SettleChargeRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.ResolveTransactionID() == "" {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	txn := payload.ResolveTransactionID()

	status, amountCents, _, err := h.gateway.VerifyPayment(c.Request.Context(), txn)
	if err != nil {
		log.Printf("[payment][handler] provider verify failed booking_id=%s charge_id=%s txn=%s err=%v", bookingID, chargeID, txn, err)
		c.JSON(errProviderUnavailable.HTTPStatus, errProviderUnavailable.ToHTTPError())
		return
	}
	if !strings.EqualFold(status, "approved") {
		c.JSON(errPaymentNotApproved.HTTPStatus, errPaymentNotApproved.ToHTTPError())
		return
	}

	if amountCents != 0 {
		job, err := h.lifecycle.GetJob(c.Request.Context(), bookingID)
		if err != nil {
			appErr := mapJobError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		charge := job.FindCharge(chargeID)
		if charge == nil {
			appErr := mapJobError(usecase.ErrChargeNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if charge.AmountCents != amountCents {
			c.JSON(errPaymentAmountMismatch.HTTPStatus, errPaymentAmountMismatch.ToHTTPError())
			return
		}
	}

	job, err := h.lifecycle.SettleAdditionalCharge(c.Request.Context(), bookingID, chargeID, txn)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

func (h *PaymentHandler) CancelCharge(c *gin.Context) {
	var payload request.ActorRequest
	_ = c.ShouldBindJSON(&payload)

	job, err := h.lifecycle.CancelAdditionalCharge(c.Request.Context(), c.Param("booking_id"), c.Param("charge_id"), payload.ActorID)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}
