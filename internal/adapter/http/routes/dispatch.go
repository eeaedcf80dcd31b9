package routes

import (
	"towdispatch/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathJobs    = "/jobs"
	PathPayouts = "/payouts"
	PathQuotes  = "/quotes"
)

func addDispatchRoutes(rg *gin.RouterGroup, jobHandler *handlers.JobHandler, paymentHandler *handlers.PaymentHandler, supplierHandler *handlers.SupplierHandler, payoutHandler *handlers.PayoutHandler, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Quote)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("", jobHandler.CreateBooking)
		jobs.GET("/:booking_id", jobHandler.GetJob)
		jobs.GET("/:booking_id/ledger", jobHandler.GetLedger)
		jobs.PATCH("/:booking_id/price", jobHandler.UpdatePrice)
		jobs.POST("/:booking_id/complete", jobHandler.CompleteJob)
		jobs.POST("/:booking_id/close", jobHandler.CloseJob)
		jobs.POST("/:booking_id/cancel", jobHandler.CancelJob)
		jobs.DELETE("/:booking_id", jobHandler.PurgeJob)

		jobs.POST("/:booking_id/payments", paymentHandler.RecordPayment)
		jobs.POST("/:booking_id/charges", paymentHandler.AddCharge)
		jobs.POST("/:booking_id/charges/:charge_id/settlements", paymentHandler.SettleCharge)
		jobs.POST("/:booking_id/charges/:charge_id/cancel", paymentHandler.CancelCharge)

		jobs.PUT("/:booking_id/supplier", supplierHandler.AssignSupplier)
		jobs.POST("/:booking_id/supplier/accept", supplierHandler.AcceptJob)
		jobs.POST("/:booking_id/supplier/decline", supplierHandler.DeclineJob)
		jobs.POST("/:booking_id/supplier/payout-approval", supplierHandler.ApprovePayout)
	}

	payouts := rg.Group(PathPayouts)
	{
		payouts.POST("", payoutHandler.BuildBatch)
		payouts.POST("/:batch_id/confirmations", payoutHandler.ConfirmPayout)
	}
}
