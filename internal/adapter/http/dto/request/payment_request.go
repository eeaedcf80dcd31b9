package request

import "strings"

// PaymentWebhookRequest is the payload of the payment provider webhook. Only
// the transaction id is trusted; status and amount are re-verified against
// the provider before anything is recorded.
type PaymentWebhookRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (r PaymentWebhookRequest) ResolveTransactionID() string {
	return strings.TrimSpace(r.TransactionID)
}

type AddChargeRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Reason      string `json:"reason" binding:"required"`
	ActorID     string `json:"actor_id"`
}

type SettleChargeRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
}

func (r SettleChargeRequest) ResolveTransactionID() string {
	return strings.TrimSpace(r.TransactionID)
}
