package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the external payment provider (e.g. Mercado
// Pago). The webhook path uses it to verify a provider transaction before the
// engine records it: provider webhooks are at-least-once and their payloads
// are never trusted for amounts.
type IPaymentGateway interface {
	VerifyPayment(ctx context.Context, providerTransactionID string) (status string, amountCents int64, raw json.RawMessage, err error)
}
