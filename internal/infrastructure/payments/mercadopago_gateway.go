package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidTransactionID = errors.New("invalid provider transaction id")

// MercadoPagoGateway verifies provider transactions referenced by incoming
// payment webhooks. Webhook payloads only carry the transaction id; the
// authoritative status and amount always come from this lookup.
//
// Mock mode (PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK) reports any transaction
// as approved with amount 0, meaning "no provider amount available"; the
// webhook handler then falls back to the booked amount.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) VerifyPayment(ctx context.Context, providerTransactionID string) (string, int64, json.RawMessage, error) {
	providerTransactionID = strings.TrimSpace(providerTransactionID)
	if providerTransactionID == "" {
		return "", 0, nil, ErrInvalidTransactionID
	}

	if g != nil && g.mockMode {
		log.Printf("[payment][gateway] mock verify txn=%s", providerTransactionID)
		raw, _ := json.Marshal(map[string]any{
			"id":            providerTransactionID,
			"status":        "approved",
			"status_detail": "accredited",
		})
		return "approved", 0, raw, nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", 0, nil, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(providerTransactionID)
	if err != nil {
		log.Printf("[payment][gateway] non-numeric txn=%s", providerTransactionID)
		return "", 0, nil, ErrInvalidTransactionID
	}

	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed txn=%s err=%v", providerTransactionID, err)
		return "", 0, nil, err
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return "", 0, nil, err
	}

	amountCents := int64(math.Round(resp.TransactionAmount * 100))
	log.Printf("[payment][gateway] verify success txn=%s status=%s amount_cents=%d", providerTransactionID, resp.Status, amountCents)
	return resp.Status, amountCents, raw, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
