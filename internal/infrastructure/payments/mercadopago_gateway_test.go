package payments

import (
	"context"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("mock mode needs no token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !g.mockMode {
			t.Fatal("expected mock mode")
		}
	})

	t.Run("missing token without mock mode", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		if _, err := NewMercadoPagoGateway(""); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})
}

func TestMercadoPagoGateway_VerifyPayment(t *testing.T) {
	t.Run("empty transaction id", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		if _, _, _, err := g.VerifyPayment(context.Background(), "   "); !errors.Is(err, ErrInvalidTransactionID) {
			t.Fatalf("expected ErrInvalidTransactionID, got %v", err)
		}
	})

	t.Run("mock mode approves with no amount", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		status, amountCents, raw, err := g.VerifyPayment(context.Background(), "txn-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status != "approved" {
			t.Fatalf("expected approved, got %s", status)
		}
		if amountCents != 0 {
			t.Fatalf("mock mode must not invent an amount, got %d", amountCents)
		}
		if len(raw) == 0 {
			t.Fatal("expected a raw provider payload")
		}
	})

	t.Run("unconfigured gateway", func(t *testing.T) {
		g := &MercadoPagoGateway{}
		if _, _, _, err := g.VerifyPayment(context.Background(), "12345"); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}
