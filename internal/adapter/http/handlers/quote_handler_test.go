package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"towdispatch/internal/domain/pricing"
	mock_interfaces "towdispatch/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_Quote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	calculator := pricing.NewCalculator(pricing.DefaultRateTable())

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewQuoteHandler(mock_interfaces.NewMockIGeoDistanceProvider(ctrl), calculator)

		r := gin.New()
		r.POST("/v1/quotes", h.Quote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("distance lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		geo := mock_interfaces.NewMockIGeoDistanceProvider(ctrl)
		h := NewQuoteHandler(geo, calculator)

		geo.EXPECT().DistanceKm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(0.0, errors.New("routing down"))

		r := gin.New()
		r.POST("/v1/quotes", h.Quote)

		payload := `{"from":{"address":"12 Breakdown Lane"},"to":{"address":"Central Workshop"}}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("quoted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		geo := mock_interfaces.NewMockIGeoDistanceProvider(ctrl)
		h := NewQuoteHandler(geo, calculator)

		geo.EXPECT().DistanceKm(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(38.0, nil)

		r := gin.New()
		r.POST("/v1/quotes", h.Quote)

		payload := `{"from":{"address":"12 Breakdown Lane"},"to":{"address":"Central Workshop"},"period":"business_hours"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeError(t, w)
		if body["total_cents"] != float64(17000) {
			t.Fatalf("expected total 17000, got %v", body)
		}
		if body["period"] != "business_hours" {
			t.Fatalf("expected pinned period, got %v", body)
		}
	})
}
