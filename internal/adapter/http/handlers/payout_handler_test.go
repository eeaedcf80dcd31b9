package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"towdispatch/internal/adapter/http/handlers/mocks"
	"towdispatch/internal/domain/entities"
	"towdispatch/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPayoutHandler_BuildBatch(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("built", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		uc.EXPECT().BuildBatch(gomock.Any(), gomock.Any()).Return(usecase.Batch{
			BatchID: "batch-1",
			AsOf:    time.Now().UTC(),
			Entries: []usecase.BatchEntry{{BookingID: "job-1", SupplierID: "sup-7", AmountCents: 10000}},
		}, nil)

		r := gin.New()
		r.POST("/v1/payouts", h.BuildBatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		if body := decodeError(t, w); body["batch_id"] != "batch-1" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("concurrent build maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		uc.EXPECT().BuildBatch(gomock.Any(), gomock.Any()).
			Return(usecase.Batch{}, &usecase.ConflictError{Err: errors.New("another payout batch build is in flight")})

		r := gin.New()
		r.POST("/v1/payouts", h.BuildBatch)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestPayoutHandler_ConfirmPayout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("booking id required", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPayoutHandler(mocks.NewMockIPayoutUseCase(ctrl))

		r := gin.New()
		r.POST("/v1/payouts/:batch_id/confirmations", h.ConfirmPayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/batch-1/confirmations", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("confirmed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		uc.EXPECT().MarkSupplierPaid(gomock.Any(), "job-1", "batch-1", "admin-1").Return(sampleJob(entities.JobStatusCompleted), nil)

		r := gin.New()
		r.POST("/v1/payouts/:batch_id/confirmations", h.ConfirmPayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/batch-1/confirmations", bytes.NewBufferString(`{"booking_id":"job-1","actor_id":"admin-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already paid maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPayoutUseCase(ctrl)
		h := NewPayoutHandler(uc)

		uc.EXPECT().MarkSupplierPaid(gomock.Any(), "job-1", "batch-1", "").
			Return(nil, &usecase.PreconditionError{Code: usecase.PreconditionAlreadyPaidOut, Reason: "supplier already paid in batch batch-0"})

		r := gin.New()
		r.POST("/v1/payouts/:batch_id/confirmations", h.ConfirmPayout)

		req := httptest.NewRequest(http.MethodPost, "/v1/payouts/batch-1/confirmations", bytes.NewBufferString(`{"booking_id":"job-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
