package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"towdispatch/internal/usecase/interfaces"
)

func TestLogDispatcher_Notify(t *testing.T) {
	t.Run("no webhook configured is a no-op", func(t *testing.T) {
		d := &LogDispatcher{httpClient: http.DefaultClient}
		d.Notify(context.Background(), interfaces.NotificationEvent{Type: interfaces.NotificationCustomerReceipt, BookingID: "job-1"})
	})

	t.Run("forwards the event as json", func(t *testing.T) {
		received := make(chan interfaces.NotificationEvent, 1)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var event interfaces.NotificationEvent
			if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
				t.Errorf("decode: %v", err)
			}
			received <- event
			w.WriteHeader(http.StatusAccepted)
		}))
		defer srv.Close()

		d := &LogDispatcher{webhookURL: srv.URL, httpClient: &http.Client{Timeout: time.Second}}
		d.Notify(context.Background(), interfaces.NotificationEvent{
			Type:       interfaces.NotificationSupplierAssigned,
			BookingID:  "job-1",
			Recipients: []string{"+61400000002"},
			Payload:    map[string]string{"pickup": "12 Breakdown Lane"},
		})

		select {
		case event := <-received:
			if event.Type != interfaces.NotificationSupplierAssigned || event.BookingID != "job-1" {
				t.Fatalf("unexpected event: %+v", event)
			}
		case <-time.After(time.Second):
			t.Fatal("webhook never received the event")
		}
	})

	t.Run("delivery failure never panics", func(t *testing.T) {
		d := &LogDispatcher{webhookURL: "http://127.0.0.1:1", httpClient: &http.Client{Timeout: 100 * time.Millisecond}}
		d.Notify(context.Background(), interfaces.NotificationEvent{Type: interfaces.NotificationJobCancelled, BookingID: "job-1"})
	})
}
