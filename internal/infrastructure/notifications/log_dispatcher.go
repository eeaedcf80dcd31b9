package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"towdispatch/internal/usecase/interfaces"
)

// LogDispatcher is the outbound-message collaborator boundary. It logs every
// notification request and, when NOTIFY_WEBHOOK_URL is set, forwards the
// event to the external messaging service as JSON. Delivery is best effort:
// failures are logged here and never reach the lifecycle engine.
type LogDispatcher struct {
	webhookURL string
	httpClient *http.Client
}

var _ interfaces.INotificationDispatcher = (*LogDispatcher)(nil)

func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{
		webhookURL: os.Getenv("NOTIFY_WEBHOOK_URL"),
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func (d *LogDispatcher) Notify(ctx context.Context, event interfaces.NotificationEvent) {
	log.Printf("[notify][dispatcher] request type=%s booking_id=%s recipients=%d", event.Type, event.BookingID, len(event.Recipients))

	if d.webhookURL == "" {
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("[notify][dispatcher] marshal failed booking_id=%s err=%v", event.BookingID, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Printf("[notify][dispatcher] request build failed booking_id=%s err=%v", event.BookingID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		log.Printf("[notify][dispatcher] delivery failed booking_id=%s err=%v", event.BookingID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[notify][dispatcher] delivery rejected booking_id=%s status=%d", event.BookingID, resp.StatusCode)
	}
}
