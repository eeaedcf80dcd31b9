package interfaces

import "context"

// Notification event types requested by the lifecycle use case.
const (
	NotificationSupplierAssigned = "supplier_assigned"
	NotificationCustomerReceipt  = "customer_receipt"
	NotificationJobCancelled     = "job_cancelled"
)

// NotificationEvent is a request (not a guarantee) for an outbound message.
type NotificationEvent struct {
	Type       string            `json:"type"`
	BookingID  string            `json:"booking_id"`
	Recipients []string          `json:"recipients"`
	Payload    map[string]string `json:"payload,omitempty"`
}

// INotificationDispatcher abstracts outbound messaging (SMS/email transport
// is the collaborator's concern). The lifecycle use case calls Notify strictly
// after a transition is committed, fire-and-forget: delivery failures are
// logged by the collaborator and never surface into the transition result.
type INotificationDispatcher interface {
	Notify(ctx context.Context, event NotificationEvent)
}
