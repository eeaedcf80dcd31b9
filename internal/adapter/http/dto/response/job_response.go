package response

import (
	"time"

	"towdispatch/internal/domain/entities"
)

type LocationResponse struct {
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type ContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type PaymentResponse struct {
	TransactionID string    `json:"transaction_id"`
	AmountCents   int64     `json:"amount_cents"`
	RecordedAt    time.Time `json:"recorded_at"`
}

type SupplierResponse struct {
	SupplierID          string     `json:"supplier_id"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone"`
	Email               string     `json:"email"`
	SupplierPriceCents  int64      `json:"supplier_price_cents"`
	ApprovedAmountCents *int64     `json:"approved_amount_cents,omitempty"`
	Notified            bool       `json:"notified"`
	AssignedAt          time.Time  `json:"assigned_at"`
	AcceptedAt          *time.Time `json:"accepted_at,omitempty"`
	DeclinedAt          *time.Time `json:"declined_at,omitempty"`
	DeclineReason       string     `json:"decline_reason,omitempty"`
	PaidAt              *time.Time `json:"paid_at,omitempty"`
	PaidBatchID         string     `json:"paid_batch_id,omitempty"`
}

type ChargeResponse struct {
	ID            string     `json:"id"`
	AmountCents   int64      `json:"amount_cents"`
	Reason        string     `json:"reason"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transaction_id,omitempty"`
	AddedBy       string     `json:"added_by"`
	AddedAt       time.Time  `json:"added_at"`
	SettledAt     *time.Time `json:"settled_at,omitempty"`
}

type HistoryResponse struct {
	Action       string            `json:"action"`
	Timestamp    time.Time         `json:"timestamp"`
	ActorID      string            `json:"actor_id"`
	BeforeStatus string            `json:"before_status"`
	AfterStatus  string            `json:"after_status"`
	Metadata     map[string]string `json:"metadata,omitempty"`
}

type JobResponse struct {
	BookingID          string            `json:"booking_id"`
	Status             string            `json:"status"`
	CustomerPriceCents int64             `json:"customer_price_cents"`
	Payment            *PaymentResponse  `json:"payment,omitempty"`
	Pickup             LocationResponse  `json:"pickup"`
	Dropoff            LocationResponse  `json:"dropoff"`
	Customer           ContactResponse   `json:"customer"`
	Supplier           *SupplierResponse `json:"supplier,omitempty"`
	Charges            []ChargeResponse  `json:"charges,omitempty"`
	History            []HistoryResponse `json:"history"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
	CompletedAt        *time.Time        `json:"completed_at,omitempty"`
	CancelledAt        *time.Time        `json:"cancelled_at,omitempty"`
}

func FromJob(j *entities.Job) JobResponse {
	resp := JobResponse{
		BookingID:          j.BookingID,
		Status:             string(j.Status),
		CustomerPriceCents: j.CustomerPriceCents,
		Pickup:             LocationResponse(j.Pickup),
		Dropoff:            LocationResponse(j.Dropoff),
		Customer:           ContactResponse(j.Customer),
		CreatedAt:          j.CreatedAt,
		UpdatedAt:          j.UpdatedAt,
		CompletedAt:        j.CompletedAt,
		CancelledAt:        j.CancelledAt,
	}
	if j.Payment != nil {
		resp.Payment = &PaymentResponse{
			TransactionID: j.Payment.TransactionID,
			AmountCents:   j.Payment.AmountCents,
			RecordedAt:    j.Payment.RecordedAt,
		}
	}
	if j.Supplier != nil {
		resp.Supplier = &SupplierResponse{
			SupplierID:          j.Supplier.SupplierID,
			Name:                j.Supplier.Name,
			Phone:               j.Supplier.Phone,
			Email:               j.Supplier.Email,
			SupplierPriceCents:  j.Supplier.SupplierPriceCents,
			ApprovedAmountCents: j.Supplier.ApprovedAmountCents,
			Notified:            j.Supplier.Notified,
			AssignedAt:          j.Supplier.AssignedAt,
			AcceptedAt:          j.Supplier.AcceptedAt,
			DeclinedAt:          j.Supplier.DeclinedAt,
			DeclineReason:       j.Supplier.DeclineReason,
			PaidAt:              j.Supplier.PaidAt,
			PaidBatchID:         j.Supplier.PaidBatchID,
		}
	}
	for _, c := range j.Charges {
		resp.Charges = append(resp.Charges, ChargeResponse{
			ID:            c.ID,
			AmountCents:   c.AmountCents,
			Reason:        c.Reason,
			Status:        string(c.Status),
			TransactionID: c.TransactionID,
			AddedBy:       c.AddedBy,
			AddedAt:       c.AddedAt,
			SettledAt:     c.SettledAt,
		})
	}
	for _, h := range j.History {
		resp.History = append(resp.History, HistoryResponse{
			Action:       h.Action,
			Timestamp:    h.Timestamp,
			ActorID:      h.ActorID,
			BeforeStatus: string(h.BeforeStatus),
			AfterStatus:  string(h.AfterStatus),
			Metadata:     h.Metadata,
		})
	}
	return resp
}
