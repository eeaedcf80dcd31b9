package repository

import (
	"strconv"
	"time"

	"towdispatch/internal/domain/entities"
)

// Item shapes persisted in DynamoDB. Timestamps are stored as RFC3339Nano
// strings; optional values as pointers so absent attributes stay absent
// (ListPayoutPending filters on attribute existence).

type locationItem struct {
	Address string   `dynamodbav:"address"`
	Lat     *float64 `dynamodbav:"lat,omitempty"`
	Lng     *float64 `dynamodbav:"lng,omitempty"`
}

type contactItem struct {
	Name  string `dynamodbav:"name"`
	Phone string `dynamodbav:"phone"`
	Email string `dynamodbav:"email"`
}

type paymentItem struct {
	TransactionID string `dynamodbav:"transaction_id"`
	AmountCents   int64  `dynamodbav:"amount_cents"`
	RecordedAt    string `dynamodbav:"recorded_at"`
}

type assignmentItem struct {
	SupplierID          string  `dynamodbav:"supplier_id"`
	Name                string  `dynamodbav:"name"`
	Phone               string  `dynamodbav:"phone"`
	Email               string  `dynamodbav:"email"`
	BankAccountRef      string  `dynamodbav:"bank_account_ref"`
	SupplierPriceCents  int64   `dynamodbav:"supplier_price_cents"`
	ApprovedAmountCents *int64  `dynamodbav:"approved_amount_cents,omitempty"`
	Notified            bool    `dynamodbav:"notified"`
	AssignedAt          string  `dynamodbav:"assigned_at"`
	AcceptedAt          *string `dynamodbav:"accepted_at,omitempty"`
	DeclinedAt          *string `dynamodbav:"declined_at,omitempty"`
	DeclineReason       string  `dynamodbav:"decline_reason,omitempty"`
	PaidAt              *string `dynamodbav:"paid_at,omitempty"`
	PaidBatchID         string  `dynamodbav:"paid_batch_id,omitempty"`
}

type chargeItem struct {
	ID            string  `dynamodbav:"id"`
	AmountCents   int64   `dynamodbav:"amount_cents"`
	Reason        string  `dynamodbav:"reason"`
	Status        string  `dynamodbav:"status"`
	TransactionID string  `dynamodbav:"transaction_id,omitempty"`
	AddedBy       string  `dynamodbav:"added_by"`
	AddedAt       string  `dynamodbav:"added_at"`
	SettledAt     *string `dynamodbav:"settled_at,omitempty"`
}

type historyItem struct {
	Action       string            `dynamodbav:"action"`
	Timestamp    string            `dynamodbav:"timestamp"`
	ActorID      string            `dynamodbav:"actor_id"`
	BeforeStatus string            `dynamodbav:"before_status"`
	AfterStatus  string            `dynamodbav:"after_status"`
	Metadata     map[string]string `dynamodbav:"metadata,omitempty"`
}

type jobItem struct {
	BookingID          string           `dynamodbav:"booking_id"`
	Status             string           `dynamodbav:"status"`
	CustomerPriceCents int64            `dynamodbav:"customer_price_cents"`
	Payment            *paymentItem     `dynamodbav:"payment,omitempty"`
	Pickup             locationItem     `dynamodbav:"pickup"`
	Dropoff            locationItem     `dynamodbav:"dropoff"`
	Customer           contactItem      `dynamodbav:"customer"`
	Supplier           *assignmentItem  `dynamodbav:"supplier,omitempty"`
	PastSuppliers      []assignmentItem `dynamodbav:"past_suppliers,omitempty"`
	Charges            []chargeItem     `dynamodbav:"charges,omitempty"`
	History            []historyItem    `dynamodbav:"history"`
	CreatedAt          string           `dynamodbav:"created_at"`
	UpdatedAt          string           `dynamodbav:"updated_at"`
	CompletedAt        *string          `dynamodbav:"completed_at,omitempty"`
	CancelledAt        *string          `dynamodbav:"cancelled_at,omitempty"`
	Version            int64            `dynamodbav:"version"`
}

type purgeItem struct {
	BookingID  string `dynamodbav:"booking_id"`
	ActorID    string `dynamodbav:"actor_id"`
	PurgedAt   string `dynamodbav:"purged_at"`
	LastStatus string `dynamodbav:"last_status"`
}

func toJobItem(j *entities.Job) jobItem {
	it := jobItem{
		BookingID:          j.BookingID,
		Status:             string(j.Status),
		CustomerPriceCents: j.CustomerPriceCents,
		Pickup:             locationItem(j.Pickup),
		Dropoff:            locationItem(j.Dropoff),
		Customer:           contactItem(j.Customer),
		CreatedAt:          timeToString(j.CreatedAt),
		UpdatedAt:          timeToString(j.UpdatedAt),
		CompletedAt:        optTimeToString(j.CompletedAt),
		CancelledAt:        optTimeToString(j.CancelledAt),
		Version:            j.Version,
	}
	if j.Payment != nil {
		it.Payment = &paymentItem{
			TransactionID: j.Payment.TransactionID,
			AmountCents:   j.Payment.AmountCents,
			RecordedAt:    timeToString(j.Payment.RecordedAt),
		}
	}
	if j.Supplier != nil {
		a := toAssignmentItem(*j.Supplier)
		it.Supplier = &a
	}
	for _, s := range j.PastSuppliers {
		it.PastSuppliers = append(it.PastSuppliers, toAssignmentItem(s))
	}
	for _, c := range j.Charges {
		it.Charges = append(it.Charges, chargeItem{
			ID:            c.ID,
			AmountCents:   c.AmountCents,
			Reason:        c.Reason,
			Status:        string(c.Status),
			TransactionID: c.TransactionID,
			AddedBy:       c.AddedBy,
			AddedAt:       timeToString(c.AddedAt),
			SettledAt:     optTimeToString(c.SettledAt),
		})
	}
	for _, h := range j.History {
		it.History = append(it.History, historyItem{
			Action:       h.Action,
			Timestamp:    timeToString(h.Timestamp),
			ActorID:      h.ActorID,
			BeforeStatus: string(h.BeforeStatus),
			AfterStatus:  string(h.AfterStatus),
			Metadata:     h.Metadata,
		})
	}
	return it
}

func fromJobItem(it jobItem) *entities.Job {
	j := &entities.Job{
		BookingID:          it.BookingID,
		Status:             entities.JobStatus(it.Status),
		CustomerPriceCents: it.CustomerPriceCents,
		Pickup:             entities.Location(it.Pickup),
		Dropoff:            entities.Location(it.Dropoff),
		Customer:           entities.ContactDetails(it.Customer),
		CreatedAt:          stringToTime(it.CreatedAt),
		UpdatedAt:          stringToTime(it.UpdatedAt),
		CompletedAt:        optStringToTime(it.CompletedAt),
		CancelledAt:        optStringToTime(it.CancelledAt),
		Version:            it.Version,
	}
	if it.Payment != nil {
		j.Payment = &entities.PaymentRecord{
			TransactionID: it.Payment.TransactionID,
			AmountCents:   it.Payment.AmountCents,
			RecordedAt:    stringToTime(it.Payment.RecordedAt),
		}
	}
	if it.Supplier != nil {
		a := fromAssignmentItem(*it.Supplier)
		j.Supplier = &a
	}
	for _, s := range it.PastSuppliers {
		j.PastSuppliers = append(j.PastSuppliers, fromAssignmentItem(s))
	}
	for _, c := range it.Charges {
		j.Charges = append(j.Charges, entities.AdditionalCharge{
			ID:            c.ID,
			AmountCents:   c.AmountCents,
			Reason:        c.Reason,
			Status:        entities.ChargeStatus(c.Status),
			TransactionID: c.TransactionID,
			AddedBy:       c.AddedBy,
			AddedAt:       stringToTime(c.AddedAt),
			SettledAt:     optStringToTime(c.SettledAt),
		})
	}
	for _, h := range it.History {
		j.History = append(j.History, entities.HistoryEntry{
			Action:       h.Action,
			Timestamp:    stringToTime(h.Timestamp),
			ActorID:      h.ActorID,
			BeforeStatus: entities.JobStatus(h.BeforeStatus),
			AfterStatus:  entities.JobStatus(h.AfterStatus),
			Metadata:     h.Metadata,
		})
	}
	return j
}

func toAssignmentItem(a entities.SupplierAssignment) assignmentItem {
	return assignmentItem{
		SupplierID:          a.SupplierID,
		Name:                a.Name,
		Phone:               a.Phone,
		Email:               a.Email,
		BankAccountRef:      a.BankAccountRef,
		SupplierPriceCents:  a.SupplierPriceCents,
		ApprovedAmountCents: a.ApprovedAmountCents,
		Notified:            a.Notified,
		AssignedAt:          timeToString(a.AssignedAt),
		AcceptedAt:          optTimeToString(a.AcceptedAt),
		DeclinedAt:          optTimeToString(a.DeclinedAt),
		DeclineReason:       a.DeclineReason,
		PaidAt:              optTimeToString(a.PaidAt),
		PaidBatchID:         a.PaidBatchID,
	}
}

func fromAssignmentItem(it assignmentItem) entities.SupplierAssignment {
	return entities.SupplierAssignment{
		SupplierID:          it.SupplierID,
		Name:                it.Name,
		Phone:               it.Phone,
		Email:               it.Email,
		BankAccountRef:      it.BankAccountRef,
		SupplierPriceCents:  it.SupplierPriceCents,
		ApprovedAmountCents: it.ApprovedAmountCents,
		Notified:            it.Notified,
		AssignedAt:          stringToTime(it.AssignedAt),
		AcceptedAt:          optStringToTime(it.AcceptedAt),
		DeclinedAt:          optStringToTime(it.DeclinedAt),
		DeclineReason:       it.DeclineReason,
		PaidAt:              optStringToTime(it.PaidAt),
		PaidBatchID:         it.PaidBatchID,
	}
}

func toPurgeItem(r entities.PurgeRecord) purgeItem {
	return purgeItem{
		BookingID:  r.BookingID,
		ActorID:    r.ActorID,
		PurgedAt:   timeToString(r.PurgedAt),
		LastStatus: string(r.LastStatus),
	}
}

func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func optTimeToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := timeToString(*t)
	return &s
}

func stringToTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func optStringToTime(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t := stringToTime(*s)
	return &t
}

func int64ToString(v int64) string {
	return strconv.FormatInt(v, 10)
}
