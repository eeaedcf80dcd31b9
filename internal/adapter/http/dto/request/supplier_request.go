package request

import (
	"strings"

	"towdispatch/internal/domain/entities"
)

// AssignSupplierRequest carries the supplier snapshot captured at assignment
// time. Contact and bank details are frozen on the job so later edits to the
// supplier master record never rewrite history.
type AssignSupplierRequest struct {
	SupplierID         string `json:"supplier_id" binding:"required"`
	Name               string `json:"name" binding:"required"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	BankAccountRef     string `json:"bank_account_ref"`
	SupplierPriceCents int64  `json:"supplier_price_cents"`
	Notify             bool   `json:"notify"`
	ActorID            string `json:"actor_id"`
}

func (r AssignSupplierRequest) ToSnapshot() entities.SupplierAssignment {
	return entities.SupplierAssignment{
		SupplierID:         strings.TrimSpace(r.SupplierID),
		Name:               strings.TrimSpace(r.Name),
		Phone:              strings.TrimSpace(r.Phone),
		Email:              strings.TrimSpace(r.Email),
		BankAccountRef:     strings.TrimSpace(r.BankAccountRef),
		SupplierPriceCents: r.SupplierPriceCents,
	}
}

type DeclineSupplierRequest struct {
	Reason  string `json:"reason" binding:"required"`
	ActorID string `json:"actor_id"`
}

type ApprovePayoutRequest struct {
	ApprovedAmountCents int64  `json:"approved_amount_cents" binding:"required"`
	ActorID             string `json:"actor_id"`
}
