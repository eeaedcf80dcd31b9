package response

import (
	"time"

	"towdispatch/internal/usecase"
)

type BatchEntryResponse struct {
	BookingID          string `json:"booking_id"`
	SupplierID         string `json:"supplier_id"`
	SupplierAccountRef string `json:"supplier_account_ref"`
	AmountCents        int64  `json:"amount_cents"`
	ReferenceText      string `json:"reference_text"`
}

type BatchResponse struct {
	BatchID string               `json:"batch_id"`
	AsOf    time.Time            `json:"as_of"`
	Entries []BatchEntryResponse `json:"entries"`
}

func FromBatch(b usecase.Batch) BatchResponse {
	resp := BatchResponse{
		BatchID: b.BatchID,
		AsOf:    b.AsOf,
		Entries: make([]BatchEntryResponse, 0, len(b.Entries)),
	}
	for _, e := range b.Entries {
		resp.Entries = append(resp.Entries, BatchEntryResponse(e))
	}
	return resp
}
