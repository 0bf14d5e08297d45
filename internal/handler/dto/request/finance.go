package request

import "time"

type RecordTransactionRequest struct {
	Kind        string     `json:"kind" binding:"required,oneof=income expense"`
	AmountCents int64      `json:"amount_cents" binding:"required,min=1"`
	Category    string     `json:"category" binding:"required"`
	Reference   string     `json:"reference"`
	OccurredAt  *time.Time `json:"occurred_at,omitempty"`
}
