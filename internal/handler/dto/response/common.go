package response

import (
	"hoteldesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type CheckoutResponse struct {
	TotalCents    int64 `json:"total_cents"`
	TenderedCents int64 `json:"tendered_cents"`
	ChangeCents   int64 `json:"change_cents"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		TotalCents:    r.TotalCents,
		TenderedCents: r.TenderedCents,
		ChangeCents:   r.ChangeCents,
	}
}
