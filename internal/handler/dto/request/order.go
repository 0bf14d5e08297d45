package request

import (
	"hoteldesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type OpenOrderRequest struct {
	RestaurantID    uuid.UUID `json:"restaurant_id" binding:"required"`
	StaffID         uuid.UUID `json:"staff_id" binding:"required"`
	TableNumber     int       `json:"table_number" binding:"required,min=1"`
	DiscountPercent float64   `json:"discount_percent" binding:"min=0,max=100"`
}

func (r OpenOrderRequest) ToInput() commands.OpenOrderInput {
	return commands.OpenOrderInput{
		RestaurantID:    r.RestaurantID,
		StaffID:         r.StaffID,
		TableNumber:     r.TableNumber,
		DiscountPercent: r.DiscountPercent,
	}
}

type SetOrderLineRequest struct {
	MenuItemID uuid.UUID `json:"menu_item_id" binding:"required"`
	Quantity   int       `json:"quantity" binding:"min=0"`
	Note       string    `json:"note"`
}

func (r SetOrderLineRequest) ToInput() commands.SetOrderLineInput {
	return commands.SetOrderLineInput{
		MenuItemID: r.MenuItemID,
		Quantity:   r.Quantity,
		Note:       r.Note,
	}
}

type CheckoutRequest struct {
	TenderedCents int64 `json:"tendered_cents" binding:"required,min=0"`
}
