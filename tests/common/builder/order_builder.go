//go:build unit || e2e

package builder

import (
	"time"

	"hoteldesk/internal/domain/order"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderBuilder struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	StaffID      uuid.UUID
	TableNumber  int
	Status       order.Status
	Lines        []queries.OrderLineView
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewOrderBuilder() *OrderBuilder {
	now := time.Now()
	return &OrderBuilder{
		ID:           uuid.New(),
		RestaurantID: uuid.New(),
		StaffID:      uuid.New(),
		TableNumber:  4,
		Status:       order.StatusOpen,
		Lines: []queries.OrderLineView{
			{ItemID: uuid.New(), Name: "Margherita", UnitPriceCents: 1200, Quantity: 2},
			{ItemID: uuid.New(), Name: "Espresso", UnitPriceCents: 300, Quantity: 1},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (b *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(b)
	return b
}

func (b *OrderBuilder) BuildOpenRequestBody() map[string]any {
	return map[string]any{
		"restaurant_id": b.RestaurantID.String(),
		"staff_id":      b.StaffID.String(),
		"table_number":  b.TableNumber,
	}
}

func (b *OrderBuilder) BuildView() *queries.OrderView {
	var subtotal int64
	for _, l := range b.Lines {
		subtotal += l.UnitPriceCents * int64(l.Quantity)
	}
	return &queries.OrderView{
		ID:            b.ID,
		RestaurantID:  b.RestaurantID,
		StaffID:       b.StaffID,
		TableNumber:   b.TableNumber,
		Status:        string(b.Status),
		Lines:         b.Lines,
		SubtotalCents: subtotal,
		TotalCents:    subtotal,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
