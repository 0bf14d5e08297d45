package order

import (
	"errors"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrOrderNotOpen    = errors.New("order is not open")
	ErrEmptyOrder      = errors.New("order has no lines")
	ErrLineNotFound    = errors.New("line not found")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
	ErrInvalidStatus   = errors.New("invalid order status")
)

type Status string

const (
	StatusOpen    Status = "open"
	StatusSettled Status = "settled"
	StatusVoided  Status = "voided"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusSettled, StatusVoided:
		return true
	default:
		return false
	}
}

// Pricing carries the discount and tax percentages fixed when the order was
// opened. A later config change never reprices an open ticket.
type Pricing struct {
	DiscountPercent float64
	TaxPercent      float64
}

// Order is a restaurant POS cart. Lines live only at quantity >= 1; setting a
// line to zero evicts it rather than persisting an empty row.
type Order struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	staffID      uuid.UUID
	tableNumber  int
	status       Status
	lines        []billing.CartLine
	totals       billing.CartTotals
	settlement   *billing.Settlement
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOrder(restaurantID, staffID uuid.UUID, tableNumber int) *Order {
	return &Order{
		id:           uuid.New(),
		restaurantID: restaurantID,
		staffID:      staffID,
		tableNumber:  tableNumber,
		status:       StatusOpen,
	}
}

func ReconstructOrder(id, restaurantID, staffID uuid.UUID, tableNumber int, status Status, lines []billing.CartLine, totals billing.CartTotals, settlement *billing.Settlement, createdAt, updatedAt time.Time) (*Order, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Order{
		id:           id,
		restaurantID: restaurantID,
		staffID:      staffID,
		tableNumber:  tableNumber,
		status:       status,
		lines:        lines,
		totals:       totals,
		settlement:   settlement,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

// SetLine adds a cart line, replaces its quantity, or evicts it when quantity
// is zero.
func (o *Order) SetLine(itemID uuid.UUID, name string, unitPrice billing.Money, quantity int, note string) error {
	if o.status != StatusOpen {
		return ErrOrderNotOpen
	}
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	if quantity == 0 {
		return o.removeLine(itemID)
	}

	for i, l := range o.lines {
		if l.ItemID() == itemID {
			updated, err := l.WithQuantity(quantity)
			if err != nil {
				return err
			}
			o.lines[i] = updated
			return nil
		}
	}

	line, err := billing.NewCartLine(itemID, name, unitPrice, quantity, note)
	if err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

func (o *Order) removeLine(itemID uuid.UUID) error {
	for i, l := range o.lines {
		if l.ItemID() == itemID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

// Price recomputes totals from the current lines. Runs on every line change
// and again inside Checkout; the order never carries stale totals.
func (o *Order) Price(discountPercent, taxPercent float64) billing.CartTotals {
	o.totals = billing.PriceCart(o.lines, discountPercent, taxPercent)
	return o.totals
}

// Checkout prices the cart, settles the cash payment, and closes the order.
// Insufficient tender leaves the order open and unsettled.
func (o *Order) Checkout(discountPercent, taxPercent float64, tendered billing.Money) (billing.Settlement, error) {
	if o.status != StatusOpen {
		return billing.Settlement{}, ErrOrderNotOpen
	}
	if len(o.lines) == 0 {
		return billing.Settlement{}, ErrEmptyOrder
	}

	totals := o.Price(discountPercent, taxPercent)

	settlement, err := billing.Settle(totals.Total, tendered)
	if err != nil {
		return billing.Settlement{}, err
	}

	o.settlement = &settlement
	o.status = StatusSettled
	return settlement, nil
}

// Void cancels an open order before settlement.
func (o *Order) Void() error {
	if o.status != StatusOpen {
		return ErrOrderNotOpen
	}
	o.status = StatusVoided
	return nil
}

func (o *Order) ID() uuid.UUID                   { return o.id }
func (o *Order) RestaurantID() uuid.UUID         { return o.restaurantID }
func (o *Order) StaffID() uuid.UUID              { return o.staffID }
func (o *Order) TableNumber() int                { return o.tableNumber }
func (o *Order) Status() Status                  { return o.status }
func (o *Order) Totals() billing.CartTotals      { return o.totals }
func (o *Order) Settlement() *billing.Settlement { return o.settlement }
func (o *Order) CreatedAt() time.Time            { return o.createdAt }
func (o *Order) UpdatedAt() time.Time            { return o.updatedAt }

// Lines returns a copy to keep the aggregate's slice private.
func (o *Order) Lines() []billing.CartLine {
	out := make([]billing.CartLine, len(o.lines))
	copy(out, o.lines)
	return out
}
