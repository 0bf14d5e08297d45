package billing

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrNegativeUnitCost = errors.New("unit price cannot be negative")
)

// CartLine is a point-of-sale cart entry. Quantity is always >= 1; a line at
// quantity 0 is evicted by the order aggregate, never constructed.
type CartLine struct {
	itemID    uuid.UUID
	name      string
	unitPrice Money
	quantity  int
	note      string
}

func NewCartLine(itemID uuid.UUID, name string, unitPrice Money, quantity int, note string) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}
	if unitPrice.Cents() < 0 {
		return CartLine{}, ErrNegativeUnitCost
	}
	return CartLine{
		itemID:    itemID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
		note:      note,
	}, nil
}

func (l CartLine) ItemID() uuid.UUID { return l.itemID }
func (l CartLine) Name() string      { return l.name }
func (l CartLine) UnitPrice() Money  { return l.unitPrice }
func (l CartLine) Quantity() int     { return l.quantity }
func (l CartLine) Note() string      { return l.note }

// Extension is the line total: unit price times quantity.
func (l CartLine) Extension() Money {
	return l.unitPrice.Mul(int64(l.quantity))
}

func (l CartLine) WithQuantity(quantity int) (CartLine, error) {
	if quantity < 1 {
		return CartLine{}, ErrInvalidQuantity
	}
	l.quantity = quantity
	return l, nil
}

// CartTotals is the computed pricing breakdown for a cart.
type CartTotals struct {
	Subtotal       Money
	DiscountAmount Money
	TaxAmount      Money
	Total          Money
}

// PriceCart computes subtotal, percentage discount, and percentage tax for a
// set of cart lines. The discount is taken on the subtotal and tax is applied
// to the discounted base, so the two never commute silently. Percent range
// checks belong to the input layer; the calculator treats whatever it is
// given as authoritative.
func PriceCart(lines []CartLine, discountPercent, taxPercent float64) CartTotals {
	var subtotal Money
	for _, l := range lines {
		subtotal = subtotal.Add(l.Extension())
	}

	discount := subtotal.Percent(discountPercent)
	afterDiscount := subtotal.Sub(discount)
	tax := afterDiscount.Percent(taxPercent)

	return CartTotals{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		Total:          afterDiscount.Add(tax),
	}
}
