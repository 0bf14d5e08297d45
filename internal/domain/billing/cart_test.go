//go:build unit

package billing_test

import (
	"testing"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, priceCents int64, qty int) billing.CartLine {
	t.Helper()
	line, err := billing.NewCartLine(uuid.New(), "item", billing.NewMoney(priceCents), qty, "")
	require.NoError(t, err)
	return line
}

func TestNewCartLine(t *testing.T) {
	cases := []struct {
		name       string
		priceCents int64
		qty        int
		errIs      error
	}{
		{name: "quantity 1 OK", priceCents: 100, qty: 1},
		{name: "quantity 0 rejected", priceCents: 100, qty: 0, errIs: billing.ErrInvalidQuantity},
		{name: "negative quantity rejected", priceCents: 100, qty: -2, errIs: billing.ErrInvalidQuantity},
		{name: "negative price rejected", priceCents: -1, qty: 1, errIs: billing.ErrNegativeUnitCost},
		{name: "free item OK", priceCents: 0, qty: 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := billing.NewCartLine(uuid.New(), "item", billing.NewMoney(c.priceCents), c.qty, "")
			if c.errIs == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestPriceCart(t *testing.T) {
	t.Run("subtotal is the sum of line extensions", func(t *testing.T) {
		lines := []billing.CartLine{
			mustLine(t, 250, 4),  // 1000
			mustLine(t, 1299, 2), // 2598
			mustLine(t, 75, 1),   // 75
		}

		totals := billing.PriceCart(lines, 0, 0)

		assert.Equal(t, int64(3673), totals.Subtotal.Cents())
		assert.Equal(t, int64(3673), totals.Total.Cents())
		assert.True(t, totals.DiscountAmount.IsZero())
		assert.True(t, totals.TaxAmount.IsZero())
	})

	t.Run("discount applies before tax", func(t *testing.T) {
		// subtotal 100.00, discount 10%, tax 10% on the discounted 90.00
		lines := []billing.CartLine{mustLine(t, 10000, 1)}

		totals := billing.PriceCart(lines, 10, 10)

		assert.Equal(t, int64(10000), totals.Subtotal.Cents())
		assert.Equal(t, int64(1000), totals.DiscountAmount.Cents())
		assert.Equal(t, int64(900), totals.TaxAmount.Cents())
		assert.Equal(t, int64(9900), totals.Total.Cents())
	})

	t.Run("default POS tax rate", func(t *testing.T) {
		lines := []billing.CartLine{mustLine(t, 20000, 1)}

		totals := billing.PriceCart(lines, 0, 8.5)

		assert.Equal(t, int64(1700), totals.TaxAmount.Cents())
		assert.Equal(t, int64(21700), totals.Total.Cents())
	})

	t.Run("full discount clamps at zero", func(t *testing.T) {
		lines := []billing.CartLine{mustLine(t, 5000, 1)}

		totals := billing.PriceCart(lines, 100, 10)

		assert.Equal(t, int64(0), totals.Total.Cents())
		assert.Equal(t, int64(0), totals.TaxAmount.Cents())
	})

	t.Run("empty cart is all zeros", func(t *testing.T) {
		totals := billing.PriceCart(nil, 10, 10)

		assert.True(t, totals.Subtotal.IsZero())
		assert.True(t, totals.Total.IsZero())
	})
}

func TestMoneySubClampsAtZero(t *testing.T) {
	result := billing.NewMoney(500).Sub(billing.NewMoney(800))
	assert.Equal(t, int64(0), result.Cents())
}
