//go:build unit

package order_test

import (
	"testing"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenOrder() *order.Order {
	return order.NewOrder(uuid.New(), uuid.New(), 12)
}

func TestSetLine(t *testing.T) {
	t.Run("add and update quantity", func(t *testing.T) {
		o := newOpenOrder()
		itemID := uuid.New()

		require.NoError(t, o.SetLine(itemID, "Paneer Tikka", billing.NewMoney(25000), 2, ""))
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 2, o.Lines()[0].Quantity())

		require.NoError(t, o.SetLine(itemID, "Paneer Tikka", billing.NewMoney(25000), 5, ""))
		require.Len(t, o.Lines(), 1)
		assert.Equal(t, 5, o.Lines()[0].Quantity())
	})

	t.Run("quantity zero evicts the line", func(t *testing.T) {
		o := newOpenOrder()
		itemID := uuid.New()

		require.NoError(t, o.SetLine(itemID, "Masala Dosa", billing.NewMoney(12000), 1, ""))
		require.NoError(t, o.SetLine(itemID, "Masala Dosa", billing.NewMoney(12000), 0, ""))
		assert.Empty(t, o.Lines())
	})

	t.Run("zero quantity on unknown line is an error", func(t *testing.T) {
		o := newOpenOrder()
		err := o.SetLine(uuid.New(), "Ghost", billing.NewMoney(100), 0, "")
		require.ErrorIs(t, err, order.ErrLineNotFound)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		o := newOpenOrder()
		err := o.SetLine(uuid.New(), "Item", billing.NewMoney(100), -1, "")
		require.ErrorIs(t, err, order.ErrInvalidQuantity)
	})
}

func TestCheckout(t *testing.T) {
	t.Run("settles and closes the order", func(t *testing.T) {
		o := newOpenOrder()
		require.NoError(t, o.SetLine(uuid.New(), "Thali", billing.NewMoney(10000), 1, ""))

		// 100.00 - 10% + 10% tax on 90.00 = 99.00; tender 100.00 -> change 1.00
		settlement, err := o.Checkout(10, 10, billing.NewMoney(10000))
		require.NoError(t, err)

		assert.Equal(t, int64(9900), settlement.Total.Cents())
		assert.Equal(t, int64(100), settlement.Change.Cents())
		assert.Equal(t, order.StatusSettled, o.Status())
		require.NotNil(t, o.Settlement())
	})

	t.Run("insufficient tender leaves the order open", func(t *testing.T) {
		o := newOpenOrder()
		require.NoError(t, o.SetLine(uuid.New(), "Thali", billing.NewMoney(10000), 1, ""))

		_, err := o.Checkout(0, 0, billing.NewMoney(5000))
		require.ErrorIs(t, err, billing.ErrInsufficientTender)
		assert.Equal(t, order.StatusOpen, o.Status())
		assert.Nil(t, o.Settlement())
	})

	t.Run("empty order cannot check out", func(t *testing.T) {
		o := newOpenOrder()
		_, err := o.Checkout(0, 0, billing.NewMoney(5000))
		require.ErrorIs(t, err, order.ErrEmptyOrder)
	})

	t.Run("settled order rejects further edits", func(t *testing.T) {
		o := newOpenOrder()
		require.NoError(t, o.SetLine(uuid.New(), "Thali", billing.NewMoney(10000), 1, ""))
		_, err := o.Checkout(0, 0, billing.NewMoney(10000))
		require.NoError(t, err)

		err = o.SetLine(uuid.New(), "More", billing.NewMoney(100), 1, "")
		require.ErrorIs(t, err, order.ErrOrderNotOpen)

		_, err = o.Checkout(0, 0, billing.NewMoney(10000))
		require.ErrorIs(t, err, order.ErrOrderNotOpen)
	})
}

func TestVoid(t *testing.T) {
	o := newOpenOrder()
	require.NoError(t, o.Void())
	assert.Equal(t, order.StatusVoided, o.Status())
	require.ErrorIs(t, o.Void(), order.ErrOrderNotOpen)
}

func TestPrice(t *testing.T) {
	o := newOpenOrder()
	require.NoError(t, o.SetLine(uuid.New(), "Juice", billing.NewMoney(5000), 2, "no ice"))

	totals := o.Price(0, 8.5)
	assert.Equal(t, int64(10000), totals.Subtotal.Cents())
	assert.Equal(t, int64(850), totals.TaxAmount.Cents())
	assert.Equal(t, int64(10850), totals.Total.Cents())
	assert.Equal(t, totals, o.Totals())
}
