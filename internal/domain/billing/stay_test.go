//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNights(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     int
	}{
		{name: "three nights", checkIn: date(2024, 3, 15), checkOut: date(2024, 3, 18), want: 3},
		{name: "single night", checkIn: date(2024, 3, 15), checkOut: date(2024, 3, 16), want: 1},
		{name: "same day is zero", checkIn: date(2024, 3, 15), checkOut: date(2024, 3, 15), want: 0},
		{name: "reversed is negative", checkIn: date(2024, 3, 18), checkOut: date(2024, 3, 15), want: -3},
		{name: "time of day ignored", checkIn: date(2024, 3, 15).Add(23 * time.Hour), checkOut: date(2024, 3, 16).Add(1 * time.Hour), want: 1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, billing.Nights(c.checkIn, c.checkOut))
		})
	}
}

func TestPriceStay(t *testing.T) {
	t.Run("three night stay at fixed tax rate", func(t *testing.T) {
		// rate 5000.00 x 3 nights = 15000.00, 18% tax = 2700.00, total 17700.00
		totals, err := billing.PriceStay(billing.NewMoney(500000), 3, 1, billing.NewMoney(0), billing.NewMoney(0), 18)
		require.NoError(t, err)

		assert.Equal(t, int64(1500000), totals.RoomTotal.Cents())
		assert.Equal(t, int64(270000), totals.TaxAmount.Cents())
		assert.Equal(t, int64(1770000), totals.Total.Cents())
	})

	t.Run("extras and discount land before tax", func(t *testing.T) {
		totals, err := billing.PriceStay(billing.NewMoney(10000), 2, 1, billing.NewMoney(3000), billing.NewMoney(3000), 18)
		require.NoError(t, err)

		assert.Equal(t, int64(20000), totals.RoomTotal.Cents())
		assert.Equal(t, int64(23000), totals.WithExtras.Cents())
		assert.Equal(t, int64(20000), totals.AfterDiscount.Cents())
		assert.Equal(t, int64(3600), totals.TaxAmount.Cents())
		assert.Equal(t, int64(23600), totals.Total.Cents())
	})

	t.Run("multiple rooms multiply the room total", func(t *testing.T) {
		totals, err := billing.PriceStay(billing.NewMoney(10000), 2, 3, billing.NewMoney(0), billing.NewMoney(0), 0)
		require.NoError(t, err)

		assert.Equal(t, int64(60000), totals.RoomTotal.Cents())
	})

	t.Run("discount beyond the base clamps at zero", func(t *testing.T) {
		totals, err := billing.PriceStay(billing.NewMoney(10000), 1, 1, billing.NewMoney(0), billing.NewMoney(99999), 18)
		require.NoError(t, err)

		assert.Equal(t, int64(0), totals.AfterDiscount.Cents())
		assert.Equal(t, int64(0), totals.Total.Cents())
	})

	t.Run("zero nights rejected", func(t *testing.T) {
		_, err := billing.PriceStay(billing.NewMoney(10000), 0, 1, billing.NewMoney(0), billing.NewMoney(0), 18)
		require.ErrorIs(t, err, billing.ErrNonPositiveNights)
	})

	t.Run("negative nights rejected", func(t *testing.T) {
		_, err := billing.PriceStay(billing.NewMoney(10000), -2, 1, billing.NewMoney(0), billing.NewMoney(0), 18)
		require.ErrorIs(t, err, billing.ErrNonPositiveNights)
	})

	t.Run("zero rooms rejected", func(t *testing.T) {
		_, err := billing.PriceStay(billing.NewMoney(10000), 1, 0, billing.NewMoney(0), billing.NewMoney(0), 18)
		require.ErrorIs(t, err, billing.ErrNonPositiveRooms)
	})
}
