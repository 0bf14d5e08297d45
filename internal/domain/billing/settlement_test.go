//go:build unit

package billing_test

import (
	"testing"

	"hoteldesk/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettle(t *testing.T) {
	t.Run("change is tendered minus total", func(t *testing.T) {
		s, err := billing.Settle(billing.NewMoney(9900), billing.NewMoney(10000))
		require.NoError(t, err)

		assert.Equal(t, int64(100), s.Change.Cents())
		assert.Equal(t, int64(9900), s.Total.Cents())
		assert.Equal(t, int64(10000), s.Tendered.Cents())
	})

	t.Run("exact tender yields zero change", func(t *testing.T) {
		s, err := billing.Settle(billing.NewMoney(9900), billing.NewMoney(9900))
		require.NoError(t, err)

		assert.True(t, s.Change.IsZero())
	})

	t.Run("insufficient tender is rejected, never negative change", func(t *testing.T) {
		_, err := billing.Settle(billing.NewMoney(9900), billing.NewMoney(5000))
		require.ErrorIs(t, err, billing.ErrInsufficientTender)
	})
}
