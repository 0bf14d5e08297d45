//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hoteldesk/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayDates(t *testing.T) {
	now := date(2024, 3, 10)

	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		errIs    error
	}{
		{name: "future range OK", checkIn: date(2024, 3, 15), checkOut: date(2024, 3, 18)},
		{name: "today check-in OK", checkIn: date(2024, 3, 10), checkOut: date(2024, 3, 11)},
		{name: "same day rejected", checkIn: date(2024, 3, 15), checkOut: date(2024, 3, 15), errIs: reservation.ErrCheckOutNotAfterCheckIn},
		{name: "reversed rejected", checkIn: date(2024, 3, 18), checkOut: date(2024, 3, 15), errIs: reservation.ErrCheckOutNotAfterCheckIn},
		{name: "past check-in rejected on creation", checkIn: date(2024, 3, 1), checkOut: date(2024, 3, 5), errIs: reservation.ErrPastCheckIn},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			dates, err := reservation.NewStayDates(c.checkIn, c.checkOut, now)
			if c.errIs == nil {
				require.NoError(t, err)
				assert.Equal(t, c.checkIn, dates.CheckIn())
				assert.Equal(t, c.checkOut, dates.CheckOut())
			} else {
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}

func TestNewStayDatesForUpdate(t *testing.T) {
	now := date(2024, 3, 10)
	originalCheckIn := date(2024, 3, 1) // already in the past

	t.Run("unchanged past check-in passes", func(t *testing.T) {
		dates, err := reservation.NewStayDatesForUpdate(originalCheckIn, date(2024, 3, 5), originalCheckIn, now)
		require.NoError(t, err)
		assert.Equal(t, 4, dates.Nights())
	})

	t.Run("changed-and-still-past check-in rejected", func(t *testing.T) {
		_, err := reservation.NewStayDatesForUpdate(date(2024, 3, 2), date(2024, 3, 5), originalCheckIn, now)
		require.ErrorIs(t, err, reservation.ErrPastCheckIn)
	})

	t.Run("changed to future check-in passes", func(t *testing.T) {
		_, err := reservation.NewStayDatesForUpdate(date(2024, 3, 20), date(2024, 3, 22), originalCheckIn, now)
		require.NoError(t, err)
	})

	t.Run("ordering still enforced on update", func(t *testing.T) {
		_, err := reservation.NewStayDatesForUpdate(originalCheckIn, originalCheckIn, originalCheckIn, now)
		require.ErrorIs(t, err, reservation.ErrCheckOutNotAfterCheckIn)
	})
}

func TestStayDatesNights(t *testing.T) {
	dates, err := reservation.NewStayDates(date(2024, 3, 15), date(2024, 3, 18), date(2024, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 3, dates.Nights())
}
