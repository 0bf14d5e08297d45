//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/reservation"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmp.Comparer(func(a, b billing.Money) bool { return a.Cents() == b.Cents() }),
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()

	dates, err := reservation.NewStayDates(date(2024, 3, 15), date(2024, 3, 18), date(2024, 3, 10))
	require.NoError(t, err)

	res, err := reservation.NewReservation(reservation.NewReservationParams{
		HotelID:    uuid.New(),
		RoomID:     uuid.New(),
		GuestName:  "Asha Rao",
		GuestEmail: "asha@example.com",
		GuestPhone: "+91-98000000",
		Dates:      dates,
		Adults:     2,
		Children:   1,
		BaseRate:   billing.NewMoney(500000),
	})
	require.NoError(t, err)
	return res
}

func TestNewReservation(t *testing.T) {
	t.Run("created confirmed with priced stay", func(t *testing.T) {
		res := newTestReservation(t)

		assert.Equal(t, reservation.StatusConfirmed, res.Status())
		assert.Equal(t, int64(1500000), res.Totals().RoomTotal.Cents())
		assert.Equal(t, int64(270000), res.Totals().TaxAmount.Cents())
		assert.Equal(t, int64(1770000), res.Totals().Total.Cents())
		assert.True(t, res.IsActive())
	})

	t.Run("needs at least one adult", func(t *testing.T) {
		dates, err := reservation.NewStayDates(date(2024, 3, 15), date(2024, 3, 16), date(2024, 3, 10))
		require.NoError(t, err)

		_, err = reservation.NewReservation(reservation.NewReservationParams{
			HotelID:  uuid.New(),
			RoomID:   uuid.New(),
			Dates:    dates,
			Adults:   0,
			BaseRate: billing.NewMoney(10000),
		})
		require.ErrorIs(t, err, reservation.ErrNoAdults)
	})
}

func TestApplyUpdate(t *testing.T) {
	t.Run("confirmed: pricing fields reprice totals", func(t *testing.T) {
		res := newTestReservation(t)

		newRate := billing.NewMoney(600000)
		err := res.ApplyUpdate(reservation.Update{BaseRate: &newRate})
		require.NoError(t, err)

		assert.Equal(t, int64(1800000), res.Totals().RoomTotal.Cents())
		assert.Equal(t, int64(2124000), res.Totals().Total.Cents())
	})

	t.Run("confirmed: date change recomputes nights", func(t *testing.T) {
		res := newTestReservation(t)

		dates, err := reservation.NewStayDatesForUpdate(
			date(2024, 3, 15), date(2024, 3, 16), res.Dates().CheckIn(), date(2024, 3, 10))
		require.NoError(t, err)

		require.NoError(t, res.ApplyUpdate(reservation.Update{Dates: &dates}))
		assert.Equal(t, int64(500000), res.Totals().RoomTotal.Cents())
	})

	t.Run("checked_in: guest name locked, notes editable", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.CheckIn())

		name := "Someone Else"
		err := res.ApplyUpdate(reservation.Update{GuestName: &name})
		require.ErrorIs(t, err, reservation.ErrFieldLocked)
		assert.Equal(t, "Asha Rao", res.GuestName())

		notes := "late arrival"
		require.NoError(t, res.ApplyUpdate(reservation.Update{Notes: &notes}))
		assert.Equal(t, "late arrival", res.Notes())
	})

	t.Run("locked field blocks the whole update", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.CheckIn())

		name := "Someone Else"
		notes := "should not apply"
		err := res.ApplyUpdate(reservation.Update{GuestName: &name, Notes: &notes})
		require.ErrorIs(t, err, reservation.ErrFieldLocked)
		assert.Empty(t, res.Notes())
	})

	t.Run("cancelled: frozen entirely", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())

		notes := "nope"
		err := res.ApplyUpdate(reservation.Update{Notes: &notes})
		require.ErrorIs(t, err, reservation.ErrReservationFrozen)
	})
}

func TestStatusTransitions(t *testing.T) {
	t.Run("confirmed to checked_in to checked_out", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.CheckIn())
		require.NoError(t, res.CheckOut())
		assert.Equal(t, reservation.StatusCheckedOut, res.Status())
	})

	t.Run("cancel from confirmed", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())
		assert.Equal(t, reservation.StatusCancelled, res.Status())
	})

	t.Run("cancel from checked_in", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.CheckIn())
		require.NoError(t, res.Cancel())
	})

	t.Run("cancel after checkout rejected", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.CheckIn())
		require.NoError(t, res.CheckOut())
		require.ErrorIs(t, res.Cancel(), reservation.ErrInvalidTransition)
	})

	t.Run("double cancel rejected", func(t *testing.T) {
		res := newTestReservation(t)
		require.NoError(t, res.Cancel())
		require.ErrorIs(t, res.Cancel(), reservation.ErrAlreadyCancelled)
	})

	t.Run("checkout without checkin rejected", func(t *testing.T) {
		res := newTestReservation(t)
		require.ErrorIs(t, res.CheckOut(), reservation.ErrInvalidTransition)
	})
}

func TestReconstructReservation(t *testing.T) {
	dates := reservation.ReconstructStayDates(date(2023, 1, 5), date(2023, 1, 8))
	now := time.Now()

	res, err := reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:        uuid.New(),
		HotelID:   uuid.New(),
		RoomID:    uuid.New(),
		GuestName: "Old Guest",
		Dates:     dates,
		Adults:    1,
		BaseRate:  billing.NewMoney(10000),
		Status:    reservation.StatusCheckedOut,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	// Historical stays keep their dates; totals still derive from them.
	assert.Equal(t, 3, res.Dates().Nights())

	expected, err := billing.PriceStay(
		billing.NewMoney(10000), 3, 1, billing.NewMoney(0), billing.NewMoney(0), reservation.StayTaxPercent)
	require.NoError(t, err)
	if diff := cmp.Diff(expected, res.Totals(), cmpOpts...); diff != "" {
		t.Errorf("StayTotals mismatch (-want +got):\n%s", diff)
	}

	_, err = reservation.ReconstructReservation(reservation.ReconstructParams{
		ID:       uuid.New(),
		Dates:    dates,
		Adults:   1,
		BaseRate: billing.NewMoney(10000),
		Status:   reservation.Status("bogus"),
	})
	require.ErrorIs(t, err, reservation.ErrInvalidStatus)
}
