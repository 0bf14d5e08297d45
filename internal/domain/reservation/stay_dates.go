package reservation

import (
	"errors"
	"time"

	"hoteldesk/internal/domain/billing"
)

var (
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be after check-in")
	ErrPastCheckIn             = errors.New("cannot change to past dates")
)

// StayDates is a validated check-in/check-out pair. Check-out must be
// strictly after check-in, so a StayDates always covers at least one night.
type StayDates struct {
	checkIn  time.Time
	checkOut time.Time
}

// NewStayDates validates dates for a new reservation: any past check-in is
// rejected outright.
func NewStayDates(checkIn, checkOut, now time.Time) (StayDates, error) {
	if billing.Nights(checkIn, checkOut) <= 0 {
		return StayDates{}, ErrCheckOutNotAfterCheckIn
	}
	if dateOnly(checkIn).Before(dateOnly(now)) {
		return StayDates{}, ErrPastCheckIn
	}
	return StayDates{checkIn: checkIn, checkOut: checkOut}, nil
}

// NewStayDatesForUpdate validates dates on an existing reservation. A past
// check-in passes only when it is the stored original, so editing an old
// booking's other fields never trips a redundant date failure.
func NewStayDatesForUpdate(checkIn, checkOut, originalCheckIn, now time.Time) (StayDates, error) {
	if billing.Nights(checkIn, checkOut) <= 0 {
		return StayDates{}, ErrCheckOutNotAfterCheckIn
	}
	if dateOnly(checkIn).Before(dateOnly(now)) && !dateOnly(checkIn).Equal(dateOnly(originalCheckIn)) {
		return StayDates{}, ErrPastCheckIn
	}
	return StayDates{checkIn: checkIn, checkOut: checkOut}, nil
}

// ReconstructStayDates rebuilds a StayDates from storage without re-running
// the past-date rule; persisted reservations keep their historical dates.
func ReconstructStayDates(checkIn, checkOut time.Time) StayDates {
	return StayDates{checkIn: checkIn, checkOut: checkOut}
}

func (d StayDates) CheckIn() time.Time {
	return d.checkIn
}

func (d StayDates) CheckOut() time.Time {
	return d.checkOut
}

func (d StayDates) Nights() int {
	return billing.Nights(d.checkIn, d.checkOut)
}

func dateOnly(t time.Time) time.Time {
	y, m, day := t.Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}
