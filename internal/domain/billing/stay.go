package billing

import (
	"errors"
	"time"
)

var (
	ErrNonPositiveNights = errors.New("stay must cover at least one night")
	ErrNonPositiveRooms  = errors.New("room count must be at least 1")
)

// StayTotals is the pricing breakdown for a room stay. Each intermediate is
// kept so callers can render the full invoice, not just the total.
type StayTotals struct {
	Nights        int
	RoomTotal     Money
	WithExtras    Money
	AfterDiscount Money
	TaxAmount     Money
	Total         Money
}

// Nights counts whole days between check-in and check-out. Same-day in/out is
// zero nights, which stay pricing rejects.
func Nights(checkIn, checkOut time.Time) int {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	return int(out.Sub(in).Hours() / 24)
}

// PriceStay computes the room-stay invoice: nightly rate times nights times
// rooms, plus extra charges, minus a flat discount (clamped at zero), then a
// fixed percentage tax on the discounted base.
func PriceStay(nightlyRate Money, nights, rooms int, extraCharges, discount Money, taxPercent float64) (StayTotals, error) {
	if nights <= 0 {
		return StayTotals{}, ErrNonPositiveNights
	}
	if rooms <= 0 {
		return StayTotals{}, ErrNonPositiveRooms
	}

	roomTotal := nightlyRate.Mul(int64(nights)).Mul(int64(rooms))
	withExtras := roomTotal.Add(extraCharges)
	afterDiscount := withExtras.Sub(discount)
	tax := afterDiscount.Percent(taxPercent)

	return StayTotals{
		Nights:        nights,
		RoomTotal:     roomTotal,
		WithExtras:    withExtras,
		AfterDiscount: afterDiscount,
		TaxAmount:     tax,
		Total:         afterDiscount.Add(tax),
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
