package billing

import "errors"

var ErrInsufficientTender = errors.New("tendered amount below total due")

// Settlement records a completed cash payment. Change is always
// tendered - total and never negative; an insufficient tender fails before a
// Settlement exists.
type Settlement struct {
	Total    Money
	Tendered Money
	Change   Money
}

func Settle(total, tendered Money) (Settlement, error) {
	if tendered.LessThan(total) {
		return Settlement{}, ErrInsufficientTender
	}
	return Settlement{
		Total:    total,
		Tendered: tendered,
		Change:   tendered.Diff(total),
	}, nil
}
