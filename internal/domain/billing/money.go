package billing

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is an integer cent amount. All pricing math stays in cents and only
// converts to a decimal at the presentation edge.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewMoneyNonNegative(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Dollars() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub clamps at zero: a discount larger than the base yields a zero amount,
// never a negative one.
func (m Money) Sub(other Money) Money {
	remaining := m.cents - other.cents
	if remaining < 0 {
		remaining = 0
	}
	return Money{cents: remaining}
}

// Diff is an unclamped subtraction, used where a negative result is
// meaningful (e.g. change due).
func (m Money) Diff(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

func (m Money) Mul(n int64) Money {
	return Money{cents: m.cents * n}
}

// Percent returns p percent of the amount, rounded down to the cent.
func (m Money) Percent(p float64) Money {
	return Money{cents: int64(float64(m.cents) * p / 100.0)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}
