package finance

import (
	"errors"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrInvalidKind      = errors.New("invalid transaction kind")
	ErrNonPositiveValue = errors.New("transaction amount must be positive")
)

type Kind string

const (
	KindIncome  Kind = "income"
	KindExpense Kind = "expense"
)

func (k Kind) IsValid() bool {
	return k == KindIncome || k == KindExpense
}

func (k Kind) String() string {
	return string(k)
}

// Transaction is a finance ledger entry. Amounts are always positive; the
// kind carries the sign.
type Transaction struct {
	id         uuid.UUID
	hotelID    uuid.UUID
	kind       Kind
	amount     billing.Money
	category   string
	reference  string
	occurredAt time.Time
	createdAt  time.Time
}

func NewTransaction(hotelID uuid.UUID, kind Kind, amount billing.Money, category, reference string, occurredAt time.Time) (*Transaction, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	if amount.Cents() <= 0 {
		return nil, ErrNonPositiveValue
	}
	return &Transaction{
		id:         uuid.New(),
		hotelID:    hotelID,
		kind:       kind,
		amount:     amount,
		category:   category,
		reference:  reference,
		occurredAt: occurredAt,
	}, nil
}

func ReconstructTransaction(id, hotelID uuid.UUID, kind Kind, amount billing.Money, category, reference string, occurredAt, createdAt time.Time) (*Transaction, error) {
	if !kind.IsValid() {
		return nil, ErrInvalidKind
	}
	return &Transaction{
		id:         id,
		hotelID:    hotelID,
		kind:       kind,
		amount:     amount,
		category:   category,
		reference:  reference,
		occurredAt: occurredAt,
		createdAt:  createdAt,
	}, nil
}

// Signed returns the amount with expense entries negated, for summing into a
// net figure.
func (t *Transaction) Signed() int64 {
	if t.kind == KindExpense {
		return -t.amount.Cents()
	}
	return t.amount.Cents()
}

func (t *Transaction) ID() uuid.UUID         { return t.id }
func (t *Transaction) HotelID() uuid.UUID    { return t.hotelID }
func (t *Transaction) Kind() Kind            { return t.kind }
func (t *Transaction) Amount() billing.Money { return t.amount }
func (t *Transaction) Category() string      { return t.category }
func (t *Transaction) Reference() string     { return t.reference }
func (t *Transaction) OccurredAt() time.Time { return t.occurredAt }
func (t *Transaction) CreatedAt() time.Time  { return t.createdAt }
