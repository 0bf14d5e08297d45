package commands

import (
	"context"
	"time"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/finance"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/pkg/clock"
	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type RecordTransactionInput struct {
	HotelID     uuid.UUID
	Kind        string
	AmountCents int64
	Category    string
	Reference   string
	OccurredAt  *time.Time
}

type FinanceCommands interface {
	RecordTransaction(ctx context.Context, input RecordTransactionInput) (uuid.UUID, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

type financeCommands struct {
	finance FinanceRepository
	clk     clock.Clock
}

func NewFinanceCommands(financeRepo FinanceRepository, clk clock.Clock) FinanceCommands {
	return &financeCommands{finance: financeRepo, clk: clk}
}

func (c *financeCommands) RecordTransaction(ctx context.Context, input RecordTransactionInput) (uuid.UUID, error) {
	occurredAt := c.clk.Now()
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	txn, err := finance.NewTransaction(input.HotelID, finance.Kind(input.Kind),
		billing.NewMoney(input.AmountCents), input.Category, input.Reference, occurredAt)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if err := c.finance.Create(ctx, txn); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, errs.ErrHotelNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return txn.ID(), nil
}

func (c *financeCommands) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if err := c.finance.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrTransactionNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
