package writerepo

import (
	"context"

	"hoteldesk/internal/domain/finance"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type FinanceRepository struct {
	db db.DBTX
}

func NewFinanceRepository(dbtx db.DBTX) *FinanceRepository {
	return &FinanceRepository{db: dbtx}
}

func (r *FinanceRepository) Create(ctx context.Context, t *finance.Transaction) error {
	q := `INSERT INTO transactions (id, hotel_id, kind, amount_cents, category, reference, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, q,
		t.ID(), t.HotelID(), t.Kind().String(), t.Amount().Cents(),
		t.Category(), t.Reference(), pgconv.TimeToPgtype(t.OccurredAt()))
	if err != nil {
		return wrapConstraintErr("failed to create transaction", err)
	}
	return nil
}

func (r *FinanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete transaction", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("transaction not found", nil, infra.KindNotFound)
	}
	return nil
}
