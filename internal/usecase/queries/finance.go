package queries

import (
	"context"
	"time"

	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type FinanceReadStore interface {
	FindTransactionByID(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	ListTransactions(ctx context.Context, hotelID uuid.UUID, kind string, from, to time.Time, limit, offset int32) ([]*TransactionView, error)
	Occupancy(ctx context.Context, hotelID uuid.UUID, day time.Time) (*OccupancyReport, error)
	Revenue(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (*RevenueReport, error)
}

type FinanceQueries interface {
	GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionView, error)
	ListTransactions(ctx context.Context, hotelID uuid.UUID, kind string, from, to time.Time, limit, offset int32) ([]*TransactionView, error)
	OccupancyReport(ctx context.Context, hotelID uuid.UUID, day time.Time) (*OccupancyReport, error)
	RevenueReport(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (*RevenueReport, error)
}

type financeQueries struct {
	store FinanceReadStore
}

func NewFinanceQueries(store FinanceReadStore) FinanceQueries {
	return &financeQueries{store: store}
}

func (q *financeQueries) GetTransaction(ctx context.Context, id uuid.UUID) (*TransactionView, error) {
	view, err := q.store.FindTransactionByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrTransactionNotFound)
	}
	return view, nil
}

func (q *financeQueries) ListTransactions(ctx context.Context, hotelID uuid.UUID, kind string, from, to time.Time, limit, offset int32) ([]*TransactionView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	if to.IsZero() {
		to = time.Now().AddDate(0, 0, 1)
	}

	txs, err := q.store.ListTransactions(ctx, hotelID, kind, from, to, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return txs, nil
}

func (q *financeQueries) OccupancyReport(ctx context.Context, hotelID uuid.UUID, day time.Time) (*OccupancyReport, error) {
	report, err := q.store.Occupancy(ctx, hotelID, day)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return report, nil
}

func (q *financeQueries) RevenueReport(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (*RevenueReport, error) {
	if !to.After(from) {
		return nil, errs.Mark(errs.New("report window must be a positive range"), errs.ErrInvalidDateRange)
	}

	report, err := q.store.Revenue(ctx, hotelID, from, to)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return report, nil
}
