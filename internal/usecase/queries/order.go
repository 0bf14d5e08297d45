package queries

import (
	"context"

	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type OrderReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status string, limit, offset int32) ([]*OrderView, error)
}

type OrderQueries interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error)
	ListOrders(ctx context.Context, restaurantID uuid.UUID, status string, limit, offset int32) ([]*OrderView, error)
}

type orderQueries struct {
	store OrderReadStore
}

func NewOrderQueries(store OrderReadStore) OrderQueries {
	return &orderQueries{store: store}
}

func (q *orderQueries) GetOrder(ctx context.Context, id uuid.UUID) (*OrderView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrOrderNotFound)
	}
	return view, nil
}

func (q *orderQueries) ListOrders(ctx context.Context, restaurantID uuid.UUID, status string, limit, offset int32) ([]*OrderView, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	orders, err := q.store.ListByRestaurant(ctx, restaurantID, status, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return orders, nil
}
