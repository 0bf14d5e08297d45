package queries

import (
	"context"

	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListByHotel(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error)
}

type ReservationQueries interface {
	GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListReservations(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error)
}

type reservationQueries struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueries{store: store}
}

func (q *reservationQueries) GetReservation(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrReservationNotFound)
	}
	return view, nil
}

func (q *reservationQueries) ListReservations(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*ReservationListItem, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	items, err := q.store.ListByHotel(ctx, hotelID, limit, offset)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}
