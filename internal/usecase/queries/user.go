package queries

import (
	"context"

	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserReadStore interface {
	FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type UserQueries interface {
	GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
}

type userQueries struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueries{store: store}
}

func (q *userQueries) GetAuthorizedUser(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.store.FindAuthorizedByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrUserNotFound)
	}
	return view, nil
}
