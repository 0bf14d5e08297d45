package readstore

import (
	"context"

	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (s *UserReadStore) FindAuthorizedByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	q := `SELECT id, email, role, hotel_id, is_active
		FROM users WHERE id = $1`

	var (
		v       queries.AuthorizedUserView
		hotelID pgtype.UUID
	)
	err := s.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Email, &v.Role, &hotelID, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	v.HotelID = pgconv.UUIDPtrFromPgtype(hotelID)
	return &v, nil
}
