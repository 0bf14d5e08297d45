package writerepo

import (
	"context"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	q := `INSERT INTO users (id, email, password_hash, role, hotel_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, q,
		u.ID(), u.Email().Value(), u.PasswordHash(), u.Role().String(),
		pgconv.UUIDPtrToPgtype(u.HotelID()), u.IsActive())
	if err != nil {
		return wrapConstraintErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	q := `SELECT id, email, password_hash, role, hotel_id, last_login, is_active, created_at, updated_at
		FROM users WHERE email = $1`
	return r.findOne(ctx, q, email.Value())
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	q := `SELECT id, email, password_hash, role, hotel_id, last_login, is_active, created_at, updated_at
		FROM users WHERE id = $1`
	return r.findOne(ctx, q, id)
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, q string, arg any) (*user.User, error) {
	var (
		id               uuid.UUID
		emailRaw         string
		passwordHash     string
		roleRaw          string
		hotelID          pgtype.UUID
		lastLogin        pgtype.Timestamptz
		isActive         bool
		created, updated pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, arg).Scan(
		&id, &emailRaw, &passwordHash, &roleRaw, &hotelID, &lastLogin, &isActive,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user", err)
	}

	email, err := user.NewEmail(emailRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid persisted email", err)
	}

	return user.ReconstructUser(id, email, passwordHash, user.Role(roleRaw),
		pgconv.UUIDPtrFromPgtype(hotelID), pgconv.TimePtrFromPgtype(lastLogin), isActive,
		pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(updated)), nil
}
