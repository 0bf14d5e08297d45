package writerepo

import (
	"errors"

	"hoteldesk/internal/infra"

	"github.com/jackc/pgx/v5/pgconn"
)

// wrapConstraintErr maps Postgres constraint violations onto repository kinds
// so usecases can answer 409 vs 500 without parsing SQLSTATE themselves.
func wrapConstraintErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return infra.WrapRepoErr(msg, err, infra.KindDuplicateKey)
		case "23503":
			return infra.WrapRepoErr(msg, err, infra.KindForeignKeyViolated)
		}
	}
	return infra.WrapRepoErr(msg, err)
}
