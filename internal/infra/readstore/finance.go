package readstore

import (
	"context"
	"time"

	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type FinanceReadStore struct {
	db db.DBTX
}

func NewFinanceReadStore(dbtx db.DBTX) *FinanceReadStore {
	return &FinanceReadStore{db: dbtx}
}

func (s *FinanceReadStore) FindTransactionByID(ctx context.Context, id uuid.UUID) (*queries.TransactionView, error) {
	q := `SELECT id, hotel_id, kind, amount_cents, category, reference, occurred_at, created_at
		FROM transactions WHERE id = $1`

	var (
		v                   queries.TransactionView
		occurredAt, created pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.HotelID, &v.Kind, &v.AmountCents, &v.Category, &v.Reference,
		&occurredAt, &created,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("transaction not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find transaction by ID", err)
	}
	v.OccurredAt = pgconv.TimeFromPgtype(occurredAt)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	return &v, nil
}

func (s *FinanceReadStore) ListTransactions(ctx context.Context, hotelID uuid.UUID, kind string, from, to time.Time, limit, offset int32) ([]*queries.TransactionView, error) {
	q := `SELECT id, hotel_id, kind, amount_cents, category, reference, occurred_at, created_at
		FROM transactions
		WHERE hotel_id = $1
			AND ($2 = '' OR kind = $2)
			AND occurred_at >= $3 AND occurred_at < $4
		ORDER BY occurred_at DESC, id DESC
		LIMIT $5 OFFSET $6`

	rows, err := s.db.Query(ctx, q, hotelID, kind,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to), limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list transactions", err)
	}
	defer rows.Close()

	var result []*queries.TransactionView
	for rows.Next() {
		var (
			v                   queries.TransactionView
			occurredAt, created pgtype.Timestamptz
		)
		if err := rows.Scan(
			&v.ID, &v.HotelID, &v.Kind, &v.AmountCents, &v.Category, &v.Reference,
			&occurredAt, &created,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan transaction row", err)
		}
		v.OccurredAt = pgconv.TimeFromPgtype(occurredAt)
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate transaction rows", err)
	}
	return result, nil
}

// Occupancy counts rooms against reservations whose stay window covers the
// given day. A reservation occupies its room from check-in (inclusive) to
// check-out (exclusive).
func (s *FinanceReadStore) Occupancy(ctx context.Context, hotelID uuid.UUID, day time.Time) (*queries.OccupancyReport, error) {
	q := `SELECT
			(SELECT COUNT(*) FROM rooms WHERE hotel_id = $1) AS total_rooms,
			(SELECT COUNT(DISTINCT room_id) FROM reservations
				WHERE hotel_id = $1
					AND status IN ('confirmed', 'checked_in')
					AND check_in_date <= $2 AND check_out_date > $2) AS occupied_rooms,
			(SELECT COUNT(*) FROM reservations
				WHERE hotel_id = $1 AND status = 'confirmed' AND check_in_date = $2) AS arrivals,
			(SELECT COUNT(*) FROM reservations
				WHERE hotel_id = $1 AND status = 'checked_in' AND check_out_date = $2) AS departures`

	var report queries.OccupancyReport
	report.HotelID = hotelID
	err := s.db.QueryRow(ctx, q, hotelID, pgconv.DateToPgtype(day)).Scan(
		&report.TotalRooms, &report.OccupiedRooms, &report.ArrivalsToday, &report.DeparturesToday,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute occupancy", err)
	}
	if report.TotalRooms > 0 {
		report.OccupancyPercent = float64(report.OccupiedRooms) / float64(report.TotalRooms) * 100.0
	}
	return &report, nil
}

// Revenue sums checked-out stay revenue alongside the finance ledger for the
// window [from, to). Stay revenue is attributed to the check-out date.
func (s *FinanceReadStore) Revenue(ctx context.Context, hotelID uuid.UUID, from, to time.Time) (*queries.RevenueReport, error) {
	stayQ := `SELECT COUNT(*),
			COALESCE(SUM(base_rate_cents * GREATEST(check_out_date - check_in_date, 0)), 0)
		FROM reservations
		WHERE hotel_id = $1
			AND status = 'checked_out'
			AND check_out_date >= $2 AND check_out_date < $3`

	report := queries.RevenueReport{HotelID: hotelID, From: from, To: to}
	err := s.db.QueryRow(ctx, stayQ, hotelID,
		pgconv.DateToPgtype(from), pgconv.DateToPgtype(to)).
		Scan(&report.ReservationCount, &report.ReservationCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum reservation revenue", err)
	}

	ledgerQ := `SELECT
			COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'income'), 0),
			COALESCE(SUM(amount_cents) FILTER (WHERE kind = 'expense'), 0)
		FROM transactions
		WHERE hotel_id = $1 AND occurred_at >= $2 AND occurred_at < $3`

	err = s.db.QueryRow(ctx, ledgerQ, hotelID,
		pgconv.TimeToPgtype(from), pgconv.TimeToPgtype(to)).
		Scan(&report.IncomeCents, &report.ExpenseCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to sum ledger totals", err)
	}

	report.NetCents = report.IncomeCents - report.ExpenseCents
	if report.ReservationCount > 0 {
		report.AverageDailyCents = report.ReservationCents / report.ReservationCount
	}
	return &report, nil
}
