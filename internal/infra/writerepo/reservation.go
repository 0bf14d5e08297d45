package writerepo

import (
	"context"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/reservation"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, rsv *reservation.Reservation) error {
	q := `INSERT INTO reservations (
			id, hotel_id, room_id, agent_id,
			guest_name, guest_email, guest_phone, id_document,
			check_in_date, check_out_date, adults, children, status,
			base_rate_cents, extra_charges_cents, discount_cents, deposit_cents,
			special_requests, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19
		)`

	_, err := r.db.Exec(ctx, q,
		rsv.ID(), rsv.HotelID(), rsv.RoomID(), pgconv.UUIDPtrToPgtype(rsv.AgentID()),
		rsv.GuestName(), rsv.GuestEmail(), rsv.GuestPhone(), rsv.IDDocument(),
		pgconv.DateToPgtype(rsv.Dates().CheckIn()), pgconv.DateToPgtype(rsv.Dates().CheckOut()),
		rsv.Adults(), rsv.Children(), rsv.Status().String(),
		rsv.BaseRate().Cents(), rsv.ExtraCharges().Cents(), rsv.Discount().Cents(), rsv.Deposit().Cents(),
		rsv.SpecialRequests(), rsv.Notes(),
	)
	if err != nil {
		return wrapConstraintErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, rsv *reservation.Reservation) error {
	q := `UPDATE reservations SET
			room_id = $2, agent_id = $3,
			guest_name = $4, guest_email = $5, guest_phone = $6, id_document = $7,
			check_in_date = $8, check_out_date = $9, adults = $10, children = $11, status = $12,
			base_rate_cents = $13, extra_charges_cents = $14, discount_cents = $15, deposit_cents = $16,
			special_requests = $17, notes = $18,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, q,
		rsv.ID(), rsv.RoomID(), pgconv.UUIDPtrToPgtype(rsv.AgentID()),
		rsv.GuestName(), rsv.GuestEmail(), rsv.GuestPhone(), rsv.IDDocument(),
		pgconv.DateToPgtype(rsv.Dates().CheckIn()), pgconv.DateToPgtype(rsv.Dates().CheckOut()),
		rsv.Adults(), rsv.Children(), rsv.Status().String(),
		rsv.BaseRate().Cents(), rsv.ExtraCharges().Cents(), rsv.Discount().Cents(), rsv.Deposit().Cents(),
		rsv.SpecialRequests(), rsv.Notes(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindForUpdate loads the reservation with a row lock so that command
// handlers mutate against the latest state within their transaction.
func (r *ReservationRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	q := `SELECT id, hotel_id, room_id, agent_id,
			guest_name, guest_email, guest_phone, id_document,
			check_in_date, check_out_date, adults, children, status,
			base_rate_cents, extra_charges_cents, discount_cents, deposit_cents,
			special_requests, notes, created_at, updated_at
		FROM reservations
		WHERE id = $1
		FOR UPDATE`

	var (
		p                             reservation.ReconstructParams
		agentID                       pgtype.UUID
		checkIn, checkOut             pgtype.Date
		created, updated              pgtype.Timestamptz
		rate, extras, discount, depos int64
		status                        string
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&p.ID, &p.HotelID, &p.RoomID, &agentID,
		&p.GuestName, &p.GuestEmail, &p.GuestPhone, &p.IDDocument,
		&checkIn, &checkOut, &p.Adults, &p.Children, &status,
		&rate, &extras, &discount, &depos,
		&p.SpecialRequests, &p.Notes, &created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load reservation", err)
	}

	p.AgentID = pgconv.UUIDPtrFromPgtype(agentID)
	p.Dates = reservation.ReconstructStayDates(pgconv.DateFromPgtype(checkIn), pgconv.DateFromPgtype(checkOut))
	p.Status = reservation.Status(status)
	p.BaseRate = billing.NewMoney(rate)
	p.ExtraCharges = billing.NewMoney(extras)
	p.Discount = billing.NewMoney(discount)
	p.Deposit = billing.NewMoney(depos)
	p.CreatedAt = pgconv.TimeFromPgtype(created)
	p.UpdatedAt = pgconv.TimeFromPgtype(updated)

	rsv, err := reservation.ReconstructReservation(p)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid persisted reservation", err)
	}
	return rsv, nil
}

// RoomHasOverlap reports whether an active reservation already occupies the
// room in the half-open window [checkIn, checkOut). The reservation being
// edited is excluded so a date change does not collide with itself.
func (r *ReservationRepository) RoomHasOverlap(ctx context.Context, roomID uuid.UUID, dates reservation.StayDates, excludeID *uuid.UUID) (bool, error) {
	q := `SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE room_id = $1
				AND status IN ('confirmed', 'checked_in')
				AND check_in_date < $3 AND check_out_date > $2
				AND ($4::uuid IS NULL OR id <> $4)
		)`

	var exists bool
	err := r.db.QueryRow(ctx, q, roomID,
		pgconv.DateToPgtype(dates.CheckIn()), pgconv.DateToPgtype(dates.CheckOut()),
		pgconv.UUIDPtrToPgtype(excludeID),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check room overlap", err)
	}
	return exists, nil
}
