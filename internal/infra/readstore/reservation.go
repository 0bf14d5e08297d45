package readstore

import (
	"context"
	"time"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/reservation"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationViewColumns = `
	r.id, r.hotel_id, r.room_id, rm.number, r.agent_id,
	r.guest_name, r.guest_email, r.guest_phone, r.id_document,
	r.check_in_date, r.check_out_date, r.adults, r.children, r.status,
	r.base_rate_cents, r.extra_charges_cents, r.discount_cents, r.deposit_cents,
	r.special_requests, r.notes, r.created_at, r.updated_at`

func (s *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	q := `SELECT` + reservationViewColumns + `
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		WHERE r.id = $1`

	view, err := s.scanView(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return view, nil
}

func (s *ReservationReadStore) ListByHotel(ctx context.Context, hotelID uuid.UUID, limit, offset int32) ([]*queries.ReservationListItem, error) {
	q := `SELECT r.id, rm.number, r.guest_name, r.check_in_date, r.check_out_date, r.status,
			r.base_rate_cents, r.extra_charges_cents, r.discount_cents, r.created_at
		FROM reservations r
		JOIN rooms rm ON rm.id = r.room_id
		WHERE r.hotel_id = $1
		ORDER BY r.created_at DESC, r.id DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.db.Query(ctx, q, hotelID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var (
			item                        queries.ReservationListItem
			checkIn, checkOut           pgtype.Date
			createdAt                   pgtype.Timestamptz
			rateCents, extras, discount int64
		)
		if err := rows.Scan(
			&item.ID, &item.RoomNumber, &item.GuestName, &checkIn, &checkOut, &item.Status,
			&rateCents, &extras, &discount, &createdAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}

		item.CheckInDate = pgconv.DateFromPgtype(checkIn)
		item.CheckOutDate = pgconv.DateFromPgtype(checkOut)
		item.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		item.TotalCents = stayTotalCents(item.CheckInDate, item.CheckOutDate, rateCents, extras, discount)
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}

	return result, nil
}

func (s *ReservationReadStore) scanView(row interface{ Scan(dest ...any) error }) (*queries.ReservationView, error) {
	var (
		v                 queries.ReservationView
		agentID           pgtype.UUID
		checkIn, checkOut pgtype.Date
		created, updated  pgtype.Timestamptz
	)

	err := row.Scan(
		&v.ID, &v.HotelID, &v.RoomID, &v.RoomNumber, &agentID,
		&v.GuestName, &v.GuestEmail, &v.GuestPhone, &v.IDDocument,
		&checkIn, &checkOut, &v.Adults, &v.Children, &v.Status,
		&v.BaseRateCents, &v.ExtraCents, &v.DiscountCents, &v.DepositCents,
		&v.SpecialRequests, &v.Notes, &created, &updated,
	)
	if err != nil {
		return nil, err
	}

	v.AgentID = pgconv.UUIDPtrFromPgtype(agentID)
	v.CheckInDate = pgconv.DateFromPgtype(checkIn)
	v.CheckOutDate = pgconv.DateFromPgtype(checkOut)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	v.Nights = billing.Nights(v.CheckInDate, v.CheckOutDate)

	// Totals are derived, never stored; recompute them the same way the
	// entity does.
	totals, err := billing.PriceStay(
		billing.NewMoney(v.BaseRateCents), v.Nights, 1,
		billing.NewMoney(v.ExtraCents), billing.NewMoney(v.DiscountCents),
		reservation.StayTaxPercent,
	)
	if err == nil {
		v.TaxCents = totals.TaxAmount.Cents()
		v.TotalCents = totals.Total.Cents()
	}

	for _, f := range reservation.EditableFields(reservation.Status(v.Status)) {
		v.EditableFields = append(v.EditableFields, f.String())
	}

	return &v, nil
}

func stayTotalCents(checkIn, checkOut time.Time, rateCents, extraCents, discountCents int64) int64 {
	nights := billing.Nights(checkIn, checkOut)
	totals, err := billing.PriceStay(
		billing.NewMoney(rateCents), nights, 1,
		billing.NewMoney(extraCents), billing.NewMoney(discountCents),
		reservation.StayTaxPercent,
	)
	if err != nil {
		return 0
	}
	return totals.Total.Cents()
}
