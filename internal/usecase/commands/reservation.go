package commands

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/reservation"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/pkg/clock"
	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRoomUnavailable = errors.New("room is not available for the requested dates")

type CreateReservationInput struct {
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	AgentID         *uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	IDDocument      string
	CheckInDate     time.Time
	CheckOutDate    time.Time
	Adults          int
	Children        int
	BaseRateCents   *int64
	ExtraCents      int64
	DiscountCents   int64
	DepositCents    int64
	SpecialRequests string
	Notes           string
}

// UpdateReservationInput mirrors the entity's partial update: nil leaves a
// field untouched. Date changes must supply both ends of the stay.
type UpdateReservationInput struct {
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	IDDocument      *string
	CheckInDate     *time.Time
	CheckOutDate    *time.Time
	Adults          *int
	Children        *int
	RoomID          *uuid.UUID
	BaseRateCents   *int64
	ExtraCents      *int64
	DiscountCents   *int64
	DepositCents    *int64
	SpecialRequests *string
	Notes           *string
}

type ReservationCommands interface {
	Create(ctx context.Context, input CreateReservationInput) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) error
	Cancel(ctx context.Context, id uuid.UUID) error
	CheckIn(ctx context.Context, id uuid.UUID) error
	CheckOut(ctx context.Context, id uuid.UUID) error
}

type reservationCommands struct {
	reservations ReservationRepository
	catalog      CatalogRepository
	clk          clock.Clock
}

func NewReservationCommands(reservations ReservationRepository, catalog CatalogRepository, clk clock.Clock) ReservationCommands {
	return &reservationCommands{reservations: reservations, catalog: catalog, clk: clk}
}

func (c *reservationCommands) Create(ctx context.Context, input CreateReservationInput) (uuid.UUID, error) {
	dates, err := reservation.NewStayDates(input.CheckInDate, input.CheckOutDate, c.clk.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrInvalidDateRange)
	}

	room, err := c.catalog.FindRoom(ctx, input.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, errs.Mark(err, errs.ErrRoomNotFound)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if room.HotelID() != input.HotelID {
		return uuid.Nil, errs.Mark(errs.New("room belongs to another hotel"), errs.ErrRoomNotFound)
	}

	taken, err := c.reservations.RoomHasOverlap(ctx, input.RoomID, dates, nil)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if taken {
		return uuid.Nil, errs.Mark(errs.New("dates overlap an active reservation"), ErrRoomUnavailable)
	}

	// The room's current rate is the default; callers may override per stay.
	baseRate := room.NightlyRate()
	if input.BaseRateCents != nil {
		baseRate = billing.NewMoney(*input.BaseRateCents)
	}

	rsv, err := reservation.NewReservation(reservation.NewReservationParams{
		HotelID:         input.HotelID,
		RoomID:          input.RoomID,
		AgentID:         input.AgentID,
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
		IDDocument:      input.IDDocument,
		Dates:           dates,
		Adults:          input.Adults,
		Children:        input.Children,
		BaseRate:        baseRate,
		ExtraCharges:    billing.NewMoney(input.ExtraCents),
		Discount:        billing.NewMoney(input.DiscountCents),
		Deposit:         billing.NewMoney(input.DepositCents),
		SpecialRequests: input.SpecialRequests,
		Notes:           input.Notes,
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	if err := c.reservations.Create(ctx, rsv); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rsv.ID(), nil
}

func (c *reservationCommands) Update(ctx context.Context, id uuid.UUID, input UpdateReservationInput) error {
	rsv, err := c.findForUpdate(ctx, id)
	if err != nil {
		return err
	}

	update := reservation.Update{
		GuestName:       input.GuestName,
		GuestEmail:      input.GuestEmail,
		GuestPhone:      input.GuestPhone,
		IDDocument:      input.IDDocument,
		Adults:          input.Adults,
		Children:        input.Children,
		RoomID:          input.RoomID,
		SpecialRequests: input.SpecialRequests,
		Notes:           input.Notes,
	}
	if input.BaseRateCents != nil {
		m := billing.NewMoney(*input.BaseRateCents)
		update.BaseRate = &m
	}
	if input.ExtraCents != nil {
		m := billing.NewMoney(*input.ExtraCents)
		update.ExtraCharges = &m
	}
	if input.DiscountCents != nil {
		m := billing.NewMoney(*input.DiscountCents)
		update.Discount = &m
	}
	if input.DepositCents != nil {
		m := billing.NewMoney(*input.DepositCents)
		update.Deposit = &m
	}

	if input.CheckInDate != nil || input.CheckOutDate != nil {
		checkIn := rsv.Dates().CheckIn()
		checkOut := rsv.Dates().CheckOut()
		if input.CheckInDate != nil {
			checkIn = *input.CheckInDate
		}
		if input.CheckOutDate != nil {
			checkOut = *input.CheckOutDate
		}
		dates, err := reservation.NewStayDatesForUpdate(checkIn, checkOut, rsv.Dates().CheckIn(), c.clk.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidDateRange)
		}
		update.Dates = &dates
	}

	if err := rsv.ApplyUpdate(update); err != nil {
		return markUpdateErr(err)
	}

	if update.Dates != nil || update.RoomID != nil {
		rid := rsv.ID()
		taken, err := c.reservations.RoomHasOverlap(ctx, rsv.RoomID(), rsv.Dates(), &rid)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if taken {
			return errs.Mark(errs.New("dates overlap an active reservation"), ErrRoomUnavailable)
		}
	}

	if err := c.reservations.Update(ctx, rsv); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommands) Cancel(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, (*reservation.Reservation).Cancel)
}

func (c *reservationCommands) CheckIn(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, (*reservation.Reservation).CheckIn)
}

func (c *reservationCommands) CheckOut(ctx context.Context, id uuid.UUID) error {
	return c.transition(ctx, id, (*reservation.Reservation).CheckOut)
}

func (c *reservationCommands) transition(ctx context.Context, id uuid.UUID, apply func(*reservation.Reservation) error) error {
	rsv, err := c.findForUpdate(ctx, id)
	if err != nil {
		return err
	}
	if err := apply(rsv); err != nil {
		return errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := c.reservations.Update(ctx, rsv); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommands) findForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rsv, err := c.reservations.FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rsv, nil
}

func markUpdateErr(err error) error {
	switch {
	case errors.Is(err, reservation.ErrReservationFrozen):
		return errs.Mark(err, errs.ErrInvalidTransition)
	case errors.Is(err, reservation.ErrFieldLocked):
		return errs.Mark(err, errs.ErrFieldLocked)
	default:
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
}
