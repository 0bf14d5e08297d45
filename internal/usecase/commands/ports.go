package commands

import (
	"context"

	"hoteldesk/internal/domain/finance"
	"hoteldesk/internal/domain/hotel"
	"hoteldesk/internal/domain/order"
	"hoteldesk/internal/domain/reservation"
	"hoteldesk/internal/domain/restaurant"
	"hoteldesk/internal/domain/staff"
	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/infra/db"

	"github.com/google/uuid"
)

// Repository ports. Implemented by internal/infra/writerepo; commands depend
// on these so handler tests can swap in mocks.

type ReservationRepository interface {
	Create(ctx context.Context, rsv *reservation.Reservation) error
	Update(ctx context.Context, rsv *reservation.Reservation) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	RoomHasOverlap(ctx context.Context, roomID uuid.UUID, dates reservation.StayDates, excludeID *uuid.UUID) (bool, error)
}

type OrderRepository interface {
	Create(ctx context.Context, o *order.Order, pricing order.Pricing) error
	Save(ctx context.Context, o *order.Order) error
	FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, order.Pricing, error)
}

type CatalogRepository interface {
	CreateHotel(ctx context.Context, h *hotel.Hotel) error
	UpdateHotel(ctx context.Context, h *hotel.Hotel) error
	FindHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error)
	CreateRoom(ctx context.Context, rm *hotel.Room) error
	UpdateRoom(ctx context.Context, rm *hotel.Room) error
	FindRoom(ctx context.Context, id uuid.UUID) (*hotel.Room, error)
	CreateRestaurant(ctx context.Context, rst *restaurant.Restaurant) error
	FindRestaurantHotel(ctx context.Context, restaurantID uuid.UUID) (*uuid.UUID, error)
	CreateMenuItem(ctx context.Context, item *restaurant.MenuItem) error
	UpdateMenuItem(ctx context.Context, item *restaurant.MenuItem) error
	FindMenuItem(ctx context.Context, id uuid.UUID) (*restaurant.MenuItem, error)
	CreateDepartment(ctx context.Context, d *staff.Department) error
	CreateStaff(ctx context.Context, m *staff.Member) error
	DeactivateStaff(ctx context.Context, id uuid.UUID) error
	CreateAgent(ctx context.Context, a *staff.Agent) error
}

type FinanceRepository interface {
	Create(ctx context.Context, t *finance.Transaction) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID) error
}

// TxManager runs command work inside one database transaction. The factory
// rebinds repositories to the transactional connection.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(tx db.DBTX) error) error
}

// RepoFactory builds repositories bound to an arbitrary DBTX, typically the
// transaction handed out by TxManager.
type RepoFactory interface {
	Reservations(dbtx db.DBTX) ReservationRepository
	Orders(dbtx db.DBTX) OrderRepository
	Finance(dbtx db.DBTX) FinanceRepository
}
