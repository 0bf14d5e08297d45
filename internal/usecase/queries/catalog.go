package queries

import (
	"context"

	"hoteldesk/internal/infra"
	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindHotelByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListHotels(ctx context.Context, ownerID *uuid.UUID) ([]*HotelView, error)
	FindRoomByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID, status string) ([]*RoomView, error)
	FindRestaurantByID(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	ListRestaurants(ctx context.Context, hotelID *uuid.UUID) ([]*RestaurantView, error)
	FindMenuItemByID(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID, onlyAvailable bool) ([]*MenuItemView, error)
	ListDepartmentsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*DepartmentView, error)
	FindStaffByID(ctx context.Context, id uuid.UUID) (*StaffView, error)
	ListStaffByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*StaffView, error)
	ListAgents(ctx context.Context) ([]*AgentView, error)
}

type CatalogQueries interface {
	GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error)
	ListHotels(ctx context.Context, ownerID *uuid.UUID) ([]*HotelView, error)
	GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID, status string) ([]*RoomView, error)
	GetRestaurant(ctx context.Context, id uuid.UUID) (*RestaurantView, error)
	ListRestaurants(ctx context.Context, hotelID *uuid.UUID) ([]*RestaurantView, error)
	GetMenuItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error)
	ListMenuItems(ctx context.Context, restaurantID uuid.UUID, onlyAvailable bool) ([]*MenuItemView, error)
	ListDepartments(ctx context.Context, hotelID uuid.UUID) ([]*DepartmentView, error)
	GetStaff(ctx context.Context, id uuid.UUID) (*StaffView, error)
	ListStaff(ctx context.Context, departmentID uuid.UUID) ([]*StaffView, error)
	ListAgents(ctx context.Context) ([]*AgentView, error)
}

type catalogQueries struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueries{store: store}
}

func (q *catalogQueries) GetHotel(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	view, err := q.store.FindHotelByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrHotelNotFound)
	}
	return view, nil
}

func (q *catalogQueries) ListHotels(ctx context.Context, ownerID *uuid.UUID) ([]*HotelView, error) {
	hotels, err := q.store.ListHotels(ctx, ownerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return hotels, nil
}

func (q *catalogQueries) GetRoom(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	view, err := q.store.FindRoomByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRoomNotFound)
	}
	return view, nil
}

func (q *catalogQueries) ListRooms(ctx context.Context, hotelID uuid.UUID, status string) ([]*RoomView, error) {
	rooms, err := q.store.ListRoomsByHotel(ctx, hotelID, status)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rooms, nil
}

func (q *catalogQueries) GetRestaurant(ctx context.Context, id uuid.UUID) (*RestaurantView, error) {
	view, err := q.store.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrRestaurantNotFound)
	}
	return view, nil
}

func (q *catalogQueries) ListRestaurants(ctx context.Context, hotelID *uuid.UUID) ([]*RestaurantView, error) {
	restaurants, err := q.store.ListRestaurants(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return restaurants, nil
}

func (q *catalogQueries) GetMenuItem(ctx context.Context, id uuid.UUID) (*MenuItemView, error) {
	view, err := q.store.FindMenuItemByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrMenuItemNotFound)
	}
	return view, nil
}

func (q *catalogQueries) ListMenuItems(ctx context.Context, restaurantID uuid.UUID, onlyAvailable bool) ([]*MenuItemView, error) {
	items, err := q.store.ListMenuItems(ctx, restaurantID, onlyAvailable)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *catalogQueries) ListDepartments(ctx context.Context, hotelID uuid.UUID) ([]*DepartmentView, error) {
	departments, err := q.store.ListDepartmentsByHotel(ctx, hotelID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return departments, nil
}

func (q *catalogQueries) GetStaff(ctx context.Context, id uuid.UUID) (*StaffView, error) {
	view, err := q.store.FindStaffByID(ctx, id)
	if err != nil {
		return nil, markNotFound(err, errs.ErrStaffNotFound)
	}
	return view, nil
}

func (q *catalogQueries) ListStaff(ctx context.Context, departmentID uuid.UUID) ([]*StaffView, error) {
	members, err := q.store.ListStaffByDepartment(ctx, departmentID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return members, nil
}

func (q *catalogQueries) ListAgents(ctx context.Context) ([]*AgentView, error) {
	agents, err := q.store.ListAgents(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return agents, nil
}

func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
