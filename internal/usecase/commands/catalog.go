package commands

import (
	"context"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/hotel"
	"hoteldesk/internal/domain/restaurant"
	"hoteldesk/internal/domain/staff"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type CreateHotelInput struct {
	Name    string
	City    string
	Address string
	OwnerID uuid.UUID
}

type UpdateHotelInput struct {
	Name    *string
	City    *string
	Address *string
}

type CreateRoomInput struct {
	HotelID          uuid.UUID
	Number           string
	RoomType         string
	NightlyRateCents int64
}

type UpdateRoomInput struct {
	RoomType         *string
	NightlyRateCents *int64
	Status           *string
}

type CreateRestaurantInput struct {
	Name    string
	HotelID *uuid.UUID
	Cuisine string
}

type CreateMenuItemInput struct {
	RestaurantID uuid.UUID
	Name         string
	Category     string
	PriceCents   int64
}

type UpdateMenuItemInput struct {
	Name       *string
	Category   *string
	PriceCents *int64
	Available  *bool
}

type CreateDepartmentInput struct {
	HotelID uuid.UUID
	Name    string
}

type CreateStaffInput struct {
	DepartmentID uuid.UUID
	Name         string
	Title        string
	Phone        string
}

type CreateAgentInput struct {
	Name              string
	Agency            string
	CommissionPercent float64
}

type CatalogCommands interface {
	CreateHotel(ctx context.Context, input CreateHotelInput) (uuid.UUID, error)
	UpdateHotel(ctx context.Context, id uuid.UUID, input UpdateHotelInput) error
	CreateRoom(ctx context.Context, input CreateRoomInput) (uuid.UUID, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, input UpdateRoomInput) error
	CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (uuid.UUID, error)
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (uuid.UUID, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) error
	CreateDepartment(ctx context.Context, input CreateDepartmentInput) (uuid.UUID, error)
	CreateStaff(ctx context.Context, input CreateStaffInput) (uuid.UUID, error)
	DeactivateStaff(ctx context.Context, id uuid.UUID) error
	CreateAgent(ctx context.Context, input CreateAgentInput) (uuid.UUID, error)
}

type catalogCommands struct {
	catalog CatalogRepository
}

func NewCatalogCommands(catalog CatalogRepository) CatalogCommands {
	return &catalogCommands{catalog: catalog}
}

func (c *catalogCommands) CreateHotel(ctx context.Context, input CreateHotelInput) (uuid.UUID, error) {
	h, err := hotel.NewHotel(input.Name, input.City, input.Address, input.OwnerID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateHotel(ctx, h); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return h.ID(), nil
}

func (c *catalogCommands) UpdateHotel(ctx context.Context, id uuid.UUID, input UpdateHotelInput) error {
	h, err := c.catalog.FindHotel(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrHotelNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if input.Name != nil {
		if err := h.Rename(*input.Name); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}
	city := h.City()
	if input.City != nil {
		city = *input.City
	}
	address := h.Address()
	if input.Address != nil {
		address = *input.Address
	}
	updated := hotel.ReconstructHotel(h.ID(), h.Name(), city, address,
		h.OwnerID(), h.CreatedAt(), h.UpdatedAt())

	if err := c.catalog.UpdateHotel(ctx, updated); err != nil {
		return markWriteErr(err)
	}
	return nil
}

func (c *catalogCommands) CreateRoom(ctx context.Context, input CreateRoomInput) (uuid.UUID, error) {
	rm, err := hotel.NewRoom(input.HotelID, input.Number, input.RoomType, billing.NewMoney(input.NightlyRateCents))
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateRoom(ctx, rm); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return rm.ID(), nil
}

func (c *catalogCommands) UpdateRoom(ctx context.Context, id uuid.UUID, input UpdateRoomInput) error {
	rm, err := c.catalog.FindRoom(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrRoomNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if input.NightlyRateCents != nil {
		if err := rm.SetNightlyRate(billing.NewMoney(*input.NightlyRateCents)); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}
	if input.Status != nil {
		if err := rm.SetStatus(hotel.RoomStatus(*input.Status)); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}
	if input.RoomType != nil {
		reconstructed, err := hotel.ReconstructRoom(rm.ID(), rm.HotelID(), rm.Number(), *input.RoomType,
			rm.NightlyRate(), rm.Status(), rm.CreatedAt(), rm.UpdatedAt())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		rm = reconstructed
	}

	if err := c.catalog.UpdateRoom(ctx, rm); err != nil {
		return markWriteErr(err)
	}
	return nil
}

func (c *catalogCommands) CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (uuid.UUID, error) {
	rst, err := restaurant.NewRestaurant(input.Name, input.Cuisine, input.HotelID)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateRestaurant(ctx, rst); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return rst.ID(), nil
}

func (c *catalogCommands) CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (uuid.UUID, error) {
	item, err := restaurant.NewMenuItem(input.RestaurantID, input.Name, input.Category, billing.NewMoney(input.PriceCents))
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateMenuItem(ctx, item); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return item.ID(), nil
}

func (c *catalogCommands) UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) error {
	item, err := c.catalog.FindMenuItem(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrMenuItemNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if input.PriceCents != nil {
		if err := item.SetPrice(billing.NewMoney(*input.PriceCents)); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
	}
	if input.Available != nil {
		item.SetAvailable(*input.Available)
	}
	name := item.Name()
	if input.Name != nil {
		name = *input.Name
	}
	category := item.Category()
	if input.Category != nil {
		category = *input.Category
	}
	item = restaurant.ReconstructMenuItem(item.ID(), item.RestaurantID(), name, category,
		item.Price(), item.Available(), item.CreatedAt(), item.UpdatedAt())

	if err := c.catalog.UpdateMenuItem(ctx, item); err != nil {
		return markWriteErr(err)
	}
	return nil
}

func (c *catalogCommands) CreateDepartment(ctx context.Context, input CreateDepartmentInput) (uuid.UUID, error) {
	d, err := staff.NewDepartment(input.HotelID, input.Name)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateDepartment(ctx, d); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return d.ID(), nil
}

func (c *catalogCommands) CreateStaff(ctx context.Context, input CreateStaffInput) (uuid.UUID, error) {
	m, err := staff.NewMember(input.DepartmentID, input.Name, input.Title, input.Phone)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateStaff(ctx, m); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return m.ID(), nil
}

func (c *catalogCommands) DeactivateStaff(ctx context.Context, id uuid.UUID) error {
	if err := c.catalog.DeactivateStaff(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrStaffNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *catalogCommands) CreateAgent(ctx context.Context, input CreateAgentInput) (uuid.UUID, error) {
	a, err := staff.NewAgent(input.Name, input.Agency, input.CommissionPercent)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	if err := c.catalog.CreateAgent(ctx, a); err != nil {
		return uuid.Nil, markWriteErr(err)
	}
	return a.ID(), nil
}

func markWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
