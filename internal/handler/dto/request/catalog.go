package request

import (
	"hoteldesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	City    string `json:"city" binding:"required"`
	Address string `json:"address" binding:"required"`
}

type UpdateHotelRequest struct {
	Name    *string `json:"name,omitempty"`
	City    *string `json:"city,omitempty"`
	Address *string `json:"address,omitempty"`
}

type CreateRoomRequest struct {
	Number           string `json:"number" binding:"required"`
	RoomType         string `json:"room_type" binding:"required"`
	NightlyRateCents int64  `json:"nightly_rate_cents" binding:"required,min=0"`
}

type UpdateRoomRequest struct {
	RoomType         *string `json:"room_type,omitempty"`
	NightlyRateCents *int64  `json:"nightly_rate_cents,omitempty" binding:"omitempty,min=0"`
	Status           *string `json:"status,omitempty" binding:"omitempty,oneof=available occupied maintenance"`
}

type CreateRestaurantRequest struct {
	Name    string     `json:"name" binding:"required"`
	HotelID *uuid.UUID `json:"hotel_id,omitempty"`
	Cuisine string     `json:"cuisine"`
}

type CreateMenuItemRequest struct {
	Name       string `json:"name" binding:"required"`
	Category   string `json:"category" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required,min=0"`
}

type UpdateMenuItemRequest struct {
	Name       *string `json:"name,omitempty"`
	Category   *string `json:"category,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty" binding:"omitempty,min=0"`
	Available  *bool   `json:"available,omitempty"`
}

type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateStaffRequest struct {
	DepartmentID uuid.UUID `json:"department_id" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Title        string    `json:"title"`
	Phone        string    `json:"phone"`
}

type CreateAgentRequest struct {
	Name              string  `json:"name" binding:"required"`
	Agency            string  `json:"agency"`
	CommissionPercent float64 `json:"commission_percent" binding:"min=0,max=100"`
}

func (r CreateStaffRequest) ToInput() commands.CreateStaffInput {
	return commands.CreateStaffInput{
		DepartmentID: r.DepartmentID,
		Name:         r.Name,
		Title:        r.Title,
		Phone:        r.Phone,
	}
}
