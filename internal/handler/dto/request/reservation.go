package request

import (
	"time"

	"hoteldesk/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	HotelID         uuid.UUID  `json:"hotel_id" binding:"required"`
	RoomID          uuid.UUID  `json:"room_id" binding:"required"`
	AgentID         *uuid.UUID `json:"agent_id,omitempty"`
	GuestName       string     `json:"guest_name" binding:"required"`
	GuestEmail      string     `json:"guest_email" binding:"omitempty,email"`
	GuestPhone      string     `json:"guest_phone"`
	IDDocument      string     `json:"id_document"`
	CheckInDate     time.Time  `json:"check_in_date" binding:"required"`
	CheckOutDate    time.Time  `json:"check_out_date" binding:"required"`
	Adults          int        `json:"adults" binding:"required,min=1"`
	Children        int        `json:"children" binding:"min=0"`
	BaseRateCents   *int64     `json:"base_rate_cents,omitempty" binding:"omitempty,min=0"`
	ExtraCents      int64      `json:"extra_charges_cents" binding:"min=0"`
	DiscountCents   int64      `json:"discount_cents" binding:"min=0"`
	DepositCents    int64      `json:"deposit_cents" binding:"min=0"`
	SpecialRequests string     `json:"special_requests"`
	Notes           string     `json:"notes"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		HotelID:         r.HotelID,
		RoomID:          r.RoomID,
		AgentID:         r.AgentID,
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		IDDocument:      r.IDDocument,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		Adults:          r.Adults,
		Children:        r.Children,
		BaseRateCents:   r.BaseRateCents,
		ExtraCents:      r.ExtraCents,
		DiscountCents:   r.DiscountCents,
		DepositCents:    r.DepositCents,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}
}

type UpdateReservationRequest struct {
	GuestName       *string    `json:"guest_name,omitempty"`
	GuestEmail      *string    `json:"guest_email,omitempty" binding:"omitempty,email"`
	GuestPhone      *string    `json:"guest_phone,omitempty"`
	IDDocument      *string    `json:"id_document,omitempty"`
	CheckInDate     *time.Time `json:"check_in_date,omitempty"`
	CheckOutDate    *time.Time `json:"check_out_date,omitempty"`
	Adults          *int       `json:"adults,omitempty" binding:"omitempty,min=1"`
	Children        *int       `json:"children,omitempty" binding:"omitempty,min=0"`
	RoomID          *uuid.UUID `json:"room_id,omitempty"`
	BaseRateCents   *int64     `json:"base_rate_cents,omitempty" binding:"omitempty,min=0"`
	ExtraCents      *int64     `json:"extra_charges_cents,omitempty" binding:"omitempty,min=0"`
	DiscountCents   *int64     `json:"discount_cents,omitempty" binding:"omitempty,min=0"`
	DepositCents    *int64     `json:"deposit_cents,omitempty" binding:"omitempty,min=0"`
	SpecialRequests *string    `json:"special_requests,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		GuestName:       r.GuestName,
		GuestEmail:      r.GuestEmail,
		GuestPhone:      r.GuestPhone,
		IDDocument:      r.IDDocument,
		CheckInDate:     r.CheckInDate,
		CheckOutDate:    r.CheckOutDate,
		Adults:          r.Adults,
		Children:        r.Children,
		RoomID:          r.RoomID,
		BaseRateCents:   r.BaseRateCents,
		ExtraCents:      r.ExtraCents,
		DiscountCents:   r.DiscountCents,
		DepositCents:    r.DepositCents,
		SpecialRequests: r.SpecialRequests,
		Notes:           r.Notes,
	}
}
