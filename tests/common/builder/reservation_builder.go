//go:build unit || e2e

package builder

import (
	"time"

	"hoteldesk/internal/domain/reservation"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	RoomID        uuid.UUID
	RoomNumber    string
	GuestName     string
	GuestEmail    string
	CheckInDate   time.Time
	CheckOutDate  time.Time
	Adults        int
	Children      int
	Status        reservation.Status
	BaseRateCents int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	checkIn := now.AddDate(0, 0, 7).Truncate(24 * time.Hour)
	return &ReservationBuilder{
		ID:            uuid.New(),
		HotelID:       uuid.New(),
		RoomID:        uuid.New(),
		RoomNumber:    "101",
		GuestName:     "Ada Lovelace",
		GuestEmail:    "ada@example.com",
		CheckInDate:   checkIn,
		CheckOutDate:  checkIn.AddDate(0, 0, 3),
		Adults:        2,
		Children:      0,
		Status:        reservation.StatusConfirmed,
		BaseRateCents: 15000,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

// BuildCreateRequestBody returns the create request as a mutable JSON map so
// tests can knock out or distort individual fields.
func (b *ReservationBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"hotel_id":       b.HotelID.String(),
		"room_id":        b.RoomID.String(),
		"guest_name":     b.GuestName,
		"guest_email":    b.GuestEmail,
		"check_in_date":  b.CheckInDate.Format(time.RFC3339),
		"check_out_date": b.CheckOutDate.Format(time.RFC3339),
		"adults":         b.Adults,
		"children":       b.Children,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	nights := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	var editable []string
	for _, f := range reservation.EditableFields(b.Status) {
		editable = append(editable, f.String())
	}
	return &queries.ReservationView{
		ID:             b.ID,
		HotelID:        b.HotelID,
		RoomID:         b.RoomID,
		RoomNumber:     b.RoomNumber,
		GuestName:      b.GuestName,
		GuestEmail:     b.GuestEmail,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		Nights:         nights,
		Adults:         b.Adults,
		Children:       b.Children,
		Status:         string(b.Status),
		BaseRateCents:  b.BaseRateCents,
		TotalCents:     b.BaseRateCents * int64(nights),
		EditableFields: editable,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	nights := int(b.CheckOutDate.Sub(b.CheckInDate).Hours() / 24)
	return &queries.ReservationListItem{
		ID:           b.ID,
		RoomNumber:   b.RoomNumber,
		GuestName:    b.GuestName,
		CheckInDate:  b.CheckInDate,
		CheckOutDate: b.CheckOutDate,
		Status:       string(b.Status),
		TotalCents:   b.BaseRateCents * int64(nights),
		CreatedAt:    b.CreatedAt,
	}
}
