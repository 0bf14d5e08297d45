package hotel

import (
	"errors"
	"strings"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("hotel name cannot be empty")
	ErrEmptyRoomNumber   = errors.New("room number cannot be empty")
	ErrNegativeRate      = errors.New("nightly rate cannot be negative")
	ErrInvalidRoomStatus = errors.New("invalid room status")
)

type Hotel struct {
	id        uuid.UUID
	name      string
	city      string
	address   string
	ownerID   uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(name, city, address string, ownerID uuid.UUID) (*Hotel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Hotel{
		id:      uuid.New(),
		name:    name,
		city:    city,
		address: address,
		ownerID: ownerID,
	}, nil
}

func ReconstructHotel(id uuid.UUID, name, city, address string, ownerID uuid.UUID, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		name:      name,
		city:      city,
		address:   address,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (h *Hotel) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	h.name = name
	return nil
}

func (h *Hotel) ID() uuid.UUID        { return h.id }
func (h *Hotel) Name() string         { return h.name }
func (h *Hotel) City() string         { return h.city }
func (h *Hotel) Address() string      { return h.address }
func (h *Hotel) OwnerID() uuid.UUID   { return h.ownerID }
func (h *Hotel) CreatedAt() time.Time { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time { return h.updatedAt }

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

func (s RoomStatus) IsValid() bool {
	switch s {
	case RoomAvailable, RoomOccupied, RoomMaintenance:
		return true
	default:
		return false
	}
}

func (s RoomStatus) String() string {
	return string(s)
}

type Room struct {
	id          uuid.UUID
	hotelID     uuid.UUID
	number      string
	roomType    string
	nightlyRate billing.Money
	status      RoomStatus
	createdAt   time.Time
	updatedAt   time.Time
}

func NewRoom(hotelID uuid.UUID, number, roomType string, nightlyRate billing.Money) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if nightlyRate.Cents() < 0 {
		return nil, ErrNegativeRate
	}
	return &Room{
		id:          uuid.New(),
		hotelID:     hotelID,
		number:      number,
		roomType:    roomType,
		nightlyRate: nightlyRate,
		status:      RoomAvailable,
	}, nil
}

func ReconstructRoom(id, hotelID uuid.UUID, number, roomType string, nightlyRate billing.Money, status RoomStatus, createdAt, updatedAt time.Time) (*Room, error) {
	if !status.IsValid() {
		return nil, ErrInvalidRoomStatus
	}
	return &Room{
		id:          id,
		hotelID:     hotelID,
		number:      number,
		roomType:    roomType,
		nightlyRate: nightlyRate,
		status:      status,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (r *Room) SetStatus(status RoomStatus) error {
	if !status.IsValid() {
		return ErrInvalidRoomStatus
	}
	r.status = status
	return nil
}

func (r *Room) SetNightlyRate(rate billing.Money) error {
	if rate.Cents() < 0 {
		return ErrNegativeRate
	}
	r.nightlyRate = rate
	return nil
}

func (r *Room) ID() uuid.UUID              { return r.id }
func (r *Room) HotelID() uuid.UUID         { return r.hotelID }
func (r *Room) Number() string             { return r.number }
func (r *Room) RoomType() string           { return r.roomType }
func (r *Room) NightlyRate() billing.Money { return r.nightlyRate }
func (r *Room) Status() RoomStatus         { return r.status }
func (r *Room) CreatedAt() time.Time       { return r.createdAt }
func (r *Room) UpdatedAt() time.Time       { return r.updatedAt }
