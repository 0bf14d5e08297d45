package restaurant

import (
	"errors"
	"strings"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("name cannot be empty")
	ErrNegativePrice = errors.New("price cannot be negative")
)

// Restaurant is a dining outlet, optionally attached to a hotel.
type Restaurant struct {
	id        uuid.UUID
	name      string
	hotelID   *uuid.UUID
	cuisine   string
	createdAt time.Time
	updatedAt time.Time
}

func NewRestaurant(name, cuisine string, hotelID *uuid.UUID) (*Restaurant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Restaurant{
		id:      uuid.New(),
		name:    name,
		hotelID: hotelID,
		cuisine: cuisine,
	}, nil
}

func ReconstructRestaurant(id uuid.UUID, name, cuisine string, hotelID *uuid.UUID, createdAt, updatedAt time.Time) *Restaurant {
	return &Restaurant{
		id:        id,
		name:      name,
		hotelID:   hotelID,
		cuisine:   cuisine,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Restaurant) ID() uuid.UUID        { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) HotelID() *uuid.UUID  { return r.hotelID }
func (r *Restaurant) Cuisine() string      { return r.cuisine }
func (r *Restaurant) CreatedAt() time.Time { return r.createdAt }
func (r *Restaurant) UpdatedAt() time.Time { return r.updatedAt }

type MenuItem struct {
	id           uuid.UUID
	restaurantID uuid.UUID
	name         string
	category     string
	price        billing.Money
	available    bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMenuItem(restaurantID uuid.UUID, name, category string, price billing.Money) (*MenuItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.Cents() < 0 {
		return nil, ErrNegativePrice
	}
	return &MenuItem{
		id:           uuid.New(),
		restaurantID: restaurantID,
		name:         name,
		category:     category,
		price:        price,
		available:    true,
	}, nil
}

func ReconstructMenuItem(id, restaurantID uuid.UUID, name, category string, price billing.Money, available bool, createdAt, updatedAt time.Time) *MenuItem {
	return &MenuItem{
		id:           id,
		restaurantID: restaurantID,
		name:         name,
		category:     category,
		price:        price,
		available:    available,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *MenuItem) SetPrice(price billing.Money) error {
	if price.Cents() < 0 {
		return ErrNegativePrice
	}
	m.price = price
	return nil
}

func (m *MenuItem) SetAvailable(available bool) {
	m.available = available
}

func (m *MenuItem) ID() uuid.UUID           { return m.id }
func (m *MenuItem) RestaurantID() uuid.UUID { return m.restaurantID }
func (m *MenuItem) Name() string            { return m.name }
func (m *MenuItem) Category() string        { return m.category }
func (m *MenuItem) Price() billing.Money    { return m.price }
func (m *MenuItem) Available() bool         { return m.available }
func (m *MenuItem) CreatedAt() time.Time    { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time    { return m.updatedAt }
