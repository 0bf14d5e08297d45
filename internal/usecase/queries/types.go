package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	HotelID         uuid.UUID  `json:"hotel_id"`
	RoomID          uuid.UUID  `json:"room_id"`
	RoomNumber      string     `json:"room_number"`
	AgentID         *uuid.UUID `json:"agent_id,omitempty"`
	GuestName       string     `json:"guest_name"`
	GuestEmail      string     `json:"guest_email"`
	GuestPhone      string     `json:"guest_phone"`
	IDDocument      string     `json:"id_document"`
	CheckInDate     time.Time  `json:"check_in_date"`
	CheckOutDate    time.Time  `json:"check_out_date"`
	Nights          int        `json:"nights"`
	Adults          int        `json:"adults"`
	Children        int        `json:"children"`
	Status          string     `json:"status"`
	BaseRateCents   int64      `json:"base_rate_cents"`
	ExtraCents      int64      `json:"extra_charges_cents"`
	DiscountCents   int64      `json:"discount_cents"`
	TaxCents        int64      `json:"tax_cents"`
	TotalCents      int64      `json:"total_cents"`
	DepositCents    int64      `json:"deposit_cents"`
	SpecialRequests string     `json:"special_requests"`
	Notes           string     `json:"notes"`
	EditableFields  []string   `json:"editable_fields"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	RoomNumber   string    `json:"room_number"`
	GuestName    string    `json:"guest_name"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	Status       string    `json:"status"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrderLineView struct {
	ItemID         uuid.UUID `json:"item_id"`
	Name           string    `json:"name"`
	UnitPriceCents int64     `json:"unit_price_cents"`
	Quantity       int       `json:"quantity"`
	Note           string    `json:"note,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID       `json:"id"`
	RestaurantID  uuid.UUID       `json:"restaurant_id"`
	StaffID       uuid.UUID       `json:"staff_id"`
	TableNumber   int             `json:"table_number"`
	Status        string          `json:"status"`
	Lines         []OrderLineView `json:"lines"`
	SubtotalCents int64           `json:"subtotal_cents"`
	DiscountCents int64           `json:"discount_cents"`
	TaxCents      int64           `json:"tax_cents"`
	TotalCents    int64           `json:"total_cents"`
	TenderedCents *int64          `json:"tendered_cents,omitempty"`
	ChangeCents   *int64          `json:"change_cents,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	City      string    `json:"city"`
	Address   string    `json:"address"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RoomView struct {
	ID               uuid.UUID `json:"id"`
	HotelID          uuid.UUID `json:"hotel_id"`
	Number           string    `json:"number"`
	RoomType         string    `json:"room_type"`
	NightlyRateCents int64     `json:"nightly_rate_cents"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RestaurantView struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	HotelID   *uuid.UUID `json:"hotel_id,omitempty"`
	Cuisine   string     `json:"cuisine"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

type MenuItemView struct {
	ID           uuid.UUID `json:"id"`
	RestaurantID uuid.UUID `json:"restaurant_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	PriceCents   int64     `json:"price_cents"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type DepartmentView struct {
	ID        uuid.UUID `json:"id"`
	HotelID   uuid.UUID `json:"hotel_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type StaffView struct {
	ID           uuid.UUID `json:"id"`
	DepartmentID uuid.UUID `json:"department_id"`
	Name         string    `json:"name"`
	Title        string    `json:"title"`
	Phone        string    `json:"phone"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AgentView struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Agency            string    `json:"agency"`
	CommissionPercent float64   `json:"commission_percent"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type TransactionView struct {
	ID          uuid.UUID `json:"id"`
	HotelID     uuid.UUID `json:"hotel_id"`
	Kind        string    `json:"kind"`
	AmountCents int64     `json:"amount_cents"`
	Category    string    `json:"category"`
	Reference   string    `json:"reference"`
	OccurredAt  time.Time `json:"occurred_at"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID  `json:"id"`
	Email    string     `json:"email"`
	Role     string     `json:"role"`
	HotelID  *uuid.UUID `json:"hotel_id,omitempty"`
	IsActive bool       `json:"is_active"`
}

// OccupancyReport aggregates room usage for a hotel over a date window.
type OccupancyReport struct {
	HotelID          uuid.UUID `json:"hotel_id"`
	TotalRooms       int64     `json:"total_rooms"`
	OccupiedRooms    int64     `json:"occupied_rooms"`
	OccupancyPercent float64   `json:"occupancy_percent"`
	ArrivalsToday    int64     `json:"arrivals_today"`
	DeparturesToday  int64     `json:"departures_today"`
}

// RevenueReport aggregates reservation revenue and the finance ledger.
type RevenueReport struct {
	HotelID           uuid.UUID `json:"hotel_id"`
	From              time.Time `json:"from"`
	To                time.Time `json:"to"`
	ReservationCents  int64     `json:"reservation_revenue_cents"`
	IncomeCents       int64     `json:"income_cents"`
	ExpenseCents      int64     `json:"expense_cents"`
	NetCents          int64     `json:"net_cents"`
	ReservationCount  int64     `json:"reservation_count"`
	AverageDailyCents int64     `json:"average_daily_rate_cents"`
}
