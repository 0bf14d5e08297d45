package reservation

import (
	"errors"
	"fmt"
	"time"

	"hoteldesk/internal/domain/billing"

	"github.com/google/uuid"
)

var (
	ErrFieldLocked       = errors.New("field is locked")
	ErrReservationFrozen = errors.New("reservation accepts no edits")
	ErrAlreadyCancelled  = errors.New("reservation is already cancelled")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNegativeOccupancy = errors.New("occupancy counts cannot be negative")
	ErrNoAdults          = errors.New("reservation needs at least one adult")
	ErrNegativeRate      = errors.New("base rate cannot be negative")
	ErrInvalidStatus     = errors.New("invalid reservation status")
)

// StayTaxPercent is the fixed tax rate applied to room stays.
const StayTaxPercent = 18.0

type Reservation struct {
	id              uuid.UUID
	hotelID         uuid.UUID
	roomID          uuid.UUID
	agentID         *uuid.UUID
	guestName       string
	guestEmail      string
	guestPhone      string
	idDocument      string
	dates           StayDates
	adults          int
	children        int
	baseRate        billing.Money
	extraCharges    billing.Money
	discount        billing.Money
	deposit         billing.Money
	totals          billing.StayTotals
	status          Status
	specialRequests string
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
}

type NewReservationParams struct {
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	AgentID         *uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	IDDocument      string
	Dates           StayDates
	Adults          int
	Children        int
	BaseRate        billing.Money
	ExtraCharges    billing.Money
	Discount        billing.Money
	Deposit         billing.Money
	SpecialRequests string
	Notes           string
}

// NewReservation creates a confirmed reservation and prices the stay. Totals
// are derived state: they are never set directly, only recomputed from the
// stay parameters.
func NewReservation(p NewReservationParams) (*Reservation, error) {
	if p.Adults < 1 {
		return nil, ErrNoAdults
	}
	if p.Children < 0 {
		return nil, ErrNegativeOccupancy
	}
	if p.BaseRate.Cents() < 0 {
		return nil, ErrNegativeRate
	}

	totals, err := priceStay(p.Dates, p.BaseRate, p.ExtraCharges, p.Discount)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:              uuid.New(),
		hotelID:         p.HotelID,
		roomID:          p.RoomID,
		agentID:         p.AgentID,
		guestName:       p.GuestName,
		guestEmail:      p.GuestEmail,
		guestPhone:      p.GuestPhone,
		idDocument:      p.IDDocument,
		dates:           p.Dates,
		adults:          p.Adults,
		children:        p.Children,
		baseRate:        p.BaseRate,
		extraCharges:    p.ExtraCharges,
		discount:        p.Discount,
		deposit:         p.Deposit,
		totals:          totals,
		status:          StatusConfirmed,
		specialRequests: p.SpecialRequests,
		notes:           p.Notes,
	}, nil
}

type ReconstructParams struct {
	ID              uuid.UUID
	HotelID         uuid.UUID
	RoomID          uuid.UUID
	AgentID         *uuid.UUID
	GuestName       string
	GuestEmail      string
	GuestPhone      string
	IDDocument      string
	Dates           StayDates
	Adults          int
	Children        int
	BaseRate        billing.Money
	ExtraCharges    billing.Money
	Discount        billing.Money
	Deposit         billing.Money
	Status          Status
	SpecialRequests string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func ReconstructReservation(p ReconstructParams) (*Reservation, error) {
	if !p.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	totals, err := priceStay(p.Dates, p.BaseRate, p.ExtraCharges, p.Discount)
	if err != nil {
		return nil, err
	}

	return &Reservation{
		id:              p.ID,
		hotelID:         p.HotelID,
		roomID:          p.RoomID,
		agentID:         p.AgentID,
		guestName:       p.GuestName,
		guestEmail:      p.GuestEmail,
		guestPhone:      p.GuestPhone,
		idDocument:      p.IDDocument,
		dates:           p.Dates,
		adults:          p.Adults,
		children:        p.Children,
		baseRate:        p.BaseRate,
		extraCharges:    p.ExtraCharges,
		discount:        p.Discount,
		deposit:         p.Deposit,
		totals:          totals,
		status:          p.Status,
		specialRequests: p.SpecialRequests,
		notes:           p.Notes,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
	}, nil
}

// Update carries the fields a caller wants to change; nil means untouched.
// Every non-nil field is checked against the edit policy before anything is
// applied, so a partially locked update changes nothing.
type Update struct {
	GuestName       *string
	GuestEmail      *string
	GuestPhone      *string
	IDDocument      *string
	Dates           *StayDates
	Adults          *int
	Children        *int
	RoomID          *uuid.UUID
	BaseRate        *billing.Money
	ExtraCharges    *billing.Money
	Discount        *billing.Money
	Deposit         *billing.Money
	SpecialRequests *string
	Notes           *string
}

func (u Update) touchedFields() []Field {
	var fields []Field
	add := func(cond bool, f Field) {
		if cond {
			fields = append(fields, f)
		}
	}
	add(u.GuestName != nil, FieldGuestName)
	add(u.GuestEmail != nil, FieldGuestEmail)
	add(u.GuestPhone != nil, FieldGuestPhone)
	add(u.IDDocument != nil, FieldIDDocument)
	add(u.Dates != nil, FieldCheckInDate)
	add(u.Adults != nil, FieldAdults)
	add(u.Children != nil, FieldChildren)
	add(u.RoomID != nil, FieldRoomID)
	add(u.BaseRate != nil, FieldBaseRate)
	add(u.ExtraCharges != nil, FieldExtraCharges)
	add(u.Discount != nil, FieldDiscount)
	add(u.Deposit != nil, FieldDeposit)
	add(u.SpecialRequests != nil, FieldSpecialRequests)
	add(u.Notes != nil, FieldNotes)
	return fields
}

// ApplyUpdate mutates the reservation after the edit policy clears every
// touched field. Pricing-relevant changes recompute the stay totals.
func (r *Reservation) ApplyUpdate(u Update) error {
	if !AcceptsEdits(r.status) {
		return ErrReservationFrozen
	}

	for _, f := range u.touchedFields() {
		if !CanEdit(r.status, f) {
			return fmt.Errorf("%w: %s", ErrFieldLocked, f)
		}
	}

	if u.Adults != nil && *u.Adults < 1 {
		return ErrNoAdults
	}
	if u.Children != nil && *u.Children < 0 {
		return ErrNegativeOccupancy
	}
	if u.BaseRate != nil && u.BaseRate.Cents() < 0 {
		return ErrNegativeRate
	}

	repriced := u.Dates != nil || u.BaseRate != nil || u.ExtraCharges != nil || u.Discount != nil
	if repriced {
		dates := r.dates
		if u.Dates != nil {
			dates = *u.Dates
		}
		rate := r.baseRate
		if u.BaseRate != nil {
			rate = *u.BaseRate
		}
		extras := r.extraCharges
		if u.ExtraCharges != nil {
			extras = *u.ExtraCharges
		}
		discount := r.discount
		if u.Discount != nil {
			discount = *u.Discount
		}

		totals, err := priceStay(dates, rate, extras, discount)
		if err != nil {
			return err
		}

		r.dates = dates
		r.baseRate = rate
		r.extraCharges = extras
		r.discount = discount
		r.totals = totals
	}

	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&r.guestName, u.GuestName)
	setString(&r.guestEmail, u.GuestEmail)
	setString(&r.guestPhone, u.GuestPhone)
	setString(&r.idDocument, u.IDDocument)
	setString(&r.specialRequests, u.SpecialRequests)
	setString(&r.notes, u.Notes)

	if u.Adults != nil {
		r.adults = *u.Adults
	}
	if u.Children != nil {
		r.children = *u.Children
	}
	if u.RoomID != nil {
		r.roomID = *u.RoomID
	}
	if u.Deposit != nil {
		r.deposit = *u.Deposit
	}

	return nil
}

// Cancel freezes the reservation. Allowed from any pre-checkout state.
func (r *Reservation) Cancel() error {
	switch r.status {
	case StatusCancelled:
		return ErrAlreadyCancelled
	case StatusCheckedOut:
		return ErrInvalidTransition
	default:
		r.status = StatusCancelled
		return nil
	}
}

func (r *Reservation) CheckIn() error {
	if r.status != StatusConfirmed {
		return ErrInvalidTransition
	}
	r.status = StatusCheckedIn
	return nil
}

func (r *Reservation) CheckOut() error {
	if r.status != StatusCheckedIn {
		return ErrInvalidTransition
	}
	r.status = StatusCheckedOut
	return nil
}

func (r *Reservation) IsActive() bool {
	return r.status == StatusConfirmed || r.status == StatusCheckedIn
}

func (r *Reservation) ID() uuid.UUID               { return r.id }
func (r *Reservation) HotelID() uuid.UUID          { return r.hotelID }
func (r *Reservation) RoomID() uuid.UUID           { return r.roomID }
func (r *Reservation) AgentID() *uuid.UUID         { return r.agentID }
func (r *Reservation) GuestName() string           { return r.guestName }
func (r *Reservation) GuestEmail() string          { return r.guestEmail }
func (r *Reservation) GuestPhone() string          { return r.guestPhone }
func (r *Reservation) IDDocument() string          { return r.idDocument }
func (r *Reservation) Dates() StayDates            { return r.dates }
func (r *Reservation) Adults() int                 { return r.adults }
func (r *Reservation) Children() int               { return r.children }
func (r *Reservation) BaseRate() billing.Money     { return r.baseRate }
func (r *Reservation) ExtraCharges() billing.Money { return r.extraCharges }
func (r *Reservation) Discount() billing.Money     { return r.discount }
func (r *Reservation) Deposit() billing.Money      { return r.deposit }
func (r *Reservation) Totals() billing.StayTotals  { return r.totals }
func (r *Reservation) Status() Status              { return r.status }
func (r *Reservation) SpecialRequests() string     { return r.specialRequests }
func (r *Reservation) Notes() string               { return r.notes }
func (r *Reservation) CreatedAt() time.Time        { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time        { return r.updatedAt }

func priceStay(dates StayDates, rate, extras, discount billing.Money) (billing.StayTotals, error) {
	return billing.PriceStay(rate, dates.Nights(), 1, extras, discount, StayTaxPercent)
}
