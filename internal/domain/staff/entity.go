package staff

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("name cannot be empty")
	ErrInvalidCommission = errors.New("commission percent must be between 0 and 100")
)

type Department struct {
	id        uuid.UUID
	hotelID   uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewDepartment(hotelID uuid.UUID, name string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Department{
		id:      uuid.New(),
		hotelID: hotelID,
		name:    name,
	}, nil
}

func ReconstructDepartment(id, hotelID uuid.UUID, name string, createdAt, updatedAt time.Time) *Department {
	return &Department{
		id:        id,
		hotelID:   hotelID,
		name:      name,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (d *Department) ID() uuid.UUID        { return d.id }
func (d *Department) HotelID() uuid.UUID   { return d.hotelID }
func (d *Department) Name() string         { return d.name }
func (d *Department) CreatedAt() time.Time { return d.createdAt }
func (d *Department) UpdatedAt() time.Time { return d.updatedAt }

type Member struct {
	id           uuid.UUID
	departmentID uuid.UUID
	name         string
	title        string
	phone        string
	active       bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewMember(departmentID uuid.UUID, name, title, phone string) (*Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Member{
		id:           uuid.New(),
		departmentID: departmentID,
		name:         name,
		title:        title,
		phone:        phone,
		active:       true,
	}, nil
}

func ReconstructMember(id, departmentID uuid.UUID, name, title, phone string, active bool, createdAt, updatedAt time.Time) *Member {
	return &Member{
		id:           id,
		departmentID: departmentID,
		name:         name,
		title:        title,
		phone:        phone,
		active:       active,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (m *Member) Deactivate() {
	m.active = false
}

func (m *Member) ID() uuid.UUID           { return m.id }
func (m *Member) DepartmentID() uuid.UUID { return m.departmentID }
func (m *Member) Name() string            { return m.name }
func (m *Member) Title() string           { return m.title }
func (m *Member) Phone() string           { return m.phone }
func (m *Member) Active() bool            { return m.active }
func (m *Member) CreatedAt() time.Time    { return m.createdAt }
func (m *Member) UpdatedAt() time.Time    { return m.updatedAt }

// Agent is a booking agent paid a percentage commission on reservations they
// bring in.
type Agent struct {
	id                uuid.UUID
	name              string
	agency            string
	commissionPercent float64
	createdAt         time.Time
	updatedAt         time.Time
}

func NewAgent(name, agency string, commissionPercent float64) (*Agent, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if commissionPercent < 0 || commissionPercent > 100 {
		return nil, ErrInvalidCommission
	}
	return &Agent{
		id:                uuid.New(),
		name:              name,
		agency:            agency,
		commissionPercent: commissionPercent,
	}, nil
}

func ReconstructAgent(id uuid.UUID, name, agency string, commissionPercent float64, createdAt, updatedAt time.Time) *Agent {
	return &Agent{
		id:                id,
		name:              name,
		agency:            agency,
		commissionPercent: commissionPercent,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func (a *Agent) ID() uuid.UUID              { return a.id }
func (a *Agent) Name() string               { return a.name }
func (a *Agent) Agency() string             { return a.agency }
func (a *Agent) CommissionPercent() float64 { return a.commissionPercent }
func (a *Agent) CreatedAt() time.Time       { return a.createdAt }
func (a *Agent) UpdatedAt() time.Time       { return a.updatedAt }
