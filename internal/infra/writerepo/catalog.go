package writerepo

import (
	"context"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/hotel"
	"hoteldesk/internal/domain/restaurant"
	"hoteldesk/internal/domain/staff"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CatalogRepository persists the property and staffing aggregates. The
// entities share one repository because the catalog commands mutate them in
// the same small CRUD shapes.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(dbtx db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: dbtx}
}

func (r *CatalogRepository) CreateHotel(ctx context.Context, h *hotel.Hotel) error {
	q := `INSERT INTO hotels (id, name, city, address, owner_id)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, q, h.ID(), h.Name(), h.City(), h.Address(), h.OwnerID())
	if err != nil {
		return wrapConstraintErr("failed to create hotel", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateHotel(ctx context.Context, h *hotel.Hotel) error {
	q := `UPDATE hotels SET name = $2, city = $3, address = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, h.ID(), h.Name(), h.City(), h.Address())
	if err != nil {
		return wrapConstraintErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindHotel(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	q := `SELECT id, name, city, address, owner_id, created_at, updated_at
		FROM hotels WHERE id = $1`

	var (
		hid, ownerID        uuid.UUID
		name, city, address string
		created, updated    pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(&hid, &name, &city, &address, &ownerID, &created, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load hotel", err)
	}
	return hotel.ReconstructHotel(hid, name, city, address, ownerID,
		pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(updated)), nil
}

func (r *CatalogRepository) CreateRoom(ctx context.Context, rm *hotel.Room) error {
	q := `INSERT INTO rooms (id, hotel_id, number, room_type, nightly_rate_cents, status)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, q,
		rm.ID(), rm.HotelID(), rm.Number(), rm.RoomType(), rm.NightlyRate().Cents(), rm.Status().String())
	if err != nil {
		return wrapConstraintErr("failed to create room", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateRoom(ctx context.Context, rm *hotel.Room) error {
	q := `UPDATE rooms SET room_type = $2, nightly_rate_cents = $3, status = $4, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, rm.ID(), rm.RoomType(), rm.NightlyRate().Cents(), rm.Status().String())
	if err != nil {
		return wrapConstraintErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindRoom(ctx context.Context, id uuid.UUID) (*hotel.Room, error) {
	q := `SELECT id, hotel_id, number, room_type, nightly_rate_cents, status, created_at, updated_at
		FROM rooms WHERE id = $1`

	var (
		rid, hotelID     uuid.UUID
		number, roomType string
		rateCents        int64
		status           string
		created, updated pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&rid, &hotelID, &number, &roomType, &rateCents, &status, &created, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load room", err)
	}

	rm, err := hotel.ReconstructRoom(rid, hotelID, number, roomType,
		billing.NewMoney(rateCents), hotel.RoomStatus(status),
		pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(updated))
	if err != nil {
		return nil, infra.WrapRepoErr("invalid persisted room", err)
	}
	return rm, nil
}

func (r *CatalogRepository) CreateRestaurant(ctx context.Context, rst *restaurant.Restaurant) error {
	q := `INSERT INTO restaurants (id, name, hotel_id, cuisine)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, q, rst.ID(), rst.Name(), pgconv.UUIDPtrToPgtype(rst.HotelID()), rst.Cuisine())
	if err != nil {
		return wrapConstraintErr("failed to create restaurant", err)
	}
	return nil
}

// FindRestaurantHotel resolves the hotel a restaurant belongs to; nil for a
// standalone restaurant.
func (r *CatalogRepository) FindRestaurantHotel(ctx context.Context, restaurantID uuid.UUID) (*uuid.UUID, error) {
	var hotelID pgtype.UUID
	err := r.db.QueryRow(ctx, `SELECT hotel_id FROM restaurants WHERE id = $1`, restaurantID).Scan(&hotelID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve restaurant hotel", err)
	}
	return pgconv.UUIDPtrFromPgtype(hotelID), nil
}

func (r *CatalogRepository) CreateMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	q := `INSERT INTO menu_items (id, restaurant_id, name, category, price_cents, available)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, q,
		item.ID(), item.RestaurantID(), item.Name(), item.Category(), item.Price().Cents(), item.Available())
	if err != nil {
		return wrapConstraintErr("failed to create menu item", err)
	}
	return nil
}

func (r *CatalogRepository) UpdateMenuItem(ctx context.Context, item *restaurant.MenuItem) error {
	q := `UPDATE menu_items SET name = $2, category = $3, price_cents = $4, available = $5, updated_at = now()
		WHERE id = $1`
	tag, err := r.db.Exec(ctx, q,
		item.ID(), item.Name(), item.Category(), item.Price().Cents(), item.Available())
	if err != nil {
		return wrapConstraintErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindMenuItem(ctx context.Context, id uuid.UUID) (*restaurant.MenuItem, error) {
	q := `SELECT id, restaurant_id, name, category, price_cents, available, created_at, updated_at
		FROM menu_items WHERE id = $1`

	var (
		mid, restaurantID uuid.UUID
		name, category    string
		priceCents        int64
		available         bool
		created, updated  pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&mid, &restaurantID, &name, &category, &priceCents, &available, &created, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load menu item", err)
	}
	return restaurant.ReconstructMenuItem(mid, restaurantID, name, category,
		billing.NewMoney(priceCents), available,
		pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(updated)), nil
}

func (r *CatalogRepository) CreateDepartment(ctx context.Context, d *staff.Department) error {
	q := `INSERT INTO departments (id, hotel_id, name) VALUES ($1, $2, $3)`
	_, err := r.db.Exec(ctx, q, d.ID(), d.HotelID(), d.Name())
	if err != nil {
		return wrapConstraintErr("failed to create department", err)
	}
	return nil
}

func (r *CatalogRepository) CreateStaff(ctx context.Context, m *staff.Member) error {
	q := `INSERT INTO staff_members (id, department_id, name, title, phone, active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, q, m.ID(), m.DepartmentID(), m.Name(), m.Title(), m.Phone(), m.Active())
	if err != nil {
		return wrapConstraintErr("failed to create staff member", err)
	}
	return nil
}

func (r *CatalogRepository) DeactivateStaff(ctx context.Context, id uuid.UUID) error {
	q := `UPDATE staff_members SET active = false, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate staff member", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("staff member not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateAgent(ctx context.Context, a *staff.Agent) error {
	q := `INSERT INTO agents (id, name, agency, commission_percent)
		VALUES ($1, $2, $3, $4)`
	_, err := r.db.Exec(ctx, q, a.ID(), a.Name(), a.Agency(), a.CommissionPercent())
	if err != nil {
		return wrapConstraintErr("failed to create agent", err)
	}
	return nil
}
