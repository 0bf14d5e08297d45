package readstore

import (
	"context"

	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// CatalogReadStore serves the property and staffing read models: hotels,
// rooms, restaurants, menu items, departments, staff and booking agents.
type CatalogReadStore struct {
	db db.DBTX
}

func NewCatalogReadStore(dbtx db.DBTX) *CatalogReadStore {
	return &CatalogReadStore{db: dbtx}
}

func (s *CatalogReadStore) FindHotelByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	q := `SELECT id, name, city, address, owner_id, created_at, updated_at
		FROM hotels WHERE id = $1`

	var (
		v                queries.HotelView
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.Name, &v.City, &v.Address, &v.OwnerID,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find hotel by ID", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

func (s *CatalogReadStore) ListHotels(ctx context.Context, ownerID *uuid.UUID) ([]*queries.HotelView, error) {
	q := `SELECT id, name, city, address, owner_id, created_at, updated_at
		FROM hotels
		WHERE $1::uuid IS NULL OR owner_id = $1
		ORDER BY name`

	rows, err := s.db.Query(ctx, q, pgconv.UUIDPtrToPgtype(ownerID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	defer rows.Close()

	var result []*queries.HotelView
	for rows.Next() {
		var (
			v                queries.HotelView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.City, &v.Address, &v.OwnerID, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) FindRoomByID(ctx context.Context, id uuid.UUID) (*queries.RoomView, error) {
	q := `SELECT id, hotel_id, number, room_type, nightly_rate_cents, status, created_at, updated_at
		FROM rooms WHERE id = $1`

	var (
		v                queries.RoomView
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.HotelID, &v.Number, &v.RoomType, &v.NightlyRateCents, &v.Status,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

func (s *CatalogReadStore) ListRoomsByHotel(ctx context.Context, hotelID uuid.UUID, status string) ([]*queries.RoomView, error) {
	q := `SELECT id, hotel_id, number, room_type, nightly_rate_cents, status, created_at, updated_at
		FROM rooms
		WHERE hotel_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY number`

	rows, err := s.db.Query(ctx, q, hotelID, status)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	var result []*queries.RoomView
	for rows.Next() {
		var (
			v                queries.RoomView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.HotelID, &v.Number, &v.RoomType, &v.NightlyRateCents, &v.Status, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) FindRestaurantByID(ctx context.Context, id uuid.UUID) (*queries.RestaurantView, error) {
	q := `SELECT id, name, hotel_id, cuisine, created_at, updated_at
		FROM restaurants WHERE id = $1`

	var (
		v                queries.RestaurantView
		hotelID          pgtype.UUID
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(&v.ID, &v.Name, &hotelID, &v.Cuisine, &created, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("restaurant not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find restaurant by ID", err)
	}
	v.HotelID = pgconv.UUIDPtrFromPgtype(hotelID)
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

func (s *CatalogReadStore) ListRestaurants(ctx context.Context, hotelID *uuid.UUID) ([]*queries.RestaurantView, error) {
	q := `SELECT id, name, hotel_id, cuisine, created_at, updated_at
		FROM restaurants
		WHERE $1::uuid IS NULL OR hotel_id = $1
		ORDER BY name`

	rows, err := s.db.Query(ctx, q, pgconv.UUIDPtrToPgtype(hotelID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list restaurants", err)
	}
	defer rows.Close()

	var result []*queries.RestaurantView
	for rows.Next() {
		var (
			v                queries.RestaurantView
			hid              pgtype.UUID
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Name, &hid, &v.Cuisine, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan restaurant row", err)
		}
		v.HotelID = pgconv.UUIDPtrFromPgtype(hid)
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate restaurant rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) FindMenuItemByID(ctx context.Context, id uuid.UUID) (*queries.MenuItemView, error) {
	q := `SELECT id, restaurant_id, name, category, price_cents, available, created_at, updated_at
		FROM menu_items WHERE id = $1`

	var (
		v                queries.MenuItemView
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.RestaurantID, &v.Name, &v.Category, &v.PriceCents, &v.Available,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find menu item by ID", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

func (s *CatalogReadStore) ListMenuItems(ctx context.Context, restaurantID uuid.UUID, onlyAvailable bool) ([]*queries.MenuItemView, error) {
	q := `SELECT id, restaurant_id, name, category, price_cents, available, created_at, updated_at
		FROM menu_items
		WHERE restaurant_id = $1 AND (NOT $2 OR available)
		ORDER BY category, name`

	rows, err := s.db.Query(ctx, q, restaurantID, onlyAvailable)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var result []*queries.MenuItemView
	for rows.Next() {
		var (
			v                queries.MenuItemView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.RestaurantID, &v.Name, &v.Category, &v.PriceCents, &v.Available, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu item rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) ListDepartmentsByHotel(ctx context.Context, hotelID uuid.UUID) ([]*queries.DepartmentView, error) {
	q := `SELECT id, hotel_id, name, created_at, updated_at
		FROM departments
		WHERE hotel_id = $1
		ORDER BY name`

	rows, err := s.db.Query(ctx, q, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list departments", err)
	}
	defer rows.Close()

	var result []*queries.DepartmentView
	for rows.Next() {
		var (
			v                queries.DepartmentView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.HotelID, &v.Name, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan department row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate department rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) FindStaffByID(ctx context.Context, id uuid.UUID) (*queries.StaffView, error) {
	q := `SELECT id, department_id, name, title, phone, active, created_at, updated_at
		FROM staff_members WHERE id = $1`

	var (
		v                queries.StaffView
		created, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.DepartmentID, &v.Name, &v.Title, &v.Phone, &v.Active,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("staff member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find staff member by ID", err)
	}
	v.CreatedAt = pgconv.TimeFromPgtype(created)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)
	return &v, nil
}

func (s *CatalogReadStore) ListStaffByDepartment(ctx context.Context, departmentID uuid.UUID) ([]*queries.StaffView, error) {
	q := `SELECT id, department_id, name, title, phone, active, created_at, updated_at
		FROM staff_members
		WHERE department_id = $1
		ORDER BY name`

	rows, err := s.db.Query(ctx, q, departmentID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff members", err)
	}
	defer rows.Close()

	var result []*queries.StaffView
	for rows.Next() {
		var (
			v                queries.StaffView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.DepartmentID, &v.Name, &v.Title, &v.Phone, &v.Active, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate staff rows", err)
	}
	return result, nil
}

func (s *CatalogReadStore) ListAgents(ctx context.Context) ([]*queries.AgentView, error) {
	q := `SELECT id, name, agency, commission_percent, created_at, updated_at
		FROM agents
		ORDER BY name`

	rows, err := s.db.Query(ctx, q)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list agents", err)
	}
	defer rows.Close()

	var result []*queries.AgentView
	for rows.Next() {
		var (
			v                queries.AgentView
			created, updated pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.Agency, &v.CommissionPercent, &created, &updated); err != nil {
			return nil, infra.WrapRepoErr("failed to scan agent row", err)
		}
		v.CreatedAt = pgconv.TimeFromPgtype(created)
		v.UpdatedAt = pgconv.TimeFromPgtype(updated)
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate agent rows", err)
	}
	return result, nil
}
