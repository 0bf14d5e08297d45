package readstore

import (
	"context"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"
	"hoteldesk/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(dbtx db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: dbtx}
}

func (s *OrderReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrderView, error) {
	q := `SELECT id, restaurant_id, staff_id, table_number, status,
			discount_percent, tax_percent, tendered_cents, change_cents,
			created_at, updated_at
		FROM orders
		WHERE id = $1`

	var (
		v                  queries.OrderView
		discount, tax      float64
		tendered, change   pgtype.Int8
		createdAt, updated pgtype.Timestamptz
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&v.ID, &v.RestaurantID, &v.StaffID, &v.TableNumber, &v.Status,
		&discount, &tax, &tendered, &change,
		&createdAt, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find order by ID", err)
	}

	v.TenderedCents = pgconv.Int64PtrFromPgtype(tendered)
	v.ChangeCents = pgconv.Int64PtrFromPgtype(change)
	v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	v.UpdatedAt = pgconv.TimeFromPgtype(updated)

	lines, cartLines, err := s.loadLines(ctx, id)
	if err != nil {
		return nil, err
	}
	v.Lines = lines

	totals := billing.PriceCart(cartLines, discount, tax)
	v.SubtotalCents = totals.Subtotal.Cents()
	v.DiscountCents = totals.DiscountAmount.Cents()
	v.TaxCents = totals.TaxAmount.Cents()
	v.TotalCents = totals.Total.Cents()

	return &v, nil
}

func (s *OrderReadStore) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status string, limit, offset int32) ([]*queries.OrderView, error) {
	q := `SELECT id FROM orders
		WHERE restaurant_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`

	rows, err := s.db.Query(ctx, q, restaurantID, status, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order row", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order rows", err)
	}

	result := make([]*queries.OrderView, 0, len(ids))
	for _, id := range ids {
		view, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, nil
}

func (s *OrderReadStore) loadLines(ctx context.Context, orderID uuid.UUID) ([]queries.OrderLineView, []billing.CartLine, error) {
	q := `SELECT item_id, name, unit_price_cents, quantity, note
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position`

	rows, err := s.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to load order lines", err)
	}
	defer rows.Close()

	var (
		views []queries.OrderLineView
		cart  []billing.CartLine
	)
	for rows.Next() {
		var lv queries.OrderLineView
		if err := rows.Scan(&lv.ItemID, &lv.Name, &lv.UnitPriceCents, &lv.Quantity, &lv.Note); err != nil {
			return nil, nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		views = append(views, lv)

		cl, err := billing.NewCartLine(lv.ItemID, lv.Name, billing.NewMoney(lv.UnitPriceCents), lv.Quantity, lv.Note)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("invalid persisted order line", err)
		}
		cart = append(cart, cl)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}

	return views, cart, nil
}
