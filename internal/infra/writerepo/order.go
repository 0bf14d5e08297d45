package writerepo

import (
	"context"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/order"
	"hoteldesk/internal/infra"
	"hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderRepository struct {
	db db.DBTX
}

func NewOrderRepository(dbtx db.DBTX) *OrderRepository {
	return &OrderRepository{db: dbtx}
}

func (r *OrderRepository) Create(ctx context.Context, o *order.Order, pricing order.Pricing) error {
	q := `INSERT INTO orders (
			id, restaurant_id, staff_id, table_number, status,
			discount_percent, tax_percent
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, q,
		o.ID(), o.RestaurantID(), o.StaffID(), o.TableNumber(), o.Status().String(),
		pricing.DiscountPercent, pricing.TaxPercent,
	)
	if err != nil {
		return wrapConstraintErr("failed to create order", err)
	}
	return nil
}

// Save persists the order header and replaces its lines. Line rows are
// rewritten wholesale; per-line diffing is not worth the bookkeeping at POS
// ticket sizes.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	headerQ := `UPDATE orders SET
			status = $2, tendered_cents = $3, change_cents = $4, updated_at = now()
		WHERE id = $1`

	var tendered, change pgtype.Int8
	if s := o.Settlement(); s != nil {
		tendered = pgtype.Int8{Int64: s.Tendered.Cents(), Valid: true}
		change = pgtype.Int8{Int64: s.Change.Cents(), Valid: true}
	}

	tag, err := r.db.Exec(ctx, headerQ, o.ID(), o.Status().String(), tendered, change)
	if err != nil {
		return infra.WrapRepoErr("failed to update order", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}

	if _, err := r.db.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, o.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear order lines", err)
	}

	lineQ := `INSERT INTO order_lines (order_id, position, item_id, name, unit_price_cents, quantity, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	for i, line := range o.Lines() {
		if _, err := r.db.Exec(ctx, lineQ,
			o.ID(), i, line.ItemID(), line.Name(), line.UnitPrice().Cents(), line.Quantity(), line.Note(),
		); err != nil {
			return infra.WrapRepoErr("failed to insert order line", err)
		}
	}
	return nil
}

func (r *OrderRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, order.Pricing, error) {
	q := `SELECT id, restaurant_id, staff_id, table_number, status,
			discount_percent, tax_percent, tendered_cents, change_cents,
			created_at, updated_at
		FROM orders
		WHERE id = $1
		FOR UPDATE`

	var (
		oid, restaurantID, staffID uuid.UUID
		tableNumber                int
		status                     string
		pricing                    order.Pricing
		tendered, change           pgtype.Int8
		created, updated           pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, q, id).Scan(
		&oid, &restaurantID, &staffID, &tableNumber, &status,
		&pricing.DiscountPercent, &pricing.TaxPercent, &tendered, &change,
		&created, &updated,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, order.Pricing{}, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, order.Pricing{}, infra.WrapRepoErr("failed to load order", err)
	}

	lines, err := r.loadLines(ctx, oid)
	if err != nil {
		return nil, order.Pricing{}, err
	}

	totals := billing.PriceCart(lines, pricing.DiscountPercent, pricing.TaxPercent)

	var settlement *billing.Settlement
	if tendered.Valid && change.Valid {
		settlement = &billing.Settlement{
			Total:    totals.Total,
			Tendered: billing.NewMoney(tendered.Int64),
			Change:   billing.NewMoney(change.Int64),
		}
	}
	o, err := order.ReconstructOrder(oid, restaurantID, staffID, tableNumber,
		order.Status(status), lines, totals, settlement,
		pgconv.TimeFromPgtype(created), pgconv.TimeFromPgtype(updated))
	if err != nil {
		return nil, order.Pricing{}, infra.WrapRepoErr("invalid persisted order", err)
	}
	return o, pricing, nil
}

func (r *OrderRepository) loadLines(ctx context.Context, orderID uuid.UUID) ([]billing.CartLine, error) {
	q := `SELECT item_id, name, unit_price_cents, quantity, note
		FROM order_lines
		WHERE order_id = $1
		ORDER BY position`

	rows, err := r.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load order lines", err)
	}
	defer rows.Close()

	var lines []billing.CartLine
	for rows.Next() {
		var (
			itemID     uuid.UUID
			name, note string
			priceCents int64
			quantity   int
		)
		if err := rows.Scan(&itemID, &name, &priceCents, &quantity, &note); err != nil {
			return nil, infra.WrapRepoErr("failed to scan order line", err)
		}
		line, err := billing.NewCartLine(itemID, name, billing.NewMoney(priceCents), quantity, note)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid persisted order line", err)
		}
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate order lines", err)
	}
	return lines, nil
}
