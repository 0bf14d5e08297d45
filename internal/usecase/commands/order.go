package commands

import (
	"context"
	"errors"
	"fmt"

	"hoteldesk/internal/domain/billing"
	"hoteldesk/internal/domain/finance"
	"hoteldesk/internal/domain/order"
	"hoteldesk/internal/infra"
	dbpkg "hoteldesk/internal/infra/db"
	"hoteldesk/internal/pkg/clock"
	"hoteldesk/internal/pkg/config"
	"hoteldesk/internal/pkg/errs"

	"github.com/google/uuid"
)

type OpenOrderInput struct {
	RestaurantID    uuid.UUID
	StaffID         uuid.UUID
	TableNumber     int
	DiscountPercent float64
}

type SetOrderLineInput struct {
	MenuItemID uuid.UUID
	Quantity   int
	Note       string
}

type CheckoutInput struct {
	TenderedCents int64
}

type CheckoutResult struct {
	TotalCents    int64
	TenderedCents int64
	ChangeCents   int64
}

type OrderCommands interface {
	Open(ctx context.Context, input OpenOrderInput) (uuid.UUID, error)
	SetLine(ctx context.Context, orderID uuid.UUID, input SetOrderLineInput) error
	Checkout(ctx context.Context, orderID uuid.UUID, input CheckoutInput) (*CheckoutResult, error)
	Void(ctx context.Context, orderID uuid.UUID) error
}

type orderCommands struct {
	orders  OrderRepository
	catalog CatalogRepository
	txm     TxManager
	repos   RepoFactory
	billing config.BillingConfig
	clk     clock.Clock
}

func NewOrderCommands(orders OrderRepository, catalog CatalogRepository, txm TxManager, repos RepoFactory, billingCfg config.BillingConfig, clk clock.Clock) OrderCommands {
	return &orderCommands{
		orders:  orders,
		catalog: catalog,
		txm:     txm,
		repos:   repos,
		billing: billingCfg,
		clk:     clk,
	}
}

func (c *orderCommands) Open(ctx context.Context, input OpenOrderInput) (uuid.UUID, error) {
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return uuid.Nil, errs.Mark(errs.New("discount percent out of range"), errs.ErrDomainValidationFailed)
	}

	o := order.NewOrder(input.RestaurantID, input.StaffID, input.TableNumber)
	pricing := order.Pricing{
		DiscountPercent: input.DiscountPercent,
		TaxPercent:      c.billing.POSTaxPercent,
	}
	if err := c.orders.Create(ctx, o, pricing); err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return uuid.Nil, errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o.ID(), nil
}

func (c *orderCommands) SetLine(ctx context.Context, orderID uuid.UUID, input SetOrderLineInput) error {
	item, err := c.catalog.FindMenuItem(ctx, input.MenuItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrMenuItemNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !item.Available() && input.Quantity > 0 {
		return errs.Mark(fmt.Errorf("menu item %s is unavailable", item.Name()), errs.ErrMenuItemNotFound)
	}

	o, _, err := c.findForUpdate(ctx, orderID)
	if err != nil {
		return err
	}

	if err := o.SetLine(item.ID(), item.Name(), item.Price(), input.Quantity, input.Note); err != nil {
		return markOrderErr(err)
	}

	if err := c.orders.Save(ctx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

// Checkout settles the order and books the takings into the finance ledger in
// one transaction. An insufficient tender leaves the order open and writes
// nothing.
func (c *orderCommands) Checkout(ctx context.Context, orderID uuid.UUID, input CheckoutInput) (*CheckoutResult, error) {
	var result *CheckoutResult
	err := c.txm.WithinTx(ctx, func(tx dbpkg.DBTX) error {
		orders := c.repos.Orders(tx)
		o, pricing, err := orders.FindForUpdate(ctx, orderID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrOrderNotFound)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		settlement, err := o.Checkout(pricing.DiscountPercent, pricing.TaxPercent, billing.NewMoney(input.TenderedCents))
		if err != nil {
			return markOrderErr(err)
		}

		if err := orders.Save(ctx, o); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		rst, err := c.catalog.FindRestaurantHotel(ctx, o.RestaurantID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if rst != nil {
			txn, err := finance.NewTransaction(*rst, finance.KindIncome, settlement.Total,
				"restaurant", o.ID().String(), c.clk.Now())
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidationFailed)
			}
			if err := c.repos.Finance(tx).Create(ctx, txn); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		result = &CheckoutResult{
			TotalCents:    settlement.Total.Cents(),
			TenderedCents: settlement.Tendered.Cents(),
			ChangeCents:   settlement.Change.Cents(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (c *orderCommands) Void(ctx context.Context, orderID uuid.UUID) error {
	o, _, err := c.findForUpdate(ctx, orderID)
	if err != nil {
		return err
	}
	if err := o.Void(); err != nil {
		return markOrderErr(err)
	}
	if err := c.orders.Save(ctx, o); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *orderCommands) findForUpdate(ctx context.Context, id uuid.UUID) (*order.Order, order.Pricing, error) {
	o, pricing, err := c.orders.FindForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, order.Pricing{}, errs.Mark(err, errs.ErrOrderNotFound)
		}
		return nil, order.Pricing{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return o, pricing, nil
}

func markOrderErr(err error) error {
	switch {
	case errors.Is(err, order.ErrOrderNotOpen):
		return errs.Mark(err, errs.ErrOrderNotOpen)
	case errors.Is(err, order.ErrEmptyOrder):
		return errs.Mark(err, errs.ErrEmptyOrder)
	case errors.Is(err, billing.ErrInsufficientTender):
		return errs.Mark(err, errs.ErrInsufficientTender)
	default:
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
}
