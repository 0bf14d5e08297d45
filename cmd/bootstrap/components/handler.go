package components

import (
	"hoteldesk/internal/handler"
	"hoteldesk/internal/handler/api"
	"hoteldesk/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewReservationHandler,
		api.NewOrderHandler,
		api.NewCatalogHandler,
		api.NewFinanceHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	reservation *api.ReservationHandler,
	order *api.OrderHandler,
	catalog *api.CatalogHandler,
	finance *api.FinanceHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Reservation: reservation,
		Order:       order,
		Catalog:     catalog,
		Finance:     finance,
	}
}
