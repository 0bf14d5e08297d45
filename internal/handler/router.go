package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/handler/api"
	"hoteldesk/internal/handler/middleware"
	"hoteldesk/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Order       *api.OrderHandler
	Catalog     *api.CatalogHandler
	Finance     *api.FinanceHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	managerOnly := authMiddleware.RequireRoleAtLeast(user.RoleManager)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Reservation.Update},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Reservation.Cancel},
				{Method: http.MethodPost, Path: "/:id/check-in", Handler: h.Reservation.CheckIn},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: h.Reservation.CheckOut},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Open},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPut, Path: "/:id/lines", Handler: h.Order.SetLine},
				{Method: http.MethodPost, Path: "/:id/checkout", Handler: h.Order.Checkout},
				{Method: http.MethodPost, Path: "/:id/void", Handler: h.Order.Void, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		hotels := apiGroup.Group("/hotels")
		hotels.Use(authMiddleware.RequireAuth())
		{
			addRoutes(hotels, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateHotel, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListHotels},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetHotel},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateHotel, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodPost, Path: "/:id/rooms", Handler: h.Catalog.CreateRoom, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "/:id/rooms", Handler: h.Catalog.ListRooms},
				{Method: http.MethodPost, Path: "/:id/departments", Handler: h.Catalog.CreateDepartment, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "/:id/departments", Handler: h.Catalog.ListDepartments},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateRoom, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		restaurants := apiGroup.Group("/restaurants")
		restaurants.Use(authMiddleware.RequireAuth())
		{
			addRoutes(restaurants, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateRestaurant, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListRestaurants},
				{Method: http.MethodPost, Path: "/:id/menu-items", Handler: h.Catalog.CreateMenuItem, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "/:id/menu-items", Handler: h.Catalog.ListMenuItems},
			})
		}

		menuItems := apiGroup.Group("/menu-items")
		menuItems.Use(authMiddleware.RequireAuth())
		{
			addRoutes(menuItems, []route{
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateMenuItem, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		staffGroup := apiGroup.Group("/staff")
		staffGroup.Use(authMiddleware.RequireAuth())
		{
			addRoutes(staffGroup, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateStaff, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListStaff},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateStaff, Mw: []gin.HandlerFunc{managerOnly}},
			})
		}

		agents := apiGroup.Group("/agents")
		agents.Use(authMiddleware.RequireAuth())
		{
			addRoutes(agents, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateAgent, Mw: []gin.HandlerFunc{managerOnly}},
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListAgents},
			})
		}

		finance := apiGroup.Group("/finance")
		finance.Use(authMiddleware.RequireAuth())
		finance.Use(managerOnly)
		{
			addRoutes(finance, []route{
				{Method: http.MethodPost, Path: "/transactions", Handler: h.Finance.RecordTransaction},
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Finance.ListTransactions},
				{Method: http.MethodGet, Path: "/transactions/:id", Handler: h.Finance.GetTransaction},
				{Method: http.MethodDelete, Path: "/transactions/:id", Handler: h.Finance.DeleteTransaction},
				{Method: http.MethodGet, Path: "/reports/occupancy", Handler: h.Finance.OccupancyReport},
				{Method: http.MethodGet, Path: "/reports/revenue", Handler: h.Finance.RevenueReport},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
