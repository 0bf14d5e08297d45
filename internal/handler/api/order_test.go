//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/handler/api"
	resdto "hoteldesk/internal/handler/dto/response"
	"hoteldesk/internal/pkg/errs"
	"hoteldesk/internal/usecase/commands"
	"hoteldesk/internal/usecase/queries"
	"hoteldesk/tests/common/builder"
	"hoteldesk/tests/common/httptest"
	"hoteldesk/tests/common/testutil"
	commandsmock "hoteldesk/tests/mock/commands"
	queriesmock "hoteldesk/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	mockQueries  *queriesmock.MockOrderQueries
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockOrderQueries(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Next()
	}

	s.router.POST("/orders", authMiddleware, s.handler.Open)
	s.router.GET("/orders", authMiddleware, s.handler.List)
	s.router.GET("/orders/:id", authMiddleware, s.handler.Get)
	s.router.PUT("/orders/:id/lines", authMiddleware, s.handler.SetLine)
	s.router.POST("/orders/:id/checkout", authMiddleware, s.handler.Checkout)
	s.router.POST("/orders/:id/void", authMiddleware, s.handler.Void)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

// ================================================================================
// TestOpen
// ================================================================================

func (s *OrderHandlerTestSuite) TestOpen() {
	url := "/orders"
	b := builder.NewOrderBuilder()
	reqBody := b.BuildOpenRequestBody()

	s.Run("success: returns 201 Created for valid request", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Open(gomock.Any(), gomock.Any()).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var resp resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal(id, resp.ID)
	})

	s.Run("unauthorized: returns 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	validationCases := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing field: restaurant_id (required)", mutate: testutil.Field("restaurant_id", nil)},
		{name: "missing field: staff_id (required)", mutate: testutil.Field("staff_id", nil)},
		{name: "table_number boundary invalid (0)", mutate: testutil.Field("table_number", 0)},
		{name: "discount_percent boundary invalid (101)", mutate: testutil.Field("discount_percent", 101)},
	}
	for _, tc := range validationCases {
		s.Run(tc.name, func() {
			body := b.BuildOpenRequestBody()
			tc.mutate(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
}

// ================================================================================
// TestGet
// ================================================================================

func (s *OrderHandlerTestSuite) TestGet() {
	view := builder.NewOrderBuilder().BuildView()

	s.Run("success: returns 200 with recomputed totals", func() {
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+view.ID.String(), nil, "bearer-token")

		var resp queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.SubtotalCents, resp.SubtotalCents)
		s.Len(resp.Lines, len(view.Lines))
	})

	s.Run("not found: returns 404 for an unknown order", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetOrder(gomock.Any(), id).
			Return(nil, errs.ErrOrderNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *OrderHandlerTestSuite) TestList() {
	restaurantID := uuid.New()

	s.Run("success: lists orders for a restaurant", func() {
		views := []*queries.OrderView{builder.NewOrderBuilder().BuildView()}
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), restaurantID, "", int32(50), int32(0)).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?restaurant_id="+restaurantID.String(), nil, "bearer-token")

		var resp []*queries.OrderView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("success: passes status filter through", func() {
		s.mockQueries.EXPECT().ListOrders(gomock.Any(), restaurantID, "open", int32(50), int32(0)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders?restaurant_id="+restaurantID.String()+"&status=open", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("bad request: returns 400 when restaurant_id is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/orders", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestSetLine
// ================================================================================

func (s *OrderHandlerTestSuite) TestSetLine() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/lines"
	body := map[string]any{
		"menu_item_id": uuid.New().String(),
		"quantity":     2,
	}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().SetLine(gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("closed ticket: returns 409", func() {
		s.mockCommands.EXPECT().SetLine(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrOrderNotOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("unknown item: returns 404", func() {
		s.mockCommands.EXPECT().SetLine(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestCheckout
// ================================================================================

func (s *OrderHandlerTestSuite) TestCheckout() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/checkout"
	body := map[string]any{"tendered_cents": 5000}

	s.Run("success: returns 200 with change", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), id, commands.CheckoutInput{TenderedCents: 5000}).
			Return(&commands.CheckoutResult{TotalCents: 4500, TenderedCents: 5000, ChangeCents: 500}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")

		var resp resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(int64(500), resp.ChangeCents)
	})

	s.Run("short tender: returns 422", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrInsufficientTender).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("empty ticket: returns 422", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrEmptyOrder).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("already settled: returns 409", func() {
		s.mockCommands.EXPECT().Checkout(gomock.Any(), id, gomock.Any()).
			Return(nil, errs.ErrOrderNotOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}

// ================================================================================
// TestVoid
// ================================================================================

func (s *OrderHandlerTestSuite) TestVoid() {
	id := uuid.New()
	url := "/orders/" + id.String() + "/void"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Void(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("already settled: returns 409", func() {
		s.mockCommands.EXPECT().Void(gomock.Any(), id).
			Return(errs.ErrOrderNotOpen).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
