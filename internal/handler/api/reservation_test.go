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

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	userHotelID  uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.userHotelID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("user_id", uuid.New())
		c.Set("user_role", user.RoleStaff)
		c.Set("user_hotel_id", s.userHotelID)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.List)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/reservations/:id", authMiddleware, s.handler.Update)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/reservations/:id/check-in", authMiddleware, s.handler.CheckIn)
	s.router.POST("/reservations/:id/check-out", authMiddleware, s.handler.CheckOut)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

type testCaseReservation struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestBody()

	validationCases := []testCaseReservation{
		{name: "missing field: hotel_id (required)", mutate: testutil.Field("hotel_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: room_id (required)", mutate: testutil.Field("room_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: guest_name (required)", mutate: testutil.Field("guest_name", nil), expectCode: http.StatusBadRequest},
		{name: "adults boundary invalid (0)", mutate: testutil.Field("adults", 0), expectCode: http.StatusBadRequest},
		{name: "malformed guest_email", mutate: testutil.Field("guest_email", "not-an-email"), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		id := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
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

	for _, tc := range validationCases {
		s.Run(tc.name, func() {
			body := b.BuildCreateRequestBody()
			tc.mutate(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}

	s.Run("conflict: returns 409 when the room is already booked", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, commands.ErrRoomUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("not found: returns 404 for an unknown room", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrRoomNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad request: returns 400 for an inverted stay window", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, errs.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	view := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns 200 with derived totals and editable fields", func() {
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "bearer-token")

		var resp queries.ReservationView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal(view.ID, resp.ID)
		s.Equal(view.TotalCents, resp.TotalCents)
		s.NotEmpty(resp.EditableFields)
	})

	s.Run("not found: returns 404 for an unknown reservation", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetReservation(gomock.Any(), id).
			Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})

	s.Run("bad request: returns 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *ReservationHandlerTestSuite) TestList() {
	s.Run("success: lists reservations for the caller's hotel", func() {
		items := []*queries.ReservationListItem{builder.NewReservationBuilder().BuildListItem()}
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), s.userHotelID, int32(50), int32(0)).
			Return(items, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var resp []*queries.ReservationListItem
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("success: passes pagination through", func() {
		s.mockQueries.EXPECT().ListReservations(gomock.Any(), s.userHotelID, int32(10), int32(20)).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations?limit=10&offset=20", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	url := "/reservations/" + id.String()
	body := map[string]any{"notes": "late arrival"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("locked field: returns 422", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrFieldLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		s.Equal(http.StatusUnprocessableEntity, rec.Code)
	})

	s.Run("frozen reservation: returns 409", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})

	s.Run("not found: returns 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, gomock.Any()).
			Return(errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}

// ================================================================================
// TestTransitions
// ================================================================================

func (s *ReservationHandlerTestSuite) TestTransitions() {
	id := uuid.New()

	s.Run("cancel: returns 204 on success", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/cancel", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("check-in: returns 204 on success", func() {
		s.mockCommands.EXPECT().CheckIn(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-in", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("check-out: returns 204 on success", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("invalid transition: returns 409", func() {
		s.mockCommands.EXPECT().CheckOut(gomock.Any(), id).
			Return(errs.ErrInvalidTransition).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reservations/"+id.String()+"/check-out", nil, "bearer-token")
		s.Equal(http.StatusConflict, rec.Code)
	})
}
