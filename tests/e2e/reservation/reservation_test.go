//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hoteldesk/internal/domain/user"
	"hoteldesk/internal/handler/dto/request"
	"hoteldesk/internal/handler/dto/response"
	"hoteldesk/internal/usecase/queries"
	"hoteldesk/tests/common/dbtest"
	commonhttp "hoteldesk/tests/common/httptest"
	"hoteldesk/tests/e2e"
	"hoteldesk/tests/e2e/common/helper"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const reservationsURL = "/api/reservations"

// a check-in date safely in the future, aligned to midnight UTC
func upcomingStay() time.Time {
	y, m, d := time.Now().UTC().AddDate(0, 0, 7).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type reservationSuite struct {
	e2e.SharedSuite

	hotelID uuid.UUID
	roomID  uuid.UUID
	token   string
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(reservationSuite))
}

func (s *reservationSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	t := s.T()

	ownerID := dbtest.CreateTestUser(t, s.DB, "owner@example.com", string(user.RoleOwner), nil)
	s.hotelID = dbtest.CreateTestHotel(t, s.DB, "Harbor View", ownerID)
	s.roomID = dbtest.CreateTestRoom(t, s.DB, s.hotelID, "101", 10000)
	_, s.token = helper.CreateAndLogin(t, s.DB, s.Router, "frontdesk@example.com", string(user.RoleStaff), &s.hotelID)
}

func (s *reservationSuite) createReservation(checkIn, checkOut time.Time) uuid.UUID {
	t := s.T()

	rate := int64(10000)
	body := request.CreateReservationRequest{
		HotelID:       s.hotelID,
		RoomID:        s.roomID,
		GuestName:     "Ana Martins",
		GuestEmail:    "ana@example.com",
		CheckInDate:   checkIn,
		CheckOutDate:  checkOut,
		Adults:        2,
		BaseRateCents: &rate,
	}

	w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created response.CreatedResponse
	require.NoError(t, commonhttp.DecodeResponseBody(t, w.Body, &created))
	return created.ID
}

func (s *reservationSuite) getReservation(id uuid.UUID) queries.ReservationView {
	t := s.T()

	w := commonhttp.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"/"+id.String(), nil, s.token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var view queries.ReservationView
	require.NoError(t, commonhttp.DecodeResponseBody(t, w.Body, &view))
	return view
}

func (s *reservationSuite) TestCreateAndPricing() {
	s.Run("three night stay is priced with tax", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 3))

		view := s.getReservation(id)
		require.Equal(t, 3, view.Nights)
		require.Equal(t, int64(10000), view.BaseRateCents)
		// 10000 * 3 nights, then 18% tax
		require.Equal(t, int64(5400), view.TaxCents)
		require.Equal(t, int64(35400), view.TotalCents)
		require.Equal(t, "confirmed", view.Status)
		require.NotEmpty(t, view.EditableFields)
	})

	s.Run("overlapping stay on the same room is rejected", func() {
		t := s.T()

		checkIn := upcomingStay()
		s.createReservation(checkIn, checkIn.AddDate(0, 0, 3))

		rate := int64(10000)
		body := request.CreateReservationRequest{
			HotelID:       s.hotelID,
			RoomID:        s.roomID,
			GuestName:     "Second Guest",
			CheckInDate:   checkIn.AddDate(0, 0, 1),
			CheckOutDate:  checkIn.AddDate(0, 0, 4),
			Adults:        1,
			BaseRateCents: &rate,
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("same-day check-out is rejected", func() {
		t := s.T()

		checkIn := upcomingStay()
		body := request.CreateReservationRequest{
			HotelID:      s.hotelID,
			RoomID:       s.roomID,
			GuestName:    "Zero Nights",
			CheckInDate:  checkIn,
			CheckOutDate: checkIn,
			Adults:       1,
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestEditGating() {
	s.Run("all fields editable while confirmed", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 3))

		extras := int64(2500)
		body := request.UpdateReservationRequest{ExtraCents: &extras}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(), body, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		view := s.getReservation(id)
		require.Equal(t, int64(2500), view.ExtraCents)
		// (30000 + 2500) * 18% tax
		require.Equal(t, int64(38350), view.TotalCents)
	})

	s.Run("dates lock after check-in but notes stay open", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 3))

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/check-in", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		newOut := checkIn.AddDate(0, 0, 5)
		dateBody := request.UpdateReservationRequest{CheckOutDate: &newOut}
		w = commonhttp.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(), dateBody, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		notes := "late arrival, prepaid minibar"
		noteBody := request.UpdateReservationRequest{Notes: &notes}
		w = commonhttp.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(), noteBody, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		view := s.getReservation(id)
		require.Equal(t, "checked_in", view.Status)
		require.Equal(t, notes, view.Notes)
		require.ElementsMatch(t, []string{"special_requests", "notes"}, view.EditableFields)
	})

	s.Run("cancelled reservation is frozen", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 3))

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

		notes := "should not apply"
		body := request.UpdateReservationRequest{Notes: &notes}
		w = commonhttp.PerformRequest(t, s.Router, http.MethodPatch, reservationsURL+"/"+id.String(), body, s.token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())

		view := s.getReservation(id)
		require.Equal(t, "cancelled", view.Status)
		require.Empty(t, view.EditableFields)
	})
}

func (s *reservationSuite) TestLifecycle() {
	s.Run("check-in then check-out", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 2))

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/check-in", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/check-out", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusNoContent, w.Code)

		require.Equal(t, "checked_out", s.getReservation(id).Status)
	})

	s.Run("check-out before check-in is rejected", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 2))

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/check-out", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})

	s.Run("cancel after check-out is rejected", func() {
		t := s.T()

		checkIn := upcomingStay()
		id := s.createReservation(checkIn, checkIn.AddDate(0, 0, 2))

		for _, action := range []string{"check-in", "check-out"} {
			w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
				fmt.Sprintf("%s/%s/%s", reservationsURL, id, action), nil, s.token)
			require.Equal(t, http.StatusNoContent, w.Code)
		}

		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf("%s/%s/cancel", reservationsURL, id), nil, s.token)
		require.Equal(t, http.StatusConflict, w.Code, w.Body.String())
	})
}

func (s *reservationSuite) TestList() {
	s.Run("hotel scoped listing", func() {
		t := s.T()

		checkIn := upcomingStay()
		s.createReservation(checkIn, checkIn.AddDate(0, 0, 2))

		otherRoom := dbtest.CreateTestRoom(t, s.DB, s.hotelID, "102", 12000)
		rate := int64(12000)
		body := request.CreateReservationRequest{
			HotelID:       s.hotelID,
			RoomID:        otherRoom,
			GuestName:     "Second Guest",
			CheckInDate:   checkIn,
			CheckOutDate:  checkIn.AddDate(0, 0, 1),
			Adults:        1,
			BaseRateCents: &rate,
		}
		w := commonhttp.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, body, s.token)
		require.Equal(t, http.StatusCreated, w.Code)

		w = commonhttp.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var items []queries.ReservationListItem
		require.NoError(t, commonhttp.DecodeResponseBody(t, w.Body, &items))
		require.Len(t, items, 2)
	})
}
