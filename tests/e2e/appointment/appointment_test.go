//go:build e2e

package appointment_test

import (
	"net/http"
	"testing"
	"time"

	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/tests/common/authtest"
	"salon-booking/tests/common/dbtest"
	"salon-booking/tests/common/httptest"
	"salon-booking/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const appointmentsURL = "/api/appointments"

type appointmentSuite struct {
	e2e.SharedSuite
	date string
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(appointmentSuite))
}

func (s *appointmentSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	loc, err := time.LoadLocation(s.Config.Salon.TimeZone)
	s.Require().NoError(err)
	// two days out so the lead time never trims the grid
	s.date = time.Now().In(loc).AddDate(0, 0, 2).Format("2006-01-02")
}

func availabilityURL(serviceID uuid.UUID, date string) string {
	return "/api/services/" + serviceID.String() + "/availability?date=" + date
}

func (s *appointmentSuite) availability() resdto.AvailabilityResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, availabilityURL(dbtest.DefaultServiceID, s.date), nil, "")
	var res resdto.AvailabilityResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Require().NotEmpty(res.Slots)
	return res
}

func (s *appointmentSuite) book(token, slot string) *resdto.AppointmentResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
		"serviceId": dbtest.DefaultServiceID,
		"date":      s.date,
		"slot":      slot,
	}, token)
	var res resdto.AppointmentResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	return &res
}

func (s *appointmentSuite) post(path string, body any, token string, expect int) *resdto.AppointmentResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, body, token)
	if expect >= 300 {
		httptest.AssertErrorResponse(s.T(), w, expect, "")
		return nil
	}
	var res resdto.AppointmentResponse
	httptest.AssertSuccessResponse(s.T(), w, expect, &res)
	return &res
}

func (s *appointmentSuite) TestBookingConflicts() {
	s.Run("second active booking of a slot is rejected until the first is cancelled", func() {
		_, asha := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "asha@example.com", "customer")
		_, ravi := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "ravi@example.com", "customer")

		first := s.availability().Slots[0]
		require.True(s.T(), first.IsAvailable)

		booked := s.book(asha, first.Time)
		s.Equal("pending", booked.Status)
		s.Equal("Haircut", booked.ServiceName)
		s.Equal(s.date, booked.Date)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"serviceId": dbtest.DefaultServiceID,
			"date":      s.date,
			"slot":      first.Time,
		}, ravi)
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "already booked")

		after := s.availability().Slots[0]
		s.True(after.IsBooked)
		s.False(after.IsAvailable)

		cancelURL := appointmentsURL + "/" + booked.ID.String() + "/cancel"
		s.post(cancelURL, map[string]any{"reason": "  "}, asha, http.StatusBadRequest)
		s.post(cancelURL, map[string]any{"reason": "x"}, ravi, http.StatusForbidden)

		cancelled := s.post(cancelURL, map[string]any{"reason": "Feeling unwell"}, asha, http.StatusOK)
		s.Equal("cancelled", cancelled.Status)
		s.Require().NotNil(cancelled.CancelledBy)
		s.Equal("customer", *cancelled.CancelledBy)
		s.Require().NotNil(cancelled.CancellationReason)
		s.Equal("Feeling unwell", *cancelled.CancellationReason)

		s.post(cancelURL, map[string]any{"reason": "again"}, asha, http.StatusUnprocessableEntity)

		s.True(s.availability().Slots[0].IsAvailable)
		s.Equal("pending", s.book(ravi, first.Time).Status)
	})

	s.Run("slots outside the generated grid are rejected", func() {
		_, asha := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "asha@example.com", "customer")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"serviceId": dbtest.DefaultServiceID,
			"date":      s.date,
			"slot":      "9:10 AM - 10:10 AM",
		}, asha)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "not offered")

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"serviceId": uuid.New(),
			"date":      s.date,
			"slot":      "9:00 AM - 10:00 AM",
		}, asha)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *appointmentSuite) TestLifecycle() {
	s.Run("staff confirm, complete and the customer rates", func() {
		_, asha := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "asha@example.com", "customer")
		_, meera := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "meera@example.com", "staff")

		booked := s.book(asha, s.availability().Slots[1].Time)
		staffURL := "/api/staff/appointments/" + booked.ID.String()

		s.post(staffURL+"/confirm", nil, asha, http.StatusForbidden)
		s.post(staffURL+"/complete", nil, meera, http.StatusUnprocessableEntity)

		s.Equal("confirmed", s.post(staffURL+"/confirm", nil, meera, http.StatusOK).Status)
		s.Equal("completed", s.post(staffURL+"/complete", nil, meera, http.StatusOK).Status)

		feedbackURL := appointmentsURL + "/" + booked.ID.String() + "/feedback"
		s.post(feedbackURL, map[string]any{"stars": 6, "text": "wow"}, asha, http.StatusBadRequest)
		rated := s.post(feedbackURL, map[string]any{"stars": 4, "text": "Great fade"}, asha, http.StatusOK)
		s.Require().NotNil(rated.FeedbackStars)
		s.Equal(4, *rated.FeedbackStars)
		s.post(feedbackURL, map[string]any{"stars": 5, "text": "again"}, asha, http.StatusUnprocessableEntity)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/staff/ratings", nil, meera)
		var ratings []resdto.ServiceRatingResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &ratings)
		var found bool
		for _, r := range ratings {
			if r.ServiceID == dbtest.DefaultServiceID {
				found = true
				s.Equal(1, r.TotalRatings)
				s.InDelta(4.0, r.AverageRating, 0.001)
			}
		}
		s.True(found)
	})

	s.Run("counterparts are notified", func() {
		_, asha := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "asha@example.com", "customer")
		_, meera := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "meera@example.com", "staff")

		booked := s.book(asha, s.availability().Slots[2].Time)
		s.post("/api/appointments/"+booked.ID.String()+"/cancel", map[string]any{"reason": "Double booked elsewhere"}, meera, http.StatusOK)

		kinds := func(token string) []string {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/notifications", nil, token)
			var list []resdto.NotificationResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &list)
			out := make([]string, 0, len(list))
			for _, n := range list {
				out = append(out, n.Kind)
			}
			return out
		}

		s.Contains(kinds(meera), "appointment_created")
		s.Contains(kinds(asha), "appointment_cancelled")
	})
}

func (s *appointmentSuite) TestStaleTokens() {
	s.Run("deactivated account cannot book with a token issued before deactivation", func() {
		_, dana := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "dana@example.com", "customer")
		slot := s.availability().Slots[0].Time

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/me/deactivate", nil, dana)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"serviceId": dbtest.DefaultServiceID,
			"date":      s.date,
			"slot":      slot,
		}, dana)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "inactive")
		s.False(s.availability().Slots[0].IsBooked)
	})

	s.Run("deleted account gets not found instead of a server error", func() {
		_, dana := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "dana@example.com", "customer")
		slot := s.availability().Slots[0].Time

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/me", map[string]any{"password": dbtest.DefaultPassword}, dana)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, map[string]any{
			"serviceId": dbtest.DefaultServiceID,
			"date":      s.date,
			"slot":      slot,
		}, dana)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "user not found")
	})
}
