//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/handler/api"
	resdto "salon-booking/internal/handler/dto/response"
	"salon-booking/internal/handler/middleware"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/httptest"
	commandsmock "salon-booking/tests/mock/commands"
	queriesmock "salon-booking/tests/mock/queries"
	usecasemock "salon-booking/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	customerToken = "customer-token"
	staffToken    = "staff-token"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockCommands     *commandsmock.MockAppointmentCommands
	mockQueries      *queriesmock.MockAppointmentQueries
	mockAvailability *queriesmock.MockAvailabilityQueries
	customer         user.Actor
	staff            user.Actor
	serviceID        uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.mockAvailability = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)

	s.serviceID = uuid.New()
	s.customer = builder.NewUserBuilder().Actor()
	s.staff = builder.NewUserBuilder().WithName("Meera Staff").WithRole("staff").Actor()

	validator := usecasemock.NewMockTokenValidator(s.mockCtrl)
	validator.EXPECT().ValidateToken(customerToken).Return(s.customer, nil).AnyTimes()
	validator.EXPECT().ValidateToken(staffToken).Return(s.staff, nil).AnyTimes()
	validator.EXPECT().ValidateToken(gomock.Any()).Return(user.Actor{}, jwt.ErrInvalidToken).AnyTimes()
	auth := middleware.NewAuthMiddleware(validator)

	h := api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	services := api.NewServiceHandler(nil, nil, s.mockAvailability)

	s.router.GET("/services/:id/availability", services.Availability)

	authed := s.router.Group("/", auth.RequireAuth())
	authed.POST("/appointments", h.Book)
	authed.GET("/appointments/:id", h.Get)
	authed.POST("/appointments/:id/cancel", h.Cancel)
	authed.POST("/appointments/:id/feedback", h.SubmitFeedback)

	staff := authed.Group("/staff", auth.RequireStaff())
	staff.GET("/appointments", h.List)
	staff.POST("/appointments/:id/confirm", h.Confirm)
	staff.POST("/appointments/:id/complete", h.Complete)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) bookBody() map[string]any {
	return map[string]any{
		"serviceId": s.serviceID.String(),
		"date":      "2025-06-04",
		"slot":      "10:00 AM - 11:00 AM",
	}
}

func (s *AppointmentHandlerTestSuite) TestBook() {
	url := "/appointments"
	view := builder.NewAppointmentBuilder().BuildView()

	s.Run("success: 201 Created with the stored appointment", func() {
		s.mockCommands.EXPECT().Book(gomock.Any(), s.customer, commands.BookAppointmentInput{
			ServiceID: s.serviceID,
			Date:      "2025-06-04",
			Slot:      "10:00 AM - 11:00 AM",
		}).Return(&commands.BookAppointmentResult{AppointmentID: view.ID}, nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), customerToken)

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("pending", response.Status)
		s.Equal("10:00 AM - 11:00 AM", response.Slot)
		s.Equal("Haircut", response.ServiceName)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Access token required")
	})

	s.Run("error: 401 with a bad token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), "forged")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("error: 400 when a field is missing", func() {
		body := s.bookBody()
		delete(body, "slot")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: usecase errors map to their kind's status", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
			expectKind string
		}{
			{name: "slot taken", err: appointment.ErrSlotTaken, expectCode: http.StatusConflict, expectKind: "slot_conflict"},
			{name: "slot not offered", err: appointment.ErrSlotNotOffered, expectCode: http.StatusBadRequest, expectKind: "invalid_input"},
			{name: "malformed date", err: schedule.ErrInvalidDate, expectCode: http.StatusBadRequest, expectKind: "invalid_input"},
			{name: "unknown service", err: shared.ErrServiceNotFound, expectCode: http.StatusNotFound, expectKind: "not_found"},
			{name: "storage failure", err: errors.New("connection refused"), expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Book(gomock.Any(), s.customer, gomock.Any()).Return(nil, tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, s.bookBody(), customerToken)

				s.Equal(tc.expectCode, rec.Code)
				var body struct {
					Error struct {
						Message string `json:"message"`
						Kind    string `json:"kind"`
					} `json:"error"`
				}
				s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
				s.Equal(tc.expectKind, body.Error.Kind)
				if tc.expectCode == http.StatusInternalServerError {
					s.Equal("Internal server error", body.Error.Message)
				} else {
					s.Equal(tc.err.Error(), body.Error.Message)
				}
			})
		}
	})
}

func (s *AppointmentHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/appointments/" + id.String() + "/cancel"

	s.Run("success: returns the cancelled appointment", func() {
		view := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.ID = id
			b.Status = appointment.StatusCancelled
		}).BuildView()
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customer, id, "running late").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "running late"}, customerToken)

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("cancelled", response.Status)
		s.Require().NotNil(response.CancelledBy)
		s.Equal("customer", *response.CancelledBy)
	})

	s.Run("error: blank reason is 400", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customer, id, "").Return(appointment.ErrReasonRequired)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "cancellation reason is required")
	})

	s.Run("error: terminal appointment is 422", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customer, id, "again").Return(appointment.ErrTransitionNotAllowed)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "again"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "cannot move")
	})

	s.Run("error: someone else's appointment is 403", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), s.customer, id, "mine now").Return(appointment.ErrCancelForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"reason": "mine now"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "")
	})

	s.Run("error: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/appointments/nope/cancel", map[string]any{"reason": "x"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *AppointmentHandlerTestSuite) TestFeedback() {
	id := uuid.New()
	url := "/appointments/" + id.String() + "/feedback"

	s.Run("success: passes stars and text through", func() {
		view := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) {
			b.ID = id
			b.Status = appointment.StatusCompleted
		}).BuildView()
		s.mockCommands.EXPECT().SubmitFeedback(gomock.Any(), s.customer, id, 5, "lovely").Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.customer, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"stars": 5, "text": "lovely"}, customerToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: out of range stars is 400", func() {
		s.mockCommands.EXPECT().SubmitFeedback(gomock.Any(), s.customer, id, 9, "x").Return(appointment.ErrInvalidRating)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"stars": 9, "text": "x"}, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "between 1 and 5")
	})
}

func (s *AppointmentHandlerTestSuite) TestStaffRoutes() {
	id := uuid.New()
	view := builder.NewAppointmentBuilder().With(func(b *builder.AppointmentBuilder) { b.ID = id }).BuildView()

	s.Run("customer is rejected by the role guard", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/appointments/"+id.String()+"/confirm", nil, customerToken)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")
	})

	s.Run("confirm", func() {
		s.mockCommands.EXPECT().Confirm(gomock.Any(), s.staff, id).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.staff, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/appointments/"+id.String()+"/confirm", nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("complete without a body records no feedback", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.staff, id, (*commands.CompletionFeedback)(nil)).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.staff, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/appointments/"+id.String()+"/complete", nil, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("complete with feedback", func() {
		s.mockCommands.EXPECT().Complete(gomock.Any(), s.staff, id, &commands.CompletionFeedback{Stars: 4, Text: "regular"}).Return(nil)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.staff, id).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/appointments/"+id.String()+"/complete",
			map[string]any{"stars": 4, "text": "regular"}, staffToken)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("list passes filters and returns the next cursor", func() {
		next := &queries.Cursor{After: "abc"}
		s.mockQueries.EXPECT().
			List(gomock.Any(), s.staff, queries.AppointmentFilters{Date: "2025-06-04", Status: "pending"}, (*queries.Cursor)(nil), 5).
			Return([]*queries.AppointmentView{view}, next, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff/appointments?date=2025-06-04&status=pending&limit=5", nil, staffToken)

		var page resdto.AppointmentPage
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &page)
		s.Len(page.Items, 1)
		s.Equal("asha@example.com", page.Items[0].CustomerEmail)
		s.Equal("abc", page.NextCursor)
	})
}

func (s *AppointmentHandlerTestSuite) TestAvailability() {
	svcID := s.serviceID

	s.Run("success: slots carry their flags", func() {
		s.mockAvailability.EXPECT().ForService(gomock.Any(), svcID, "2025-06-04").Return(&queries.AvailabilityView{
			ServiceID:       svcID,
			ServiceName:     "Haircut",
			Date:            "2025-06-04",
			DurationMinutes: 60,
			Slots: []schedule.Availability{
				{Time: "9:00 AM - 10:00 AM", IsAvailable: true},
				{Time: "10:00 AM - 11:00 AM", IsBooked: true},
			},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+svcID.String()+"/availability?date=2025-06-04", nil, "")

		var response resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response.Slots, 2)
		s.True(response.Slots[0].IsAvailable)
		s.True(response.Slots[1].IsBooked)
		s.False(response.Slots[1].IsAvailable)
	})

	s.Run("error: past date is 400", func() {
		s.mockAvailability.EXPECT().ForService(gomock.Any(), svcID, "2020-01-01").Return(nil, appointment.ErrDateInPast)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/services/"+svcID.String()+"/availability?date=2020-01-01", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "in the past")
	})
}
