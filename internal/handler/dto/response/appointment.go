package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	ServiceID          uuid.UUID  `json:"serviceId"`
	ServiceName        string     `json:"serviceName"`
	Price              int64      `json:"price"`
	DurationMinutes    int        `json:"durationMinutes"`
	Date               string     `json:"date"`
	Slot               string     `json:"slot"`
	Status             string     `json:"status"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledBy        *string    `json:"cancelledBy,omitempty"`
	CancelledByName    *string    `json:"cancelledByName,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	FeedbackStars      *int       `json:"feedbackStars,omitempty"`
	FeedbackText       *string    `json:"feedbackText,omitempty"`
	FeedbackAt         *time.Time `json:"feedbackAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// StaffAppointmentResponse adds the customer's contact details for the front desk.
type StaffAppointmentResponse struct {
	AppointmentResponse
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`
}

type AppointmentPage struct {
	Items      []*StaffAppointmentResponse `json:"items"`
	NextCursor string                      `json:"nextCursor,omitempty"`
}

type BookAppointmentResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	var res AppointmentResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromAppointmentViews(vs []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, 0, len(vs))
	for _, v := range vs {
		res = append(res, FromAppointmentView(v))
	}
	return res
}

func FromStaffAppointmentView(v *queries.AppointmentView) *StaffAppointmentResponse {
	return &StaffAppointmentResponse{
		AppointmentResponse: *FromAppointmentView(v),
		CustomerEmail:       v.CustomerEmail,
		CustomerPhone:       v.CustomerPhone,
	}
}

func NewAppointmentPage(vs []*queries.AppointmentView, next *queries.Cursor) AppointmentPage {
	page := AppointmentPage{Items: make([]*StaffAppointmentResponse, 0, len(vs))}
	for _, v := range vs {
		page.Items = append(page.Items, FromStaffAppointmentView(v))
	}
	if next != nil {
		page.NextCursor = next.After
	}
	return page
}
