package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           int64     `json:"price"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var res ServiceResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, 0, len(vs))
	for _, v := range vs {
		res = append(res, FromServiceView(v))
	}
	return res
}

type SlotResponse struct {
	Time        string `json:"time"`
	IsBooked    bool   `json:"isBooked"`
	IsPast      bool   `json:"isPast"`
	IsAvailable bool   `json:"isAvailable"`
}

type AvailabilityResponse struct {
	ServiceID       uuid.UUID      `json:"serviceId"`
	ServiceName     string         `json:"serviceName"`
	Date            string         `json:"date"`
	DurationMinutes int            `json:"durationMinutes"`
	Slots           []SlotResponse `json:"slots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	res := &AvailabilityResponse{
		ServiceID:       v.ServiceID,
		ServiceName:     v.ServiceName,
		Date:            v.Date,
		DurationMinutes: v.DurationMinutes,
		Slots:           make([]SlotResponse, len(v.Slots)),
	}
	for i, s := range v.Slots {
		res.Slots[i] = SlotResponse{
			Time:        s.Time,
			IsBooked:    s.IsBooked,
			IsPast:      s.IsPast,
			IsAvailable: s.IsAvailable,
		}
	}
	return res
}

type ServiceRatingResponse struct {
	ServiceID     uuid.UUID `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	TotalRatings  int       `json:"totalRatings"`
	AverageRating float64   `json:"averageRating"`
	Rating1Count  int       `json:"rating1Count"`
	Rating2Count  int       `json:"rating2Count"`
	Rating3Count  int       `json:"rating3Count"`
	Rating4Count  int       `json:"rating4Count"`
	Rating5Count  int       `json:"rating5Count"`
}

func FromServiceRatingViews(vs []*queries.ServiceRatingView) []*ServiceRatingResponse {
	res := make([]*ServiceRatingResponse, len(vs))
	for i, v := range vs {
		res[i] = &ServiceRatingResponse{}
		_ = copier.Copy(res[i], v)
	}
	return res
}

type FeedbackResponse struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	CustomerName  string    `json:"customerName"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Stars         int       `json:"stars"`
	Text          string    `json:"text"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

func FromFeedbackViews(vs []*queries.FeedbackView) []*FeedbackResponse {
	res := make([]*FeedbackResponse, len(vs))
	for i, v := range vs {
		res[i] = &FeedbackResponse{}
		_ = copier.Copy(res[i], v)
	}
	return res
}
