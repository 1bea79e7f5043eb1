package queries

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentView struct {
	ID                 uuid.UUID  `json:"id"`
	CustomerID         uuid.UUID  `json:"customerId"`
	CustomerName       string     `json:"customerName"`
	CustomerEmail      string     `json:"customerEmail"`
	CustomerPhone      string     `json:"customerPhone"`
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

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           int64     `json:"price"`
	Description     string    `json:"description"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type NotificationView struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Kind          string    `json:"kind"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ServiceRatingView struct {
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

type FeedbackView struct {
	AppointmentID uuid.UUID `json:"appointmentId"`
	CustomerName  string    `json:"customerName"`
	Date          string    `json:"date"`
	Slot          string    `json:"slot"`
	Stars         int       `json:"stars"`
	Text          string    `json:"text"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
