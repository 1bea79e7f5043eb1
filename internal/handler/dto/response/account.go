package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"isActive"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	var res UserResponse
	_ = copier.Copy(&res, v)
	return &res
}

type NotificationResponse struct {
	ID            uuid.UUID `json:"id"`
	AppointmentID uuid.UUID `json:"appointmentId"`
	Kind          string    `json:"kind"`
	Message       string    `json:"message"`
	IsRead        bool      `json:"isRead"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromNotificationViews(vs []*queries.NotificationView) []*NotificationResponse {
	res := make([]*NotificationResponse, len(vs))
	for i, v := range vs {
		res[i] = &NotificationResponse{}
		_ = copier.Copy(res[i], v)
	}
	return res
}

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}
