package response

import (
	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"userId"`
}

type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

type UserSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role string    `json:"role"`
}

func FromActor(a user.Actor) UserSummary {
	return UserSummary{ID: a.ID, Name: a.Name, Role: a.Role.String()}
}
