package request

import "salon-booking/internal/usecase/commands"

// UpdateProfileRequest is a partial update; omitted fields keep their value.
type UpdateProfileRequest struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

func (r *UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{Name: r.Name, Phone: r.Phone}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
