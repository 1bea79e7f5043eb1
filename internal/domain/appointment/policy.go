package appointment

import (
	"salon-booking/internal/domain/user"

	"github.com/google/uuid"
)

// Authorization rules for appointments. Commands and queries call these instead
// of inspecting roles themselves.

func CanBook(role user.Role) bool {
	return role.IsValid()
}

// CanView takes the customer id so read models can be checked without loading the aggregate.
func CanView(actorID uuid.UUID, role user.Role, customerID uuid.UUID) bool {
	return actorID == customerID || role.IsStaff()
}

func CanListAll(role user.Role) bool {
	return role.IsStaff()
}

func CanConfirm(role user.Role) bool {
	return role.IsStaff()
}

func CanCancel(actorID uuid.UUID, role user.Role, a *Appointment) bool {
	return actorID == a.customerID || role.IsStaff()
}

func CanComplete(role user.Role) bool {
	return role.IsStaff()
}

func CanLeaveFeedback(actorID uuid.UUID, a *Appointment) bool {
	return actorID == a.customerID
}
