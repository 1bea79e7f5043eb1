package user

import "github.com/google/uuid"

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
	RoleOwner    Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role works on the salon side.
func (r Role) IsStaff() bool {
	switch r {
	case RoleStaff, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role may manage the catalog and other users.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleOwner
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated caller of an operation, passed explicitly into every
// command and query that needs to authorize.
type Actor struct {
	ID   uuid.UUID
	Role Role
	Name string
}

func NewActor(id uuid.UUID, role Role, name string) Actor {
	return Actor{ID: id, Role: role, Name: name}
}
