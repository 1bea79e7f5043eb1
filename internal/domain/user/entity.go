package user

import (
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrUserInactive     = errs.Kind("user is inactive", errs.ErrUnauthorized)
	ErrRoleChangeDenied = errs.Kind("only admins and owners can change roles", errs.ErrUnauthorized)
	ErrOwnerRoleLocked  = errs.Kind("only an owner can grant or revoke the owner role", errs.ErrUnauthorized)
)

type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	phone        Phone
	passwordHash string
	role         Role
	isActive     bool
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCustomer registers a self-signed-up user. Other roles are granted afterwards via ChangeRole.
func NewCustomer(name Name, email Email, phone Phone, passwordHash string, now time.Time) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         RoleCustomer,
		isActive:     true,
		createdAt:    now,
		updatedAt:    now,
	}
}

// NewOwner provisions the salon owner account at startup.
func NewOwner(name Name, email Email, phone Phone, passwordHash string, now time.Time) *User {
	u := NewCustomer(name, email, phone, passwordHash, now)
	u.role = RoleOwner
	return u
}

func Reconstruct(
	id uuid.UUID,
	name, email, phone, passwordHash string,
	role Role,
	isActive bool,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         Name{value: name},
		email:        Email{value: email},
		phone:        Phone{value: phone},
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() Name            { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) Phone() Phone          { return u.phone }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) IsActive() bool        { return u.isActive }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

func (u *User) Actor() Actor {
	return NewActor(u.id, u.role, u.name.Value())
}

func (u *User) UpdateProfile(name Name, phone Phone, now time.Time) {
	u.name = name
	u.phone = phone
	u.updatedAt = now
}

func (u *User) ChangePasswordHash(hash string, now time.Time) {
	u.passwordHash = hash
	u.updatedAt = now
}

func (u *User) RecordLogin(now time.Time) error {
	if !u.isActive {
		return ErrUserInactive
	}
	u.lastLogin = &now
	return nil
}

func (u *User) Deactivate(now time.Time) {
	u.isActive = false
	u.updatedAt = now
}

// ChangeRole lets admins manage staff; granting or revoking owner needs an owner.
func (u *User) ChangeRole(by Actor, role Role, now time.Time) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	if !by.Role.IsAdmin() {
		return ErrRoleChangeDenied
	}
	if (role == RoleOwner || u.role == RoleOwner) && by.Role != RoleOwner {
		return ErrOwnerRoleLocked
	}
	u.role = role
	u.updatedAt = now
	return nil
}
