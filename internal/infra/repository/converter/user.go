package converter

import (
	"time"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const UserColumns = `id, name, email, phone, password_hash, role, is_active, last_login_at, created_at, updated_at`

type UserRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  pgtype.Timestamptz
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (r *UserRow) ScanTargets() []any {
	return []any{
		&r.ID, &r.Name, &r.Email, &r.Phone, &r.PasswordHash,
		&r.Role, &r.IsActive, &r.LastLoginAt, &r.CreatedAt, &r.UpdatedAt,
	}
}

func UserToDomain(r *UserRow) (*user.User, error) {
	role, err := user.NewRole(r.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "user %s", r.ID)
	}
	return user.Reconstruct(
		r.ID, r.Name, r.Email, r.Phone, r.PasswordHash,
		role, r.IsActive, pgconv.TimePtrFromPgtype(r.LastLoginAt),
		r.CreatedAt, r.UpdatedAt,
	), nil
}
