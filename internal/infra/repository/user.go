package repository

import (
	"context"

	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// Create fails with KindDuplicateKey when the email is already registered.
func (r *UserRepository) Create(ctx context.Context, tx db.DBTX, u *user.User) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO users (id, name, email, phone, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID(), u.Name().Value(), u.Email().Value(), u.Phone().Value(), u.PasswordHash(),
		u.Role().String(), u.IsActive(), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, tx db.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET name = $2, phone = $3, password_hash = $4, role = $5, is_active = $6,
		    last_login_at = $7, updated_at = $8
		WHERE id = $1`,
		u.ID(), u.Name().Value(), u.Phone().Value(), u.PasswordHash(), u.Role().String(), u.IsActive(),
		pgconv.TimePtrToPgtype(u.LastLogin()), u.UpdatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete hard-deletes the account. Appointments and notifications go with it by cascade.
func (r *UserRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
