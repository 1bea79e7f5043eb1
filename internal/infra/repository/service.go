package repository

import (
	"context"

	"salon-booking/internal/domain/service"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct{}

func NewServiceRepository() *ServiceRepository {
	return &ServiceRepository{}
}

func (r *ServiceRepository) Create(ctx context.Context, tx db.DBTX, s *service.Service) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO services (id, name, duration_minutes, price_cents, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID(), s.Name().String(), s.Duration().Minutes(), s.Price().Amount(), s.Description(),
		s.CreatedAt(), s.UpdatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx db.DBTX, s *service.Service) error {
	tag, err := tx.Exec(ctx, `
		UPDATE services
		SET name = $2, duration_minutes = $3, price_cents = $4, description = $5, updated_at = $6
		WHERE id = $1`,
		s.ID(), s.Name().String(), s.Duration().Minutes(), s.Price().Amount(), s.Description(), s.UpdatedAt(),
	)
	if err != nil {
		return infra.ClassifyPgErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete removes the catalog entry only; booked appointments keep their snapshot.
func (r *ServiceRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.ClassifyPgErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
