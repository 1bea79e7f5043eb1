package converter

import (
	"time"

	"salon-booking/internal/domain/service"

	"github.com/google/uuid"
)

const ServiceColumns = `id, name, duration_minutes, price_cents, description, created_at, updated_at`

type ServiceRow struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      int64
	Description     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (r *ServiceRow) ScanTargets() []any {
	return []any{&r.ID, &r.Name, &r.DurationMinutes, &r.PriceCents, &r.Description, &r.CreatedAt, &r.UpdatedAt}
}

func ServiceToDomain(r *ServiceRow) *service.Service {
	return service.Reconstruct(r.ID, r.Name, int(r.DurationMinutes), r.PriceCents, r.Description, r.CreatedAt, r.UpdatedAt)
}
