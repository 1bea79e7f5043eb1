//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/service"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	DurationMinutes int
	Price           int64
	Description     string
	CreatedAt       time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Haircut",
		DurationMinutes: 60,
		Price:           50000,
		Description:     "Wash, cut and style",
		CreatedAt:       time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) BuildDomain() *service.Service {
	return service.Reconstruct(s.ID, s.Name, s.DurationMinutes, s.Price, s.Description, s.CreatedAt, s.CreatedAt)
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price,
		Description:     s.Description,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.CreatedAt,
	}
}
