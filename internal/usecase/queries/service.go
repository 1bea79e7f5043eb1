package queries

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	v, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, shared.ErrServiceNotFound
		}
		return nil, err
	}
	return v, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context) ([]*ServiceView, error) {
	return q.readStore.List(ctx)
}
