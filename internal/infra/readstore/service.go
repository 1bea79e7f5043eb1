package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const serviceViewSelect = `
SELECT id, name, duration_minutes, price_cents, description, created_at, updated_at
FROM services`

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(db db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: db}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, serviceViewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByPos[queries.ServiceView])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan service", err)
	}
	return v, nil
}

func (r *ServiceReadStore) List(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, serviceViewSelect+` ORDER BY name, id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	views, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[queries.ServiceView])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan services", err)
	}
	return views, nil
}
