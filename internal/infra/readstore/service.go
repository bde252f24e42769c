package readstore

import (
	"context"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
	ListServices(ctx context.Context, db sqlc.DBTX, includeInactive bool) ([]sqlc.Services, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      sqlc.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db sqlc.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetServiceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return toServiceView(row), nil
}

func (r *ServiceReadStore) List(ctx context.Context, includeInactive bool) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	result := make([]*queries.ServiceView, len(rows))
	for i, row := range rows {
		result[i] = toServiceView(row)
	}
	return result, nil
}

func toServiceView(row sqlc.Services) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              row.ID,
		Name:            row.Name,
		Description:     pgconv.StringPtrFromPgtype(row.Description),
		PriceCents:      row.PriceCents,
		DurationMinutes: row.DurationMinutes,
		ImageURL:        pgconv.StringPtrFromPgtype(row.ImageUrl),
		Active:          row.Active,
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
