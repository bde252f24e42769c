package repository

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateServiceParams) (uuid.UUID, error)
	UpdateService(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateServiceParams) (int64, error)
	GetServiceByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Services, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      sqlc.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db sqlc.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) (uuid.UUID, error) {
	params, err := converter.ServiceToCreateParams(s)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("invalid service values", err, infra.KindDBFailure)
	}
	id, err := r.queries.CreateService(ctx, tx, params)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error {
	params, err := converter.ServiceToUpdateParams(s)
	if err != nil {
		return infra.WrapRepoErr("invalid service values", err, infra.KindDBFailure)
	}
	n, err := r.queries.UpdateService(ctx, tx, params)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*catalog.Service, error) {
	row, err := r.queries.GetServiceByID(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load service", err)
	}
	return converter.ServiceFromInfra(row), nil
}
