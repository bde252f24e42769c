package queries

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
}

type ServiceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	// List returns active services; staff may ask for inactive ones too.
	List(ctx context.Context, actor shared.Actor, includeInactive bool) ([]*ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) List(ctx context.Context, actor shared.Actor, includeInactive bool) ([]*ServiceView, error) {
	return q.store.List(ctx, includeInactive && actor.IsStaff())
}
