package commands

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrAdminOnly = errs.NewForbidden("admin role required")

type CreateServiceRequest struct {
	Name            string
	Description     string
	PriceCents      int
	DurationMinutes int
	ImageURL        string
	// Active defaults to true.
	Active *bool
}

type UpdateServiceRequest struct {
	Name            *string
	Description     *string
	PriceCents      *int
	DurationMinutes *int
	ImageURL        *string
	Active          *bool
}

type ServiceCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateServiceRequest) (*queries.ServiceView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateServiceRequest) (*queries.ServiceView, error)
}

type serviceUseCaseImpl struct {
	uow     shared.UnitOfWork
	queries queries.ServiceQueries
}

func NewServiceUseCase(uow shared.UnitOfWork, serviceQueries queries.ServiceQueries) ServiceCommands {
	return &serviceUseCaseImpl{uow: uow, queries: serviceQueries}
}

func (uc *serviceUseCaseImpl) Create(ctx context.Context, actor shared.Actor, req CreateServiceRequest) (*queries.ServiceView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	svc, err := catalog.NewService(catalog.Attributes{
		Name:            req.Name,
		Description:     req.Description,
		PriceCents:      req.PriceCents,
		DurationMinutes: req.DurationMinutes,
		ImageURL:        req.ImageURL,
		Active:          patch.Coalesce(req.Active, true),
	})
	if err != nil {
		return nil, err
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		id, err = tx.Services().Create(ctx, tx.DB(), svc)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.queries.GetByID(ctx, id)
}

func (uc *serviceUseCaseImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateServiceRequest) (*queries.ServiceView, error) {
	if !actor.IsAdmin() {
		return nil, ErrAdminOnly
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := tx.Services().FindByID(ctx, tx.DB(), id)
		if err != nil {
			if errs.Is(err, errs.ErrNotFound) {
				return errs.Wrapf(catalog.ErrNotFound, "service %s", id)
			}
			return err
		}

		cur := svc.Attributes()
		if err := svc.Update(catalog.Attributes{
			Name:            patch.Coalesce(req.Name, cur.Name),
			Description:     patch.Coalesce(req.Description, cur.Description),
			PriceCents:      patch.Coalesce(req.PriceCents, cur.PriceCents),
			DurationMinutes: patch.Coalesce(req.DurationMinutes, cur.DurationMinutes),
			ImageURL:        patch.Coalesce(req.ImageURL, cur.ImageURL),
			Active:          patch.Coalesce(req.Active, cur.Active),
		}); err != nil {
			return err
		}
		return tx.Services().Update(ctx, tx.DB(), svc)
	})
	if err != nil {
		return nil, err
	}
	return uc.queries.GetByID(ctx, id)
}
