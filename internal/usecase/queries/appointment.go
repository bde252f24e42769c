package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
	FindUpcomingByUser(ctx context.Context, userID uuid.UUID, after time.Time) ([]*AppointmentView, error)
	FindByTimeRange(ctx context.Context, start, end time.Time) ([]*AppointmentView, error)
	FindByStatusAndTimeRange(ctx context.Context, status string, start, end time.Time) ([]*AppointmentView, error)
	// Bind returns a copy of the store that queries through db.
	Bind(db sqlc.DBTX) AppointmentReadStore
}

// UserReadStore resolves active users.
type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error)
	Bind(db sqlc.DBTX) UserReadStore
}

type TimeRangeFilter struct {
	Start  time.Time
	End    time.Time
	Status *appointment.Status
}

type AppointmentQueries interface {
	GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error)
	// GetByIDSystem skips access control; used after writes the caller was already authorized for.
	GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error)
	ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, upcomingOnly bool) ([]*AppointmentView, error)
	ListByTimeRange(ctx context.Context, actor shared.Actor, filter TimeRangeFilter) ([]*AppointmentView, error)
}

type appointmentQueriesImpl struct {
	store AppointmentReadStore
	users UserReadStore
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewAppointmentQueries(store AppointmentReadStore, users UserReadStore, uow shared.UnitOfWork, clk clock.Clock) AppointmentQueries {
	return &appointmentQueriesImpl{store: store, users: users, uow: uow, clock: clk}
}

func (q *appointmentQueriesImpl) GetByID(ctx context.Context, actor shared.Actor, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.GetByIDSystem(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanAccess(view.UserID) {
		// Hide existence from other customers.
		return nil, ErrAppointmentNotFound
	}
	return view, nil
}

func (q *appointmentQueriesImpl) GetByIDSystem(ctx context.Context, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAppointmentNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) ListByUser(ctx context.Context, actor shared.Actor, userID uuid.UUID, upcomingOnly bool) ([]*AppointmentView, error) {
	if !actor.CanAccess(userID) {
		return nil, ErrAppointmentAccess
	}

	var views []*AppointmentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db sqlc.DBTX) error {
		if _, err := q.users.Bind(db).FindByID(ctx, userID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Wrapf(user.ErrNotFound, "user %s", userID)
			}
			return err
		}

		store := q.store.Bind(db)
		var err error
		if upcomingOnly {
			views, err = store.FindUpcomingByUser(ctx, userID, q.clock.Now())
		} else {
			views, err = store.FindByUser(ctx, userID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *appointmentQueriesImpl) ListByTimeRange(ctx context.Context, actor shared.Actor, filter TimeRangeFilter) ([]*AppointmentView, error) {
	if !actor.IsStaff() {
		return nil, ErrAppointmentAccess
	}
	if !filter.Start.Before(filter.End) {
		return nil, ErrInvalidTimeRange
	}
	if filter.Status != nil {
		return q.store.FindByStatusAndTimeRange(ctx, filter.Status.String(), filter.Start, filter.End)
	}
	return q.store.FindByTimeRange(ctx, filter.Start, filter.End)
}
