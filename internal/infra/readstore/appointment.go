package readstore

import (
	"context"
	"time"

	"salon-booking/internal/infra"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentViewByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.AppointmentViews, error)
	ListAppointmentViewsByUser(ctx context.Context, db sqlc.DBTX, userID uuid.UUID) ([]sqlc.AppointmentViews, error)
	ListUpcomingAppointmentViewsByUser(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingAppointmentViewsByUserParams) ([]sqlc.AppointmentViews, error)
	ListAppointmentViewsByTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsByTimeRangeParams) ([]sqlc.AppointmentViews, error)
	ListAppointmentViewsByStatusAndTimeRange(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentViewsByStatusAndTimeRangeParams) ([]sqlc.AppointmentViews, error)
	ListOverlappingAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingAppointmentsParams) ([]sqlc.Appointments, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) Bind(db sqlc.DBTX) queries.AppointmentReadStore {
	return NewAppointmentReadStore(r.queries, db)
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}
	return toAppointmentView(row), nil
}

func (r *AppointmentReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentViewsByUser(ctx, r.db, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by user", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) FindUpcomingByUser(ctx context.Context, userID uuid.UUID, after time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListUpcomingAppointmentViewsByUser(ctx, r.db, sqlc.ListUpcomingAppointmentViewsByUserParams{
		UserID: userID,
		After:  pgconv.TimeToPgtype(after),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming appointments", err)
	}
	return toAppointmentViews(rows), nil
}

// FindByTimeRange returns appointments whose start lies in [start, end).
func (r *AppointmentReadStore) FindByTimeRange(ctx context.Context, start, end time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentViewsByTimeRange(ctx, r.db, sqlc.ListAppointmentViewsByTimeRangeParams{
		RangeStart: pgconv.TimeToPgtype(start),
		RangeEnd:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by time range", err)
	}
	return toAppointmentViews(rows), nil
}

func (r *AppointmentReadStore) FindByStatusAndTimeRange(ctx context.Context, status string, start, end time.Time) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentViewsByStatusAndTimeRange(ctx, r.db, sqlc.ListAppointmentViewsByStatusAndTimeRangeParams{
		Status:     status,
		RangeStart: pgconv.TimeToPgtype(start),
		RangeEnd:   pgconv.TimeToPgtype(end),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments by status and time range", err)
	}
	return toAppointmentViews(rows), nil
}

// FindOverlapping returns slot-occupying appointments intersecting [start, end).
func (r *AppointmentReadStore) FindOverlapping(ctx context.Context, start, end time.Time, excludeID *uuid.UUID) ([]shared.AppointmentSnapshot, error) {
	rows, err := r.queries.ListOverlappingAppointments(ctx, r.db, sqlc.ListOverlappingAppointmentsParams{
		RangeStart: pgconv.TimeToPgtype(start),
		RangeEnd:   pgconv.TimeToPgtype(end),
		ExcludeID:  pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find overlapping appointments", err)
	}

	result := make([]shared.AppointmentSnapshot, len(rows))
	for i, row := range rows {
		result[i] = shared.AppointmentSnapshot{
			ID:        row.ID,
			UserID:    row.UserID,
			ServiceID: row.ServiceID,
			Start:     pgconv.TimeFromPgtype(row.StartTime),
			End:       pgconv.TimeFromPgtype(row.EndTime),
			Status:    row.Status,
		}
	}
	return result, nil
}

func toAppointmentViews(rows []sqlc.AppointmentViews) []*queries.AppointmentView {
	result := make([]*queries.AppointmentView, len(rows))
	for i, row := range rows {
		result[i] = toAppointmentView(row)
	}
	return result
}

func toAppointmentView(row sqlc.AppointmentViews) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:                row.ID,
		UserID:            row.UserID,
		UserEmail:         row.UserEmail,
		UserFirstName:     row.UserFirstName,
		UserLastName:      row.UserLastName,
		UserPhone:         pgconv.StringPtrFromPgtype(row.UserPhone),
		ServiceID:         row.ServiceID,
		ServiceName:       row.ServiceName,
		ServicePriceCents: row.ServicePriceCents,
		StartTime:         pgconv.TimeFromPgtype(row.StartTime),
		EndTime:           pgconv.TimeFromPgtype(row.EndTime),
		Status:            row.Status,
		Notes:             pgconv.StringPtrFromPgtype(row.Notes),
		CreatedAt:         pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:         pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
