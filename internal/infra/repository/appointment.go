package repository

import (
	"context"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/repository/converter"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) (uuid.UUID, error)
	UpdateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentParams) (int64, error)
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
	GetAppointmentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Appointments, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      sqlc.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db sqlc.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

// Create inserts the appointment. An overlapping active appointment makes the
// exclusion constraint fail, reported as KindConflict.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error) {
	id, err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a))
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create appointment", err)
	}
	return id, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointment(ctx, tx, converter.AppointmentToUpdateParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointmentStatus(ctx, tx, converter.AppointmentToStatusParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

// FindByIDForUpdate locks the row for the rest of the transaction.
func (r *AppointmentRepository) FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.queries.GetAppointmentByIDForUpdate(ctx, tx, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load appointment", err)
	}
	a, err := converter.AppointmentFromInfra(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment is invalid", err, infra.KindDBFailure)
	}
	return a, nil
}
