package converter

import (
	"salon-booking/internal/domain/appointment"
	sqlc "salon-booking/internal/infra/sqlc/generated"
	"salon-booking/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	return sqlc.CreateAppointmentParams{
		ID:        a.ID(),
		UserID:    a.UserID(),
		ServiceID: a.ServiceID(),
		StartTime: pgconv.TimeToPgtype(a.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(a.Slot().End()),
		Status:    a.Status().String(),
		Notes:     pgconv.OptionalStringToPgtype(a.Notes().String()),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) sqlc.UpdateAppointmentParams {
	return sqlc.UpdateAppointmentParams{
		ID:        a.ID(),
		ServiceID: a.ServiceID(),
		StartTime: pgconv.TimeToPgtype(a.Slot().Start()),
		EndTime:   pgconv.TimeToPgtype(a.Slot().End()),
		Status:    a.Status().String(),
		Notes:     pgconv.OptionalStringToPgtype(a.Notes().String()),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToStatusParams(a *appointment.Appointment) sqlc.UpdateAppointmentStatusParams {
	return sqlc.UpdateAppointmentStatusParams{
		ID:        a.ID(),
		Status:    a.Status().String(),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

// AppointmentFromInfra rebuilds the aggregate from a stored row.
func AppointmentFromInfra(row sqlc.Appointments) (*appointment.Appointment, error) {
	slot, err := appointment.NewTimeSlot(pgconv.TimeFromPgtype(row.StartTime), pgconv.TimeFromPgtype(row.EndTime))
	if err != nil {
		return nil, err
	}
	status, err := appointment.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	notes, err := appointment.NewNotes(pgconv.StringFromPgtype(row.Notes))
	if err != nil {
		return nil, err
	}
	return appointment.Reconstruct(
		row.ID, row.UserID, row.ServiceID,
		slot, status, notes,
		pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
