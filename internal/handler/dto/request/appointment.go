package request

import (
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateAppointmentRequest struct {
	UserID    *uuid.UUID `json:"userId"`
	ServiceID uuid.UUID  `json:"serviceId" binding:"required"`
	StartTime time.Time  `json:"startTime" binding:"required"`
	EndTime   *time.Time `json:"endTime"`
	Notes     string     `json:"notes"`
}

func (r *CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		UserID:    r.UserID,
		ServiceID: r.ServiceID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
	}
}

// UpdateAppointmentRequest leaves absent fields unchanged.
type UpdateAppointmentRequest struct {
	ServiceID *uuid.UUID `json:"serviceId"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Notes     *string    `json:"notes"`
	Status    *string    `json:"status"`
}

func (r *UpdateAppointmentRequest) ToCommand() commands.UpdateAppointmentRequest {
	return commands.UpdateAppointmentRequest{
		ServiceID: r.ServiceID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Notes:     r.Notes,
		Status:    r.Status,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AppointmentRangeQuery struct {
	Start  time.Time `form:"start" binding:"required"`
	End    time.Time `form:"end" binding:"required"`
	Status string    `form:"status"`
}

func (q *AppointmentRangeQuery) ToFilter() (queries.TimeRangeFilter, error) {
	filter := queries.TimeRangeFilter{Start: q.Start, End: q.End}
	if q.Status != "" {
		st, err := appointment.ParseStatus(q.Status)
		if err != nil {
			return queries.TimeRangeFilter{}, err
		}
		filter.Status = &st
	}
	return filter, nil
}
