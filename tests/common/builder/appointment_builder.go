//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/appointment"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	Duration  time.Duration
	Status    appointment.Status
	Notes     string
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ServiceID: uuid.New(),
		StartTime: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
		Duration:  time.Hour,
		Status:    appointment.StatusConfirmed,
		Notes:     "first visit",
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) ForUser(id uuid.UUID) *AppointmentBuilder {
	b.UserID = id
	return b
}

func (b *AppointmentBuilder) ForService(id uuid.UUID) *AppointmentBuilder {
	b.ServiceID = id
	return b
}

func (b *AppointmentBuilder) At(start time.Time) *AppointmentBuilder {
	b.StartTime = start
	return b
}

func (b *AppointmentBuilder) WithStatus(st appointment.Status) *AppointmentBuilder {
	b.Status = st
	return b
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	notes := b.Notes
	return &queries.AppointmentView{
		ID:                b.ID,
		UserID:            b.UserID,
		UserEmail:         "claire@example.com",
		UserFirstName:     "Claire",
		UserLastName:      "Martin",
		ServiceID:         b.ServiceID,
		ServiceName:       "Haircut",
		ServicePriceCents: 4500,
		StartTime:         b.StartTime,
		EndTime:           b.StartTime.Add(b.Duration),
		Status:            b.Status.String(),
		Notes:             &notes,
		CreatedAt:         b.StartTime.Add(-48 * time.Hour),
		UpdatedAt:         b.StartTime.Add(-48 * time.Hour),
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		ServiceID: b.ServiceID,
		StartTime: b.StartTime,
		Notes:     b.Notes,
	}
}
