package queries

import (
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrAppointmentNotFound = errs.NewNotFound("appointment not found")
	ErrAppointmentAccess   = errs.NewForbidden("appointment access denied")
	ErrServiceNotFound     = errs.NewNotFound("service not found")
	ErrInvalidTimeRange    = errs.NewInvalid("range start must be before range end")
)

// AppointmentView is the read model of an appointment with its user and service.
type AppointmentView struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"user_id"`
	UserEmail         string    `json:"user_email"`
	UserFirstName     string    `json:"user_first_name"`
	UserLastName      string    `json:"user_last_name"`
	UserPhone         *string   `json:"user_phone,omitempty"`
	ServiceID         uuid.UUID `json:"service_id"`
	ServiceName       string    `json:"service_name"`
	ServicePriceCents int32     `json:"service_price_cents"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	Status            string    `json:"status"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	PriceCents      int32     `json:"price_cents"`
	DurationMinutes int32     `json:"duration_minutes"`
	ImageURL        *string   `json:"image_url,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
