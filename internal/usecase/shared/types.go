package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots keep commands independent of the query view types.
type ServiceSnapshot struct {
	ID         uuid.UUID
	Name       string
	Active     bool
	Duration   time.Duration
	PriceCents int
}

type UserSnapshot struct {
	ID        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	Role      string
}

type AppointmentSnapshot struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ServiceID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
}

// AppointmentDetails is an appointment joined with its user and service, used
// to build notification payloads.
type AppointmentDetails struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	UserEmail     string
	UserFirstName string
	UserLastName  string
	UserPhone     string
	ServiceID     uuid.UUID
	ServiceName   string
	Start         time.Time
	End           time.Time
	Status        string
	Notes         string
}

const (
	JobStatusQueued = "queued"
	JobStatusSent   = "sent"
	JobStatusFailed = "failed"
)

type NotificationJob struct {
	ID        uuid.UUID
	Kind      string
	Topic     string
	Payload   []byte
	RunAt     time.Time
	Attempts  int
	Status    string
	LastError string
}

type NotificationJobUpdate struct {
	ID        uuid.UUID
	Status    string
	Attempts  int
	RunAt     time.Time
	LastError *string
}
