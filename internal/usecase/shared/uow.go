package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	sqlc "salon-booking/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Services() ServiceRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups the write side needs. Inside a transaction they
// run on the transaction connection.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	OverlappingAppointments(ctx context.Context, start, end time.Time, excludeID *uuid.UUID) ([]AppointmentSnapshot, error)
	AppointmentDetails(ctx context.Context, id uuid.UUID) (*AppointmentDetails, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	FindByIDForUpdate(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*appointment.Appointment, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, tx sqlc.DBTX, s *catalog.Service) error
	FindByID(ctx context.Context, tx sqlc.DBTX, id uuid.UUID) (*catalog.Service, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx sqlc.DBTX, kind, topic string, payload []byte, runAt time.Time) error
	ClaimDue(ctx context.Context, tx sqlc.DBTX, now time.Time, limit int) ([]NotificationJob, error)
	UpdateJob(ctx context.Context, tx sqlc.DBTX, update NotificationJobUpdate) error
}
