package notification

import (
	"context"
	"encoding/json"
	"time"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrUnknownKind = errs.New("unknown notification kind")

type Kind string

const (
	KindConfirmation Kind = "confirmation"
	KindCancellation Kind = "cancellation"
	KindReminder     Kind = "reminder"
)

func (k Kind) Topic() string {
	switch k {
	case KindConfirmation:
		return "appointment.confirmed"
	case KindCancellation:
		return "appointment.cancelled"
	case KindReminder:
		return "appointment.reminder"
	}
	return ""
}

// Event is the payload stored in the outbox and handed to the gateway.
type Event struct {
	EventID       uuid.UUID `json:"event_id"`
	Kind          Kind      `json:"kind"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	UserID        uuid.UUID `json:"user_id"`
	Email         string    `json:"email"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Phone         string    `json:"phone,omitempty"`
	ServiceID     uuid.UUID `json:"service_id"`
	ServiceName   string    `json:"service_name"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	Status        string    `json:"status"`
	// Window names the reminder job that produced the event.
	Window     string    `json:"window,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(kind Kind, d *shared.AppointmentDetails, now time.Time) Event {
	return Event{
		EventID:       uuid.New(),
		Kind:          kind,
		AppointmentID: d.ID,
		UserID:        d.UserID,
		Email:         d.UserEmail,
		FirstName:     d.UserFirstName,
		LastName:      d.UserLastName,
		Phone:         d.UserPhone,
		ServiceID:     d.ServiceID,
		ServiceName:   d.ServiceName,
		StartTime:     d.Start,
		EndTime:       d.End,
		Status:        d.Status,
		OccurredAt:    now,
	}
}

func Decode(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, errs.Wrap(err, "decode notification payload")
	}
	if ev.Kind.Topic() == "" {
		return Event{}, errs.Wrapf(ErrUnknownKind, "kind %q", ev.Kind)
	}
	return ev, nil
}

// Enqueue writes ev to the outbox within tx. Delivery happens after commit.
func Enqueue(ctx context.Context, tx shared.Tx, ev Event) error {
	topic := ev.Kind.Topic()
	if topic == "" {
		return errs.Wrapf(ErrUnknownKind, "kind %q", ev.Kind)
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		return errs.Wrap(err, "encode notification payload")
	}
	return tx.Notifications().CreateJob(ctx, tx.DB(), string(ev.Kind), topic, payload, ev.OccurredAt)
}

// EnqueueFor loads the appointment details inside tx and enqueues an event of kind.
func EnqueueFor(ctx context.Context, tx shared.Tx, kind Kind, appointmentID uuid.UUID, now time.Time) error {
	details, err := tx.Reads().AppointmentDetails(ctx, appointmentID)
	if err != nil {
		return err
	}
	return Enqueue(ctx, tx, NewEvent(kind, details, now))
}
