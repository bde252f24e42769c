package appointment

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	id        uuid.UUID
	userID    uuid.UUID
	serviceID uuid.UUID
	slot      TimeSlot
	status    Status
	notes     Notes
	createdAt time.Time
	updatedAt time.Time
}

// New creates a confirmed appointment. The slot is expected to be derived from
// the service duration at booking time.
func New(userID, serviceID uuid.UUID, slot TimeSlot, notes Notes, now time.Time) (*Appointment, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if serviceID == uuid.Nil {
		return nil, ErrMissingService
	}
	return &Appointment{
		id:        uuid.New(),
		userID:    userID,
		serviceID: serviceID,
		slot:      slot,
		status:    StatusConfirmed,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func Reconstruct(
	id, userID, serviceID uuid.UUID,
	slot TimeSlot,
	status Status,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		userID:    userID,
		serviceID: serviceID,
		slot:      slot,
		status:    status,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition records a status change applied by ChangeStatus.
type Transition struct {
	From Status
	To   Status
}

func (t Transition) Changed() bool { return t.From != t.To }

// EntersCancelled is true only when the appointment moved into cancelled from
// another status.
func (t Transition) EntersCancelled() bool {
	return t.To == StatusCancelled && t.From != StatusCancelled
}

// ChangeStatus applies next. Setting the current status again is a no-op; a
// terminal appointment cannot move to a different status.
func (a *Appointment) ChangeStatus(next Status, now time.Time) (Transition, error) {
	if !next.IsValid() {
		return Transition{}, ErrInvalidStatus
	}
	tr := Transition{From: a.status, To: next}
	if !tr.Changed() {
		return tr, nil
	}
	if a.status.IsTerminal() {
		return Transition{}, ErrTerminalStatus
	}
	a.status = next
	a.updatedAt = now
	return tr, nil
}

// Reschedule moves the appointment to another service and/or slot.
func (a *Appointment) Reschedule(serviceID uuid.UUID, slot TimeSlot, now time.Time) error {
	if serviceID == uuid.Nil {
		return ErrMissingService
	}
	if a.status.IsTerminal() {
		return ErrTerminalSchedule
	}
	a.serviceID = serviceID
	a.slot = slot
	a.updatedAt = now
	return nil
}

func (a *Appointment) UpdateNotes(notes Notes, now time.Time) {
	a.notes = notes
	a.updatedAt = now
}

func (a *Appointment) IsUpcoming(now time.Time) bool {
	return a.slot.Start().After(now)
}

func (a *Appointment) ID() uuid.UUID        { return a.id }
func (a *Appointment) UserID() uuid.UUID    { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID { return a.serviceID }
func (a *Appointment) Slot() TimeSlot       { return a.slot }
func (a *Appointment) Status() Status       { return a.status }
func (a *Appointment) Notes() Notes         { return a.notes }
func (a *Appointment) CreatedAt() time.Time { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time { return a.updatedAt }
