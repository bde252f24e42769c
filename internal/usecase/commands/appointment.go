package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/user"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/availability"
	"salon-booking/internal/usecase/notification"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrSlotUnavailable       = errs.NewInvalid("requested slot is not available")
	ErrBookingForOtherUser   = errs.NewForbidden("only staff can book for another user")
	ErrStatusChangeForbidden = errs.NewForbidden("customers can only cancel their own appointments")
)

// UnavailableError carries the availability verdict back to the caller so the
// reason and alternatives can be shown.
type UnavailableError struct {
	Verdict *availability.Verdict
}

func (e *UnavailableError) Error() string {
	return e.Verdict.Message
}

func (e *UnavailableError) Unwrap() error {
	return ErrSlotUnavailable
}

func AsUnavailable(err error) (*UnavailableError, bool) {
	var ue *UnavailableError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}

type CreateAppointmentRequest struct {
	// UserID books on behalf of another user. Staff only.
	UserID    *uuid.UUID
	ServiceID uuid.UUID
	StartTime time.Time
	// EndTime is optional; when given it must match the service duration.
	EndTime *time.Time
	Notes   string
}

type UpdateAppointmentRequest struct {
	ServiceID *uuid.UUID
	StartTime *time.Time
	EndTime   *time.Time
	Notes     *string
	Status    *string
}

type AppointmentCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateAppointmentRequest) (*queries.AppointmentView, error)
	Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateAppointmentRequest) (*queries.AppointmentView, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) (*queries.AppointmentView, error)
	Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.AppointmentView, error)
}

type appointmentUseCaseImpl struct {
	uow     shared.UnitOfWork
	engine  *availability.Engine
	queries queries.AppointmentQueries
	waker   notification.Waker
	clock   clock.Clock
	metrics metrics.Recorder
}

func NewAppointmentUseCase(
	uow shared.UnitOfWork,
	engine *availability.Engine,
	appointmentQueries queries.AppointmentQueries,
	waker notification.Waker,
	clk clock.Clock,
	rec metrics.Recorder,
) AppointmentCommands {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &appointmentUseCaseImpl{
		uow:     uow,
		engine:  engine,
		queries: appointmentQueries,
		waker:   waker,
		clock:   clk,
		metrics: rec,
	}
}

func (uc *appointmentUseCaseImpl) Create(ctx context.Context, actor shared.Actor, req CreateAppointmentRequest) (*queries.AppointmentView, error) {
	target := actor.UserID
	if req.UserID != nil && *req.UserID != actor.UserID {
		if !actor.IsStaff() {
			return nil, ErrBookingForOtherUser
		}
		target = *req.UserID
	}

	notes, err := appointment.NewNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	check := availability.Request{ServiceID: req.ServiceID, Start: req.StartTime}
	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		verdict, err := uc.engine.WithSource(tx.Reads()).Check(ctx, check)
		if err != nil {
			return err
		}
		if !verdict.Available {
			return &UnavailableError{Verdict: verdict}
		}
		if req.EndTime != nil && !req.EndTime.Equal(verdict.Slot.End()) {
			return appointment.ErrEndTimeMismatch
		}

		if err := uc.ensureUser(ctx, tx, target); err != nil {
			return err
		}

		appt, err := appointment.New(target, req.ServiceID, verdict.Slot, notes, now)
		if err != nil {
			return err
		}
		id, err := tx.Appointments().Create(ctx, tx.DB(), appt)
		if err != nil {
			return err
		}
		createdID = id
		return notification.EnqueueFor(ctx, tx, notification.KindConfirmation, id, now)
	})
	if err != nil {
		if errs.Is(err, errs.ErrConflict) {
			return nil, uc.lostRace(ctx, check, err)
		}
		return nil, err
	}

	uc.metrics.AppointmentCreated()
	uc.waker.Wake()
	slog.Info("appointment booked",
		"appointment_id", createdID.String(),
		"user_id", target.String(),
		"service_id", req.ServiceID.String())

	return uc.queries.GetByIDSystem(ctx, createdID)
}

// lostRace turns a constraint violation from a concurrent booking into the
// same verdict a sequential caller would have received.
func (uc *appointmentUseCaseImpl) lostRace(ctx context.Context, req availability.Request, cause error) error {
	uc.metrics.BookingConflict()
	slog.Info("concurrent booking rejected", "service_id", req.ServiceID.String(), "start", req.Start, "error", cause.Error())

	alts, err := uc.engine.SuggestAlternatives(ctx, req)
	if err != nil {
		return err
	}
	return &UnavailableError{Verdict: &availability.Verdict{
		Available:    false,
		Message:      availability.MessageAlreadyBooked,
		Alternatives: alts,
	}}
}

func (uc *appointmentUseCaseImpl) Update(ctx context.Context, actor shared.Actor, id uuid.UUID, req UpdateAppointmentRequest) (*queries.AppointmentView, error) {
	var nextStatus *appointment.Status
	if req.Status != nil {
		st, err := appointment.ParseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		nextStatus = &st
	}
	var notes *appointment.Notes
	if req.Notes != nil {
		n, err := appointment.NewNotes(*req.Notes)
		if err != nil {
			return nil, err
		}
		notes = &n
	}

	var (
		tr      appointment.Transition
		recheck *availability.Request
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		appt, err := uc.loadForActor(ctx, tx, actor, id)
		if err != nil {
			return err
		}

		serviceID := patch.Coalesce(req.ServiceID, appt.ServiceID())
		start := patch.Coalesce(req.StartTime, appt.Slot().Start())
		if serviceID != appt.ServiceID() || !start.Equal(appt.Slot().Start()) {
			if appt.Status().IsTerminal() {
				return appointment.ErrTerminalSchedule
			}
			recheck = &availability.Request{ServiceID: serviceID, Start: start, ExcludeID: &id}
			verdict, err := uc.engine.WithSource(tx.Reads()).Check(ctx, *recheck)
			if err != nil {
				return err
			}
			if !verdict.Available {
				return &UnavailableError{Verdict: verdict}
			}
			if req.EndTime != nil && !req.EndTime.Equal(verdict.Slot.End()) {
				return appointment.ErrEndTimeMismatch
			}
			if err := appt.Reschedule(serviceID, verdict.Slot, now); err != nil {
				return err
			}
		} else if req.EndTime != nil && !req.EndTime.Equal(appt.Slot().End()) {
			return appointment.ErrEndTimeMismatch
		}

		if notes != nil {
			appt.UpdateNotes(*notes, now)
		}
		if nextStatus != nil {
			if err := authorizeStatusChange(actor, appt.Status(), *nextStatus); err != nil {
				return err
			}
			tr, err = appt.ChangeStatus(*nextStatus, now)
			if err != nil {
				return err
			}
		}

		if err := tx.Appointments().Update(ctx, tx.DB(), appt); err != nil {
			return err
		}
		if tr.EntersCancelled() {
			return notification.EnqueueFor(ctx, tx, notification.KindCancellation, id, now)
		}
		return nil
	})
	if err != nil {
		if recheck != nil && errs.Is(err, errs.ErrConflict) {
			return nil, uc.lostRace(ctx, *recheck, err)
		}
		return nil, err
	}

	uc.afterTransition(tr)
	return uc.queries.GetByIDSystem(ctx, id)
}

func (uc *appointmentUseCaseImpl) UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, status string) (*queries.AppointmentView, error) {
	next, err := appointment.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	var tr appointment.Transition
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		appt, err := uc.loadForActor(ctx, tx, actor, id)
		if err != nil {
			return err
		}
		if err := authorizeStatusChange(actor, appt.Status(), next); err != nil {
			return err
		}
		tr, err = appt.ChangeStatus(next, now)
		if err != nil {
			return err
		}
		if !tr.Changed() {
			return nil
		}
		if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appt); err != nil {
			return err
		}
		if tr.EntersCancelled() {
			return notification.EnqueueFor(ctx, tx, notification.KindCancellation, id, now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.afterTransition(tr)
	return uc.queries.GetByIDSystem(ctx, id)
}

func (uc *appointmentUseCaseImpl) Cancel(ctx context.Context, actor shared.Actor, id uuid.UUID) (*queries.AppointmentView, error) {
	return uc.UpdateStatus(ctx, actor, id, appointment.StatusCancelled.String())
}

func (uc *appointmentUseCaseImpl) afterTransition(tr appointment.Transition) {
	if !tr.Changed() {
		return
	}
	uc.metrics.StatusChanged(tr.To.String())
	if tr.EntersCancelled() {
		uc.waker.Wake()
	}
}

// loadForActor locks the appointment. Appointments of other customers are
// reported as missing.
func (uc *appointmentUseCaseImpl) loadForActor(ctx context.Context, tx shared.Tx, actor shared.Actor, id uuid.UUID) (*appointment.Appointment, error) {
	appt, err := tx.Appointments().FindByIDForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(appointment.ErrNotFound, "appointment %s", id)
		}
		return nil, err
	}
	if !actor.CanAccess(appt.UserID()) {
		return nil, errs.Wrapf(appointment.ErrNotFound, "appointment %s", id)
	}
	return appt, nil
}

func (uc *appointmentUseCaseImpl) ensureUser(ctx context.Context, tx shared.Tx, id uuid.UUID) error {
	if id == uuid.Nil {
		return appointment.ErrMissingUser
	}
	if _, err := tx.Reads().UserByID(ctx, id); err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return errs.Wrapf(user.ErrNotFound, "user %s", id)
		}
		return err
	}
	return nil
}

// authorizeStatusChange lets customers cancel their own appointments and
// nothing else. Staff may set any status.
func authorizeStatusChange(actor shared.Actor, current, next appointment.Status) error {
	if actor.IsStaff() || current == next || next == appointment.StatusCancelled {
		return nil
	}
	return ErrStatusChangeForbidden
}
