package availability

import (
	"context"
	"time"

	"salon-booking/internal/domain/appointment"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/metrics"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	MessageAvailable       = "slot available"
	MessageServiceInactive = "service no longer available"
	MessageInPast          = "requested slot is in the past"
	MessageOutsideHours    = "requested slot outside business hours"
	MessageAlreadyBooked   = "slot already booked"
)

// Source is the read side the engine depends on. shared.CommandReads
// satisfies it both on the pool and inside a transaction.
type Source interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error)
	OverlappingAppointments(ctx context.Context, start, end time.Time, excludeID *uuid.UUID) ([]shared.AppointmentSnapshot, error)
}

// Checker is the engine as seen by callers that only judge requests.
type Checker interface {
	Check(ctx context.Context, req Request) (*Verdict, error)
}

type Request struct {
	ServiceID uuid.UUID
	Start     time.Time
	// ExcludeID ignores one appointment, used when re-checking its own slot.
	ExcludeID *uuid.UUID
}

type Verdict struct {
	Available    bool
	Message      string
	Alternatives []time.Time
	// Slot is the interval derived from the service duration. It is zero when
	// the service was inactive.
	Slot appointment.TimeSlot
}

type Engine struct {
	source       Source
	policy       *schedule.Policy
	alternatives schedule.AlternativesConfig
	clock        clock.Clock
	metrics      metrics.Recorder
}

func NewEngine(
	source Source,
	policy *schedule.Policy,
	alternatives schedule.AlternativesConfig,
	clk clock.Clock,
	rec metrics.Recorder,
) *Engine {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Engine{
		source:       source,
		policy:       policy,
		alternatives: alternatives,
		clock:        clk,
		metrics:      rec,
	}
}

// WithSource returns a copy of the engine reading from src, typically the
// reads of an open transaction.
func (e *Engine) WithSource(src Source) *Engine {
	cp := *e
	cp.source = src
	return &cp
}

// Check decides whether req can be booked. Lookup failures are returned as
// errors; every other outcome is a Verdict.
func (e *Engine) Check(ctx context.Context, req Request) (*Verdict, error) {
	svc, err := e.service(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}

	if !svc.Active {
		e.metrics.AvailabilityChecked("inactive")
		return unavailable(MessageServiceInactive, nil, appointment.TimeSlot{}), nil
	}

	slot, err := appointment.SlotFor(req.Start, svc.Duration)
	if err != nil {
		return nil, err
	}

	if req.Start.Before(e.clock.Now()) {
		e.metrics.AvailabilityChecked("past")
		return unavailable(MessageInPast, nil, slot), nil
	}

	if !e.policy.IsWithinBusinessHours(slot.Start(), slot.End()) {
		alts, err := e.suggest(ctx, req.Start, svc.Duration, req.ExcludeID)
		if err != nil {
			return nil, err
		}
		e.metrics.AvailabilityChecked("outside_hours")
		return unavailable(MessageOutsideHours, alts, slot), nil
	}

	conflicts, err := e.source.OverlappingAppointments(ctx, slot.Start(), slot.End(), req.ExcludeID)
	if err != nil {
		return nil, errs.Wrap(err, "overlap lookup failed")
	}
	if len(conflicts) > 0 {
		alts, err := e.suggest(ctx, req.Start, svc.Duration, req.ExcludeID)
		if err != nil {
			return nil, err
		}
		e.metrics.AvailabilityChecked("booked")
		return unavailable(MessageAlreadyBooked, alts, slot), nil
	}

	e.metrics.AvailabilityChecked("available")
	return &Verdict{
		Available:    true,
		Message:      MessageAvailable,
		Alternatives: []time.Time{},
		Slot:         slot,
	}, nil
}

// SuggestAlternatives returns the bookable alternatives for req without
// judging req itself.
func (e *Engine) SuggestAlternatives(ctx context.Context, req Request) ([]time.Time, error) {
	svc, err := e.service(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return []time.Time{}, nil
	}
	return e.suggest(ctx, req.Start, svc.Duration, req.ExcludeID)
}

func (e *Engine) service(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	svc, err := e.source.ServiceByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(catalog.ErrNotFound, "service %s", id)
		}
		return nil, errs.Wrap(err, "service lookup failed")
	}
	return svc, nil
}

// suggest filters the fixed candidate set by business hours and by the
// bookings found in one overlap query spanning all remaining candidates.
func (e *Engine) suggest(ctx context.Context, requested time.Time, d time.Duration, excludeID *uuid.UUID) ([]time.Time, error) {
	now := e.clock.Now()

	var slots []appointment.TimeSlot
	for _, start := range e.policy.CandidateStarts(requested, e.alternatives) {
		slot, err := appointment.SlotFor(start, d)
		if err != nil {
			continue
		}
		if start.Before(now) || !e.policy.IsWithinBusinessHours(slot.Start(), slot.End()) {
			continue
		}
		slots = append(slots, slot)
	}

	out := []time.Time{}
	if len(slots) == 0 {
		return out, nil
	}

	lo, hi := slots[0].Start(), slots[0].End()
	for _, s := range slots[1:] {
		if s.Start().Before(lo) {
			lo = s.Start()
		}
		if s.End().After(hi) {
			hi = s.End()
		}
	}

	booked, err := e.source.OverlappingAppointments(ctx, lo, hi, excludeID)
	if err != nil {
		return nil, errs.Wrap(err, "overlap lookup failed")
	}

	busy := make([]appointment.TimeSlot, 0, len(booked))
	for _, b := range booked {
		s, err := appointment.NewTimeSlot(b.Start, b.End)
		if err != nil {
			continue
		}
		busy = append(busy, s)
	}

	for _, s := range slots {
		if !overlapsAny(s, busy) {
			out = append(out, s.Start())
		}
	}
	return out, nil
}

func overlapsAny(s appointment.TimeSlot, busy []appointment.TimeSlot) bool {
	for _, b := range busy {
		if s.Overlaps(b) {
			return true
		}
	}
	return false
}

func unavailable(msg string, alts []time.Time, slot appointment.TimeSlot) *Verdict {
	if alts == nil {
		alts = []time.Time{}
	}
	return &Verdict{
		Available:    false,
		Message:      msg,
		Alternatives: alts,
		Slot:         slot,
	}
}
