package appointment

import "salon-booking/internal/pkg/errs"

var (
	ErrNotFound          = errs.NewNotFound("appointment not found")
	ErrInvalidTimeSlot   = errs.NewInvalid("start time must be before end time")
	ErrInvalidStatus     = errs.NewInvalid("invalid appointment status")
	ErrTerminalStatus    = errs.NewInvalid("appointment status is terminal and cannot change")
	ErrTerminalSchedule  = errs.NewInvalid("appointment is no longer scheduled and cannot be moved")
	ErrMissingUser       = errs.NewInvalid("appointment requires a user")
	ErrMissingService    = errs.NewInvalid("appointment requires a service")
	ErrNotesTooLong      = errs.NewInvalid("notes must be at most 1000 characters")
	ErrEndTimeMismatch   = errs.NewInvalid("end time must equal start time plus the service duration")
	ErrSlotAlreadyBooked = errs.Mark(errs.New("slot already booked"), errs.ErrConflict)
)
