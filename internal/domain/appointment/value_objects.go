package appointment

import (
	"time"
	"unicode/utf8"
)

// TimeSlot is the half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !end.After(start) {
		return TimeSlot{}, ErrInvalidTimeSlot
	}
	return TimeSlot{start: start, end: end}, nil
}

// SlotFor builds the slot for a service of the given duration starting at start.
func SlotFor(start time.Time, d time.Duration) (TimeSlot, error) {
	return NewTimeSlot(start, start.Add(d))
}

func (ts TimeSlot) Start() time.Time        { return ts.start }
func (ts TimeSlot) End() time.Time          { return ts.end }
func (ts TimeSlot) Duration() time.Duration { return ts.end.Sub(ts.start) }

// Overlaps is true when the intervals share an instant. Touching endpoints do not overlap.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) Equal(other TimeSlot) bool {
	return ts.start.Equal(other.start) && ts.end.Equal(other.end)
}

const maxNotesLength = 1000

type Notes struct {
	value string
}

func NewNotes(value string) (Notes, error) {
	if utf8.RuneCountInString(value) > maxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: value}, nil
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }
