package schedule

import (
	"time"

	"salon-booking/internal/pkg/errs"
)

var (
	ErrInvalidHours     = errs.New("opening time must be before closing time within one day")
	ErrInvalidTimeOfDay = errs.New("time of day must be formatted as HH:MM")
	ErrInvalidWeekday   = errs.New("unknown weekday")
)

// PolicyConfig describes the salon opening hours. Offsets are measured from
// local midnight in Location.
type PolicyConfig struct {
	OpensAt    time.Duration
	ClosesAt   time.Duration
	ClosedDays []time.Weekday
	Location   *time.Location
}

func DefaultPolicyConfig() PolicyConfig {
	return PolicyConfig{
		OpensAt:    9 * time.Hour,
		ClosesAt:   18 * time.Hour,
		ClosedDays: []time.Weekday{time.Sunday},
		Location:   time.UTC,
	}
}

// Policy answers whether an interval lies inside opening hours.
type Policy struct {
	opensAt    time.Duration
	closesAt   time.Duration
	closedDays map[time.Weekday]struct{}
	location   *time.Location
}

func NewPolicy(cfg PolicyConfig) (*Policy, error) {
	if cfg.OpensAt < 0 || cfg.ClosesAt > 24*time.Hour || cfg.OpensAt >= cfg.ClosesAt {
		return nil, ErrInvalidHours
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	closed := make(map[time.Weekday]struct{}, len(cfg.ClosedDays))
	for _, d := range cfg.ClosedDays {
		closed[d] = struct{}{}
	}
	return &Policy{
		opensAt:    cfg.OpensAt,
		closesAt:   cfg.ClosesAt,
		closedDays: closed,
		location:   loc,
	}, nil
}

func (p *Policy) Location() *time.Location { return p.location }

func (p *Policy) IsOpenOn(day time.Time) bool {
	_, closed := p.closedDays[day.In(p.location).Weekday()]
	return !closed
}

// IsWithinBusinessHours reports whether [start, end) starts on an open day at
// or after opening time and ends at or before closing time on the same date.
func (p *Policy) IsWithinBusinessHours(start, end time.Time) bool {
	ls, le := start.In(p.location), end.In(p.location)
	if !le.After(ls) {
		return false
	}
	if !p.IsOpenOn(ls) {
		return false
	}
	if !sameDate(ls, le) {
		return false
	}
	return timeOfDay(ls) >= p.opensAt && timeOfDay(le) <= p.closesAt
}

// At returns the instant on day's local date at the given offset from midnight.
func (p *Policy) At(day time.Time, offset time.Duration) time.Time {
	l := day.In(p.location)
	midnight := time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, p.location)
	h := int(offset / time.Hour)
	m := int((offset % time.Hour) / time.Minute)
	return time.Date(midnight.Year(), midnight.Month(), midnight.Day(), h, m, 0, 0, p.location)
}

// StartOfDay returns local midnight of t's date.
func (p *Policy) StartOfDay(t time.Time) time.Time {
	return p.At(t, 0)
}

func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
