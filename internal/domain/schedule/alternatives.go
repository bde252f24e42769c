package schedule

import "time"

// AlternativesConfig controls which start times are offered when a requested
// slot cannot be booked.
type AlternativesConfig struct {
	SameDayOffsets []time.Duration
	NextDayStartAt time.Duration
	NextDaySlots   int
	NextDayStep    time.Duration
}

func DefaultAlternativesConfig() AlternativesConfig {
	return AlternativesConfig{
		SameDayOffsets: []time.Duration{time.Hour, 2 * time.Hour, 3 * time.Hour},
		NextDayStartAt: 10 * time.Hour,
		NextDaySlots:   4,
		NextDayStep:    time.Hour,
	}
}

// CandidateStarts lists the unfiltered alternative start times for requested:
// the same-day offsets first, then the next-day series if that day is open.
func (p *Policy) CandidateStarts(requested time.Time, cfg AlternativesConfig) []time.Time {
	local := requested.In(p.location)
	out := make([]time.Time, 0, len(cfg.SameDayOffsets)+cfg.NextDaySlots)
	for _, off := range cfg.SameDayOffsets {
		out = append(out, local.Add(off))
	}

	nextDay := local.AddDate(0, 0, 1)
	if !p.IsOpenOn(nextDay) {
		return out
	}
	first := p.At(nextDay, cfg.NextDayStartAt)
	for i := 0; i < cfg.NextDaySlots; i++ {
		out = append(out, first.Add(time.Duration(i)*cfg.NextDayStep))
	}
	return out
}
