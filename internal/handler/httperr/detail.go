package httperr

import "time"

func NewAvailabilityDetail(available bool, message string, alternatives []time.Time) AvailabilityDetail {
	slots := make([]string, len(alternatives))
	for i, t := range alternatives {
		slots[i] = t.Format(time.RFC3339)
	}
	return AvailabilityDetail{
		Available:        available,
		Message:          message,
		AlternativeSlots: slots,
	}
}
