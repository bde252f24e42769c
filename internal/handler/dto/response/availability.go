package response

import (
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/usecase/availability"
)

type AvailabilityResponse = httperr.AvailabilityDetail

func FromVerdict(v *availability.Verdict) *AvailabilityResponse {
	d := httperr.NewAvailabilityDetail(v.Available, v.Message, v.Alternatives)
	return &d
}
