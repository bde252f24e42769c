package request

import (
	"time"

	"salon-booking/internal/usecase/availability"

	"github.com/google/uuid"
)

type CheckAvailabilityRequest struct {
	ServiceID uuid.UUID `json:"serviceId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
}

func (r *CheckAvailabilityRequest) ToQuery() availability.Request {
	return availability.Request{ServiceID: r.ServiceID, Start: r.StartTime}
}
