package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ServiceResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     *string   `json:"description,omitempty"`
	PriceCents      int32     `json:"priceCents"`
	DurationMinutes int32     `json:"durationMinutes"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	var res ServiceResponse
	_ = copier.Copy(&res, v)
	return &res
}

func FromServiceViews(views []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(views))
	for i, v := range views {
		res[i] = FromServiceView(v)
	}
	return res
}
