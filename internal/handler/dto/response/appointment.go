package response

import (
	"strings"
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID                uuid.UUID `json:"id"`
	UserID            uuid.UUID `json:"userId"`
	UserEmail         string    `json:"userEmail"`
	UserFirstName     string    `json:"userFirstName"`
	UserLastName      string    `json:"userLastName"`
	ServiceID         uuid.UUID `json:"serviceId"`
	ServiceName       string    `json:"serviceName"`
	ServicePriceCents int32     `json:"servicePriceCents"`
	StartTime         time.Time `json:"startTime"`
	EndTime           time.Time `json:"endTime"`
	Status            string    `json:"status"`
	Notes             *string   `json:"notes,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	var res AppointmentResponse
	// field names match; only the status casing differs on the wire
	_ = copier.Copy(&res, v)
	res.Status = strings.ToUpper(v.Status)
	return &res
}

func FromAppointmentViews(views []*queries.AppointmentView) []*AppointmentResponse {
	res := make([]*AppointmentResponse, len(views))
	for i, v := range views {
		res[i] = FromAppointmentView(v)
	}
	return res
}
