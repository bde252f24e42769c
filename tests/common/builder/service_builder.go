//go:build unit || e2e

package builder

import (
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	Name            string
	Description     string
	PriceCents      int
	DurationMinutes int
	Active          bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		ID:              uuid.New(),
		Name:            "Haircut",
		Description:     "Wash, cut and blow dry",
		PriceCents:      4500,
		DurationMinutes: 60,
		Active:          true,
	}
}

func (b *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(b)
	return b
}

func (b *ServiceBuilder) WithDuration(minutes int) *ServiceBuilder {
	b.DurationMinutes = minutes
	return b
}

func (b *ServiceBuilder) AsInactive() *ServiceBuilder {
	b.Active = false
	return b
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	desc := b.Description
	return &queries.ServiceView{
		ID:              b.ID,
		Name:            b.Name,
		Description:     &desc,
		PriceCents:      int32(b.PriceCents),
		DurationMinutes: int32(b.DurationMinutes),
		Active:          b.Active,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *ServiceBuilder) BuildCreateRequestDTO() reqdto.CreateServiceRequest {
	active := b.Active
	return reqdto.CreateServiceRequest{
		Name:            b.Name,
		Description:     b.Description,
		PriceCents:      b.PriceCents,
		DurationMinutes: b.DurationMinutes,
		Active:          &active,
	}
}
