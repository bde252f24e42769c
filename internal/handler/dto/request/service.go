package request

import (
	"salon-booking/internal/usecase/commands"
)

type CreateServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	PriceCents      int    `json:"priceCents" binding:"min=0"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,min=1"`
	ImageURL        string `json:"imageUrl"`
	Active          *bool  `json:"active"`
}

func (r *CreateServiceRequest) ToCommand() commands.CreateServiceRequest {
	return commands.CreateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}

type UpdateServiceRequest struct {
	Name            *string `json:"name" binding:"omitempty,min=1"`
	Description     *string `json:"description"`
	PriceCents      *int    `json:"priceCents" binding:"omitempty,min=0"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,min=1"`
	ImageURL        *string `json:"imageUrl"`
	Active          *bool   `json:"active"`
}

func (r *UpdateServiceRequest) ToCommand() commands.UpdateServiceRequest {
	return commands.UpdateServiceRequest{
		Name:            r.Name,
		Description:     r.Description,
		PriceCents:      r.PriceCents,
		DurationMinutes: r.DurationMinutes,
		ImageURL:        r.ImageURL,
		Active:          r.Active,
	}
}
