package request

import "salon-booking/internal/usecase/commands"

type ServiceRequest struct {
	Name            string `json:"name" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
	Price           int64  `json:"price"`
	Description     string `json:"description"`
}

func (r *ServiceRequest) ToInput() commands.ServiceInput {
	return commands.ServiceInput{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Description:     r.Description,
	}
}
