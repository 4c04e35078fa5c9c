package dto

import (
	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// CreateAirlineRequest defines the body of POST /airline.
type CreateAirlineRequest struct {
	Code   string        `json:"code" binding:"required,max=8"`
	Name   string        `json:"name" binding:"required,max=120"`
	Status domain.Status `json:"status" binding:"omitempty,status"`
}

// UpdateAirlineRequest defines the body of PUT /airline/:id.
type UpdateAirlineRequest struct {
	Code *string `json:"code" binding:"omitempty,max=8"`
	Name *string `json:"name" binding:"omitempty,max=120"`
}

// AirlineResponse is the public view of an airline.
type AirlineResponse struct {
	ID     string        `json:"_id"`
	Code   string        `json:"code"`
	Name   string        `json:"name"`
	Status domain.Status `json:"status"`
}

// ToAirlineResponse converts a domain.Airline to its response DTO.
func ToAirlineResponse(a *domain.Airline) AirlineResponse {
	return AirlineResponse{ID: a.ID, Code: a.Code, Name: a.Name, Status: a.Status}
}

// ToAirlineResponses converts a slice of domain.Airline.
func ToAirlineResponses(airlines []domain.Airline) []AirlineResponse {
	out := make([]AirlineResponse, len(airlines))
	for i := range airlines {
		out[i] = ToAirlineResponse(&airlines[i])
	}
	return out
}
