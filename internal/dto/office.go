package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// CreateOfficeRequest defines the body of POST /clientArea.
type CreateOfficeRequest struct {
	OfficeName    string `json:"officeName" binding:"required,max=160"`
	OfficeID      string `json:"officeId" binding:"required,max=64"`
	OfficeAddress string `json:"officeAddress" binding:"max=255"`
}

// OfficeResponse is the public view of an office.
type OfficeResponse struct {
	ID            string        `json:"_id"`
	OfficeName    string        `json:"officeName"`
	OfficeID      string        `json:"officeId"`
	OfficeAddress string        `json:"officeAddress"`
	Status        domain.Status `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
}

// ToOfficeResponse converts a domain.Office to its response DTO.
func ToOfficeResponse(o *domain.Office) OfficeResponse {
	return OfficeResponse{
		ID:            o.ID,
		OfficeName:    o.OfficeName,
		OfficeID:      o.OfficeID,
		OfficeAddress: o.OfficeAddress,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt,
	}
}

// ToOfficeResponses converts a slice of domain.Office.
func ToOfficeResponses(offices []domain.Office) []OfficeResponse {
	out := make([]OfficeResponse, len(offices))
	for i := range offices {
		out[i] = ToOfficeResponse(&offices[i])
	}
	return out
}
