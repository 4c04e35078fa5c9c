package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the body of POST /supplier.
type CreateSupplierRequest struct {
	SupplierName string          `json:"supplierName" binding:"required,max=160"`
	Mobile       string          `json:"mobile" binding:"max=32"`
	Address      string          `json:"address" binding:"max=255"`
	TotalDue     decimal.Decimal `json:"totalDue"`
	Status       domain.Status   `json:"status" binding:"omitempty,status"`
}

// UpdateSupplierRequest defines the body of PUT /supplier/:id.
type UpdateSupplierRequest struct {
	SupplierName *string          `json:"supplierName" binding:"omitempty,max=160"`
	Mobile       *string          `json:"mobile" binding:"omitempty,max=32"`
	Address      *string          `json:"address" binding:"omitempty,max=255"`
	TotalDue     *decimal.Decimal `json:"totalDue"`
}

// UpdateTotalDueRequest defines the body of PATCH /supplier/:supplierName.
type UpdateTotalDueRequest struct {
	TotalDue *decimal.Decimal `json:"totalDue" binding:"required"`
}

// SupplierResponse is the public view of a supplier.
type SupplierResponse struct {
	ID           string          `json:"_id"`
	SupplierName string          `json:"supplierName"`
	Mobile       string          `json:"mobile"`
	Address      string          `json:"address"`
	TotalDue     decimal.Decimal `json:"totalDue"`
	Status       domain.Status   `json:"status"`
	OfficeID     string          `json:"officeId"`
	CreatedBy    string          `json:"createdBy"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToSupplierResponse converts a domain.Supplier to its response DTO.
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:           s.ID,
		SupplierName: s.SupplierName,
		Mobile:       s.Mobile,
		Address:      s.Address,
		TotalDue:     s.TotalDue,
		Status:       s.Status,
		OfficeID:     s.OfficeID,
		CreatedBy:    s.CreatedBy,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSupplierResponses converts a slice of domain.Supplier.
func ToSupplierResponses(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}
