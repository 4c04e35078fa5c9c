package dto

import (
	"time"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentRequest defines the body of POST /payment.
type PaymentRequest struct {
	SupplierName  string          `json:"supplierName" binding:"required,max=160"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod" binding:"max=32"`
	PaymentDate   string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Reference     string          `json:"reference" binding:"max=120"`
	Remarks       string          `json:"remarks" binding:"max=500"`
}

// UpdatePaymentRequest defines the body of PUT /payment/:id. Omitted fields keep their stored value.
type UpdatePaymentRequest struct {
	SupplierName  *string          `json:"supplierName" binding:"omitempty,max=160"`
	Amount        *decimal.Decimal `json:"amount"`
	PaymentMethod *string          `json:"paymentMethod" binding:"omitempty,max=32"`
	PaymentDate   *string          `json:"paymentDate" binding:"omitempty,datetime=2006-01-02"`
	Reference     *string          `json:"reference" binding:"omitempty,max=120"`
	Remarks       *string          `json:"remarks" binding:"omitempty,max=500"`
}

// PaymentResponse is the public view of a payment.
type PaymentResponse struct {
	ID            string          `json:"_id"`
	SupplierName  string          `json:"supplierName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   string          `json:"paymentDate"`
	Reference     string          `json:"reference"`
	Remarks       string          `json:"remarks"`
	OfficeID      string          `json:"officeId"`
	CreatedBy     string          `json:"createdBy"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		SupplierName:  p.SupplierName,
		Amount:        p.Amount,
		PaymentMethod: p.PaymentMethod,
		PaymentDate:   FormatDate(&p.PaymentDate),
		Reference:     p.Reference,
		Remarks:       p.Remarks,
		OfficeID:      p.OfficeID,
		CreatedBy:     p.CreatedBy,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
