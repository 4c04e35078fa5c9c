package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money paid to a supplier.
type Payment struct {
	ID            string          `json:"_id"`
	SupplierName  string          `json:"supplierName"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"paymentMethod"`
	PaymentDate   time.Time       `json:"paymentDate"`
	Reference     string          `json:"reference"`
	Remarks       string          `json:"remarks"`
	Provenance
	UpdatedAt time.Time `json:"updatedAt"`
}
