package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is the suppliers table row.
type Supplier struct {
	ID           string          `db:"id"`
	SupplierName string          `db:"supplier_name"`
	Mobile       string          `db:"mobile"`
	Address      string          `db:"address"`
	TotalDue     decimal.Decimal `db:"total_due"`
	Status       string          `db:"status"`
	OfficeID     string          `db:"office_id"`
	CreatedBy    string          `db:"created_by"`
	CreatedAt    time.Time       `db:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at"`
}

// Payment is the payments table row.
type Payment struct {
	ID            string          `db:"id"`
	SupplierName  string          `db:"supplier_name"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentMethod string          `db:"payment_method"`
	PaymentDate   time.Time       `db:"payment_date"`
	Reference     string          `db:"reference"`
	Remarks       string          `db:"remarks"`
	OfficeID      string          `db:"office_id"`
	CreatedBy     string          `db:"created_by"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`
}
