package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is a ticket consolidator the agency buys from. TotalDue is the
// amount currently owed to it.
type Supplier struct {
	ID           string          `json:"_id"`
	SupplierName string          `json:"supplierName"`
	Mobile       string          `json:"mobile"`
	Address      string          `json:"address"`
	TotalDue     decimal.Decimal `json:"totalDue"`
	Status       Status          `json:"status"`
	Provenance
	UpdatedAt time.Time `json:"updatedAt"`
}
