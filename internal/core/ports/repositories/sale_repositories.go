package repositories

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// SaleReader defines read operations for sales
type SaleReader interface {
	FindSaleByID(ctx context.Context, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, filter domain.SaleFilter) ([]domain.Sale, error)

	// CheckDocumentNumber reports, from one consistent snapshot, whether a sale
	// with documentNumber exists and the last RV sequence value issued.
	CheckDocumentNumber(ctx context.Context, documentNumber string) (exists bool, lastIssued int64, err error)
}

// SaleWriter defines write operations for sales
type SaleWriter interface {
	// CreateSale reserves the next RV number and inserts the sale atomically.
	// It returns the assigned RV number.
	CreateSale(ctx context.Context, sale domain.Sale) (string, error)

	UpdateSale(ctx context.Context, sale domain.Sale) error
	DeleteSale(ctx context.Context, id string) error
}

// SaleRepositoryFacade combines all sale-related repository interfaces
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
