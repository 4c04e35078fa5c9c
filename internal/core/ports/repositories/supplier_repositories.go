package repositories

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// SupplierReader defines read operations for suppliers
type SupplierReader interface {
	FindSupplierByID(ctx context.Context, id string) (*domain.Supplier, error)

	// FindSupplierByName looks a supplier up by name inside the scope.
	FindSupplierByName(ctx context.Context, scope domain.Scope, name string) (*domain.Supplier, error)

	ListSuppliers(ctx context.Context, scope domain.Scope) ([]domain.Supplier, error)
}

// SupplierWriter defines write operations for suppliers
type SupplierWriter interface {
	SaveSupplier(ctx context.Context, supplier domain.Supplier) error
	UpdateSupplier(ctx context.Context, supplier domain.Supplier) error
	DeleteSupplier(ctx context.Context, id string) error
}

// SupplierRepositoryFacade combines all supplier-related repository interfaces
type SupplierRepositoryFacade interface {
	SupplierReader
	SupplierWriter
}
