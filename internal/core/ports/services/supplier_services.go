package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// SupplierReaderSvc defines read operations for suppliers
type SupplierReaderSvc interface {
	GetSupplier(ctx context.Context, p domain.Principal, id string) (*domain.Supplier, error)
	ListSuppliers(ctx context.Context, p domain.Principal) ([]domain.Supplier, error)
}

// SupplierWriterSvc defines write operations for suppliers
type SupplierWriterSvc interface {
	CreateSupplier(ctx context.Context, p domain.Principal, req dto.CreateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplier(ctx context.Context, p domain.Principal, id string, req dto.UpdateSupplierRequest) (*domain.Supplier, error)
	UpdateSupplierStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error

	// UpdateTotalDue sets the amount owed to the named supplier of the principal's office.
	UpdateTotalDue(ctx context.Context, p domain.Principal, supplierName string, totalDue decimal.Decimal) error

	DeleteSupplier(ctx context.Context, p domain.Principal, id string) error
}

// SupplierSvcFacade combines all supplier-related service interfaces
type SupplierSvcFacade interface {
	SupplierReaderSvc
	SupplierWriterSvc
}
