package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// SaleReaderSvc defines read operations for sales
type SaleReaderSvc interface {
	GetSale(ctx context.Context, p domain.Principal, id string) (*domain.Sale, error)
	ListSales(ctx context.Context, p domain.Principal, params dto.ListSalesParams) ([]domain.Sale, error)

	// SupplierLedger lists the principal-visible Paid/Due sales of one supplier.
	SupplierLedger(ctx context.Context, p domain.Principal, supplierName string) ([]domain.Sale, error)

	// ValidateDocumentNumber reports whether documentNumber is taken and previews
	// the next RV number without reserving it.
	ValidateDocumentNumber(ctx context.Context, p domain.Principal, documentNumber string) (*dto.ValidateDocumentResponse, error)
}

// SaleWriterSvc defines write operations for sales
type SaleWriterSvc interface {
	CreateSale(ctx context.Context, p domain.Principal, req dto.SaleRequest) (*domain.Sale, error)
	EditSale(ctx context.Context, p domain.Principal, id string, req dto.SaleRequest) (*domain.Sale, error)
	UpdatePostStatus(ctx context.Context, p domain.Principal, id string, postStatus string) error
	UpdatePaymentStatus(ctx context.Context, p domain.Principal, id string, paymentStatus string) error
}

// SaleRefundSvc defines the refund workflow
type SaleRefundSvc interface {
	RefundSale(ctx context.Context, p domain.Principal, id string, req dto.RefundSaleRequest) (*domain.Sale, error)
	SetRefunded(ctx context.Context, p domain.Principal, id string, isRefunded bool) error
}

// SaleLifecycleSvc defines operations for managing sale lifecycle
type SaleLifecycleSvc interface {
	DeleteSale(ctx context.Context, p domain.Principal, id string) error
}

// SaleSvcFacade combines all sale-related service interfaces
type SaleSvcFacade interface {
	SaleReaderSvc
	SaleWriterSvc
	SaleRefundSvc
	SaleLifecycleSvc
}
