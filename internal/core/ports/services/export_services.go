package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// ExportFile is a rendered report ready to be streamed to the caller.
type ExportFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// ExportSvcFacade renders sales data into downloadable documents.
type ExportSvcFacade interface {
	// ExportSales renders the principal-visible sales matching params as xlsx or csv.
	ExportSales(ctx context.Context, p domain.Principal, params dto.ListSalesParams) (*ExportFile, error)

	// SaleVoucher renders the receipt voucher of one sale as PDF.
	SaleVoucher(ctx context.Context, p domain.Principal, saleID string) (*ExportFile, error)
}
