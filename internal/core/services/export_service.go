package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/reports"
)

// exportService renders sales documents. Visibility is delegated to the sale
// service so exports never show more than the listing does.
type exportService struct {
	BaseService
	sales    portssvc.SaleReaderSvc
	exporter reports.SalesExporter
}

// ExportServiceOption is a functional option for configuring the export service
type ExportServiceOption func(*exportService)

// WithSalesExporter overrides the document renderer.
func WithSalesExporter(exporter reports.SalesExporter) ExportServiceOption {
	return func(s *exportService) {
		s.exporter = exporter
	}
}

// NewExportService creates a new export service with the provided options
func NewExportService(sales portssvc.SaleReaderSvc, options ...ExportServiceOption) portssvc.ExportSvcFacade {
	svc := &exportService{
		sales:    sales,
		exporter: reports.NewSalesExporter(),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

func (s *exportService) ExportSales(ctx context.Context, p domain.Principal, params dto.ListSalesParams) (*portssvc.ExportFile, error) {
	rows, err := s.sales.ListSales(ctx, p, params)
	if err != nil {
		return nil, err
	}

	content, name, contentType, err := s.exporter.ExportSales(params.Format, rows)
	if err != nil {
		s.LogError(ctx, err, "Failed to render sales export",
			slog.String("format", params.Format),
			slog.Int("rows", len(rows)))
		return nil, fmt.Errorf("failed to render sales export: %w", err)
	}

	s.LogInfo(ctx, "Sales exported",
		slog.String("format", params.Format),
		slog.Int("rows", len(rows)))
	return &portssvc.ExportFile{Name: name, ContentType: contentType, Content: content}, nil
}

func (s *exportService) SaleVoucher(ctx context.Context, p domain.Principal, saleID string) (*portssvc.ExportFile, error) {
	sale, err := s.sales.GetSale(ctx, p, saleID)
	if err != nil {
		return nil, err
	}

	content, name, err := s.exporter.Voucher(*sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to render voucher", slog.String("sale_id", saleID))
		return nil, fmt.Errorf("failed to render voucher: %w", err)
	}
	return &portssvc.ExportFile{Name: name, ContentType: reports.ContentTypePDF, Content: content}, nil
}
