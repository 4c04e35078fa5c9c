package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/platform/events"
	"github.com/shopspring/decimal"
)

// saleService implements the SaleSvcFacade interface
type saleService struct {
	BaseService
	saleRepo portsrepo.SaleRepositoryFacade
	now      func() time.Time
}

// SaleServiceOption is a functional option for configuring the sale service
type SaleServiceOption func(*saleService)

// WithEventPublisher publishes sale lifecycle events.
func WithEventPublisher(publisher events.Publisher) SaleServiceOption {
	return func(s *saleService) {
		s.Publisher = publisher
	}
}

// WithAccessPolicy overrides the default access policy.
func WithAccessPolicy(policy portssvc.AccessPolicySvc) SaleServiceOption {
	return func(s *saleService) {
		s.Policy = policy
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) SaleServiceOption {
	return func(s *saleService) {
		s.now = now
	}
}

// NewSaleService creates a new sale service with the provided options
func NewSaleService(repo portsrepo.SaleRepositoryFacade, options ...SaleServiceOption) portssvc.SaleSvcFacade {
	svc := &saleService{
		saleRepo: repo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SaleSvcFacade = (*saleService)(nil)

// load fetches a sale and checks the principal may apply action to it.
func (s *saleService) load(ctx context.Context, p domain.Principal, id string, action domain.Action) (*domain.Sale, error) {
	if err := s.Authorize(ctx, p, domain.ResourceSale, action); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	sale, err := s.saleRepo.FindSaleByID(ctx, id)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find sale by ID", slog.String("sale_id", id))
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourceSale, action, sale.Provenance); err != nil {
		return nil, err
	}
	return sale, nil
}

func (s *saleService) GetSale(ctx context.Context, p domain.Principal, id string) (*domain.Sale, error) {
	return s.load(ctx, p, id, domain.ActionRead)
}

func (s *saleService) ListSales(ctx context.Context, p domain.Principal, params dto.ListSalesParams) ([]domain.Sale, error) {
	scope, err := s.ListScope(ctx, p, domain.ResourceSale)
	if err != nil {
		return nil, err
	}
	filter := domain.SaleFilter{Scope: scope}
	if params.PaymentStatus != "" {
		filter.PaymentStatuses = []string{params.PaymentStatus}
	}
	if filter.From, err = dto.ParseDate(params.From); err != nil {
		return nil, apperrors.NewValidationError("from must be YYYY-MM-DD")
	}
	if filter.To, err = dto.ParseDate(params.To); err != nil {
		return nil, apperrors.NewValidationError("to must be YYYY-MM-DD")
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return nil, apperrors.NewValidationError("to must not be before from")
	}

	sales, err := s.saleRepo.ListSales(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list sales")
		return nil, err
	}
	return sales, nil
}

func (s *saleService) SupplierLedger(ctx context.Context, p domain.Principal, supplierName string) ([]domain.Sale, error) {
	supplierName = strings.TrimSpace(supplierName)
	if supplierName == "" {
		return nil, apperrors.NewValidationError("supplierName is required")
	}
	scope, err := s.ListScope(ctx, p, domain.ResourceSale)
	if err != nil {
		return nil, err
	}
	sales, err := s.saleRepo.ListSales(ctx, domain.SaleFilter{
		Scope:           scope,
		SupplierName:    supplierName,
		PaymentStatuses: domain.LedgerPaymentStatuses,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list supplier ledger", slog.String("supplier_name", supplierName))
		return nil, err
	}
	if len(sales) == 0 {
		return nil, apperrors.NewAppError(http.StatusNotFound, "No sales found for this supplier", apperrors.ErrNotFound)
	}
	return sales, nil
}

func (s *saleService) ValidateDocumentNumber(ctx context.Context, p domain.Principal, documentNumber string) (*dto.ValidateDocumentResponse, error) {
	if err := s.Authorize(ctx, p, domain.ResourceSale, domain.ActionRead); err != nil {
		return nil, err
	}
	documentNumber = strings.TrimSpace(documentNumber)
	if documentNumber == "" {
		return nil, apperrors.NewValidationError("documentNumber is required")
	}

	exists, lastIssued, err := s.saleRepo.CheckDocumentNumber(ctx, documentNumber)
	if err != nil {
		s.LogError(ctx, err, "Failed to check document number", slog.String("document_number", documentNumber))
		return nil, err
	}

	resp := &dto.ValidateDocumentResponse{
		Exists:       exists,
		Message:      "Document number is available",
		LastRVNumber: domain.NextRVNumber(lastIssued),
	}
	if exists {
		resp.Message = "Document number already exists"
	}
	return resp, nil
}

// toSaleEdit validates the business fields of a request.
func toSaleEdit(req dto.SaleRequest) (domain.SaleEdit, error) {
	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return domain.SaleEdit{}, apperrors.NewValidationError("date must be YYYY-MM-DD")
	}
	documentNumber := strings.TrimSpace(req.DocumentNumber)
	if documentNumber == "" {
		return domain.SaleEdit{}, apperrors.NewValidationError("documentNumber must not be blank")
	}
	if req.SellPrice.IsNegative() || req.BuyingPrice.IsNegative() {
		return domain.SaleEdit{}, apperrors.NewValidationError("prices must not be negative")
	}
	if err := domain.CheckMoney("sellPrice", req.SellPrice); err != nil {
		return domain.SaleEdit{}, err
	}
	if err := domain.CheckMoney("buyingPrice", req.BuyingPrice); err != nil {
		return domain.SaleEdit{}, err
	}
	return domain.SaleEdit{
		DocumentNumber: documentNumber,
		AirlineCode:    strings.ToUpper(strings.TrimSpace(req.AirlineCode)),
		SupplierName:   strings.TrimSpace(req.SupplierName),
		SellPrice:      req.SellPrice,
		BuyingPrice:    req.BuyingPrice,
		Mode:           req.Mode,
		Remarks:        req.Remarks,
		PassengerName:  req.PassengerName,
		Sector:         req.Sector,
		Date:           date,
	}, nil
}

func (s *saleService) CreateSale(ctx context.Context, p domain.Principal, req dto.SaleRequest) (*domain.Sale, error) {
	if err := s.Authorize(ctx, p, domain.ResourceSale, domain.ActionCreate); err != nil {
		return nil, err
	}
	edit, err := toSaleEdit(req)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	sale := domain.Sale{
		ID:            uuid.NewString(),
		PostStatus:    req.PostStatus,
		PaymentStatus: req.PaymentStatus,
		Provenance:    domain.NewProvenance(p, now),
		UpdatedAt:     now,
	}
	edit.Apply(&sale)

	rv, err := s.saleRepo.CreateSale(ctx, sale)
	if err != nil {
		s.LogError(ctx, err, "Failed to create sale",
			slog.String("document_number", sale.DocumentNumber),
			slog.String("office_id", sale.OfficeID))
		return nil, fmt.Errorf("failed to create sale: %w", err)
	}
	sale.RVNumber = rv

	s.LogInfo(ctx, "Sale created",
		slog.String("sale_id", sale.ID),
		slog.String("rv_number", rv),
		slog.String("office_id", sale.OfficeID))
	s.Publish(ctx, events.Event{
		Type:       events.SaleCreated,
		Key:        sale.ID,
		OfficeID:   sale.OfficeID,
		Actor:      p.Email,
		OccurredAt: now,
		Payload:    sale,
	})
	return &sale, nil
}

// persist writes an edited sale, stamping UpdatedAt.
func (s *saleService) persist(ctx context.Context, sale *domain.Sale) error {
	sale.UpdatedAt = s.now().UTC()
	if err := s.saleRepo.UpdateSale(ctx, *sale); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to update sale", slog.String("sale_id", sale.ID))
		return fmt.Errorf("failed to update sale: %w", err)
	}
	return nil
}

func (s *saleService) EditSale(ctx context.Context, p domain.Principal, id string, req dto.SaleRequest) (*domain.Sale, error) {
	sale, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}
	edit, err := toSaleEdit(req)
	if err != nil {
		return nil, err
	}
	if !edit.Apply(sale) {
		return nil, apperrors.ErrNoChange
	}
	if err := s.persist(ctx, sale); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Sale edited", slog.String("sale_id", id))
	return sale, nil
}

func (s *saleService) UpdatePostStatus(ctx context.Context, p domain.Principal, id string, postStatus string) error {
	sale, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return err
	}
	if sale.PostStatus == postStatus {
		return apperrors.ErrNoChange
	}
	sale.PostStatus = postStatus
	return s.persist(ctx, sale)
}

func (s *saleService) UpdatePaymentStatus(ctx context.Context, p domain.Principal, id string, paymentStatus string) error {
	sale, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return err
	}
	if sale.PaymentStatus == paymentStatus {
		return apperrors.ErrNoChange
	}
	sale.PaymentStatus = paymentStatus
	return s.persist(ctx, sale)
}

func (s *saleService) RefundSale(ctx context.Context, p domain.Principal, id string, req dto.RefundSaleRequest) (*domain.Sale, error) {
	sale, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}
	refundDate, err := dto.ParseDate(req.RefundDate)
	if err != nil || refundDate == nil {
		return nil, apperrors.NewValidationError("refundDate must be YYYY-MM-DD")
	}
	for _, f := range []struct {
		name   string
		amount decimal.Decimal
	}{
		{"refundCharge", req.RefundCharge},
		{"serviceCharge", req.ServiceCharge},
		{"refundFromAirline", req.RefundFromAirline},
		{"refundAmount", req.RefundAmount},
	} {
		if err := domain.CheckMoney(f.name, f.amount); err != nil {
			return nil, err
		}
	}

	refund := domain.SaleRefund{
		IsRefunded:        true,
		RefundDate:        refundDate,
		RefundCharge:      req.RefundCharge,
		ServiceCharge:     req.ServiceCharge,
		RefundFromAirline: req.RefundFromAirline,
		RefundAmount:      req.RefundAmount,
	}
	if sameRefund(sale.SaleRefund, refund) {
		return nil, apperrors.ErrNoChange
	}
	sale.SaleRefund = refund
	if err := s.persist(ctx, sale); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Sale refunded",
		slog.String("sale_id", id),
		slog.String("refund_amount", refund.RefundAmount.StringFixed(2)))
	s.Publish(ctx, events.Event{
		Type:       events.SaleRefunded,
		Key:        sale.ID,
		OfficeID:   sale.OfficeID,
		Actor:      p.Email,
		OccurredAt: sale.UpdatedAt,
		Payload:    sale,
	})
	return sale, nil
}

func sameRefund(a, b domain.SaleRefund) bool {
	return a.IsRefunded == b.IsRefunded &&
		sameDay(a.RefundDate, b.RefundDate) &&
		a.RefundCharge.Equal(b.RefundCharge) &&
		a.ServiceCharge.Equal(b.ServiceCharge) &&
		a.RefundFromAirline.Equal(b.RefundFromAirline) &&
		a.RefundAmount.Equal(b.RefundAmount)
}

func sameDay(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func (s *saleService) SetRefunded(ctx context.Context, p domain.Principal, id string, isRefunded bool) error {
	sale, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return err
	}
	if sale.IsRefunded == isRefunded {
		return apperrors.ErrNoChange
	}
	sale.IsRefunded = isRefunded
	return s.persist(ctx, sale)
}

func (s *saleService) DeleteSale(ctx context.Context, p domain.Principal, id string) error {
	sale, err := s.load(ctx, p, id, domain.ActionDelete)
	if err != nil {
		return err
	}
	if err := s.saleRepo.DeleteSale(ctx, id); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete sale", slog.String("sale_id", id))
		return err
	}
	s.LogInfo(ctx, "Sale deleted",
		slog.String("sale_id", id),
		slog.String("rv_number", sale.RVNumber))
	s.Publish(ctx, events.Event{
		Type:       events.SaleDeleted,
		Key:        sale.ID,
		OfficeID:   sale.OfficeID,
		Actor:      p.Email,
		OccurredAt: s.now().UTC(),
		Payload:    map[string]string{"rvNumber": sale.RVNumber},
	})
	return nil
}
