package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

type supplierService struct {
	BaseService
	supplierRepo portsrepo.SupplierRepositoryFacade
}

// NewSupplierService creates the tenant-scoped supplier service.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade, policy portssvc.AccessPolicySvc) portssvc.SupplierSvcFacade {
	return &supplierService{
		BaseService:  BaseService{Policy: policy},
		supplierRepo: supplierRepo,
	}
}

var _ portssvc.SupplierSvcFacade = (*supplierService)(nil)

// load fetches a supplier and checks the principal may apply action to it.
func (s *supplierService) load(ctx context.Context, p domain.Principal, id string, action domain.Action) (*domain.Supplier, error) {
	if err := s.Authorize(ctx, p, domain.ResourceSupplier, action); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, id)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find supplier by ID", slog.String("supplier_id", id))
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourceSupplier, action, supplier.Provenance); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, p domain.Principal, id string) (*domain.Supplier, error) {
	return s.load(ctx, p, id, domain.ActionRead)
}

func (s *supplierService) ListSuppliers(ctx context.Context, p domain.Principal) ([]domain.Supplier, error) {
	scope, err := s.ListScope(ctx, p, domain.ResourceSupplier)
	if err != nil {
		return nil, err
	}
	suppliers, err := s.supplierRepo.ListSuppliers(ctx, scope)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, err
	}
	return suppliers, nil
}

func (s *supplierService) CreateSupplier(ctx context.Context, p domain.Principal, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if err := s.Authorize(ctx, p, domain.ResourceSupplier, domain.ActionCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.SupplierName)
	if name == "" {
		return nil, apperrors.NewValidationError("supplierName must not be blank")
	}
	if err := domain.CheckMoney("totalDue", req.TotalDue); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	supplier := domain.Supplier{
		ID:           uuid.NewString(),
		SupplierName: name,
		Mobile:       req.Mobile,
		Address:      req.Address,
		TotalDue:     req.TotalDue,
		Status:       status,
		Provenance:   domain.NewProvenance(p, now),
		UpdatedAt:    now,
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		s.LogError(ctx, err, "Failed to save supplier", slog.String("supplier_name", name))
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created",
		slog.String("supplier_id", supplier.ID),
		slog.String("office_id", supplier.OfficeID))
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, p domain.Principal, id string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.SupplierName != nil {
		name := strings.TrimSpace(*req.SupplierName)
		if name == "" {
			return nil, apperrors.NewValidationError("supplierName must not be blank")
		}
		if name != supplier.SupplierName {
			supplier.SupplierName = name
			changed = true
		}
	}
	if req.Mobile != nil && *req.Mobile != supplier.Mobile {
		supplier.Mobile = *req.Mobile
		changed = true
	}
	if req.Address != nil && *req.Address != supplier.Address {
		supplier.Address = *req.Address
		changed = true
	}
	if req.TotalDue != nil {
		if err := domain.CheckMoney("totalDue", *req.TotalDue); err != nil {
			return nil, err
		}
	}
	if req.TotalDue != nil && !req.TotalDue.Equal(supplier.TotalDue) {
		supplier.TotalDue = *req.TotalDue
		changed = true
	}
	if !changed {
		return nil, apperrors.ErrNoChange
	}

	if err := s.save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) UpdateSupplierStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error {
	if !status.Valid() {
		return apperrors.NewValidationError("unknown status")
	}
	supplier, err := s.load(ctx, p, id, domain.ActionUpdate)
	if err != nil {
		return err
	}
	if supplier.Status == status {
		return apperrors.ErrNoChange
	}
	supplier.Status = status
	return s.save(ctx, supplier)
}

func (s *supplierService) UpdateTotalDue(ctx context.Context, p domain.Principal, supplierName string, totalDue decimal.Decimal) error {
	if err := s.Authorize(ctx, p, domain.ResourceSupplier, domain.ActionUpdate); err != nil {
		return err
	}
	if err := domain.CheckMoney("totalDue", totalDue); err != nil {
		return err
	}
	scope, err := s.ListScope(ctx, p, domain.ResourceSupplier)
	if err != nil {
		return err
	}
	supplier, err := s.supplierRepo.FindSupplierByName(ctx, scope, supplierName)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find supplier by name", slog.String("supplier_name", supplierName))
		return err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourceSupplier, domain.ActionUpdate, supplier.Provenance); err != nil {
		return err
	}
	if supplier.TotalDue.Equal(totalDue) {
		return apperrors.ErrNoChange
	}
	supplier.TotalDue = totalDue
	if err := s.save(ctx, supplier); err != nil {
		return err
	}
	s.LogInfo(ctx, "Supplier total due updated",
		slog.String("supplier_id", supplier.ID),
		slog.String("total_due", totalDue.StringFixed(2)))
	return nil
}

func (s *supplierService) save(ctx context.Context, supplier *domain.Supplier) error {
	supplier.UpdatedAt = time.Now().UTC()
	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		s.LogError(ctx, err, "Failed to update supplier", slog.String("supplier_id", supplier.ID))
		return fmt.Errorf("failed to update supplier: %w", err)
	}
	return nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, p domain.Principal, id string) error {
	if _, err := s.load(ctx, p, id, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.supplierRepo.DeleteSupplier(ctx, id); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete supplier", slog.String("supplier_id", id))
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", slog.String("supplier_id", id))
	return nil
}
