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
)

// officeService manages tenants (client areas). Every operation is super-admin only.
type officeService struct {
	BaseService
	officeRepo portsrepo.OfficeRepositoryFacade
}

// NewOfficeService creates a new office service with the provided dependencies
func NewOfficeService(officeRepo portsrepo.OfficeRepositoryFacade, policy portssvc.AccessPolicySvc) portssvc.OfficeSvcFacade {
	return &officeService{
		BaseService: BaseService{Policy: policy},
		officeRepo:  officeRepo,
	}
}

var _ portssvc.OfficeSvcFacade = (*officeService)(nil)

func (s *officeService) GetOffice(ctx context.Context, p domain.Principal, id string) (*domain.Office, error) {
	if err := s.Authorize(ctx, p, domain.ResourceOffice, domain.ActionRead); err != nil {
		return nil, err
	}
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	office, err := s.officeRepo.FindOfficeByID(ctx, id)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find office by ID", slog.String("office_id", id))
		return nil, err
	}
	return office, nil
}

func (s *officeService) ListOffices(ctx context.Context, p domain.Principal) ([]domain.Office, error) {
	if err := s.Authorize(ctx, p, domain.ResourceOffice, domain.ActionRead); err != nil {
		return nil, err
	}
	offices, err := s.officeRepo.ListOffices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list offices")
		return nil, err
	}
	return offices, nil
}

func (s *officeService) CreateOffice(ctx context.Context, p domain.Principal, req dto.CreateOfficeRequest) (*domain.Office, error) {
	if err := s.Authorize(ctx, p, domain.ResourceOffice, domain.ActionCreate); err != nil {
		return nil, err
	}

	office := domain.Office{
		ID:            uuid.NewString(),
		OfficeName:    strings.TrimSpace(req.OfficeName),
		OfficeID:      strings.TrimSpace(req.OfficeID),
		OfficeAddress: req.OfficeAddress,
		Status:        domain.StatusActive,
		CreatedAt:     time.Now().UTC(),
		CreatedBy:     p.Email,
	}
	if office.OfficeID == "" {
		return nil, apperrors.NewValidationError("officeId must not be blank")
	}

	if err := s.officeRepo.SaveOffice(ctx, office); err != nil {
		s.LogError(ctx, err, "Failed to save office", slog.String("office_id", office.OfficeID))
		return nil, fmt.Errorf("failed to create office: %w", err)
	}

	s.LogInfo(ctx, "Office created",
		slog.String("id", office.ID),
		slog.String("office_id", office.OfficeID))
	return &office, nil
}

func (s *officeService) UpdateOfficeStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error {
	if err := s.Authorize(ctx, p, domain.ResourceOffice, domain.ActionUpdate); err != nil {
		return err
	}
	if !status.Valid() {
		return apperrors.NewValidationError("unknown status")
	}
	office, err := s.GetOffice(ctx, p, id)
	if err != nil {
		return err
	}
	if office.Status == status {
		return apperrors.ErrNoChange
	}
	if err := s.officeRepo.UpdateOfficeStatus(ctx, id, status); err != nil {
		s.LogError(ctx, err, "Failed to update office status", slog.String("id", id))
		return fmt.Errorf("failed to update office status: %w", err)
	}
	s.LogInfo(ctx, "Office status changed",
		slog.String("id", id),
		slog.String("status", string(status)))
	return nil
}

func (s *officeService) DeleteOffice(ctx context.Context, p domain.Principal, id string) error {
	if err := s.Authorize(ctx, p, domain.ResourceOffice, domain.ActionDelete); err != nil {
		return err
	}
	if err := ValidateID(id); err != nil {
		return err
	}
	if err := s.officeRepo.DeleteOffice(ctx, id); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete office", slog.String("id", id))
		return err
	}
	s.LogInfo(ctx, "Office deleted", slog.String("id", id))
	return nil
}
