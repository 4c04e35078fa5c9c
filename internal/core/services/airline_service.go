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

type airlineService struct {
	BaseService
	airlineRepo portsrepo.AirlineRepositoryFacade
}

// NewAirlineService creates the airline catalogue service. Airlines are global.
func NewAirlineService(airlineRepo portsrepo.AirlineRepositoryFacade, policy portssvc.AccessPolicySvc) portssvc.AirlineSvcFacade {
	return &airlineService{
		BaseService: BaseService{Policy: policy},
		airlineRepo: airlineRepo,
	}
}

var _ portssvc.AirlineSvcFacade = (*airlineService)(nil)

func (s *airlineService) GetAirline(ctx context.Context, p domain.Principal, id string) (*domain.Airline, error) {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.find(ctx, id)
}

func (s *airlineService) find(ctx context.Context, id string) (*domain.Airline, error) {
	if err := ValidateID(id); err != nil {
		return nil, err
	}
	airline, err := s.airlineRepo.FindAirlineByID(ctx, id)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find airline by ID", slog.String("airline_id", id))
		return nil, err
	}
	return airline, nil
}

func (s *airlineService) ListAirlines(ctx context.Context, p domain.Principal) ([]domain.Airline, error) {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionRead); err != nil {
		return nil, err
	}
	airlines, err := s.airlineRepo.ListAirlines(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list airlines")
		return nil, err
	}
	return airlines, nil
}

func (s *airlineService) CreateAirline(ctx context.Context, p domain.Principal, req dto.CreateAirlineRequest) (*domain.Airline, error) {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionCreate); err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}
	now := time.Now().UTC()
	airline := domain.Airline{
		ID:        uuid.NewString(),
		Code:      strings.ToUpper(strings.TrimSpace(req.Code)),
		Name:      strings.TrimSpace(req.Name),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.airlineRepo.SaveAirline(ctx, airline); err != nil {
		s.LogError(ctx, err, "Failed to save airline", slog.String("code", airline.Code))
		return nil, fmt.Errorf("failed to create airline: %w", err)
	}
	s.LogInfo(ctx, "Airline created",
		slog.String("airline_id", airline.ID),
		slog.String("code", airline.Code))
	return &airline, nil
}

func (s *airlineService) UpdateAirline(ctx context.Context, p domain.Principal, id string, req dto.UpdateAirlineRequest) (*domain.Airline, error) {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionUpdate); err != nil {
		return nil, err
	}
	airline, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Code != nil {
		code := strings.ToUpper(strings.TrimSpace(*req.Code))
		if code != airline.Code {
			airline.Code = code
			changed = true
		}
	}
	if req.Name != nil && *req.Name != airline.Name {
		airline.Name = *req.Name
		changed = true
	}
	if !changed {
		return nil, apperrors.ErrNoChange
	}

	airline.UpdatedAt = time.Now().UTC()
	if err := s.airlineRepo.UpdateAirline(ctx, *airline); err != nil {
		s.LogError(ctx, err, "Failed to update airline", slog.String("airline_id", id))
		return nil, fmt.Errorf("failed to update airline: %w", err)
	}
	return airline, nil
}

func (s *airlineService) UpdateAirlineStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionUpdate); err != nil {
		return err
	}
	if !status.Valid() {
		return apperrors.NewValidationError("unknown status")
	}
	airline, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if airline.Status == status {
		return apperrors.ErrNoChange
	}
	airline.Status = status
	airline.UpdatedAt = time.Now().UTC()
	if err := s.airlineRepo.UpdateAirline(ctx, *airline); err != nil {
		s.LogError(ctx, err, "Failed to update airline status", slog.String("airline_id", id))
		return fmt.Errorf("failed to update airline status: %w", err)
	}
	return nil
}

func (s *airlineService) DeleteAirline(ctx context.Context, p domain.Principal, id string) error {
	if err := s.Authorize(ctx, p, domain.ResourceAirline, domain.ActionDelete); err != nil {
		return err
	}
	if err := ValidateID(id); err != nil {
		return err
	}
	if err := s.airlineRepo.DeleteAirline(ctx, id); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete airline", slog.String("airline_id", id))
		return err
	}
	s.LogInfo(ctx, "Airline deleted", slog.String("airline_id", id))
	return nil
}
