package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// AirlineReaderSvc defines read operations for airlines
type AirlineReaderSvc interface {
	GetAirline(ctx context.Context, p domain.Principal, id string) (*domain.Airline, error)
	ListAirlines(ctx context.Context, p domain.Principal) ([]domain.Airline, error)
}

// AirlineWriterSvc defines write operations for airlines
type AirlineWriterSvc interface {
	CreateAirline(ctx context.Context, p domain.Principal, req dto.CreateAirlineRequest) (*domain.Airline, error)
	UpdateAirline(ctx context.Context, p domain.Principal, id string, req dto.UpdateAirlineRequest) (*domain.Airline, error)
	UpdateAirlineStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error
	DeleteAirline(ctx context.Context, p domain.Principal, id string) error
}

// AirlineSvcFacade combines all airline-related service interfaces
type AirlineSvcFacade interface {
	AirlineReaderSvc
	AirlineWriterSvc
}
