package repositories

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// AirlineReader defines read operations for airlines
type AirlineReader interface {
	FindAirlineByID(ctx context.Context, id string) (*domain.Airline, error)
	ListAirlines(ctx context.Context) ([]domain.Airline, error)
}

// AirlineWriter defines write operations for airlines
type AirlineWriter interface {
	SaveAirline(ctx context.Context, airline domain.Airline) error
	UpdateAirline(ctx context.Context, airline domain.Airline) error
	DeleteAirline(ctx context.Context, id string) error
}

// AirlineRepositoryFacade combines all airline-related repository interfaces
type AirlineRepositoryFacade interface {
	AirlineReader
	AirlineWriter
}
