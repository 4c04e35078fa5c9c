package repositories

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
)

// OfficeReader defines read operations for offices (client areas)
type OfficeReader interface {
	FindOfficeByID(ctx context.Context, id string) (*domain.Office, error)
	ListOffices(ctx context.Context) ([]domain.Office, error)
}

// OfficeWriter defines write operations for offices
type OfficeWriter interface {
	SaveOffice(ctx context.Context, office domain.Office) error
	UpdateOfficeStatus(ctx context.Context, id string, status domain.Status) error
	DeleteOffice(ctx context.Context, id string) error
}

// OfficeRepositoryFacade combines all office-related repository interfaces
type OfficeRepositoryFacade interface {
	OfficeReader
	OfficeWriter
}
