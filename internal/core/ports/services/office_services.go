package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// OfficeReaderSvc defines read operations for offices
type OfficeReaderSvc interface {
	GetOffice(ctx context.Context, p domain.Principal, id string) (*domain.Office, error)
	ListOffices(ctx context.Context, p domain.Principal) ([]domain.Office, error)
}

// OfficeWriterSvc defines write operations for offices
type OfficeWriterSvc interface {
	CreateOffice(ctx context.Context, p domain.Principal, req dto.CreateOfficeRequest) (*domain.Office, error)
	UpdateOfficeStatus(ctx context.Context, p domain.Principal, id string, status domain.Status) error
	DeleteOffice(ctx context.Context, p domain.Principal, id string) error
}

// OfficeSvcFacade combines all office-related service interfaces
type OfficeSvcFacade interface {
	OfficeReaderSvc
	OfficeWriterSvc
}
