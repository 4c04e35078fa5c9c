package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user the principal may see.
	GetUserByID(ctx context.Context, p domain.Principal, userID string) (*domain.User, error)

	// GetOwnProfile retrieves the principal's own directory record.
	GetOwnProfile(ctx context.Context, p domain.Principal) (*domain.User, error)

	// ListAllUsers lists every user. Super-admin only.
	ListAllUsers(ctx context.Context, p domain.Principal) ([]domain.User, error)

	// ListOfficeUsers lists the users of an office. An empty officeID means the principal's own.
	ListOfficeUsers(ctx context.Context, p domain.Principal, officeID string) ([]domain.User, error)
}

// UserLookupSvc answers the self-service role/status checks the front end polls.
type UserLookupSvc interface {
	IsActive(ctx context.Context, p domain.Principal, email string) (bool, error)
	IsAdmin(ctx context.Context, p domain.Principal, email string) (bool, error)
	IsSuperAdmin(ctx context.Context, p domain.Principal, email string) (bool, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	CreateUser(ctx context.Context, p domain.Principal, req dto.CreateUserRequest) (*domain.User, error)
	UpdateUser(ctx context.Context, p domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error)
	UpdateUserStatus(ctx context.Context, p domain.Principal, userID string, status domain.Status) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	DeleteUser(ctx context.Context, p domain.Principal, userID string) error
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserLookupSvc
	UserWriterSvc
	UserLifecycleSvc
}
