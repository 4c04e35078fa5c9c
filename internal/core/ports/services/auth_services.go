package services

import (
	"context"

	"github.com/quickway/travels_backoffice/internal/dto"
)

// AuthSvcFacade issues session tokens for directory users.
type AuthSvcFacade interface {
	// IssueToken looks the email up in the user directory and signs a token
	// carrying its role, status and office. Unknown emails yield ErrNotFound,
	// inactive accounts ErrInactive.
	IssueToken(ctx context.Context, req dto.IssueTokenRequest) (*dto.TokenResponse, error)
}

// IdentityVerifier validates an external identity token and returns its email.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
