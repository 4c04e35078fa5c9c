package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portsrepo "github.com/quickway/travels_backoffice/internal/core/ports/repositories"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/dto"
	"github.com/quickway/travels_backoffice/internal/platform/config"
	"github.com/quickway/travels_backoffice/internal/utils"
)

// authService issues session tokens for directory users. When a verifier is
// configured the caller must also prove control of the email with an ID token.
type authService struct {
	BaseService
	cfg      *config.Config
	userRepo portsrepo.UserReader
	verifier portssvc.IdentityVerifier
}

// NewAuthService creates a new instance of authService. verifier may be nil.
func NewAuthService(cfg *config.Config, userRepo portsrepo.UserReader, verifier portssvc.IdentityVerifier) portssvc.AuthSvcFacade {
	return &authService{
		cfg:      cfg,
		userRepo: userRepo,
		verifier: verifier,
	}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) IssueToken(ctx context.Context, req dto.IssueTokenRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if s.verifier != nil {
		if req.IDToken == "" {
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "identity token is required", apperrors.ErrUnauthorized)
		}
		verified, err := s.verifier.VerifyIDToken(ctx, req.IDToken)
		if err != nil {
			s.LogDebug(ctx, "Identity token rejected", slog.String("error", err.Error()))
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "invalid identity token", apperrors.ErrUnauthorized)
		}
		if !strings.EqualFold(verified, email) {
			s.LogInfo(ctx, "Identity token email mismatch", slog.String("email", email))
			return nil, apperrors.NewAppError(http.StatusUnauthorized, "identity token does not match email", apperrors.ErrUnauthorized)
		}
	}

	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewAppError(http.StatusNotFound, "User not found", apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to look up user for token", slog.String("email", email))
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if user.Status != domain.StatusActive {
		s.LogInfo(ctx, "Token refused for inactive account", slog.String("email", email))
		return nil, apperrors.ErrInactive
	}

	token, expiresAt, err := utils.GenerateJWT(user.Principal(), s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token", slog.String("email", email))
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	s.LogInfo(ctx, "Token issued",
		slog.String("email", email),
		slog.String("role", string(user.Role)))
	return &dto.TokenResponse{Token: token, ExpiresAt: expiresAt.Unix()}, nil
}
