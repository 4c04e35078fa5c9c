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

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates the user directory service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, policy portssvc.AccessPolicySvc) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Policy: policy},
		userRepo:    userRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// userStamp exposes a user's tenant and identity to the record policy.
func userStamp(u *domain.User) domain.Provenance {
	return domain.Provenance{OfficeID: u.OfficeID, CreatedBy: u.Email, CreatedAt: u.CreatedAt}
}

func (s *userService) GetUserByID(ctx context.Context, p domain.Principal, userID string) (*domain.User, error) {
	if err := ValidateID(userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourceUser, domain.ActionRead, userStamp(user)); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) GetOwnProfile(ctx context.Context, p domain.Principal) (*domain.User, error) {
	if err := domain.RequireActive(p); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByEmail(ctx, p.Email)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find own profile", slog.String("email", p.Email))
		return nil, err
	}
	if err := domain.RequireSameTenant(p, user.OfficeID); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) ListAllUsers(ctx context.Context, p domain.Principal) ([]domain.User, error) {
	if err := domain.RequireActive(p); err != nil {
		return nil, err
	}
	if err := domain.RequireRole(p, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx, domain.Scope{})
	if err != nil {
		s.LogError(ctx, err, "Failed to list all users")
		return nil, err
	}
	return users, nil
}

func (s *userService) ListOfficeUsers(ctx context.Context, p domain.Principal, officeID string) ([]domain.User, error) {
	if err := domain.RequireActive(p); err != nil {
		return nil, err
	}
	if err := domain.RequireRole(p, domain.RoleAdmin, domain.RoleSuperAdmin); err != nil {
		return nil, err
	}
	if officeID == "" {
		officeID = p.OfficeID
	}
	if err := domain.RequireSameTenant(p, officeID); err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx, domain.Scope{OfficeID: &officeID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list office users", slog.String("office_id", officeID))
		return nil, err
	}
	return users, nil
}

// lookup resolves the target of a self-service check. Admin callers must
// share the target's office.
func (s *userService) lookup(ctx context.Context, p domain.Principal, email string) (*domain.User, error) {
	if err := domain.RequireActive(p); err != nil {
		return nil, err
	}
	if err := domain.RequireSelfOrPrivileged(p, email); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(email))
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find user by email", slog.String("email", email))
		return nil, err
	}
	if p.Role == domain.RoleAdmin {
		if err := domain.RequireSameTenant(p, user.OfficeID); err != nil {
			return nil, err
		}
	}
	return user, nil
}

func (s *userService) IsActive(ctx context.Context, p domain.Principal, email string) (bool, error) {
	user, err := s.lookup(ctx, p, email)
	if err != nil {
		return false, err
	}
	return user.Status == domain.StatusActive, nil
}

func (s *userService) IsAdmin(ctx context.Context, p domain.Principal, email string) (bool, error) {
	user, err := s.lookup(ctx, p, email)
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *userService) IsSuperAdmin(ctx context.Context, p domain.Principal, email string) (bool, error) {
	user, err := s.lookup(ctx, p, email)
	if err != nil {
		return false, err
	}
	return user.Role == domain.RoleSuperAdmin, nil
}

// guardRoleAssignment keeps the super-admin role in super-admin hands.
func guardRoleAssignment(p domain.Principal, role domain.Role) error {
	if role == domain.RoleSuperAdmin && !p.IsSuperAdmin() {
		return apperrors.NewForbiddenError("only a super-admin may assign the super-admin role")
	}
	return nil
}

// guardTarget stops non-super-admins from managing super-admin accounts.
func guardTarget(p domain.Principal, target *domain.User) error {
	if target.Role == domain.RoleSuperAdmin && !p.IsSuperAdmin() {
		return apperrors.NewForbiddenError("only a super-admin may manage a super-admin")
	}
	return nil
}

func (s *userService) CreateUser(ctx context.Context, p domain.Principal, req dto.CreateUserRequest) (*domain.User, error) {
	if err := s.Authorize(ctx, p, domain.ResourceUser, domain.ActionCreate); err != nil {
		return nil, err
	}
	if !req.Role.Valid() {
		return nil, apperrors.NewValidationError("unknown role")
	}
	if err := guardRoleAssignment(p, req.Role); err != nil {
		return nil, err
	}

	officeID := req.OfficeID
	if !p.IsSuperAdmin() {
		officeID = p.OfficeID
	}
	status := req.Status
	if status == "" {
		status = domain.StatusActive
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Role:      req.Role,
		Status:    status,
		OfficeID:  officeID,
		PhotoURL:  req.PhotoURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", user.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User created",
		slog.String("user_id", user.ID),
		slog.String("office_id", user.OfficeID),
		slog.String("role", string(user.Role)))
	return &user, nil
}

// loadForWrite fetches a user and checks the principal may apply action to it.
func (s *userService) loadForWrite(ctx context.Context, p domain.Principal, userID string, action domain.Action) (*domain.User, error) {
	if err := ValidateID(userID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to find user", slog.String("user_id", userID))
		return nil, err
	}
	if err := s.AuthorizeRecord(ctx, p, domain.ResourceUser, action, userStamp(user)); err != nil {
		return nil, err
	}
	if err := guardTarget(p, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, p domain.Principal, userID string, req dto.UpdateUserRequest) (*domain.User, error) {
	user, err := s.loadForWrite(ctx, p, userID, domain.ActionUpdate)
	if err != nil {
		return nil, err
	}

	changed := false
	if req.Name != nil && *req.Name != user.Name {
		user.Name = *req.Name
		changed = true
	}
	if req.Role != nil && *req.Role != user.Role {
		if !req.Role.Valid() {
			return nil, apperrors.NewValidationError("unknown role")
		}
		if err := guardRoleAssignment(p, *req.Role); err != nil {
			return nil, err
		}
		user.Role = *req.Role
		changed = true
	}
	if req.Status != nil && *req.Status != user.Status {
		if !req.Status.Valid() {
			return nil, apperrors.NewValidationError("unknown status")
		}
		user.Status = *req.Status
		changed = true
	}
	if req.OfficeID != nil && *req.OfficeID != user.OfficeID {
		if !p.IsSuperAdmin() {
			return nil, apperrors.NewForbiddenError("unauthorized office")
		}
		user.OfficeID = *req.OfficeID
		changed = true
	}
	if req.PhotoURL != nil && *req.PhotoURL != user.PhotoURL {
		user.PhotoURL = *req.PhotoURL
		changed = true
	}
	if !changed {
		return nil, apperrors.ErrNoChange
	}

	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user", slog.String("user_id", userID))
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	s.LogInfo(ctx, "User updated", slog.String("user_id", userID))
	return user, nil
}

func (s *userService) UpdateUserStatus(ctx context.Context, p domain.Principal, userID string, status domain.Status) error {
	if !status.Valid() {
		return apperrors.NewValidationError("unknown status")
	}
	user, err := s.loadForWrite(ctx, p, userID, domain.ActionUpdate)
	if err != nil {
		return err
	}
	if user.Status == status {
		return apperrors.ErrNoChange
	}

	user.Status = status
	user.UpdatedAt = time.Now().UTC()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update user status", slog.String("user_id", userID))
		return fmt.Errorf("failed to update user status: %w", err)
	}

	s.LogInfo(ctx, "User status changed",
		slog.String("user_id", userID),
		slog.String("status", string(status)))
	return nil
}

func (s *userService) DeleteUser(ctx context.Context, p domain.Principal, userID string) error {
	if _, err := s.loadForWrite(ctx, p, userID, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		s.logUnlessNotFound(ctx, err, "Failed to delete user", slog.String("user_id", userID))
		return err
	}
	s.LogInfo(ctx, "User deleted", slog.String("user_id", userID))
	return nil
}
