package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	portssvc "github.com/quickway/travels_backoffice/internal/core/ports/services"
	"github.com/quickway/travels_backoffice/internal/middleware"
	"github.com/quickway/travels_backoffice/internal/platform/events"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Policy    portssvc.AccessPolicySvc
	Publisher events.Publisher
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

func (s *BaseService) policy() portssvc.AccessPolicySvc {
	if s.Policy == nil {
		return NewAccessPolicy()
	}
	return s.Policy
}

// Authorize checks that the principal may perform action on resource at all.
func (s *BaseService) Authorize(ctx context.Context, p domain.Principal, resource domain.Resource, action domain.Action) error {
	if err := s.policy().AuthorizeAction(p, resource, action); err != nil {
		s.LogDebug(ctx, "Action denied",
			slog.String("resource", string(resource)),
			slog.String("action", string(action)),
			slog.String("reason", err.Error()))
		return err
	}
	return nil
}

// AuthorizeRecord checks that the principal may perform action on one stamped record.
func (s *BaseService) AuthorizeRecord(ctx context.Context, p domain.Principal, resource domain.Resource, action domain.Action, stamp domain.Provenance) error {
	if err := s.policy().AuthorizeRecord(p, resource, action, stamp); err != nil {
		s.LogDebug(ctx, "Record access denied",
			slog.String("resource", string(resource)),
			slog.String("action", string(action)),
			slog.String("record_office_id", stamp.OfficeID),
			slog.String("reason", err.Error()))
		return err
	}
	return nil
}

// ListScope resolves the filter list queries must apply for the principal.
func (s *BaseService) ListScope(ctx context.Context, p domain.Principal, resource domain.Resource) (domain.Scope, error) {
	scope, err := s.policy().ListScope(p, resource)
	if err != nil {
		s.LogDebug(ctx, "List denied",
			slog.String("resource", string(resource)),
			slog.String("reason", err.Error()))
		return domain.Scope{}, err
	}
	return scope, nil
}

// Publish emits a lifecycle event. Delivery failures are logged, never returned:
// the record is already committed.
func (s *BaseService) Publish(ctx context.Context, event events.Event) {
	if s.Publisher == nil {
		return
	}
	if err := s.Publisher.Publish(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to publish event",
			slog.String("event_type", event.Type),
			slog.String("key", event.Key))
	}
}

// ValidateID rejects identifiers that are not UUIDs.
func ValidateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return apperrors.NewValidationError("malformed identifier")
	}
	return nil
}

// logUnlessNotFound logs err unless it is an expected lookup miss.
func (s *BaseService) logUnlessNotFound(ctx context.Context, err error, msg string, keyvals ...any) {
	if errors.Is(err, apperrors.ErrNotFound) {
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}
