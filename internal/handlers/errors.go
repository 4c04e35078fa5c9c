package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/quickway/travels_backoffice/internal/middleware"
)

// errorStatus maps a service error to an HTTP status and a client-facing message.
// resource names the record in not-found and duplicate messages.
func errorStatus(err error, resource string) (int, string) {
	var appErr *apperrors.AppError
	hasAppErr := errors.As(err, &appErr)

	switch {
	case errors.Is(err, apperrors.ErrNoChange):
		return http.StatusNotModified, ""
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrUnauthorized):
		if hasAppErr {
			return http.StatusUnauthorized, appErr.Message
		}
		return http.StatusUnauthorized, "Unauthorized access"
	case errors.Is(err, apperrors.ErrInactive):
		return http.StatusForbidden, "Account is inactive"
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		if hasAppErr {
			return http.StatusNotFound, appErr.Message
		}
		return http.StatusNotFound, resource + " not found"
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, resource + " already exists"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// respondError writes the error response for err and logs it at a level
// matching its status.
func respondError(c *gin.Context, err error, resource string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status, message := errorStatus(err, resource)

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", slog.String("error", err.Error()), slog.Int("status", status))
	case status == http.StatusNotModified:
		logger.Info("Update carried no changes")
		c.Status(status)
		return
	default:
		logger.Warn("Request rejected", slog.String("error", err.Error()), slog.Int("status", status))
	}
	c.JSON(status, gin.H{"error": message})
}

// bindJSON binds the request body into req and answers 400 on failure.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// bindQuery binds query parameters into req and answers 400 on failure.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return false
	}
	return true
}

// principal returns the authenticated caller or answers 401.
func principal(c *gin.Context) (domain.Principal, bool) {
	p, ok := middleware.GetPrincipalFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Principal not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized access"})
		return domain.Principal{}, false
	}
	return p, true
}
