package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no change", apperrors.ErrNoChange, http.StatusNotModified, ""},
		{"validation", apperrors.NewValidationError("amount must be positive"), http.StatusBadRequest, "amount must be positive: validation error"},
		{"unauthorized app error", apperrors.NewAppError(http.StatusUnauthorized, "invalid identity token", apperrors.ErrUnauthorized), http.StatusUnauthorized, "invalid identity token"},
		{"unauthorized bare", apperrors.ErrUnauthorized, http.StatusUnauthorized, "Unauthorized access"},
		{"inactive", apperrors.ErrInactive, http.StatusForbidden, "Account is inactive"},
		{"forbidden", apperrors.NewForbiddenError("unauthorized office"), http.StatusForbidden, "unauthorized office: forbidden"},
		{"not found bare", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound, "Sale not found"},
		{"not found app error", apperrors.NewAppError(http.StatusNotFound, "No sales found for this supplier", apperrors.ErrNotFound), http.StatusNotFound, "No sales found for this supplier"},
		{"duplicate", fmt.Errorf("insert: %w", apperrors.ErrDuplicate), http.StatusConflict, "Sale already exists"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := errorStatus(tt.err, "Sale")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
