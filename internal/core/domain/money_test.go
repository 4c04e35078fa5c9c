package domain_test

import (
	"testing"

	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/quickway/travels_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCheckMoney(t *testing.T) {
	tests := []struct {
		name    string
		amount  string
		wantErr bool
	}{
		{"whole", "1200", false},
		{"cents", "79.50", false},
		{"trailing zeros", "10.500", false},
		{"negative cents", "-3.25", false},
		{"largest", "999999999999.99", false},
		{"sub-cent", "0.005", true},
		{"too large", "1000000000000", true},
		{"too small", "-1000000000000", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.CheckMoney("amount", decimal.RequireFromString(tt.amount))
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
