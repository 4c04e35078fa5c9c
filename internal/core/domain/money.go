package domain

import (
	"github.com/quickway/travels_backoffice/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Money columns are NUMERIC(14,2): at most 12 integer digits and 2 decimals.
const moneyScale = 2

var moneyLimit = decimal.New(1, 12)

// CheckMoney rejects amounts the money columns cannot store exactly.
func CheckMoney(field string, d decimal.Decimal) error {
	if !d.Equal(d.Round(moneyScale)) {
		return apperrors.NewValidationError(field + " must have at most 2 decimal places")
	}
	if d.Abs().GreaterThanOrEqual(moneyLimit) {
		return apperrors.NewValidationError(field + " is too large")
	}
	return nil
}
