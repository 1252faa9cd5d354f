package services

import (
	"fmt"
	"strings"

	"github.com/SscSPs/bookkeeping_app/internal/apperrors"
	"github.com/SscSPs/bookkeeping_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

func validationErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}

func requireText(field, value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", validationErrorf("%s is required", field)
	}
	return value, nil
}

func requirePositive(field string, value decimal.Decimal) error {
	if !value.IsPositive() {
		return validationErrorf("%s must be greater than zero", field)
	}
	return nil
}

// canonicalDate returns value as YYYY-MM-DD in the calendar's zone.
func canonicalDate(field, value string, cal domain.Calendar) (string, error) {
	if strings.TrimSpace(value) == "" {
		return "", validationErrorf("%s is required", field)
	}
	day, ok := cal.Canonical(value)
	if !ok {
		return "", validationErrorf("%s %q is not a recognised date", field, value)
	}
	return day, nil
}

// trimPtr returns a trimmed copy of an optional text field.
func trimPtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}
