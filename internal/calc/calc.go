// Package calc is the financial calculation engine. Every calculator is a
// pure function from a validated input record to a result record: no I/O,
// no shared state, deterministic for identical inputs. Validation happens
// before any arithmetic; inputs that fail it are rejected with an
// apperrors.ErrInvalidInput-wrapped error and nothing is computed.
package calc

import (
	"fmt"
	"math"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

// invalid builds the uniform validation error for a named field.
func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", apperrors.ErrInvalidInput, field, reason)
}

// requirePositive rejects values that are missing, non-finite or <= 0.
func requirePositive(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalid(field, "must be a number")
	}
	if value <= 0 {
		return invalid(field, "must be greater than zero")
	}
	return nil
}

// requireNonNegative rejects optional values that are non-finite or < 0.
// Zero means "no effect" for optional leverage, tax and growth inputs.
func requireNonNegative(field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return invalid(field, "must be a number")
	}
	if value < 0 {
		return invalid(field, "cannot be negative")
	}
	return nil
}
