package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/Verderen/MoneyHiver/internal/apperrors"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	return diff <= tolerance*math.Max(scale, 1)
}

func assertApprox(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertInvalidInput(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
