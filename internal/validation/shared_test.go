package validation_test

import (
	"testing"

	"github.com/Verderen/MoneyHiver/internal/validation"
)

// TestError tests the validation error message.
//
// WHY: The message goes straight into 400 responses, so it must name
// every failed field and stay deterministic across requests.
func TestError(t *testing.T) {
	t.Run("single field", func(t *testing.T) {
		err := &validation.Error{Fields: map[string]string{"title": "is required"}}
		if got := err.Error(); got != "title: is required" {
			t.Errorf("Expected single field message, got %q", got)
		}
	})

	t.Run("multiple fields in field order", func(t *testing.T) {
		err := &validation.Error{Fields: map[string]string{
			"price": "must be positive",
			"asset": "is required",
		}}
		want := "asset: is required; price: must be positive"
		if got := err.Error(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})
}
