package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Verderen/MoneyHiver/internal/api/response"
	"github.com/Verderen/MoneyHiver/internal/apperrors"
	"github.com/Verderen/MoneyHiver/internal/validation"
)

// decodeJSON decodes a request body, reporting failures as a 400 with the
// standard error shape. Returns false when the response is already written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

// statusForError maps service errors to HTTP status codes. Unknown errors
// stay 500 so provider and database failures are never mistaken for client
// mistakes.
func statusForError(err error) int {
	var verr *validation.Error

	switch {
	case errors.Is(err, apperrors.ErrCalculationNotFound),
		errors.Is(err, apperrors.ErrAssetNotFound),
		errors.Is(err, apperrors.ErrAlertNotFound),
		errors.Is(err, apperrors.ErrSymbolNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrInvalidUUID),
		errors.Is(err, apperrors.ErrEmptyID),
		errors.Is(err, apperrors.ErrInvalidDayRange),
		errors.Is(err, apperrors.ErrCurrencyNotSupported),
		errors.Is(err, validation.ErrInvalidUUID),
		errors.As(err, &verr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// internalError replaces an unclassified failure with a stable public
// message. Client errors pass through untouched so their detail stays
// actionable; database and provider errors collapse to the fallback.
func internalError(err, fallback error) error {
	if statusForError(err) == http.StatusInternalServerError {
		return fallback
	}
	return err
}
