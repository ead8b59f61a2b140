package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrCalculationNotFound indicates that a saved calculation with the given ID does not exist.
	ErrCalculationNotFound = errors.New("calculation not found")

	// ErrAssetNotFound indicates that an asset with the given ID does not exist.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrAlertNotFound indicates that a price alert subscription does not exist.
	ErrAlertNotFound = errors.New("alert not found")

	// ErrSymbolNotFound indicates that a symbol lookup returned no results.
	ErrSymbolNotFound = errors.New("symbol not found")

	// ErrCurrencyNotSupported indicates that a currency code is absent from the rate table.
	ErrCurrencyNotSupported = errors.New("currency is not supported")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidInput indicates that a calculator input failed validation.
	// Validation happens entirely before computation; no calculation is
	// attempted for inputs carrying this error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidCalculationType indicates an unknown calculation kind tag.
	ErrInvalidCalculationType = errors.New("invalid calculation type")

	// ErrInvalidDayRange indicates a chart range outside {1, 7, 30, 90} days.
	ErrInvalidDayRange = errors.New("invalid day range")

	// ErrStopLossAboveOpen indicates a risk/reward input where the stop loss
	// does not sit below the open price.
	ErrStopLossAboveOpen = errors.New("stop loss must be less than open price")

	// ErrTakeProfitBelowOpen indicates a risk/reward input where the take
	// profit does not sit above the open price.
	ErrTakeProfitBelowOpen = errors.New("take profit must be greater than open price")
)

// Transport errors classify failures talking to external providers or to
// the backend API. The quote source adapter downgrades these to the
// fallback path; the store client surfaces them to the caller.
var (
	// ErrNetwork indicates a failed request or a non-2xx response.
	ErrNetwork = errors.New("network error")

	// ErrMalformedResponse indicates a JSON parse failure or a response
	// whose shape does not match the documented contract.
	ErrMalformedResponse = errors.New("malformed response")

	// ErrBackendFailure indicates the backend answered with success=false
	// or a non-success status and an error message.
	ErrBackendFailure = errors.New("backend reported failure")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
var (
	ErrFailedToRetrieveCalculations = errors.New("failed to retrieve saved calculations")
	ErrFailedToRetrieveCalculation  = errors.New("failed to retrieve calculation")
	ErrFailedToSaveCalculation      = errors.New("failed to save calculation")
	ErrFailedToDeleteCalculation    = errors.New("failed to delete calculation")

	ErrFailedToRetrieveAssets = errors.New("failed to retrieve assets")
	ErrFailedToCreateAsset    = errors.New("failed to create asset")
	ErrFailedToDeleteAsset    = errors.New("failed to delete asset")

	ErrFailedToRetrieveQuotes = errors.New("failed to retrieve quotes")
	ErrFailedToRenderChart    = errors.New("failed to render chart")

	ErrFailedToSubscribe   = errors.New("failed to subscribe")
	ErrFailedToSendMessage = errors.New("failed to send message")
)
