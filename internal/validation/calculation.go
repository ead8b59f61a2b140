package validation

import (
	"strings"

	"github.com/Verderen/MoneyHiver/internal/api/request"
)

// ValidateTitle checks the display title attached to a save request.
func ValidateTitle(title string) error {
	errors := make(map[string]string)

	if strings.TrimSpace(title) == "" {
		errors["title"] = "title is required"
	} else if len(title) > 100 {
		errors["title"] = "title must be at most 100 characters"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateDeleteCalculation checks a delete request body.
func ValidateDeleteCalculation(req request.DeleteCalculationRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.CalculationID) == "" {
		errors["calculation_id"] = "calculation_id is required"
	} else if err := ValidateUUID(req.CalculationID); err != nil {
		errors["calculation_id"] = err.Error()
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateSubscribe checks a price alert subscription request.
func ValidateSubscribe(req request.SubscribeRequest) error {
	errors := make(map[string]string)

	email := strings.TrimSpace(req.Email)
	if email == "" {
		errors["email"] = "email is required"
	} else if !strings.Contains(email, "@") {
		errors["email"] = "email is not a valid address"
	}

	asset := strings.ToUpper(strings.TrimSpace(req.Asset))
	if asset != "BTC" && asset != "ETH" {
		errors["asset"] = "asset must be BTC or ETH"
	}

	if req.Price <= 0 {
		errors["price"] = "price must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateMessage checks a contact form request.
func ValidateMessage(req request.MessageRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Email) == "" {
		errors["email"] = "email is required"
	}
	if strings.TrimSpace(req.Message) == "" {
		errors["message"] = "message is required"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}

// ValidateCreateCryptoAsset checks a new holding request.
func ValidateCreateCryptoAsset(req request.CreateCryptoAssetRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Asset) == "" {
		errors["asset"] = "asset is required"
	}
	if req.Amount <= 0 {
		errors["amount"] = "amount must be greater than zero"
	}
	if req.Price <= 0 {
		errors["price"] = "price must be greater than zero"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}

	return nil
}
