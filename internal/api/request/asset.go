package request

// CreateCryptoAssetRequest is the body of POST /api/assets/crypto.
type CreateCryptoAssetRequest struct {
	Asset    string  `json:"asset"`
	Amount   float64 `json:"amount"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
}

// SubscribeRequest is the body of POST /subscribe: a one-shot price alert.
type SubscribeRequest struct {
	Email string  `json:"email"`
	Asset string  `json:"asset"`
	Price float64 `json:"price"`
}

// MessageRequest is the body of POST /message, the contact form.
type MessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
