package model

import "time"

// Asset represents a holding tracked on the profile page. Only crypto
// assets exist today; Type is kept on the wire so further asset classes
// can share the same endpoints.
type Asset struct {
	ID            string    `json:"asset_id"`
	Type          string    `json:"type"`
	Symbol        string    `json:"asset"`
	Amount        float64   `json:"amount"`
	PricePerUnit  float64   `json:"price"`
	PriceCurrency string    `json:"currency"`
	CreatedAt     time.Time `json:"created_at"`
}

// AssetTypeCrypto is the only supported asset class.
const AssetTypeCrypto = "crypto"
