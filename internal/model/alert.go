package model

import "time"

// Alert is a one-shot price alert subscription. Email holds the decrypted
// address in memory; at rest the repository stores only the fernet token.
// The sweep deletes the row after the notification is sent.
type Alert struct {
	ID        string
	Email     string
	Asset     string // "BTC" or "ETH"
	Threshold float64
	CreatedAt time.Time
}
