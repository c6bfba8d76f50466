package domain

import "time"

// Payment records a completed or attempted payment as reported by the
// caller. The record is never reconciled against the gateway's view; it is
// an audit entry, not a source of truth.
type Payment struct {
	ID            string         `json:"_id,omitempty"`
	Email         string         `json:"email,omitempty"`
	Amount        int64          `json:"amount"`
	Currency      string         `json:"currency,omitempty"`
	TransactionID string         `json:"transaction_id,omitempty"`
	Status        string         `json:"status,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	Attributes    map[string]any `json:"attributes,omitempty"`
}
