package domain

import "time"

// Service is a catalog item offered on the platform. Beyond the identifying
// and pricing fields the schema is open: unknown attributes submitted by the
// caller are preserved verbatim in Attributes.
type Service struct {
	ID          string         `json:"_id,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	Price       float64        `json:"price"`
	CreatedAt   time.Time      `json:"created_at"`
	Attributes  map[string]any `json:"attributes,omitempty"`
}
