package domain

import "time"

// User is an account identified by its email address (unique key).
// Role is a free-form string used for filtering (e.g. "buyer", "provider",
// "admin"); the system imposes no role taxonomy.
type User struct {
	ID        string         `json:"_id,omitempty"`
	Email     string         `json:"email"`
	Name      string         `json:"name,omitempty"`
	Role      string         `json:"role,omitempty"`
	Verified  bool           `json:"verified"`
	CreatedAt time.Time      `json:"created_at"`
	Extra     map[string]any `json:"extra,omitempty"`
}
