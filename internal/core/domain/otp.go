package domain

import "time"

// OTPEntry is the outstanding one-time code for an email address. At most
// one entry exists per email: issuing a new code overwrites the prior one.
type OTPEntry struct {
	Code      string    `json:"code"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the entry is stale at the given instant.
func (e OTPEntry) Expired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}
