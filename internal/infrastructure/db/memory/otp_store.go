// Package memory provides the in-process OTP store. Entries live for the
// lifetime of the process and are lost on restart.
package memory

import (
	"context"
	"sync"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// OTPStore keeps the outstanding code per email in a mutex-guarded map.
// Single-key operations are atomic; no invariant spans multiple keys.
type OTPStore struct {
	mu      sync.Mutex
	entries map[string]domain.OTPEntry
}

func NewOTPStore() *OTPStore {
	return &OTPStore{entries: make(map[string]domain.OTPEntry)}
}

// Put stores the entry for the email, replacing any prior one.
func (s *OTPStore) Put(_ context.Context, email string, entry domain.OTPEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[email] = entry
	return nil
}

func (s *OTPStore) Get(_ context.Context, email string) (*domain.OTPEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[email]
	if !ok {
		return nil, domain.ErrOTPNotFound
	}
	return &entry, nil
}

func (s *OTPStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, email)
	return nil
}
