package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// OTPStore persists outstanding codes in Redis so they survive process
// restarts. Key format: otp:<email>. The key TTL mirrors the entry expiry,
// so stale entries are swept by Redis itself; Get still checks ExpiresAt for
// the authoritative verdict.
type OTPStore struct {
	client *redis.Client
}

func NewOTPStore(client *redis.Client) *OTPStore {
	return &OTPStore{client: client}
}

func (s *OTPStore) Put(ctx context.Context, email string, entry domain.OTPEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("otp store: marshal entry: %w", err)
	}

	ttl := time.Until(entry.ExpiresAt)
	if ttl <= 0 {
		ttl = time.Second
	}

	if err := s.client.Set(ctx, s.key(email), payload, ttl).Err(); err != nil {
		return fmt.Errorf("otp store: set: %w", err)
	}
	return nil
}

func (s *OTPStore) Get(ctx context.Context, email string) (*domain.OTPEntry, error) {
	payload, err := s.client.Get(ctx, s.key(email)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrOTPNotFound
		}
		return nil, fmt.Errorf("otp store: get: %w", err)
	}

	var entry domain.OTPEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return nil, fmt.Errorf("otp store: unmarshal entry: %w", err)
	}
	return &entry, nil
}

func (s *OTPStore) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, s.key(email)).Err(); err != nil {
		return fmt.Errorf("otp store: del: %w", err)
	}
	return nil
}

func (s *OTPStore) key(email string) string {
	return "otp:" + email
}
