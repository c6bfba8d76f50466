package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

const (
	otpTTL     = 5 * time.Minute
	otpSubject = "Your OTP for Signup"
)

// OTPService issues, verifies, and invalidates one-time codes bound to
// email addresses. Codes are single-use and expire after otpTTL; issuing a
// new code replaces the outstanding one.
type OTPService struct {
	store  ports.OTPStore
	users  ports.UserRepository
	mailer ports.Mailer
	logger zerolog.Logger

	// now is swappable so expiry can be tested with a simulated clock.
	now func() time.Time
}

func NewOTPService(store ports.OTPStore, users ports.UserRepository, mailer ports.Mailer, logger zerolog.Logger) *OTPService {
	return &OTPService{
		store:  store,
		users:  users,
		mailer: mailer,
		logger: logger,
		now:    time.Now,
	}
}

// Issue generates a fresh code for the email, stores it with a 5 minute
// validity window, and mails it to the address. If the mail dispatch fails
// the stored code remains valid and ErrDeliveryFailed is returned: the
// caller may retry via resend without an extra code being burned.
func (s *OTPService) Issue(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("issue otp: %w", domain.ErrInvalidRequest)
	}

	code, err := generateCode()
	if err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}

	entry := domain.OTPEntry{
		Code:      code,
		ExpiresAt: s.now().Add(otpTTL),
	}
	if err := s.store.Put(ctx, email, entry); err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}

	body := fmt.Sprintf("Your OTP is %s. It will expire in 5 minutes.", code)
	if err := s.mailer.Send(email, otpSubject, body); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("otp mail dispatch failed")
		return fmt.Errorf("%w: %v", domain.ErrDeliveryFailed, err)
	}

	s.logger.Info().Str("email", email).Time("expires_at", entry.ExpiresAt).Msg("otp issued")
	return nil
}

// Verify checks the submitted code against the outstanding entry for the
// email and consumes it on success, so the same code can never match twice.
func (s *OTPService) Verify(ctx context.Context, email, code string) error {
	if email == "" || code == "" {
		return fmt.Errorf("verify otp: %w", domain.ErrInvalidRequest)
	}

	entry, err := s.store.Get(ctx, email)
	if err != nil {
		return fmt.Errorf("verify otp: %w", err)
	}

	if entry.Expired(s.now()) {
		_ = s.store.Delete(ctx, email)
		return fmt.Errorf("verify otp: %w", domain.ErrOTPExpired)
	}

	if entry.Code != code {
		return fmt.Errorf("verify otp: %w", domain.ErrOTPMismatch)
	}

	if err := s.store.Delete(ctx, email); err != nil {
		return fmt.Errorf("verify otp: consume entry: %w", err)
	}

	// Flip the verified flag when a user record exists. Verification of an
	// email that has no account yet is still a success.
	if err := s.users.MarkVerified(ctx, email); err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn().Err(err).Str("email", email).Msg("failed to mark user verified")
	}

	s.logger.Info().Str("email", email).Msg("otp verified")
	return nil
}

// Reissue issues a new code for an email that already has a user record.
func (s *OTPService) Reissue(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("reissue otp: %w", domain.ErrInvalidRequest)
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return fmt.Errorf("reissue otp: %w", err)
	}

	return s.Issue(ctx, email)
}

// generateCode draws a 6-digit code uniformly from [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
