package ports

import "context"

// OTPService manages the one-time password lifecycle for email identities.
//
// Each email holds at most one outstanding code. Verification is single-use:
// a consumed code can never match again.
type OTPService interface {
	// Issue generates a 6-digit code for the email, stores it with a fixed
	// validity window, and dispatches it by mail. A prior outstanding code
	// for the same email is invalidated.
	Issue(ctx context.Context, email string) error
	// Verify checks the submitted code and consumes it on success.
	Verify(ctx context.Context, email, code string) error
	// Reissue is Issue restricted to known users: it fails with
	// domain.ErrUserNotFound when no user record exists for the email.
	Reissue(ctx context.Context, email string) error
}
