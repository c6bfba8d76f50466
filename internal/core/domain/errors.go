package domain

import "errors"

var (
	// ErrInvalidRequest covers missing or malformed client input.
	ErrInvalidRequest = errors.New("invalid request")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrServiceNotFound  = errors.New("service not found")
	ErrInvalidServiceID = errors.New("invalid service id")

	ErrOTPNotFound = errors.New("no otp found for this email")
	ErrOTPExpired  = errors.New("otp has expired")
	ErrOTPMismatch = errors.New("invalid otp")

	// ErrDeliveryFailed is returned when the mail collaborator rejects a send.
	ErrDeliveryFailed = errors.New("failed to send otp")
)
