package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// OTPStore holds the outstanding one-time code per email address.
// Put overwrites any prior entry for the same email. Get returns
// domain.ErrOTPNotFound when no entry exists.
type OTPStore interface {
	Put(ctx context.Context, email string, entry domain.OTPEntry) error
	Get(ctx context.Context, email string) (*domain.OTPEntry, error)
	Delete(ctx context.Context, email string) error
}
