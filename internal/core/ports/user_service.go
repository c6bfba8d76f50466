package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// RegisterUserInput carries the fields accepted on user registration.
// Extra holds any attributes beyond the known schema.
type RegisterUserInput struct {
	Email string
	Name  string
	Role  string
	Extra map[string]any
}

// RegisterUserResult reports the outcome of a registration attempt.
// AlreadyExisted is true when the email was taken; InsertedID is then empty.
type RegisterUserResult struct {
	InsertedID     string
	AlreadyExisted bool
}

// UserService defines use-case operations for users.
type UserService interface {
	Register(ctx context.Context, input RegisterUserInput) (*RegisterUserResult, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}
