package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// UserRepository defines persistence operations for user documents.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByRole(ctx context.Context, role string) ([]*domain.User, error)
	// Insert persists the user and returns the generated document id.
	Insert(ctx context.Context, user *domain.User) (string, error)
	// MarkVerified sets the verified flag on the user with the given email.
	MarkVerified(ctx context.Context, email string) error
}
