package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// ServiceRepository defines persistence operations for catalog services.
type ServiceRepository interface {
	// Insert persists the service and returns the generated document id.
	Insert(ctx context.Context, svc *domain.Service) (string, error)
	FindAll(ctx context.Context) ([]*domain.Service, error)
	// FindByID retrieves a service by its hex document id. A malformed id
	// yields domain.ErrInvalidServiceID.
	FindByID(ctx context.Context, id string) (*domain.Service, error)
}
