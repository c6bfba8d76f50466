package ports

import (
	"context"

	"github.com/emon00007/easysubstech/internal/core/domain"
)

// CreateServiceInput carries the fields accepted when adding a catalog item.
type CreateServiceInput struct {
	Title       string
	Description string
	Category    string
	Price       float64
	Attributes  map[string]any
}

// CatalogService defines use-case operations for the service catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateServiceInput) (string, error)
	List(ctx context.Context) ([]*domain.Service, error)
	Get(ctx context.Context, id string) (*domain.Service, error)
}
