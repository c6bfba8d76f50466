package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// CatalogService implements catalog item creation and lookups.
type CatalogService struct {
	repo   ports.ServiceRepository
	logger zerolog.Logger
}

func NewCatalogService(repo ports.ServiceRepository, logger zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, logger: logger}
}

func (s *CatalogService) Create(ctx context.Context, input ports.CreateServiceInput) (string, error) {
	if input.Title == "" {
		return "", fmt.Errorf("create service: %w", domain.ErrInvalidRequest)
	}

	svc := &domain.Service{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Price:       input.Price,
		CreatedAt:   time.Now().UTC(),
		Attributes:  input.Attributes,
	}

	id, err := s.repo.Insert(ctx, svc)
	if err != nil {
		return "", fmt.Errorf("create service: %w", err)
	}

	s.logger.Info().Str("service_id", id).Str("title", input.Title).Msg("service created")
	return id, nil
}

func (s *CatalogService) List(ctx context.Context) ([]*domain.Service, error) {
	return s.repo.FindAll(ctx)
}

func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Service, error) {
	if id == "" {
		return nil, fmt.Errorf("get service: %w", domain.ErrInvalidServiceID)
	}
	return s.repo.FindByID(ctx, id)
}
