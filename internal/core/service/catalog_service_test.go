package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

type stubServiceRepo struct {
	items  map[string]*domain.Service
	nextID int
}

func newStubServiceRepo() *stubServiceRepo {
	return &stubServiceRepo{items: make(map[string]*domain.Service)}
}

func (r *stubServiceRepo) Insert(_ context.Context, svc *domain.Service) (string, error) {
	r.nextID++
	id := string(rune('a' + r.nextID))
	clone := *svc
	clone.ID = id
	r.items[id] = &clone
	return id, nil
}

func (r *stubServiceRepo) FindAll(_ context.Context) ([]*domain.Service, error) {
	out := make([]*domain.Service, 0, len(r.items))
	for _, s := range r.items {
		out = append(out, s)
	}
	return out, nil
}

func (r *stubServiceRepo) FindByID(_ context.Context, id string) (*domain.Service, error) {
	if len(id) != 24 {
		return nil, domain.ErrInvalidServiceID
	}
	s, ok := r.items[id]
	if !ok {
		return nil, domain.ErrServiceNotFound
	}
	return s, nil
}

func TestCatalogService_Create(t *testing.T) {
	repo := newStubServiceRepo()
	svc := NewCatalogService(repo, zerolog.Nop())

	id, err := svc.Create(context.Background(), ports.CreateServiceInput{
		Title: "1000 subscribers",
		Price: 49.99,
		Attributes: map[string]any{
			"delivery_days": 7,
		},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	stored, ok := repo.items[id]
	if !ok {
		t.Fatalf("service not persisted")
	}
	if stored.Title != "1000 subscribers" || stored.Attributes["delivery_days"] != 7 {
		t.Fatalf("unexpected stored service: %+v", stored)
	}
}

func TestCatalogService_Create_MissingTitle(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), ports.CreateServiceInput{Price: 10}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestCatalogService_Get_InvalidID(t *testing.T) {
	svc := NewCatalogService(newStubServiceRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), "not-a-hex-id"); !errors.Is(err, domain.ErrInvalidServiceID) {
		t.Fatalf("expected ErrInvalidServiceID, got %v", err)
	}
	if _, err := svc.Get(context.Background(), ""); !errors.Is(err, domain.ErrInvalidServiceID) {
		t.Fatalf("expected ErrInvalidServiceID for empty id, got %v", err)
	}
}
