package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

func TestUserService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	result, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Email: "alice@example.com",
		Name:  "Alice",
		Role:  "buyer",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.AlreadyExisted {
		t.Fatalf("fresh email should not report AlreadyExisted")
	}
	if result.InsertedID == "" {
		t.Fatalf("expected inserted id")
	}
	if _, ok := repo.users["alice@example.com"]; !ok {
		t.Fatalf("user not persisted")
	}
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, ports.RegisterUserInput{Email: "bob@example.com"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	result, err := svc.Register(ctx, ports.RegisterUserInput{Email: "bob@example.com", Name: "Impostor"})
	if err != nil {
		t.Fatalf("second register returned error: %v", err)
	}
	if !result.AlreadyExisted {
		t.Fatalf("expected AlreadyExisted for duplicate email")
	}
	if result.InsertedID != "" {
		t.Fatalf("duplicate registration must not insert, got id %q", result.InsertedID)
	}
	if len(repo.users) != 1 {
		t.Fatalf("expected single record, got %d", len(repo.users))
	}
	if repo.users["bob@example.com"].Name != "" {
		t.Fatalf("existing record must not be overwritten")
	}
}

func TestUserService_Register_EmptyEmail(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.Register(context.Background(), ports.RegisterUserInput{}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUserService_ListByRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	ctx := context.Background()

	_, _ = repo.Insert(ctx, &domain.User{Email: "p1@example.com", Role: "provider"})
	_, _ = repo.Insert(ctx, &domain.User{Email: "b1@example.com", Role: "buyer"})
	_, _ = repo.Insert(ctx, &domain.User{Email: "p2@example.com", Role: "provider"})

	providers, err := svc.ListByRole(ctx, "provider")
	if err != nil {
		t.Fatalf("ListByRole returned error: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(providers))
	}
	for _, u := range providers {
		if u.Role != "provider" {
			t.Fatalf("unexpected role %q in result", u.Role)
		}
	}
}

func TestUserService_GetByEmail_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	if _, err := svc.GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
