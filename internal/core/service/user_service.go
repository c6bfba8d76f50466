package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/emon00007/easysubstech/internal/core/domain"
	"github.com/emon00007/easysubstech/internal/core/ports"
)

// UserService implements user registration and lookups.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register inserts a new user unless the email is already taken, in which
// case the existing record is left untouched and AlreadyExisted is reported.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*ports.RegisterUserResult, error) {
	if input.Email == "" {
		return nil, fmt.Errorf("register user: %w", domain.ErrInvalidRequest)
	}

	existing, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("register user: %w", err)
	}
	if existing != nil {
		s.logger.Info().Str("email", input.Email).Msg("registration for existing email")
		return &ports.RegisterUserResult{AlreadyExisted: true}, nil
	}

	user := &domain.User{
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
		Extra:     input.Extra,
	}

	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("register user: %w", err)
	}

	s.logger.Info().Str("email", input.Email).Str("role", input.Role).Msg("user registered")
	return &ports.RegisterUserResult{InsertedID: id}, nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) ListByRole(ctx context.Context, role string) ([]*domain.User, error) {
	if role == "" {
		return nil, fmt.Errorf("list users: %w", domain.ErrInvalidRequest)
	}
	return s.repo.FindByRole(ctx, role)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, fmt.Errorf("get user: %w", domain.ErrInvalidRequest)
	}
	return s.repo.FindByEmail(ctx, email)
}
