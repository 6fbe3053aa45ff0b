package user

import (
	"context"
	"fmt"

	"github.com/atomtask/core/internal/models"
	"github.com/atomtask/core/internal/modules/auth/token"
	"github.com/google/uuid"
)

type Service struct {
	users  Repository
	tokens *token.Service
}

func NewService(users Repository, tokens *token.Service) *Service {
	return &Service{users: users, tokens: tokens}
}

// Login resolves an existing user by email and issues a fresh access token.
func (s *Service) Login(ctx context.Context, email string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return "", errUserNotFound
	}
	return s.tokens.Issue(ctx, u.ID)
}

// Register creates a new user and issues their first access token. The
// pre-check gives the friendly conflict message; the unique email index is
// what actually prevents a duplicate under concurrency.
func (s *Service) Register(ctx context.Context, email string) (string, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return "", errEmailTaken
	}

	u := &models.UserModel{ID: uuid.New().String(), Email: email}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}
	return s.tokens.Issue(ctx, u.ID)
}

// Logout revokes the token record behind the current request's envelope.
func (s *Service) Logout(ctx context.Context, tokenID string) error {
	return s.tokens.Revoke(ctx, tokenID)
}
