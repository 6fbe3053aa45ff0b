package user

import (
	"context"

	"github.com/atomtask/core/internal/models"
)

// Repository is the identity-store contract.
type Repository interface {
	// FindByEmail matches the stored email exactly; no trimming or case
	// folding. Returns (nil, nil) when no user has that email.
	FindByEmail(ctx context.Context, email string) (*models.UserModel, error)

	// Create persists a new user. A duplicate email maps to errEmailTaken;
	// the backing store enforces uniqueness, so concurrent registration of
	// the same email cannot produce two records.
	Create(ctx context.Context, u *models.UserModel) error
}
