package token

import (
	"context"
	"time"

	"github.com/atomtask/core/internal/models"
)

// Repository is the persistence contract for access-token records.
type Repository interface {
	// Create persists a new record. Ids are caller-generated and
	// high-entropy, so concurrent creation cannot collide.
	Create(ctx context.Context, t *models.AccessTokenModel) error

	// FindValid returns the record matching id that is not revoked and not
	// expired at now, applying all three predicates in a single query.
	// Returns (nil, nil) when no active record matches.
	FindValid(ctx context.Context, id string, now time.Time) (*models.AccessTokenModel, error)

	// Revoke flips the revoked flag. Returns ErrTokenNotFound for an
	// unknown id. Records are never deleted on this path.
	Revoke(ctx context.Context, id string) error

	// DeleteInactiveBefore hard-deletes records that expired before cutoff
	// or were revoked. Only the sweeper calls this.
	DeleteInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
