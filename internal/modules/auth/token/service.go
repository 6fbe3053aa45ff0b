package token

import (
	"context"
	"fmt"
	"time"

	"github.com/atomtask/core/internal/models"
	jwtpkg "github.com/atomtask/core/internal/pkg/jwt"
	"github.com/google/uuid"
)

// Service issues, validates and revokes access tokens.
type Service struct {
	repo Repository

	// now is read once per operation so a record cannot expire between two
	// clock reads within the same validation.
	now func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Issue persists a new token record for userID (valid for one calendar year)
// and returns the signed envelope wrapping its id. The caller is responsible
// for userID referencing an existing user.
func (s *Service) Issue(ctx context.Context, userID string) (string, error) {
	now := s.now()
	t := &models.AccessTokenModel{
		ID:        uuid.New().String(),
		UserID:    userID,
		Revoked:   false,
		ExpiresAt: now.AddDate(1, 0, 0),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return "", fmt.Errorf("persist access token: %w", err)
	}

	envelope, err := jwtpkg.Sign(t.ID, t.ExpiresAt)
	if err != nil {
		_ = s.repo.Revoke(ctx, t.ID)
		return "", err
	}
	return envelope, nil
}

// Validate resolves an envelope to its active token record. It returns
// ErrMalformedEnvelope when signature or claim verification fails and
// ErrTokenInactive when the record is missing, expired or revoked. Store
// failures are returned as-is so callers can tell a rejection from an outage.
func (s *Service) Validate(ctx context.Context, envelope string) (*Resolved, error) {
	claims, err := jwtpkg.Parse(envelope)
	if err != nil {
		return nil, ErrMalformedEnvelope
	}

	rec, err := s.repo.FindValid(ctx, claims.TokenID, s.now())
	if err != nil {
		return nil, fmt.Errorf("token lookup: %w", err)
	}
	if rec == nil {
		return nil, ErrTokenInactive
	}
	return &Resolved{TokenID: rec.ID, UserID: rec.UserID}, nil
}

// Revoke invalidates a token record ahead of its natural expiry.
func (s *Service) Revoke(ctx context.Context, tokenID string) error {
	return s.repo.Revoke(ctx, tokenID)
}
