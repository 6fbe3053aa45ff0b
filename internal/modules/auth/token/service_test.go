package token

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/atomtask/core/internal/models"
	jwtpkg "github.com/atomtask/core/internal/pkg/jwt"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestMain(m *testing.M) {
	jwtpkg.SetSecret("test-secret")
	os.Exit(m.Run())
}

// memRepository implements Repository in memory with the same predicate
// semantics as the Mongo implementation.
type memRepository struct {
	mu      sync.Mutex
	records map[string]*models.AccessTokenModel
	failing error
}

func newMemRepository() *memRepository {
	return &memRepository{records: make(map[string]*models.AccessTokenModel)}
}

func (r *memRepository) Create(_ context.Context, t *models.AccessTokenModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return r.failing
	}
	if _, ok := r.records[t.ID]; ok {
		return errors.New("duplicate token id")
	}
	cp := *t
	r.records[t.ID] = &cp
	return nil
}

func (r *memRepository) FindValid(_ context.Context, id string, now time.Time) (*models.AccessTokenModel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failing != nil {
		return nil, r.failing
	}
	t, ok := r.records[id]
	if !ok || t.Revoked || !t.ExpiresAt.After(now) {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *memRepository) Revoke(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.records[id]
	if !ok {
		return ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (r *memRepository) DeleteInactiveBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var deleted int64
	for id, t := range r.records {
		if t.Revoked || t.ExpiresAt.Before(cutoff) {
			delete(r.records, id)
			deleted++
		}
	}
	return deleted, nil
}

func newTestService(repo *memRepository, base time.Time) *Service {
	svc := NewService(repo)
	svc.now = func() time.Time { return base }
	return svc
}

func TestIssueThenValidate(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	envelope, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, envelope)

	res, err := svc.Validate(context.Background(), envelope)
	require.NoError(t, err)
	require.Equal(t, "u1", res.UserID)
	require.NotEmpty(t, res.TokenID)
}

func TestIssueExpiryIsOneCalendarYear(t *testing.T) {
	repo := newMemRepository()
	base := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	svc := newTestService(repo, base)

	_, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)

	require.Len(t, repo.records, 1)
	for _, rec := range repo.records {
		require.True(t, rec.ExpiresAt.Equal(base.AddDate(1, 0, 0)))
		require.False(t, rec.Revoked)
		require.Equal(t, "u1", rec.UserID)
	}
}

func TestValidateExpiryBoundary(t *testing.T) {
	repo := newMemRepository()
	base := time.Now()
	svc := newTestService(repo, base)

	envelope, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)

	expiry := base.AddDate(1, 0, 0)

	svc.now = func() time.Time { return expiry.Add(-time.Second) }
	_, err = svc.Validate(context.Background(), envelope)
	require.NoError(t, err)

	svc.now = func() time.Time { return expiry.Add(time.Second) }
	_, err = svc.Validate(context.Background(), envelope)
	require.ErrorIs(t, err, ErrTokenInactive)

	// Strict inequality: a token is already invalid at the exact expiry
	// instant.
	svc.now = func() time.Time { return expiry }
	_, err = svc.Validate(context.Background(), envelope)
	require.ErrorIs(t, err, ErrTokenInactive)
}

func TestValidateRevoked(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	envelope, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)

	res, err := svc.Validate(context.Background(), envelope)
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(context.Background(), res.TokenID))

	_, err = svc.Validate(context.Background(), envelope)
	require.ErrorIs(t, err, ErrTokenInactive)
}

func TestIssueTwiceYieldsIndependentTokens(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	first, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)
	second, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	resA, err := svc.Validate(context.Background(), first)
	require.NoError(t, err)
	resB, err := svc.Validate(context.Background(), second)
	require.NoError(t, err)
	require.NotEqual(t, resA.TokenID, resB.TokenID)

	// Revoking one leaves the other valid.
	require.NoError(t, svc.Revoke(context.Background(), resA.TokenID))
	_, err = svc.Validate(context.Background(), first)
	require.ErrorIs(t, err, ErrTokenInactive)
	_, err = svc.Validate(context.Background(), second)
	require.NoError(t, err)
}

func TestValidateMalformedEnvelopes(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	envelope, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)

	// Unsigned token with the expected claim shape.
	unsigned, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{"tid": "whatever"}).
		SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, tc := range []string{
		"",
		"not-a-jwt",
		"a.b.c",
		envelope + "x",
		unsigned,
	} {
		_, err := svc.Validate(context.Background(), tc)
		require.ErrorIs(t, err, ErrMalformedEnvelope, "envelope %q", tc)
	}
}

func TestValidateStoreErrorIsNotARejection(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	envelope, err := svc.Issue(context.Background(), "u1")
	require.NoError(t, err)

	repo.failing = errors.New("store unreachable")
	_, err = svc.Validate(context.Background(), envelope)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMalformedEnvelope)
	require.NotErrorIs(t, err, ErrTokenInactive)
}

func TestRevokeUnknownToken(t *testing.T) {
	repo := newMemRepository()
	svc := newTestService(repo, time.Now())

	err := svc.Revoke(context.Background(), "nope")
	require.ErrorIs(t, err, ErrTokenNotFound)
}

func TestSweepJobDeletesOnlyInactive(t *testing.T) {
	repo := newMemRepository()
	base := time.Now()
	svc := newTestService(repo, base)

	repo.records["expired"] = &models.AccessTokenModel{
		ID: "expired", UserID: "u1", ExpiresAt: base.Add(-time.Hour),
	}
	repo.records["revoked"] = &models.AccessTokenModel{
		ID: "revoked", UserID: "u1", Revoked: true, ExpiresAt: base.Add(time.Hour),
	}
	repo.records["active"] = &models.AccessTokenModel{
		ID: "active", UserID: "u1", ExpiresAt: base.Add(time.Hour),
	}

	job := svc.SweepJob(time.Hour, zaptest.NewLogger(t))
	require.Equal(t, SweepJobName, job.Name)
	require.NoError(t, job.Fn(context.Background()))

	require.Len(t, repo.records, 1)
	require.Contains(t, repo.records, "active")
}
