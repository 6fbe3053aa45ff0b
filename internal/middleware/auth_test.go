package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/atomtask/core/internal/models"
	"github.com/atomtask/core/internal/modules/auth/token"
	jwtpkg "github.com/atomtask/core/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	jwtpkg.SetSecret("test-secret")
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type memTokenRepository struct {
	mu      sync.Mutex
	records map[string]*models.AccessTokenModel
	failing error
}

func newMemTokenRepository() *memTokenRepository {
	return &memTokenRepository{records: make(map[string]*models.AccessTokenModel)}
}

func (r *memTokenRepository) Create(_ context.Context, t *models.AccessTokenModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.records[t.ID] = &cp
	return nil
}

func (r *memTokenRepository) FindValid(_ context.Context, id string, now time.Time) (*models.AccessTokenModel, error) {
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

func (r *memTokenRepository) Revoke(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.records[id]
	if !ok {
		return token.ErrTokenNotFound
	}
	t.Revoked = true
	return nil
}

func (r *memTokenRepository) DeleteInactiveBefore(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type captured struct {
	userID  string
	tokenID string
}

func newAuthRouter(tokens *token.Service) (*gin.Engine, *captured) {
	r := gin.New()
	got := &captured{}
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		got.userID = CurrentUserID(c)
		got.tokenID = CurrentTokenID(c)
		c.Status(http.StatusOK)
	})
	return r, got
}

func doGet(r *gin.Engine, target, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMissingCredential(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected", "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMalformedCredential(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected", "Bearer garbage")
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthValidCredential(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	envelope, err := tokens.Issue(context.Background(), "u1")
	require.NoError(t, err)

	r, got := newAuthRouter(tokens)

	w := doGet(r, "/protected", "Bearer "+envelope)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "u1", got.userID)
	require.NotEmpty(t, got.tokenID)
}

func TestAuthRawHeaderWithoutBearer(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	envelope, err := tokens.Issue(context.Background(), "u1")
	require.NoError(t, err)

	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected", envelope)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthQueryFallback(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	envelope, err := tokens.Issue(context.Background(), "u1")
	require.NoError(t, err)

	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected?token="+envelope, "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRevokedCredential(t *testing.T) {
	tokens := token.NewService(newMemTokenRepository())
	envelope, err := tokens.Issue(context.Background(), "u1")
	require.NoError(t, err)

	res, err := tokens.Validate(context.Background(), envelope)
	require.NoError(t, err)
	require.NoError(t, tokens.Revoke(context.Background(), res.TokenID))

	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected", "Bearer "+envelope)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthStoreFailure(t *testing.T) {
	repo := newMemTokenRepository()
	tokens := token.NewService(repo)
	envelope, err := tokens.Issue(context.Background(), "u1")
	require.NoError(t, err)

	repo.failing = context.DeadlineExceeded

	r, _ := newAuthRouter(tokens)

	w := doGet(r, "/protected", "Bearer "+envelope)
	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestNormalizeToken(t *testing.T) {
	for raw, want := range map[string]string{
		"":               "",
		"   ":            "",
		"abc":            "abc",
		"Bearer abc":     "abc",
		"bearer abc":     "abc",
		"  Bearer abc  ": "abc",
	} {
		require.Equal(t, want, NormalizeToken(raw), "raw %q", raw)
	}
}
