package middleware

import (
	"errors"
	"strings"

	"github.com/atomtask/core/internal/modules/auth/token"
	"github.com/atomtask/core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyUserID  = "user_id"
	ContextKeyTokenID = "token_id"
)

// Auth returns a middleware that enforces access-token authentication.
// Outcomes are kept distinct: no credential at all is 401, anything
// presented but not usable (bad signature, malformed, expired, revoked)
// is 403. Store failures surface as 500 rather than masquerading as a
// rejection.
func Auth(tokens *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := extractToken(c)
		if raw == "" {
			response.Unauthorized(c)
			return
		}

		res, err := tokens.Validate(c.Request.Context(), raw)
		if err != nil {
			if errors.Is(err, token.ErrMalformedEnvelope) || errors.Is(err, token.ErrTokenInactive) {
				response.Forbidden(c)
				return
			}
			response.InternalError(c, err)
			return
		}

		c.Set(ContextKeyUserID, res.UserID)
		c.Set(ContextKeyTokenID, res.TokenID)
		c.Next()
	}
}

// CurrentUserID extracts the authenticated user ID from context.
func CurrentUserID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyUserID)
	id, _ := v.(string)
	return id
}

// CurrentTokenID extracts the authenticated token record ID from context.
func CurrentTokenID(c *gin.Context) string {
	v, _ := c.Get(ContextKeyTokenID)
	id, _ := v.(string)
	return id
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	return NormalizeToken(c.Query("token"))
}

// NormalizeToken trims spaces and strips the optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
