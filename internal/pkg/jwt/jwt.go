package jwt

import (
	"errors"
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
)

// secret is injected at process start via SetSecret. There is deliberately no
// built-in default: the app refuses to boot without a configured secret.
var secret []byte

// SetSecret configures the JWT signing secret (call on startup).
func SetSecret(s string) {
	secret = []byte(s)
}

// Claims is the JWT payload. Only the access-token record id is exposed to
// the client; the record itself stays server-side.
type Claims struct {
	TokenID string `json:"tid"`
	jwtlib.RegisteredClaims
}

// Sign wraps a token record id in a signed envelope.
func Sign(tokenID string, expiresAt time.Time) (string, error) {
	claims := Claims{
		TokenID: tokenID,
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(expiresAt),
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
		},
	}
	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// Parse verifies an envelope and returns the claims. It fails closed: a bad
// signature, unexpected algorithm or missing token id all reject.
func Parse(tokenStr string) (*Claims, error) {
	token, err := jwtlib.ParseWithClaims(tokenStr, &Claims{}, func(t *jwtlib.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenID == "" {
		return nil, errors.New("token id claim missing")
	}
	return claims, nil
}
