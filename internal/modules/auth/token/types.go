package token

import "errors"

// Resolved identifies the active token record behind a verified envelope.
type Resolved struct {
	TokenID string
	UserID  string
}

var (
	// ErrMalformedEnvelope marks an envelope that failed signature or claim
	// verification. The message is deliberately generic: callers must not
	// learn whether a token id exists.
	ErrMalformedEnvelope = errors.New("malformed or unsigned envelope")

	// ErrTokenInactive marks a well-formed envelope whose record is missing,
	// expired or revoked.
	ErrTokenInactive = errors.New("token expired or revoked")

	// ErrTokenNotFound is returned when revoking an unknown token id.
	ErrTokenNotFound = errors.New("token not found")
)
