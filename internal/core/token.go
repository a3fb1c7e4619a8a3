package core

import (
	"context"
	"time"
)

// TokenResult is the outcome of a token issuance call.
type TokenResult struct {
	TokenString string
	ExpiresAt   time.Time
	Success     bool
}

// SessionClaims is the decoded content of a validated session token.
type SessionClaims struct {
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenProvider mints and validates signed session tokens. Both
// operations are pure functions of their input plus the process-wide
// signing secret; the secret is read-only after start.
type TokenProvider interface {
	Issue(ctx context.Context, email string) (*TokenResult, error)
	Validate(ctx context.Context, tokenString string) (*SessionClaims, error)
	// Lifetime is the fixed duration from issuance to expiry. The
	// session cookie max-age must match it.
	Lifetime() time.Duration
	Name() string
}
