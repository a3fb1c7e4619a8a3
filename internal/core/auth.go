package core

import (
	"context"

	"github.com/go-sessiongate/sessiongate/internal/models"
)

// UserDirectory resolves an email address to a stored user record.
// Implementations must be idempotent and safe for concurrent use.
type UserDirectory interface {
	// FindByEmail returns the user for the given email, or
	// directory.ErrUserNotFound when no such account exists.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Name() string
}

// AuthProvider is the contract the login boundary programs against.
// A provider composes the user directory, the credential verifier,
// the token issuer and the rate limiter gate behind one surface.
type AuthProvider interface {
	Login(ctx context.Context, email, password, origin string) (*LoginResult, error)
	IsAuthenticated(ctx context.Context, tokenString string) bool
	CurrentUser(ctx context.Context, tokenString string) (*models.User, error)
	Name() string
}
