// Package auth composes the user directory, credential verifier,
// token provider and rate limiter gate into the login/session
// operations behind the core.AuthProvider contract. All collaborators
// are supplied at construction time.
package auth

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-sessiongate/sessiongate/internal/core"
	"github.com/go-sessiongate/sessiongate/internal/directory"
	"github.com/go-sessiongate/sessiongate/internal/metrics"
	"github.com/go-sessiongate/sessiongate/internal/models"
	"github.com/go-sessiongate/sessiongate/internal/password"
	"github.com/go-sessiongate/sessiongate/internal/ratelimit"
)

// Compile-time interface check.
var _ core.AuthProvider = (*Service)(nil)

// Service is the cookie/token backed auth provider.
type Service struct {
	directory core.UserDirectory
	tokens    core.TokenProvider
	gate      core.RateGate
	metrics   metrics.Recorder
}

// NewService creates an auth service with its collaborators injected.
func NewService(
	dir core.UserDirectory,
	tokens core.TokenProvider,
	gate core.RateGate,
	m metrics.Recorder,
) *Service {
	return &Service{
		directory: dir,
		tokens:    tokens,
		gate:      gate,
		metrics:   m,
	}
}

// Login runs one credential check for email against the directory and
// returns a terminal result:
//
//   - the origin gate is consumed first, on every attempt; a denial is
//     terminal and carries a retry hint
//   - an unknown account fails without touching the account gate, so
//     enumeration noise does not burn limiter state
//   - a wrong password for a known account consumes the account gate,
//     which decides between a plain failure and a block
//   - a hash match mints a session token; the boundary stores it as
//     the cookie
//
// Login either fully succeeds (token issued) or fully fails; no state
// needs rollback. A token issuance failure is a configuration error
// and is returned as such, never collapsed into a credential failure.
func (s *Service) Login(
	ctx context.Context,
	email, pass, origin string,
) (*core.LoginResult, error) {
	decision, err := s.gate.TryConsume(ctx, ratelimit.ClassOrigin, origin)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		log.Printf("[auth] Login blocked by origin limiter for %s", origin)
		s.metrics.RecordLogin("blocked_origin")
		s.metrics.RecordRateLimited(ratelimit.ClassOrigin)
		return &core.LoginResult{
			Status:            core.LoginBlockedOrigin,
			RetryAfterSeconds: decision.RetryAfter(time.Now()),
		}, nil
	}

	if pass == "" {
		log.Printf("[auth] Rejected login with empty password")
		s.metrics.RecordLogin("failed")
		return nil, ErrEmptyPassword
	}

	user, err := s.directory.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, directory.ErrUserNotFound) {
			// Account gate deliberately skipped for unknown accounts.
			log.Printf("[auth] Login failed: unknown account")
			s.metrics.RecordLogin("unknown_account")
			return &core.LoginResult{Status: core.LoginFailed}, nil
		}
		return nil, err
	}

	log.Printf("[auth] Comparing password and hash for %s", user.Email)
	if !password.Verify(pass, user.PasswordHash) {
		return s.failKnownAccount(ctx, user)
	}

	result, err := s.tokens.Issue(ctx, user.Email)
	if err != nil {
		// Missing signing secret or signing failure: abort, never
		// proceed without a signed token.
		return nil, err
	}

	log.Printf("[auth] Login succeeded for %s", user.Email)
	s.metrics.RecordLogin("success")
	redacted := user.Redacted()
	return &core.LoginResult{
		Status: core.LoginSucceeded,
		Token:  result,
		User:   &redacted,
	}, nil
}

// failKnownAccount consumes the account-class limiter after a wrong
// password and decides between a plain failure and an account block.
func (s *Service) failKnownAccount(
	ctx context.Context,
	user *models.User,
) (*core.LoginResult, error) {
	decision, err := s.gate.TryConsume(ctx, ratelimit.ClassAccount, "login:"+user.ID)
	if err != nil {
		return nil, err
	}
	if !decision.Allowed {
		log.Printf("[auth] Login blocked by account limiter for %s", user.Email)
		s.metrics.RecordLogin("blocked_account")
		s.metrics.RecordRateLimited(ratelimit.ClassAccount)
		return &core.LoginResult{
			Status:            core.LoginBlockedAccount,
			RetryAfterSeconds: decision.RetryAfter(time.Now()),
		}, nil
	}

	log.Printf("[auth] Login failed: invalid credentials for %s", user.Email)
	s.metrics.RecordLogin("invalid_credentials")
	return &core.LoginResult{Status: core.LoginFailed}, nil
}

// IsAuthenticated reports whether the token is structurally valid and
// unexpired. Every validation failure reads as "not authenticated".
func (s *Service) IsAuthenticated(ctx context.Context, tokenString string) bool {
	if tokenString == "" {
		return false
	}
	_, err := s.tokens.Validate(ctx, tokenString)
	s.metrics.RecordTokenValidation(validationResult(err))
	return err == nil
}

// CurrentUser resolves the account behind a session token and returns
// a redacted copy. The account is re-resolved through the directory,
// so a record removed from the source invalidates its sessions
// transparently.
func (s *Service) CurrentUser(ctx context.Context, tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrNoSession
	}

	claims, err := s.tokens.Validate(ctx, tokenString)
	s.metrics.RecordTokenValidation(validationResult(err))
	if err != nil {
		return nil, ErrNoSession
	}

	user, err := s.directory.FindByEmail(ctx, claims.Email)
	if err != nil {
		return nil, err
	}

	redacted := user.Redacted()
	return &redacted, nil
}

// Name returns provider name for logging
func (s *Service) Name() string {
	return "cookie"
}

func validationResult(err error) string {
	if err == nil {
		return "success"
	}
	return "invalid"
}
