package core

import (
	"github.com/go-sessiongate/sessiongate/internal/models"
)

// LoginStatus is the terminal state of a login attempt.
type LoginStatus string

const (
	LoginSucceeded      LoginStatus = "succeeded"
	LoginFailed         LoginStatus = "failed"
	LoginBlockedOrigin  LoginStatus = "blocked_origin"
	LoginBlockedAccount LoginStatus = "blocked_account"
)

// LoginResult holds the outcome of a login attempt. It is transient
// and never persisted.
type LoginResult struct {
	Status LoginStatus

	// Token is set only on LoginSucceeded; the boundary stores it as
	// the session cookie.
	Token *TokenResult

	// User is set only on LoginSucceeded, already redacted.
	User *models.User

	// RetryAfterSeconds is set on the blocked statuses and carries the
	// time until the offending window resets.
	RetryAfterSeconds int
}

// Success reports whether the attempt reached the succeeded state.
func (r *LoginResult) Success() bool {
	return r.Status == LoginSucceeded
}

// Blocked reports whether either limiter class denied the attempt.
func (r *LoginResult) Blocked() bool {
	return r.Status == LoginBlockedOrigin || r.Status == LoginBlockedAccount
}
