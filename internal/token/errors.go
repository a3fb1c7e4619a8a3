package token

import "errors"

var (
	// ErrMissingSecret indicates the signing secret is not configured.
	// This is a fatal configuration error: the provider refuses to
	// issue or validate tokens rather than fall back to weaker ones.
	ErrMissingSecret = errors.New("signing secret is not configured")

	// ErrTokenGeneration indicates token signing failed
	ErrTokenGeneration = errors.New("failed to generate token")

	// ErrInvalidToken indicates the token is malformed or its
	// signature does not verify
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken indicates the token has expired
	ErrExpiredToken = errors.New("token expired")
)
