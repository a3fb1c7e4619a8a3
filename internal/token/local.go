package token

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-sessiongate/sessiongate/internal/config"
	"github.com/go-sessiongate/sessiongate/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Compile-time interface check.
var _ core.TokenProvider = (*LocalTokenProvider)(nil)

// LocalTokenProvider mints and validates session JWTs with a local
// HMAC signing secret. Tokens are stateless: the server keeps no
// session table, validity is decided from the signature and the exp
// claim alone.
type LocalTokenProvider struct {
	config *config.Config
}

// NewLocalTokenProvider creates a new local token provider
func NewLocalTokenProvider(cfg *config.Config) *LocalTokenProvider {
	return &LocalTokenProvider{config: cfg}
}

// Issue creates a signed session token carrying the account email and
// an expiry one lifetime after issuance. Fails with ErrMissingSecret
// when no signing secret is configured.
func (p *LocalTokenProvider) Issue(ctx context.Context, email string) (*core.TokenResult, error) {
	if p.config.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	now := time.Now()
	expiresAt := now.Add(p.config.SessionLifetime)
	claims := jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   expiresAt.Unix(),
		"iss":   p.config.BaseURL,
		"jti":   uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(p.config.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}

	return &core.TokenResult{
		TokenString: tokenString,
		ExpiresAt:   expiresAt,
		Success:     true,
	}, nil
}

// Validate verifies a session token and returns its claims. Malformed
// encoding and signature mismatch map to ErrInvalidToken, expiry to
// ErrExpiredToken; callers collapse both to "no active session".
func (p *LocalTokenProvider) Validate(
	ctx context.Context,
	tokenString string,
) (*core.SessionClaims, error) {
	if p.config.JWTSecret == "" {
		return nil, ErrMissingSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(p.config.JWTSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	result := &core.SessionClaims{
		Email:     email,
		ExpiresAt: time.Unix(int64(exp), 0),
	}
	if iat, ok := claims["iat"].(float64); ok {
		result.IssuedAt = time.Unix(int64(iat), 0)
	}
	return result, nil
}

// Lifetime returns the fixed token lifetime.
func (p *LocalTokenProvider) Lifetime() time.Duration {
	return p.config.SessionLifetime
}

// Name returns provider name for logging
func (p *LocalTokenProvider) Name() string {
	return "local"
}
