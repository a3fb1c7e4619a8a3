package ratelimit

import (
	"context"

	"github.com/go-sessiongate/sessiongate/internal/core"
)

// Compile-time interface check.
var _ core.RateGate = (*NoopGate)(nil)

// NoopGate admits every request. Installed when rate limiting is
// disabled or its counter store is not configured; bootstrap logs that
// posture explicitly so losing abuse protection is never silent.
type NoopGate struct{}

// NewNoopGate creates a gate that always allows.
func NewNoopGate() *NoopGate {
	return &NoopGate{}
}

// TryConsume always allows.
func (g *NoopGate) TryConsume(
	ctx context.Context,
	class, identity string,
) (*core.RateDecision, error) {
	return &core.RateDecision{Allowed: true}, nil
}

// Name returns the gate name for logging
func (g *NoopGate) Name() string {
	return "disabled"
}
