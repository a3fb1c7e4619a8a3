package core

import (
	"context"
	"time"
)

// RateDecision is the outcome of a single limiter consumption.
type RateDecision struct {
	Allowed   bool
	Remaining int64
	ResetAt   time.Time
}

// RetryAfter returns the whole seconds until the current window
// resets, never less than one.
func (d *RateDecision) RetryAfter(now time.Time) int {
	if !now.Before(d.ResetAt) {
		return 1
	}
	return int(d.ResetAt.Sub(now)/time.Second) + 1
}

// RateGate bounds repeated operations per (class, identity) pair using
// a fixed window counter. TryConsume atomically increments the current
// window and reports whether the call is still within the threshold.
// Implementations must fail open: a backend round-trip error yields an
// allowed decision, never a denial.
type RateGate interface {
	TryConsume(ctx context.Context, class, identity string) (*RateDecision, error)
	Name() string
}
