// Package retry provides a reusable exponential-backoff retry policy,
// applied at the LLM and paper-search client boundaries.
package retry

import (
	"context"
	"time"
)

// Default policy values, matching the clients' 1s/2s/4s schedule.
const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = time.Second
	DefaultMultiplier  = 2
)

// Policy describes how an operation is retried. The zero value is not
// usable; construct with DefaultPolicy or fill all fields.
type Policy struct {
	// MaxAttempts is the total number of tries, including the first.
	MaxAttempts int

	// BaseDelay is the sleep after the first failure.
	BaseDelay time.Duration

	// Multiplier scales the delay after each failed attempt.
	Multiplier int
}

// DefaultPolicy returns the standard 3-attempt exponential policy.
func DefaultPolicy() Policy {
	return Policy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
		Multiplier:  DefaultMultiplier,
	}
}

// Do runs fn until it succeeds, the attempts are exhausted, or the
// context is cancelled. The last error is returned after exhaustion;
// a context error is returned as-is when cancellation interrupts a
// backoff sleep.
func (p Policy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	delay := p.BaseDelay
	var lastErr error

	for attempt := 0; attempt < p.MaxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= time.Duration(p.Multiplier)
		}

		if lastErr = fn(ctx); lastErr == nil {
			return nil
		}
	}

	return lastErr
}
