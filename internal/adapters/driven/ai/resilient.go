package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
	"github.com/docsage-labs/docsage-cli/internal/core/ports/driven"
	"github.com/docsage-labs/docsage-cli/internal/logger"
	"github.com/docsage-labs/docsage-cli/internal/retry"
)

// Resilient wraps an LLMService with client-side rate limiting and
// retry with exponential backoff. Calls block until the limiter grants
// a token, so bursts above the configured budget queue instead of
// failing.
type Resilient struct {
	inner   driven.LLMService
	limiter *rate.Limiter
	policy  retry.Policy
}

var _ driven.LLMService = (*Resilient)(nil)

// NewResilient wraps svc with a callsPerMinute budget and the default
// retry policy. A non-positive budget falls back to one call per
// minute.
func NewResilient(svc driven.LLMService, callsPerMinute int) *Resilient {
	if callsPerMinute <= 0 {
		callsPerMinute = 1
	}

	return &Resilient{
		inner:   svc,
		limiter: rate.NewLimiter(rate.Limit(float64(callsPerMinute)/60.0), callsPerMinute),
		policy:  retry.DefaultPolicy(),
	}
}

// Generate waits for rate-limit clearance, then delegates to the
// wrapped service, retrying transient failures. Exhausted retries are
// reported as a provider error.
func (r *Resilient) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	if !r.limiter.Allow() {
		logger.Debug("rate limit reached, waiting for next slot")
		if err := r.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
	}

	var result string
	err := r.policy.Do(ctx, func(ctx context.Context) error {
		var genErr error
		result, genErr = r.inner.Generate(ctx, prompt, opts)
		if genErr != nil {
			logger.Debug("model call failed, will retry: %v", genErr)
		}
		return genErr
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrProvider, err)
	}

	return result, nil
}

// ModelName returns the wrapped service's model identifier.
func (r *Resilient) ModelName() string {
	return r.inner.ModelName()
}

// Ping validates connectivity of the wrapped service. Pings are not
// rate limited.
func (r *Resilient) Ping(ctx context.Context) error {
	return r.inner.Ping(ctx)
}

// Close releases resources held by the wrapped service.
func (r *Resilient) Close() error {
	return r.inner.Close()
}
