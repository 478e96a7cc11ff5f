package arlatin

import (
	"context"
	"sync"
	"time"
)

// RateLimiter is a token bucket for pacing suggestion requests. The
// bucket starts full, drains one token per acquisition and refills
// continuously at the configured per-minute rate.
type RateLimiter struct {
	mu         sync.Mutex
	tokens     float64
	maxTokens  float64
	refillRate float64 // tokens per second
	lastRefill time.Time
}

// RateLimitConfig configures the token bucket.
type RateLimitConfig struct {
	RequestsPerMinute int // Sustained rate, defaults to 60
	BurstSize         int // Bucket capacity, defaults to RequestsPerMinute
}

// NewRateLimiter creates a limiter with a full bucket.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	rpm := float64(cfg.RequestsPerMinute)
	if rpm <= 0 {
		rpm = 60
	}

	burst := float64(cfg.BurstSize)
	if burst <= 0 {
		burst = rpm
	}

	return &RateLimiter{
		tokens:     burst,
		maxTokens:  burst,
		refillRate: rpm / 60.0,
		lastRefill: time.Now(),
	}
}

// Wait blocks until a token is acquired or ctx is done. Between attempts
// it sleeps one refill interval, the time at which a token is guaranteed
// to have accrued.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		if r.TryAcquire() {
			return nil
		}

		interval := time.Duration(float64(time.Second) / r.refillRate)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}

// TryAcquire takes a token if one is available, without blocking.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.refill()

	if r.tokens >= 1 {
		r.tokens--
		return true
	}
	return false
}

// refill credits tokens for the time since the last refill, up to the
// bucket capacity. Callers must hold mu.
func (r *RateLimiter) refill() {
	now := time.Now()
	r.tokens += now.Sub(r.lastRefill).Seconds() * r.refillRate
	r.lastRefill = now

	if r.tokens > r.maxTokens {
		r.tokens = r.maxTokens
	}
}

// Available reports the current token count after crediting refills.
func (r *RateLimiter) Available() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refill()
	return r.tokens
}

// RateLimitedProvider paces calls to a SuggestionProvider, keeping bulk
// dictionary-suggestion runs inside the backend's request quota.
type RateLimitedProvider struct {
	provider SuggestionProvider
	limiter  *RateLimiter
}

// NewRateLimitedProvider wraps provider with a token-bucket limiter.
func NewRateLimitedProvider(provider SuggestionProvider, cfg RateLimitConfig) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  NewRateLimiter(cfg),
	}
}

// Suggest acquires a token, then delegates to the wrapped provider.
func (p *RateLimitedProvider) Suggest(ctx context.Context, req SuggestRequest) ([]string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, &ProviderError{
			Message:   "rate limit wait cancelled",
			Cause:     err,
			Retryable: false,
		}
	}

	return p.provider.Suggest(ctx, req)
}

// Limiter exposes the underlying bucket for inspection.
func (p *RateLimitedProvider) Limiter() *RateLimiter {
	return p.limiter
}
