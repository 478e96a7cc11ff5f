package arlatin

import (
	"context"
	"errors"
	"time"
)

// RetryConfig controls how suggestion calls are retried. Delays double
// per attempt from BaseDelay, capped at MaxDelay.
type RetryConfig struct {
	MaxRetries int           // Attempts after the first call
	BaseDelay  time.Duration // Delay before the first retry
	MaxDelay   time.Duration // Ceiling on the backoff delay
}

// DefaultRetryConfig returns the retry policy used when callers have no
// opinion: three retries backing off from one second.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   30 * time.Second,
	}
}

// RetryFunc is a retriable operation.
type RetryFunc[T any] func() (T, error)

// WithRetry runs fn until it succeeds, fails with a non-retryable error,
// exhausts cfg.MaxRetries, or ctx is done. Cancellation is honored both
// between attempts and while sleeping.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var lastErr error
	var zero T

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		default:
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}

		lastErr = err

		if !IsRetryable(err) {
			return zero, err
		}

		if attempt == cfg.MaxRetries {
			break
		}

		delay := cfg.BaseDelay * time.Duration(1<<attempt)
		if delay > cfg.MaxDelay {
			delay = cfg.MaxDelay
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delay):
		}
	}

	return zero, lastErr
}

// IsRetryable reports whether err is worth another attempt. Only a
// ProviderError that marks itself retryable qualifies; context errors
// and everything else fail immediately.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var providerErr *ProviderError
	if errors.As(err, &providerErr) {
		return providerErr.Retryable
	}

	return false
}

// RetryableProvider retries a SuggestionProvider's transient failures,
// typically rate limits and timeouts from the OpenAI backend.
type RetryableProvider struct {
	provider SuggestionProvider
	config   RetryConfig
}

// NewRetryableProvider wraps provider with the given retry policy.
func NewRetryableProvider(provider SuggestionProvider, cfg RetryConfig) *RetryableProvider {
	return &RetryableProvider{
		provider: provider,
		config:   cfg,
	}
}

// Suggest delegates to the wrapped provider under the retry policy.
func (p *RetryableProvider) Suggest(ctx context.Context, req SuggestRequest) ([]string, error) {
	return WithRetry(ctx, p.config, func() ([]string, error) {
		return p.provider.Suggest(ctx, req)
	})
}
