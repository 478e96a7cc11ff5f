package arlatin

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWithRetry_SucceedsFirstTry(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" || calls != 1 {
		t.Errorf("result = %q, calls = %d", result, calls)
	}
}

func TestWithRetry_RetriesRetryableErrors(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	result, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		if calls < 3 {
			return "", &ProviderError{Message: "try again", Retryable: true}
		}
		return "ok", nil
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "ok" || calls != 3 {
		t.Errorf("result = %q, calls = %d", result, calls)
	}
}

func TestWithRetry_StopsOnNonRetryable(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		return "", &ProviderError{Message: "bad request", Retryable: false}
	})

	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("non-retryable error retried %d times", calls)
	}
}

func TestWithRetry_ExhaustsRetries(t *testing.T) {
	cfg := RetryConfig{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	_, err := WithRetry(context.Background(), cfg, func() (string, error) {
		calls++
		return "", &ProviderError{Message: "flaky", Retryable: true}
	})

	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if calls != 3 { // initial attempt + 2 retries
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestWithRetry_ContextCancelled(t *testing.T) {
	cfg := DefaultRetryConfig()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := WithRetry(ctx, cfg, func() (string, error) {
		return "", &ProviderError{Message: "never", Retryable: true}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestIsRetryable(t *testing.T) {
	if IsRetryable(nil) {
		t.Error("nil is not retryable")
	}
	if !IsRetryable(&ProviderError{Retryable: true}) {
		t.Error("retryable provider error should be retryable")
	}
	if IsRetryable(&ProviderError{Retryable: false}) {
		t.Error("non-retryable provider error")
	}
	if IsRetryable(errors.New("random")) {
		t.Error("unknown errors are not retryable")
	}
	if IsRetryable(context.DeadlineExceeded) {
		t.Error("context errors are not retryable")
	}
}

type failingProvider struct {
	failures int
	calls    int
}

func (p *failingProvider) Suggest(ctx context.Context, req SuggestRequest) ([]string, error) {
	p.calls++
	if p.calls <= p.failures {
		return nil, &ProviderError{Message: "transient", Retryable: true}
	}
	return []string{"Sorour"}, nil
}

func TestRetryableProvider(t *testing.T) {
	inner := &failingProvider{failures: 2}
	cfg := RetryConfig{MaxRetries: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond}
	p := NewRetryableProvider(inner, cfg)

	results, err := p.Suggest(context.Background(), SuggestRequest{Names: []string{"سرور"}})
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	if len(results) != 1 || results[0] != "Sorour" {
		t.Errorf("results = %v", results)
	}
	if inner.calls != 3 {
		t.Errorf("inner calls = %d, want 3", inner.calls)
	}
}
