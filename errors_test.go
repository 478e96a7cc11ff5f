package arlatin

import (
	"errors"
	"testing"
)

func TestCacheError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &CacheError{Message: "redis unavailable", Cause: cause}

	if err.Error() != "cache error: redis unavailable: connection refused" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if err.Unwrap() != cause {
		t.Error("Unwrap() should return the cause")
	}

	// Without cause
	err2 := &CacheError{Message: "miss"}
	if err2.Error() != "cache error: miss" {
		t.Errorf("unexpected error message: %s", err2.Error())
	}
}

func TestProcessorError(t *testing.T) {
	err := &ProcessorError{Message: "parse failed", ContentType: "html"}

	if err.Error() != "processor error (html): parse failed" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestProviderError(t *testing.T) {
	err := &ProviderError{Message: "rate limited", Retryable: true}

	if err.Error() != "provider error: rate limited" {
		t.Errorf("unexpected error message: %s", err.Error())
	}

	if !err.Retryable {
		t.Error("error should be retryable")
	}
}

func TestCountMismatchError(t *testing.T) {
	err := &CountMismatchError{Expected: 3, Got: 2}

	if err.Error() != "suggestion count mismatch: expected 3, got 2" {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}

func TestErrorsAs(t *testing.T) {
	var err error = &ProviderError{Message: "boom", Retryable: true}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		t.Fatal("errors.As should match *ProviderError")
	}
	if !pe.Retryable {
		t.Error("retryable flag lost through errors.As")
	}
}
