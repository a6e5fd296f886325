package providers

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

func TestRateLimitErrorMessage(t *testing.T) {
	err := &RateLimitError{StatusCode: 429, RetryAfter: 2 * time.Second}
	if got := err.Error(); got != "provider rate limited (status=429)" {
		t.Errorf("Error() = %q", got)
	}

	err = &RateLimitError{Message: "slow down"}
	if got := err.Error(); got != "slow down" {
		t.Errorf("Error() = %q", got)
	}
}

func TestAsRateLimitErrorUnwraps(t *testing.T) {
	inner := &RateLimitError{StatusCode: 429}
	wrapped := fmt.Errorf("fetch players: %w", inner)

	got, ok := AsRateLimitError(wrapped)
	if !ok || got != inner {
		t.Fatal("expected to unwrap rate limit error")
	}

	if _, ok := AsRateLimitError(errors.New("other")); ok {
		t.Fatal("unexpected match for unrelated error")
	}
}

func TestUpstreamErrorMessage(t *testing.T) {
	err := &UpstreamError{StatusCode: 502, Message: "bad gateway"}
	if got := err.Error(); got != "bad gateway (status=502)" {
		t.Errorf("Error() = %q", got)
	}

	err = &UpstreamError{StatusCode: 500}
	if got := err.Error(); got != "provider request failed (status=500)" {
		t.Errorf("Error() = %q", got)
	}
}

func TestExhaustedErrorWrapsLast(t *testing.T) {
	last := &RateLimitError{StatusCode: 429}
	err := &ExhaustedError{Provider: "balldontlie", Attempts: 3, Last: last}

	if !IsExhausted(err) {
		t.Fatal("expected IsExhausted")
	}
	if IsExhausted(last) {
		t.Fatal("rate limit error alone is not exhaustion")
	}
	if got, ok := AsRateLimitError(err); !ok || got != last {
		t.Fatal("expected exhausted error to expose the wrapped rate limit error")
	}
	if err.Error() != "rate limit exceeded after 3 attempts" {
		t.Errorf("Error() = %q", err.Error())
	}
}
