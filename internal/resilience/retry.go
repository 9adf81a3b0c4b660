// Package resilience retries operations that fail for transient reasons,
// such as a clone interrupted by a flaky network.
package resilience

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"
)

// Policy defines the retry behavior for an operation.
type Policy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int

	// BaseDelay is the delay before the first retry. It doubles on every
	// retry up to MaxDelay.
	BaseDelay time.Duration
	MaxDelay  time.Duration

	// UseJitter scales each delay by a random factor in [0.5, 1.5).
	UseJitter bool

	// Retryable decides whether err is worth another attempt. Nil means
	// every error except permanent and context errors.
	Retryable func(err error) bool

	// OnRetry is called before each retry. Optional.
	OnRetry func(attempt int, err error, delay time.Duration)
}

// Retry runs fn until it succeeds, returns a non-retryable error, or the
// retries are exhausted. The last error is returned.
func Retry(ctx context.Context, policy Policy, fn func(ctx context.Context) error) error {
	var lastErr error
	attempts := policy.MaxRetries + 1

	for attempt := range attempts {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !policy.retryable(err) {
			return unwrapPermanent(err)
		}
		if attempt == attempts-1 {
			break
		}

		delay := CalculateBackoff(attempt, policy.BaseDelay, policy.MaxDelay, policy.UseJitter)
		if policy.OnRetry != nil {
			policy.OnRetry(attempt+1, err, delay)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

func (p Policy) retryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var perm *permanentError
	if errors.As(err, &perm) {
		return false
	}
	if p.Retryable != nil {
		return p.Retryable(err)
	}
	return true
}

// CalculateBackoff returns baseDelay * 2^attempt, capped at maxDelay.
func CalculateBackoff(attempt int, baseDelay, maxDelay time.Duration, useJitter bool) time.Duration {
	if baseDelay <= 0 {
		baseDelay = 100 * time.Millisecond
	}
	if maxDelay <= 0 {
		maxDelay = 30 * time.Second
	}

	delay := baseDelay
	for range attempt {
		delay *= 2
		if delay > maxDelay {
			delay = maxDelay
			break
		}
	}

	if useJitter {
		delay = time.Duration(float64(delay) * (0.5 + rand.Float64()))
	}
	return min(delay, maxDelay)
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

// Permanent marks err as not worth retrying. Retry returns the
// underlying error.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err: err}
}

func unwrapPermanent(err error) error {
	var perm *permanentError
	if errors.As(err, &perm) {
		return perm.err
	}
	return err
}
