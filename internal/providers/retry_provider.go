package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
	"github.com/ThantZinWinnnnn/team-task/internal/logging"
	"github.com/ThantZinWinnnnn/team-task/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 1 * time.Second
)

// retryingProvider wraps a PlayerProvider and retries rate-limited fetches.
// A server-advertised Retry-After wins; otherwise the delay doubles per
// attempt starting at one second. Other upstream failures pass through
// untouched.
type retryingProvider struct {
	inner       PlayerProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	newBackoff  func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with rate-limit retries.
// If maxAttempts <= 0 the default of 3 is used.
func NewRetryingProvider(inner PlayerProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int) PlayerProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		newBackoff:  newExponentialBackoff,
	}
}

func newExponentialBackoff() backoff.BackOff {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialInterval
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxElapsedTime = 0
	bo.Reset()
	return bo
}

func (r *retryingProvider) FetchPlayers(ctx context.Context, req PageRequest) (players.Page, error) {
	var lastErr error
	bo := r.newBackoff()

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		page, err := r.inner.FetchPlayers(ctx, req)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return page, nil
		}
		lastErr = err

		rlErr, rateLimited := AsRateLimitError(err)
		if !rateLimited {
			return players.Page{}, err
		}
		r.recorder.RecordRateLimit(r.name, rlErr.RetryAfter)

		if attempt == r.maxAttempts {
			break
		}

		delay := rlErr.RetryAfter
		if delay <= 0 {
			delay = bo.NextBackOff()
		}

		r.logWarn(ctx, "provider rate limited, retrying",
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay", delay.String(),
		)

		select {
		case <-ctx.Done():
			return players.Page{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	r.logWarn(ctx, "provider retries exhausted", "attempts", r.maxAttempts, "err", lastErr)
	return players.Page{}, &ExhaustedError{Provider: r.name, Attempts: r.maxAttempts, Last: lastErr}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, r.name))
		logger.Warn(msg, args...)
	}
}
