package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/logging"
	"cricket-data-service/internal/metrics"
)

const (
	defaultRetryAttempts   = 3
	defaultInitialInterval = 200 * time.Millisecond
)

// retryingProvider wraps a MatchProvider with retry/backoff on list
// fetches. Live and info fetches pass through untouched: a failed live
// fetch waits for the next poll tick, and a failed info fetch surfaces to
// the caller without automatic retry.
type retryingProvider struct {
	inner       MatchProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	name        string
	maxAttempts int
	interval    time.Duration
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/interval are <= 0, defaults are used.
func NewRetryingProvider(inner MatchProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, interval time.Duration) MatchProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if interval <= 0 {
		interval = defaultInitialInterval
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		metrics:     recorder,
		name:        name,
		maxAttempts: maxAttempts,
		interval:    interval,
	}
}

// Close releases resources held by the wrapped provider, such as the rate
// limiter's pacing ticker.
func (r *retryingProvider) Close() {
	if c, ok := r.inner.(interface{ Close() }); ok {
		c.Close()
	}
}

func (r *retryingProvider) FetchMatchList(ctx context.Context) ([]matches.Match, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.interval
	bo.RandomizationFactor = 0.2

	policy := backoff.WithContext(backoff.WithMaxRetries(bo, uint64(r.maxAttempts-1)), ctx)

	var result []matches.Match
	attempt := 0
	err := backoff.Retry(func() error {
		attempt++
		start := time.Now()
		list, fetchErr := r.inner.FetchMatchList(ctx)
		r.record(start, fetchErr)
		if fetchErr != nil {
			r.logWarn(ctx, "match list fetch retry",
				"attempt", attempt, "max_attempts", r.maxAttempts, "err", fetchErr)
			return fetchErr
		}
		result = list
		return nil
	}, policy)
	if err != nil {
		r.logWarn(ctx, "match list fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return result, nil
}

func (r *retryingProvider) FetchLiveMatch(ctx context.Context, matchID string) (live.Document, error) {
	start := time.Now()
	doc, err := r.inner.FetchLiveMatch(ctx, matchID)
	r.record(start, err)
	return doc, err
}

func (r *retryingProvider) FetchMatchInfo(ctx context.Context, matchID string) (info.Bundle, error) {
	start := time.Now()
	bundle, err := r.inner.FetchMatchInfo(ctx, matchID)
	r.record(start, err)
	return bundle, err
}

func (r *retryingProvider) record(start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.RecordProviderAttempt(r.name, time.Since(start), err)
	if rl, ok := AsRateLimitError(err); ok {
		r.metrics.RecordRateLimit(r.name, rl.RetryAfter)
	}
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
