package providers

import (
	"context"
	"log/slog"
	"time"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/logging"
)

// rateLimitedProvider wraps a MatchProvider and enforces a minimum interval
// between full list fetches to avoid hammering the upstream. Live and info
// calls pass through; their cadence is already bounded by the live poll
// interval and the fetch-once policy.
type rateLimitedProvider struct {
	next   MatchProvider
	ticker *time.Ticker
	logger *slog.Logger
}

// NewRateLimitedProvider returns a MatchProvider that spaces list calls by
// at least the given interval. List calls block until the interval elapses.
func NewRateLimitedProvider(next MatchProvider, interval time.Duration, logger *slog.Logger) MatchProvider {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &rateLimitedProvider{
		next:   next,
		ticker: time.NewTicker(interval),
		logger: logger,
	}
}

func (p *rateLimitedProvider) FetchMatchList(ctx context.Context) ([]matches.Match, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logging.Warn(p.logger, "rate-limited fetch canceled", slog.String("provider", "rate-limited"))
		return nil, ctx.Err()
	case <-p.ticker.C:
	}
	return p.next.FetchMatchList(ctx)
}

func (p *rateLimitedProvider) FetchLiveMatch(ctx context.Context, matchID string) (live.Document, error) {
	if p == nil || p.next == nil {
		return nil, ErrProviderUnavailable
	}
	return p.next.FetchLiveMatch(ctx, matchID)
}

func (p *rateLimitedProvider) FetchMatchInfo(ctx context.Context, matchID string) (info.Bundle, error) {
	if p == nil || p.next == nil {
		return info.Bundle{}, ErrProviderUnavailable
	}
	return p.next.FetchMatchInfo(ctx, matchID)
}

// Close stops the pacing ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}
