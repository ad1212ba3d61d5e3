package providers

import (
	"context"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/domain/matches"
)

// ListProvider fetches the normalized match list.
type ListProvider interface {
	FetchMatchList(ctx context.Context) ([]matches.Match, error)
}

// LiveProvider fetches the current live document for one match. The
// document stays in wire shape so callers can shallow-merge partial
// updates over prior state.
type LiveProvider interface {
	FetchLiveMatch(ctx context.Context, matchID string) (live.Document, error)
}

// InfoProvider fetches the static reference bundle for one match.
type InfoProvider interface {
	FetchMatchInfo(ctx context.Context, matchID string) (info.Bundle, error)
}

// MatchProvider combines all upstream capabilities.
type MatchProvider interface {
	ListProvider
	LiveProvider
	InfoProvider
}
