package matches

import (
	"log/slog"

	domainmatches "cricket-data-service/internal/domain/matches"
	"cricket-data-service/internal/logging"
)

// Store defines the contract for persisting and retrieving matches.
type Store interface {
	ListMatches() []domainmatches.Match
	GetMatch(id string) (domainmatches.Match, bool)
	SetMatches([]domainmatches.Match)
}

// Service coordinates match list operations using a Store.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService constructs a Service with the provided Store.
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Matches returns the current set of matches in upstream order.
func (s *Service) Matches() []domainmatches.Match {
	return s.store.ListMatches()
}

// MatchByID returns a single match if present.
func (s *Service) MatchByID(id string) (domainmatches.Match, bool) {
	return s.store.GetMatch(id)
}

// Classified returns the full list together with its status buckets.
// Matches with an unrecognized status stay in the flat list but join no
// bucket; each call logs them so operators notice new upstream vocabulary.
func (s *Service) Classified() domainmatches.ListResponse {
	all := s.store.ListMatches()
	buckets, unknown := domainmatches.Classify(all)

	for _, m := range unknown {
		logging.Warn(s.logger, "match with unclassified status",
			slog.String(logging.FieldMatchID, m.ID),
			slog.String(logging.FieldStatus, m.StatusNote),
		)
	}

	return domainmatches.ListResponse{
		Matches:   all,
		Live:      buckets.Live,
		Upcoming:  buckets.Upcoming,
		Completed: buckets.Completed,
	}
}

// ReplaceMatches swaps the stored matches with a new snapshot.
func (s *Service) ReplaceMatches(list []domainmatches.Match) {
	s.store.SetMatches(list)
}
