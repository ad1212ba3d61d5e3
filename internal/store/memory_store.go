package store

import (
	"sync"

	"cricket-data-service/internal/domain/matches"
)

// MemoryStore keeps a thread-safe snapshot of the match list in memory.
// Each refresh replaces the snapshot wholesale; upstream list order is
// preserved for listing.
type MemoryStore struct {
	mu      sync.RWMutex
	byID    map[string]matches.Match
	ordered []string
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byID: make(map[string]matches.Match),
	}
}

// ListMatches returns a copy of the current matches in upstream order.
func (s *MemoryStore) ListMatches() []matches.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]matches.Match, 0, len(s.ordered))
	for _, id := range s.ordered {
		result = append(result, s.byID[id])
	}
	return result
}

// GetMatch retrieves a match by ID.
func (s *MemoryStore) GetMatch(id string) (matches.Match, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.byID[id]
	return m, ok
}

// SetMatches replaces the existing matches with a new snapshot.
func (s *MemoryStore) SetMatches(list []matches.Match) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]matches.Match, len(list))
	s.ordered = make([]string, 0, len(list))
	for _, m := range list {
		if _, seen := s.byID[m.ID]; !seen {
			s.ordered = append(s.ordered, m.ID)
		}
		s.byID[m.ID] = m
	}
}

// Len returns the number of stored matches.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
