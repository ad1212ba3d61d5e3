package livesync

import (
	"sync"

	"cricket-data-service/internal/domain/live"
)

// State holds the merged live document for one match together with the
// sequence guard that keeps late responses from clobbering newer data.
// Sequence numbers are handed out when a fetch starts, so a slow response
// for an earlier tick carries a lower number than anything applied since.
type State struct {
	mu      sync.Mutex
	doc     live.Document
	nextSeq uint64
	applied uint64
}

func NewState() *State {
	return &State{}
}

// NextSequence reserves the sequence number for a fetch about to start.
func (s *State) NextSequence() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextSeq++
	return s.nextSeq
}

// Apply shallow-merges src over the stored document. The merge is dropped
// when a fetch with a higher sequence number has already been applied;
// the return value reports whether the merge took effect.
func (s *State) Apply(seq uint64, src live.Document) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.applied {
		return false
	}
	s.doc = live.Merge(s.doc, src)
	s.applied = seq
	return true
}

// Document returns a copy of the merged document, or nil before the first
// applied merge.
func (s *State) Document() live.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// AppliedSequence returns the sequence number of the newest applied merge.
func (s *State) AppliedSequence() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.applied
}
