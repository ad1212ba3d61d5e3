package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"cricket-data-service/internal/domain/chat"
	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/domain/matches"
)

// StubProvider is a test double for providers.MatchProvider.
type StubProvider struct {
	mu sync.Mutex

	Matches  []matches.Match
	ListErr  error
	ListErrs []error // consumed one per call before ListErr applies

	LiveDoc  live.Document
	LiveDocs []live.Document // consumed one per call before LiveDoc applies
	LiveErr  error

	Info    info.Bundle
	InfoErr error

	ListCalls atomic.Int32
	LiveCalls atomic.Int32
	InfoCalls atomic.Int32

	Notify chan struct{}
}

func (s *StubProvider) notify() {
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
}

// FetchMatchList returns the configured list while tracking calls. When
// ListErrs is set, each call consumes the next error in the sequence (nil
// meaning success).
func (s *StubProvider) FetchMatchList(ctx context.Context) ([]matches.Match, error) {
	_ = ctx
	s.notify()
	s.ListCalls.Add(1)

	s.mu.Lock()
	var err error
	if len(s.ListErrs) > 0 {
		err = s.ListErrs[0]
		s.ListErrs = s.ListErrs[1:]
	} else {
		err = s.ListErr
	}
	s.mu.Unlock()

	if err != nil {
		return nil, err
	}
	return s.Matches, nil
}

// FetchLiveMatch returns the configured document while tracking calls.
// When LiveDocs is set, each call consumes the next document in the
// sequence; the last configured document repeats afterwards.
func (s *StubProvider) FetchLiveMatch(ctx context.Context, matchID string) (live.Document, error) {
	_ = ctx
	_ = matchID
	s.notify()
	s.LiveCalls.Add(1)

	if s.LiveErr != nil {
		return nil, s.LiveErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.LiveDocs) > 0 {
		doc := s.LiveDocs[0]
		if len(s.LiveDocs) > 1 {
			s.LiveDocs = s.LiveDocs[1:]
		}
		return doc, nil
	}
	return s.LiveDoc, nil
}

// FetchMatchInfo returns the configured bundle while tracking calls.
func (s *StubProvider) FetchMatchInfo(ctx context.Context, matchID string) (info.Bundle, error) {
	_ = ctx
	_ = matchID
	s.InfoCalls.Add(1)
	if s.InfoErr != nil {
		return info.Bundle{}, s.InfoErr
	}
	bundle := s.Info
	bundle.MatchID = matchID
	return bundle, nil
}

// StubCompleter is a test double for chat.Completer.
type StubCompleter struct {
	Reply string
	Err   error

	Calls     atomic.Int32
	LastMsgs  []chat.Message
	CalledAt  []int32
	sharedSeq *atomic.Int32
}

// NewOrderedCompleters returns completers that share a call sequence so
// tests can assert which provider was attempted first.
func NewOrderedCompleters(primary, secondary *StubCompleter) (*StubCompleter, *StubCompleter) {
	var seq atomic.Int32
	primary.sharedSeq = &seq
	secondary.sharedSeq = &seq
	return primary, secondary
}

// Complete returns the configured reply or error while recording the call.
func (s *StubCompleter) Complete(ctx context.Context, msgs []chat.Message) (string, error) {
	_ = ctx
	s.Calls.Add(1)
	s.LastMsgs = append([]chat.Message(nil), msgs...)
	if s.sharedSeq != nil {
		s.CalledAt = append(s.CalledAt, s.sharedSeq.Add(1))
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Reply, nil
}

// Name identifies the stub in relay logs.
func (s *StubCompleter) Name() string { return "stub" }
