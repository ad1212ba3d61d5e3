package livesync

import (
	"context"
	"errors"
	"testing"
	"time"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/metrics"
	"cricket-data-service/internal/teststubs"
)

func TestSynchronizerMergesLiveUpdatesAndFetchesInfoOnce(t *testing.T) {
	provider := &teststubs.StubProvider{
		LiveDocs: []live.Document{
			doc(t, `{"match_id": "8123", "team_a": "India", "team_b": "Australia", "first_circle": "SIX"}`),
			doc(t, `{"first_circle": "WICKET"}`),
		},
		Info:   info.Bundle{TeamAShort: "IND"},
		Notify: make(chan struct{}),
	}

	s := NewSynchronizer("8123", provider, nil, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	// Let at least one ticker refresh land the partial update.
	deadline := time.Now().Add(500 * time.Millisecond)
	for provider.LiveCalls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	s.Stop()

	snap := s.Snapshot()
	if snap.Live == nil {
		t.Fatalf("expected live snapshot, got %+v", snap)
	}
	if snap.Live.Summary.TeamA.Name != "India" {
		t.Fatalf("field absent from the partial update must survive the merge: %+v", snap.Live.Summary)
	}
	if snap.Live.Commentary != "WICKET" {
		t.Fatalf("expected latest commentary, got %q", snap.Live.Commentary)
	}

	if provider.InfoCalls.Load() != 1 {
		t.Fatalf("info must be fetched exactly once, got %d calls", provider.InfoCalls.Load())
	}
	if snap.Info == nil || snap.Info.TeamAShort != "IND" {
		t.Fatalf("unexpected info bundle %+v", snap.Info)
	}
}

func TestSynchronizerKeepsLastGoodStateOnFetchFailure(t *testing.T) {
	provider := &teststubs.StubProvider{
		LiveDoc: doc(t, `{"match_id": "8123", "first_circle": "FOUR"}`),
	}

	s := NewSynchronizer("8123", provider, nil, metrics.NewRecorder(), time.Hour)
	ctx := context.Background()

	s.fetchInfoOnce(ctx)
	s.refresh(ctx)

	provider.LiveErr = errors.New("upstream down")
	s.refresh(ctx)

	snap := s.Snapshot()
	if snap.Live == nil || snap.Live.Commentary != "FOUR" {
		t.Fatalf("failure must not discard merged state: %+v", snap.Live)
	}
	if snap.LiveError != "upstream down" {
		t.Fatalf("expected live error recorded, got %q", snap.LiveError)
	}

	// A later success clears the error flag.
	provider.LiveErr = nil
	s.refresh(ctx)
	if snap := s.Snapshot(); snap.LiveError != "" {
		t.Fatalf("expected error cleared after success, got %q", snap.LiveError)
	}
}

func TestSynchronizerInfoFailureDoesNotBlockLive(t *testing.T) {
	provider := &teststubs.StubProvider{
		LiveDoc: doc(t, `{"match_id": "8123"}`),
		InfoErr: errors.New("info unavailable"),
	}

	s := NewSynchronizer("8123", provider, nil, nil, time.Hour)
	ctx := context.Background()

	s.fetchInfoOnce(ctx)
	s.refresh(ctx)

	snap := s.Snapshot()
	if snap.InfoError != "info unavailable" {
		t.Fatalf("expected info error recorded, got %q", snap.InfoError)
	}
	if snap.Info != nil {
		t.Fatalf("expected no info bundle, got %+v", snap.Info)
	}
	if snap.Live == nil {
		t.Fatal("live data must still flow when the info fetch fails")
	}
}

func TestSynchronizerStopHaltsFetching(t *testing.T) {
	provider := &teststubs.StubProvider{
		LiveDoc: doc(t, `{"match_id": "8123"}`),
		Notify:  make(chan struct{}),
	}

	s := NewSynchronizer("8123", provider, nil, nil, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx)

	select {
	case <-provider.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for initial fetch")
	}

	s.Stop()
	s.Stop() // idempotent

	calls := provider.LiveCalls.Load()
	time.Sleep(25 * time.Millisecond)
	if provider.LiveCalls.Load() != calls {
		t.Fatalf("expected no fetches after stop; before=%d after=%d", calls, provider.LiveCalls.Load())
	}
}

func TestSynchronizerRecordsRejectedMerges(t *testing.T) {
	rec := metrics.NewRecorder()
	provider := &teststubs.StubProvider{
		LiveDoc: doc(t, `{"score": 100}`),
	}

	s := NewSynchronizer("8123", provider, nil, rec, time.Hour)
	ctx := context.Background()

	// Reserve a sequence before the next refresh so its response arrives stale.
	stale := s.state.NextSequence()

	s.refresh(ctx)
	if rec.MergesApplied() != 1 {
		t.Fatalf("expected 1 applied merge, got %d", rec.MergesApplied())
	}

	if s.state.Apply(stale, doc(t, `{"score": 90}`)) {
		t.Fatal("stale merge must be rejected")
	}
}
