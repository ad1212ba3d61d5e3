package livesync

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cricket-data-service/internal/domain/info"
	"cricket-data-service/internal/domain/live"
	"cricket-data-service/internal/logging"
	"cricket-data-service/internal/metrics"
	"cricket-data-service/internal/providers"
)

const defaultInterval = 30 * time.Second

// LiveInfoProvider is the slice of the upstream a synchronizer needs.
type LiveInfoProvider interface {
	providers.LiveProvider
	providers.InfoProvider
}

// Snapshot is the combined view of one synchronized match. Live is nil
// until the first successful fetch; InfoError and LiveError carry the most
// recent failure without discarding previously merged data.
type Snapshot struct {
	MatchID     string         `json:"matchId"`
	Live        *live.Snapshot `json:"live,omitempty"`
	Info        *info.Bundle   `json:"info,omitempty"`
	LiveError   string         `json:"liveError,omitempty"`
	InfoError   string         `json:"infoError,omitempty"`
	LastUpdated time.Time      `json:"lastUpdated,omitempty"`
	Sequence    uint64         `json:"sequence"`
}

// Synchronizer keeps the live document for one match fresh. On start it
// fetches the static info bundle exactly once and the first live snapshot,
// then re-fetches on a fixed interval, shallow-merging each response over
// the accumulated state. A fetch failure sets LiveError and keeps the last
// merged document intact.
type Synchronizer struct {
	matchID  string
	provider LiveInfoProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	state *State

	cancel   context.CancelFunc
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	mu          sync.RWMutex
	info        *info.Bundle
	infoErr     string
	liveErr     string
	lastUpdated time.Time
}

// NewSynchronizer constructs a synchronizer for one match id.
func NewSynchronizer(matchID string, provider LiveInfoProvider, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Synchronizer {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Synchronizer{
		matchID:  matchID,
		provider: provider,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		state:    NewState(),
		done:     make(chan struct{}),
	}
}

// Start begins the sync loop until the context is cancelled or Stop is
// called. The first info and live fetches happen before the loop starts
// ticking.
func (s *Synchronizer) Start(ctx context.Context) {
	s.startMu.Lock()
	if s.started {
		s.startMu.Unlock()
		return
	}
	s.started = true
	ctx, s.cancel = context.WithCancel(ctx)
	s.startMu.Unlock()

	go s.run(ctx)
}

// Stop halts the loop and cancels any in-flight fetch.
func (s *Synchronizer) Stop() {
	s.stopOnce.Do(func() {
		s.startMu.Lock()
		if s.cancel != nil {
			s.cancel()
		}
		s.startMu.Unlock()
		close(s.done)
	})
}

// Done is closed once the synchronizer has stopped.
func (s *Synchronizer) Done() <-chan struct{} { return s.done }

func (s *Synchronizer) run(ctx context.Context) {
	s.logInfo("live sync started", slog.Int64(logging.FieldDurationMS, s.interval.Milliseconds()))

	s.fetchInfoOnce(ctx)
	s.refresh(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logInfo("live sync stopped")
			return
		case <-s.done:
			s.logInfo("live sync stopped")
			return
		case <-ticker.C:
			s.refresh(ctx)
		}
	}
}

// fetchInfoOnce retrieves the static reference bundle. It runs exactly one
// attempt for the synchronizer's lifetime; a failure is surfaced on the
// snapshot rather than retried.
func (s *Synchronizer) fetchInfoOnce(ctx context.Context) {
	bundle, err := s.provider.FetchMatchInfo(ctx, s.matchID)
	if err != nil {
		s.logError("match info fetch failed", err)
		s.mu.Lock()
		s.infoErr = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	s.info = &bundle
	s.infoErr = ""
	s.mu.Unlock()
}

func (s *Synchronizer) refresh(ctx context.Context) {
	seq := s.state.NextSequence()

	doc, err := s.provider.FetchLiveMatch(ctx, s.matchID)
	if err != nil {
		s.logError("live fetch failed", err,
			slog.Uint64(logging.FieldSequence, seq),
		)
		s.mu.Lock()
		s.liveErr = err.Error()
		s.mu.Unlock()
		return
	}

	applied := s.state.Apply(seq, doc)
	if s.metrics != nil {
		s.metrics.RecordMerge(s.matchID, !applied)
	}
	if !applied {
		s.logInfo("stale live response dropped",
			slog.Uint64(logging.FieldSequence, seq),
		)
		return
	}

	s.mu.Lock()
	s.liveErr = ""
	s.lastUpdated = s.now()
	s.mu.Unlock()
}

// Snapshot decodes the current merged document into its typed view.
func (s *Synchronizer) Snapshot() Snapshot {
	s.mu.RLock()
	snap := Snapshot{
		MatchID:     s.matchID,
		Info:        s.info,
		InfoError:   s.infoErr,
		LiveError:   s.liveErr,
		LastUpdated: s.lastUpdated,
	}
	s.mu.RUnlock()

	doc := s.state.Document()
	snap.Sequence = s.state.AppliedSequence()
	if doc != nil {
		typed, err := live.Decode(doc)
		if err != nil {
			s.logError("live document decode failed", err)
			if snap.LiveError == "" {
				snap.LiveError = err.Error()
			}
		} else {
			snap.Live = &typed
		}
	}
	return snap
}

func (s *Synchronizer) logInfo(msg string, args ...any) {
	logging.Info(s.logger, msg, append([]any{slog.String(logging.FieldMatchID, s.matchID)}, args...)...)
}

func (s *Synchronizer) logError(msg string, err error, args ...any) {
	logging.Error(s.logger, msg, err, append([]any{slog.String(logging.FieldMatchID, s.matchID)}, args...)...)
}
