package livesync

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"cricket-data-service/internal/logging"
	"cricket-data-service/internal/metrics"
)

const (
	defaultIdleTimeout = 5 * time.Minute
	reapInterval       = time.Minute
)

// ErrEmptyMatchID is returned when a snapshot is requested without an id.
var ErrEmptyMatchID = errors.New("livesync: empty match id")

type entry struct {
	sync       *Synchronizer
	lastAccess time.Time
}

// Manager owns one synchronizer per actively watched match. Synchronizers
// are created lazily on first access and torn down once nobody has asked
// for the match within the idle timeout.
type Manager struct {
	provider    LiveInfoProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	interval    time.Duration
	idleTimeout time.Duration
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*entry
	baseCtx context.Context
	cancel  context.CancelFunc
	closed  bool
}

// ManagerConfig carries the knobs for a Manager.
type ManagerConfig struct {
	PollInterval time.Duration
	IdleTimeout  time.Duration
}

// NewManager constructs a Manager. Start must be called before Snapshot.
func NewManager(provider LiveInfoProvider, logger *slog.Logger, recorder *metrics.Recorder, cfg ManagerConfig) *Manager {
	idle := cfg.IdleTimeout
	if idle <= 0 {
		idle = defaultIdleTimeout
	}
	return &Manager{
		provider:    provider,
		logger:      logger,
		metrics:     recorder,
		interval:    cfg.PollInterval,
		idleTimeout: idle,
		now:         time.Now,
		entries:     make(map[string]*entry),
	}
}

// Start anchors the manager to ctx and begins reaping idle synchronizers.
// Cancelling ctx stops every synchronizer the manager owns.
func (m *Manager) Start(ctx context.Context) {
	m.mu.Lock()
	if m.baseCtx != nil {
		m.mu.Unlock()
		return
	}
	m.baseCtx, m.cancel = context.WithCancel(ctx)
	ctx = m.baseCtx
	m.mu.Unlock()

	go m.reapLoop(ctx)
}

// Snapshot returns the current state for a match, creating and starting a
// synchronizer on first access.
func (m *Manager) Snapshot(matchID string) (Snapshot, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return Snapshot{}, ErrEmptyMatchID
	}

	m.mu.Lock()
	if m.closed || m.baseCtx == nil {
		m.mu.Unlock()
		return Snapshot{}, context.Canceled
	}
	e, ok := m.entries[matchID]
	if !ok {
		e = &entry{sync: NewSynchronizer(matchID, m.provider, m.logger, m.metrics, m.interval)}
		m.entries[matchID] = e
		e.sync.Start(m.baseCtx)
		logging.Info(m.logger, "live sync created", slog.String(logging.FieldMatchID, matchID))
	}
	e.lastAccess = m.now()
	s := e.sync
	m.mu.Unlock()

	return s.Snapshot(), nil
}

// Active returns the number of running synchronizers.
func (m *Manager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.entries)
}

// Close stops every synchronizer and the reap loop.
func (m *Manager) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	if m.cancel != nil {
		m.cancel()
	}
	entries := m.entries
	m.entries = make(map[string]*entry)
	m.mu.Unlock()

	for _, e := range entries {
		e.sync.Stop()
	}
}

func (m *Manager) reapLoop(ctx context.Context) {
	interval := reapInterval
	if m.idleTimeout < interval {
		interval = m.idleTimeout
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.reapIdle()
		}
	}
}

// reapIdle stops synchronizers nobody has asked about within the idle
// timeout. The live document is discarded with them; a later request
// starts over with a fresh synchronizer.
func (m *Manager) reapIdle() {
	cutoff := m.now().Add(-m.idleTimeout)

	m.mu.Lock()
	var idle []*entry
	var ids []string
	for id, e := range m.entries {
		if e.lastAccess.Before(cutoff) {
			idle = append(idle, e)
			ids = append(ids, id)
			delete(m.entries, id)
		}
	}
	m.mu.Unlock()

	for i, e := range idle {
		e.sync.Stop()
		logging.Info(m.logger, "idle live sync reaped", slog.String(logging.FieldMatchID, ids[i]))
	}
}
