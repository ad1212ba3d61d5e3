package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type chatStats struct {
	completions int
	failures    int
}

// Recorder captures lightweight, in-memory metrics about provider calls,
// live merges and chat completions. It is intentionally simple so it can be
// swapped for a real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	chat  map[string]*chatStats

	mergesApplied  int
	mergesRejected int
	unclassified   int
	apologies      int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		chat:  make(map[string]*chatStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordMerge tracks a live document merge. Rejected merges carry a stale
// or out-of-order sequence and leave the stored document untouched.
func (r *Recorder) RecordMerge(matchID string, rejected bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if rejected {
		r.mergesRejected++
	} else {
		r.mergesApplied++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordMerge(matchID, rejected)
	}
}

// RecordUnclassifiedStatus counts list entries whose upstream status text
// matched no known bucket.
func (r *Recorder) RecordUnclassifiedStatus(count int) {
	if r == nil || count <= 0 {
		return
	}

	r.mu.Lock()
	r.unclassified += count
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUnclassified(count)
	}
}

// RecordChatCompletion tracks one completion attempt against a chat backend.
func (r *Recorder) RecordChatCompletion(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.chat[provider]
	if !ok {
		stats = &chatStats{}
		r.chat[provider] = stats
	}
	stats.completions++
	if err != nil {
		stats.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordChatCompletion(provider, duration, err)
	}
}

// RecordChatApology counts replies served from the canned apology because
// every backend failed.
func (r *Recorder) RecordChatApology() {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.apologies++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordChatApology()
	}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// MergesApplied returns the number of live merges applied.
func (r *Recorder) MergesApplied() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mergesApplied
}

// MergesRejected returns the number of stale live merges dropped.
func (r *Recorder) MergesRejected() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mergesRejected
}

// UnclassifiedStatuses returns the number of list entries with an unknown status.
func (r *Recorder) UnclassifiedStatuses() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unclassified
}

// ChatCompletions returns the attempts recorded against one chat backend.
func (r *Recorder) ChatCompletions(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.chat[provider]; ok {
		return stats.completions
	}
	return 0
}

// ChatFailures returns the failed attempts recorded against one chat backend.
func (r *Recorder) ChatFailures(provider string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.chat[provider]; ok {
		return stats.failures
	}
	return 0
}

// ChatApologies returns the number of canned apology replies served.
func (r *Recorder) ChatApologies() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.apologies
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks list poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
