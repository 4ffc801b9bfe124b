package metrics

import (
	"sync"
	"time"
)

type adapterStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about adapter calls,
// cache behavior and the parse pipeline. It is intentionally simple so
// it can be swapped for a real backend later; when OTel is configured
// it mirrors every event to the exported instruments.
type Recorder struct {
	mu            sync.Mutex
	stats         map[string]*adapterStats
	cacheHits     map[string]int
	cacheMisses   map[string]int
	unknownTokens int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats:       make(map[string]*adapterStats),
		cacheHits:   make(map[string]int),
		cacheMisses: make(map[string]int),
		otel:        otel,
	}
}

// RecordAdapterAttempt increments counters for an adapter call and
// stores the last observed latency.
func (r *Recorder) RecordAdapterAttempt(adapter string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(adapter)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordAdapterAttempt(adapter, duration, err)
	}
}

// RecordCacheHit tracks a fresh cache hit for a logical resource.
func (r *Recorder) RecordCacheHit(resource string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cacheHits[resource]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(resource, true)
	}
}

// RecordCacheMiss tracks a miss or expiry for a logical resource.
func (r *Recorder) RecordCacheMiss(resource string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.cacheMisses[resource]++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordCache(resource, false)
	}
}

// RecordUnknownStatusToken counts status tokens the classifier could
// not match against any known rule (served with the fallback status).
func (r *Recorder) RecordUnknownStatusToken() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.unknownTokens++
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordUnknownToken()
	}
}

// RecordParsedMatches tracks how many matches one document parse produced.
func (r *Recorder) RecordParsedMatches(adapter string, count int) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordParsedMatches(adapter, count)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// AdapterCalls returns the total attempts recorded for an adapter.
func (r *Recorder) AdapterCalls(adapter string) int {
	return r.Snapshot(adapter).Calls
}

// AdapterErrors returns the total failed attempts recorded for an adapter.
func (r *Recorder) AdapterErrors(adapter string) int {
	return r.Snapshot(adapter).Errors
}

// CacheHits returns the fresh-hit count for a resource.
func (r *Recorder) CacheHits(resource string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits[resource]
}

// CacheMisses returns the miss count for a resource.
func (r *Recorder) CacheMisses(resource string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheMisses[resource]
}

// UnknownStatusTokens returns the fallback-classification count.
func (r *Recorder) UnknownStatusTokens() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unknownTokens
}

// Snapshot is a copy of the current stats for one adapter.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(adapter string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.stats[adapter]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

func (r *Recorder) ensureStats(adapter string) *adapterStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[adapter]
	if !ok {
		stats = &adapterStats{}
		r.stats[adapter] = stats
	}
	return stats
}
