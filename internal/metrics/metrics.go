package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// enrichment batches. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats

	batches       int
	batchFailures int
	staleSearches int

	otel *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, operation, duration, err)
	}
}

// RecordEnrichmentBatch tracks one fan-out batch: how many stubs went in and
// how many lookups were dropped.
func (r *Recorder) RecordEnrichmentBatch(size, failed int, duration time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.batches++
	r.batchFailures += failed
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordEnrichmentBatch(size, failed, duration)
	}
}

// RecordStaleSearch counts a search completion discarded because a newer
// query superseded it.
func (r *Recorder) RecordStaleSearch() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.staleSearches++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordStaleSearch()
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks standings poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return Snapshot{
			Calls:           stats.calls,
			Errors:          stats.errors,
			LastCallLatency: stats.lastCallLatency,
		}
	}
	return Snapshot{}
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// Batches returns the number of enrichment batches recorded.
func (r *Recorder) Batches() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batches
}

// BatchFailures returns the total dropped lookups across all batches.
func (r *Recorder) BatchFailures() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.batchFailures
}

// StaleSearches returns the number of superseded search completions discarded.
func (r *Recorder) StaleSearches() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.staleSearches
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
