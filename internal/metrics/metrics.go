package metrics

import (
	"sync"
	"time"
)

type callStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type callKey struct {
	provider string
	op       string
}

// Recorder captures lightweight, in-memory metrics about upstream collection calls
// and mirrors them into OpenTelemetry instruments when configured.
type Recorder struct {
	mu      sync.Mutex
	stats   map[callKey]*callStats
	renders int
	rows    int
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[callKey]*callStats),
		otel:  otel,
	}
}

// RecordUpstreamCall increments counters for one call against the remote collection
// and stores the last observed latency.
func (r *Recorder) RecordUpstreamCall(provider, op string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureStatsLocked(callKey{provider: provider, op: op})
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUpstreamCall(provider, op, duration, err)
	}
}

// RecordRender tracks a list re-render and the number of rows it produced.
func (r *Recorder) RecordRender(rows int) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.renders++
	r.rows = rows
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRender(rows)
	}
}

// Snapshot is a copy of the stats recorded for one provider operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the provider operation.
func (r *Recorder) Snapshot(provider, op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats, ok := r.stats[callKey{provider: provider, op: op}]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// UpstreamCalls returns the total calls recorded for a provider operation.
func (r *Recorder) UpstreamCalls(provider, op string) int {
	return r.Snapshot(provider, op).Calls
}

// UpstreamErrors returns the failed calls recorded for a provider operation.
func (r *Recorder) UpstreamErrors(provider, op string) int {
	return r.Snapshot(provider, op).Errors
}

// Renders returns how many list renders were recorded and the row count of the last one.
func (r *Recorder) Renders() (count int, lastRows int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renders, r.rows
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureStatsLocked(key callKey) *callStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &callStats{}
		r.stats[key] = stats
	}
	return stats
}
