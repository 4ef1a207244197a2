// Package observability tracks per-worker health: throughput, error rates,
// stream lag, prompt counts and external-call outcomes, plus the
// degraded-mode gate and the midnight rollover scheduler built on top of
// them.
package observability

import (
	"sync"
	"time"
)

// Metrics accumulates one worker's counters. All methods are safe for
// concurrent use; a worker and the health endpoint may touch it at once.
type Metrics struct {
	mu sync.Mutex

	processed      int64
	errors         int64
	externalCalls  int64
	externalErrors int64
	promptsByType  map[string]int64

	oldestUnacked time.Time
	lastActivity  time.Time
}

// NewMetrics constructs an empty Metrics.
func NewMetrics() *Metrics {
	return &Metrics{promptsByType: make(map[string]int64)}
}

// RecordProcessed counts one successfully handled stream entry.
func (m *Metrics) RecordProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.processed++
	m.lastActivity = time.Now()
}

// RecordError counts one failed handling attempt.
func (m *Metrics) RecordError() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors++
	m.lastActivity = time.Now()
}

// RecordExternalCall counts one outbound collaborator call and its outcome.
func (m *Metrics) RecordExternalCall(failed bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.externalCalls++
	if failed {
		m.externalErrors++
	}
}

// RecordPrompt counts one emitted prompt by its originating event type.
func (m *Metrics) RecordPrompt(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.promptsByType[eventType]++
}

// ObserveOldestUnacked records the append time of the oldest entry still
// pending, from which Snapshot derives the stream lag.
func (m *Metrics) ObserveOldestUnacked(appendTS time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.oldestUnacked = appendTS
}

// Snapshot is a point-in-time copy of a worker's counters.
type Snapshot struct {
	Processed      int64            `json:"processed"`
	Errors         int64            `json:"errors"`
	ExternalCalls  int64            `json:"external_calls"`
	ExternalErrors int64            `json:"external_errors"`
	PromptsByType  map[string]int64 `json:"prompts_by_type"`
	StreamLag      time.Duration    `json:"stream_lag_ns"`
	LastActivity   time.Time        `json:"last_activity"`
}

// Snapshot returns a copy of the current counters.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	prompts := make(map[string]int64, len(m.promptsByType))
	for k, v := range m.promptsByType {
		prompts[k] = v
	}
	var lag time.Duration
	if !m.oldestUnacked.IsZero() {
		lag = time.Since(m.oldestUnacked)
	}
	return Snapshot{
		Processed:      m.processed,
		Errors:         m.errors,
		ExternalCalls:  m.externalCalls,
		ExternalErrors: m.externalErrors,
		PromptsByType:  prompts,
		StreamLag:      lag,
		LastActivity:   m.lastActivity,
	}
}
