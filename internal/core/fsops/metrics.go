// SPDX-License-Identifier: Apache-2.0

package fsops

import (
	"sync"
	"time"
)

// DefaultMetricCapacity bounds the retained per-call timing records.
const DefaultMetricCapacity = 100

// Metric records the duration of one writer call.
type Metric struct {
	Operation string
	Path      string
	Duration  time.Duration
	Success   bool
	At        time.Time
}

// MetricRing keeps the most recent writer timings. When the ring is full
// the oldest entry is evicted first.
type MetricRing struct {
	mu       sync.Mutex
	capacity int
	entries  []Metric
}

// NewMetricRing creates a ring holding at most capacity entries.
func NewMetricRing(capacity int) *MetricRing {
	if capacity <= 0 {
		capacity = DefaultMetricCapacity
	}
	return &MetricRing{capacity: capacity}
}

// Record appends a metric, evicting the oldest entry when full.
func (r *MetricRing) Record(m Metric) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, m)
	if len(r.entries) > r.capacity {
		r.entries = r.entries[len(r.entries)-r.capacity:]
	}
}

// Snapshot returns a copy of the retained metrics, oldest first.
func (r *MetricRing) Snapshot() []Metric {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Metric, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of retained metrics.
func (r *MetricRing) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
