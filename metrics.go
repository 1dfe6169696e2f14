package keyscope

import (
	"sync"
	"time"
)

// Metrics collects counts per classification outcome and handler
// dispatch latency. Disabled by default; enable with WithMetrics.
//
// Unlike the teacher's dispatcher metrics, this tracks only min/max/
// count/total for latency rather than a full histogram — at the scale
// of a keyboard dispatcher (at most a few hundred bindings, one
// classification per key press) a running mean is sufficient and a
// bucketed histogram would track overhead no caller has asked for.
type Metrics struct {
	mu sync.Mutex

	none     uint64
	partial  uint64
	exact    uint64
	deferred uint64 // committed via timer expiry rather than immediate dispatch

	dispatchCount uint64
	totalLatency  time.Duration
	minLatency    time.Duration
	maxLatency    time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) recordClassification(exact, partial bool, deferred bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case deferred:
		m.deferred++
	case exact:
		m.exact++
	case partial:
		m.partial++
	default:
		m.none++
	}
}

func (m *Metrics) recordDispatch(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.dispatchCount++
	m.totalLatency += d
	if m.dispatchCount == 1 || d < m.minLatency {
		m.minLatency = d
	}
	if d > m.maxLatency {
		m.maxLatency = d
	}
}

// Snapshot is a point-in-time copy of the collected metrics.
type Snapshot struct {
	NoneCount     uint64
	PartialCount  uint64
	ExactCount    uint64
	DeferredCount uint64

	DispatchCount uint64
	MeanLatency   time.Duration
	MinLatency    time.Duration
	MaxLatency    time.Duration
}

// Snapshot returns the current metrics values.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := Snapshot{
		NoneCount:     m.none,
		PartialCount:  m.partial,
		ExactCount:    m.exact,
		DeferredCount: m.deferred,
		DispatchCount: m.dispatchCount,
		MinLatency:    m.minLatency,
		MaxLatency:    m.maxLatency,
	}
	if m.dispatchCount > 0 {
		s.MeanLatency = m.totalLatency / time.Duration(m.dispatchCount)
	}
	return s
}
