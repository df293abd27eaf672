package sink

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
)

// Stats tracks sink statistics
type Stats struct {
	dropped     atomic.Uint64
	blocked     atomic.Uint64
	processed   atomic.Uint64
	writeErrors atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped atomically increments the dropped counter
func (s *Stats) IncrementDropped() {
	s.dropped.Inc()
}

// AddDropped adds n to the dropped counter
func (s *Stats) AddDropped(n uint64) {
	s.dropped.Add(n)
}

// IncrementBlocked atomically increments the blocked counter
func (s *Stats) IncrementBlocked() {
	s.blocked.Inc()
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Inc()
}

// IncrementWriteErrors atomically increments the failed write counter
func (s *Stats) IncrementWriteErrors() {
	s.writeErrors.Inc()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.dropped.Store(0)
	s.blocked.Store(0)
	s.processed.Store(0)
	s.writeErrors.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Dropped     uint64
	Blocked     uint64
	Processed   uint64
	WriteErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Dropped:     s.dropped.Load(),
		Blocked:     s.blocked.Load(),
		Processed:   s.processed.Load(),
		WriteErrors: s.writeErrors.Load(),
	}
}

// Metrics exposes the counters as Prometheus collectors labelled
// with the sink name. Registering them is up to the caller.
func (s *Stats) Metrics(name string) []prometheus.Collector {
	counter := func(metric, help string, v *atomic.Uint64) prometheus.Collector {
		return prometheus.NewCounterFunc(prometheus.CounterOpts{
			Namespace:   "logfilter",
			Subsystem:   "sink",
			Name:        metric,
			Help:        help,
			ConstLabels: prometheus.Labels{"sink": name},
		}, func() float64 {
			return float64(v.Load())
		})
	}

	return []prometheus.Collector{
		counter("lines_dropped_total", "Number of lines dropped because the queue was full or closed.", &s.dropped),
		counter("lines_blocked_total", "Number of times a caller waited for queue space.", &s.blocked),
		counter("lines_processed_total", "Number of lines handed to the output.", &s.processed),
		counter("write_errors_total", "Number of lines the output failed to write.", &s.writeErrors),
	}
}
