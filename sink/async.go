package sink

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OverflowPolicy defines how to handle a full queue
type OverflowPolicy int

const (
	// DropNewest drops the incoming line when the queue is full
	DropNewest OverflowPolicy = iota
	// DropOldest drops the oldest queued line to make room
	DropOldest
	// Block waits for space until BlockTimeout, then drops the line
	Block
)

// String returns the string representation of the policy
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// AsyncConfig holds configuration for an Async sink
type AsyncConfig struct {
	// BufferSize is the size of the queue (default: 1000)
	BufferSize int
	// Overflow is the policy applied when the queue is full (default: DropNewest)
	Overflow OverflowPolicy
	// BlockTimeout is the wait limit for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyAsyncDefaults fills in zero-value fields with defaults.
func applyAsyncDefaults(cfg *AsyncConfig) {
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.BlockTimeout <= 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout <= 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// Async hands lines to another sink from a single background
// goroutine, so the logging caller never waits on slow output unless
// the Block policy is selected.
type Async struct {
	next         Sink
	queue        chan string
	mu           sync.RWMutex // held shared while enqueuing, exclusively to close
	done         bool
	closed       chan struct{}
	closeOnce    sync.Once
	wg           sync.WaitGroup
	overflow     OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	closeErr     error
}

// NewAsync starts an Async sink in front of next. Lines reach next in
// the order they were accepted.
func NewAsync(next Sink, cfg AsyncConfig) *Async {
	applyAsyncDefaults(&cfg)

	a := &Async{
		next:         next,
		queue:        make(chan string, cfg.BufferSize),
		closed:       make(chan struct{}),
		overflow:     cfg.Overflow,
		blockTimeout: cfg.BlockTimeout,
		drainTimeout: cfg.DrainTimeout,
		stats:        NewStats(),
	}

	a.wg.Add(1)
	go a.process()

	return a
}

// Log queues line according to the overflow policy. Lines logged
// after Close are dropped. A Log waiting under the Block policy delays
// Close by at most BlockTimeout.
func (a *Async) Log(line string) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.done {
		a.stats.IncrementDropped()
		return
	}

	switch a.overflow {
	case Block:
		select {
		case a.queue <- line:
			return
		default:
		}

		a.stats.IncrementBlocked()
		timer := time.NewTimer(a.blockTimeout)
		select {
		case a.queue <- line:
			timer.Stop()
		case <-timer.C:
			a.stats.IncrementDropped()
		}

	case DropOldest:
		select {
		case a.queue <- line:
			return
		default:
		}
		// Queue full - remove the oldest line and retry once
		select {
		case <-a.queue:
			a.stats.IncrementDropped()
		default:
		}
		select {
		case a.queue <- line:
		default:
			a.stats.IncrementDropped()
		}

	default:
		select {
		case a.queue <- line:
		default:
			a.stats.IncrementDropped()
		}
	}
}

// process forwards queued lines until Close
func (a *Async) process() {
	defer a.wg.Done()

	for {
		select {
		case line := <-a.queue:
			a.forward(line)
		case <-a.closed:
			a.drain()
			return
		}
	}
}

// drain forwards what is left in the queue, giving up at the drain
// timeout and counting the rest as dropped.
func (a *Async) drain() {
	deadline := time.NewTimer(a.drainTimeout)
	defer deadline.Stop()

	for {
		select {
		case line := <-a.queue:
			a.forward(line)
		case <-deadline.C:
			a.stats.AddDropped(uint64(len(a.queue)))
			return
		default:
			return
		}
	}
}

func (a *Async) forward(line string) {
	a.next.Log(line)
	a.stats.IncrementProcessed()
}

// Close drains the queue with a timeout, then closes the downstream
// sink. Calling Close more than once returns the first result.
func (a *Async) Close() error {
	a.closeOnce.Do(func() {
		// Every line enqueued before this point is drained or counted
		// as dropped; later lines see done and are dropped.
		a.mu.Lock()
		a.done = true
		close(a.closed)
		a.mu.Unlock()

		a.wg.Wait()

		a.closeErr = Close(a.next)
	})
	return a.closeErr
}

// Stats returns a snapshot of the current statistics
func (a *Async) Stats() Snapshot {
	return a.stats.GetSnapshot()
}

// Metrics returns the Prometheus collectors for this sink.
func (a *Async) Metrics(name string) []prometheus.Collector {
	return a.stats.Metrics(name)
}
