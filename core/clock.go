package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

// Clock returns the current time. Filters call it once per emitted line.
type Clock func() time.Time

// SystemClock reads the wall clock directly.
func SystemClock() time.Time {
	return time.Now()
}

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 500µs. It is safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of
// the process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value,
// starting the coarse clock on first use.
func CoarseNow() time.Time {
	StartCoarseClock()
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}
