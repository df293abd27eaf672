package sink

import (
	"io"
	"os"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
)

// Writer writes each line followed by a newline to an io.Writer.
// Write errors are counted, never returned to the logging caller.
type Writer struct {
	mu    sync.Mutex
	w     io.Writer
	buf   []byte
	stats *Stats
}

// NewWriter creates a Writer sink. A nil w writes to os.Stdout.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		w = os.Stdout
	}
	return &Writer{
		w:     w,
		buf:   make([]byte, 0, 256),
		stats: NewStats(),
	}
}

// Log writes line and a trailing newline in a single Write call.
func (s *Writer) Log(line string) {
	s.mu.Lock()
	s.buf = append(s.buf[:0], line...)
	s.buf = append(s.buf, '\n')
	_, err := s.w.Write(s.buf)
	if cap(s.buf) > 64*1024 { // Don't keep very large buffers
		s.buf = make([]byte, 0, 256)
	}
	s.mu.Unlock()

	if err != nil {
		s.stats.IncrementWriteErrors()
		return
	}
	s.stats.IncrementProcessed()
}

// Stats returns a snapshot of the current statistics
func (s *Writer) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

// Metrics returns the Prometheus collectors for this sink.
func (s *Writer) Metrics(name string) []prometheus.Collector {
	return s.stats.Metrics(name)
}

// Close syncs and closes the underlying writer when it supports it.
// The standard streams are synced but never closed.
func (s *Writer) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result *multierror.Error
	if f, ok := s.w.(interface{ Sync() error }); ok {
		if err := f.Sync(); err != nil && !isStdStream(s.w) {
			result = multierror.Append(result, err)
		}
	}
	if c, ok := s.w.(io.Closer); ok && !isStdStream(s.w) {
		if err := c.Close(); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}

func isStdStream(w io.Writer) bool {
	return w == os.Stdout || w == os.Stderr
}
