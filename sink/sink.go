package sink

import "io"

// Sink consumes finished log lines.
type Sink interface {
	// Log takes ownership of line. It must not panic back into the caller.
	Log(line string)
}

// Func adapts a plain function to a Sink.
type Func func(line string)

// Log calls f(line).
func (f Func) Log(line string) {
	f(line)
}

// Close closes s if it holds resources.
func Close(s Sink) error {
	if c, ok := s.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

type discard struct{}

func (discard) Log(string) {}

// Discard is a Sink that drops every line. Filters attached to it
// still format their lines, which makes it useful for benchmarks.
var Discard Sink = discard{}
