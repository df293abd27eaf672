// Package sink provides the Sink interface and its built-in
// implementations. A Sink takes ownership of a finished log line;
// once Log returns, the filter that produced the line keeps no
// reference to it.
//
// Sinks are called on the logging goroutine. Filters add no locking
// of their own, so a Sink shared by several goroutines must serialize
// access itself. Every sink in this package is safe for concurrent
// use; a Func is as safe as the function it wraps.
//
// Built-in sinks:
//
//   - Writer writes each line plus a newline to an io.Writer.
//   - Async queues lines on a bounded channel and hands them to another
//     sink from a single background goroutine. When the queue is full
//     it applies an OverflowPolicy: DropNewest (default), DropOldest,
//     or Block with a timeout.
//   - OpenFile appends lines to a file through an Async queue.
//   - Chan sends each line over a channel.
//   - Zap, Logrus, Zerolog and Slog forward lines to an existing
//     logging backend at a fixed backend level.
//   - Memory keeps lines in memory; Discard drops them.
//
// Writer and Async track processed, dropped, blocked and failed lines
// via the Stats type, which can be exported as Prometheus collectors.
package sink
