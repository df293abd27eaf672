package filter

import (
	"fmt"

	"go.uber.org/atomic"

	"github.com/philipp01105/logfilter/core"
	"github.com/philipp01105/logfilter/formatter"
	"github.com/philipp01105/logfilter/sink"
)

// DefaultHexLimit is the number of bytes a hex block shows unless
// SetHexLimit says otherwise.
const DefaultHexLimit = 32

// Filter gates, formats and forwards log lines for one service.
type Filter struct {
	service  string
	sink     sink.Sink
	level    atomic.Int32
	hexLimit atomic.Int64
	clock    core.Clock
	metrics  metrics
}

// New creates a Filter for service writing to s. The threshold starts
// at core.NoneLevel; call SetLevel to enable output.
func New(service string, s sink.Sink) *Filter {
	return NewBuilder(service).WithSink(s).Build()
}

// Service returns the service name written into every line.
func (f *Filter) Service() string {
	return f.service
}

// SetLevel changes the threshold. It takes effect on the next call.
func (f *Filter) SetLevel(level core.Level) {
	f.level.Store(int32(level))
}

// Level returns the current threshold.
func (f *Filter) Level() core.Level {
	return core.Level(f.level.Load())
}

// SetHexLimit caps the number of bytes rendered by hex dumps.
// A negative limit renders whole buffers.
func (f *Filter) SetHexLimit(limit int) {
	f.hexLimit.Store(int64(limit))
}

// HexLimit returns the current hex limit.
func (f *Filter) HexLimit() int {
	return int(f.hexLimit.Load())
}

// Enabled reports whether a line at level would reach the sink.
func (f *Filter) Enabled(level core.Level) bool {
	return f.sink != nil && f.Level().Enabled(level)
}

// Log formats and forwards a line at level if the threshold allows it.
func (f *Filter) Log(level core.Level, seq uint32, format string, args ...interface{}) {
	if !f.Enabled(level) {
		return
	}
	f.emit(level, seq, nil, 0, false, format, args...)
}

// LogHex is Log with a hex block of the first length bytes of buf
// appended on the following lines.
func (f *Filter) LogHex(level core.Level, seq uint32, buf []byte, length int, format string, args ...interface{}) {
	if !f.Enabled(level) {
		return
	}
	f.emit(level, seq, buf, length, true, format, args...)
}

// Errorf logs an error line
func (f *Filter) Errorf(seq uint32, format string, args ...interface{}) {
	if !f.Enabled(core.ErrorLevel) {
		return
	}
	f.emit(core.ErrorLevel, seq, nil, 0, false, format, args...)
}

// Warningf logs a warning line
func (f *Filter) Warningf(seq uint32, format string, args ...interface{}) {
	if !f.Enabled(core.WarningLevel) {
		return
	}
	f.emit(core.WarningLevel, seq, nil, 0, false, format, args...)
}

// Infof logs an info line
func (f *Filter) Infof(seq uint32, format string, args ...interface{}) {
	if !f.Enabled(core.InfoLevel) {
		return
	}
	f.emit(core.InfoLevel, seq, nil, 0, false, format, args...)
}

// Debugf logs a debug line
func (f *Filter) Debugf(seq uint32, format string, args ...interface{}) {
	if !f.Enabled(core.DebugLevel) {
		return
	}
	f.emit(core.DebugLevel, seq, nil, 0, false, format, args...)
}

// ErrorHex logs an error line followed by a hex dump of buf
func (f *Filter) ErrorHex(seq uint32, buf []byte, length int, format string, args ...interface{}) {
	if !f.Enabled(core.ErrorLevel) {
		return
	}
	f.emit(core.ErrorLevel, seq, buf, length, true, format, args...)
}

// WarningHex logs a warning line followed by a hex dump of buf
func (f *Filter) WarningHex(seq uint32, buf []byte, length int, format string, args ...interface{}) {
	if !f.Enabled(core.WarningLevel) {
		return
	}
	f.emit(core.WarningLevel, seq, buf, length, true, format, args...)
}

// InfoHex logs an info line followed by a hex dump of buf
func (f *Filter) InfoHex(seq uint32, buf []byte, length int, format string, args ...interface{}) {
	if !f.Enabled(core.InfoLevel) {
		return
	}
	f.emit(core.InfoLevel, seq, buf, length, true, format, args...)
}

// DebugHex logs a debug line followed by a hex dump of buf
func (f *Filter) DebugHex(seq uint32, buf []byte, length int, format string, args ...interface{}) {
	if !f.Enabled(core.DebugLevel) {
		return
	}
	f.emit(core.DebugLevel, seq, buf, length, true, format, args...)
}

// emit renders the line into a pooled buffer and hands a copy to the sink.
func (f *Filter) emit(level core.Level, seq uint32, hex []byte, length int, dump bool, format string, args ...interface{}) {
	buf := formatter.GetBuffer()
	formatter.WriteHeader(buf, f.clock(), f.service, level, seq)

	// NOTE: the render result is not checked. A malformed template or
	// an empty result is forwarded as produced; it is unclear whether
	// this fail-open path is intended, so it is kept.
	_, _ = fmt.Fprintf(buf, format, args...)

	if dump {
		limit := f.HexLimit()
		buf.WriteByte('\n')
		formatter.WriteHex(buf, hex, length, limit)

		rendered := formatter.HexLen(hex, length, limit)
		f.metrics.HexBytesRendered.Add(float64(rendered))
		if all := formatter.HexLen(hex, length, formatter.NoHexLimit); all > rendered {
			f.metrics.HexBytesTruncated.Add(float64(all - rendered))
		}
	}

	line := buf.String()
	formatter.PutBuffer(buf)

	f.metrics.emitted[level].Inc()
	f.sink.Log(line)
}

// Close closes the sink if it holds resources. The Filter must not be
// used afterwards.
func (f *Filter) Close() error {
	if f.sink == nil {
		return nil
	}
	return sink.Close(f.sink)
}
