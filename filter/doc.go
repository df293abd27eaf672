// Package filter is the public API of logfilter: a per-subsystem,
// level-gated line logger for real-time code.
//
// A Filter carries an immutable service name (usually a protocol
// layer such as "PHY" or "MAC"), a mutable threshold and hex limit,
// and a sink.Sink that receives the finished lines:
//
//	f := filter.New("MAC", sink.NewWriter(os.Stderr))
//	f.SetLevel(core.InfoLevel)
//	f.Infof(tti, "grant for rnti=0x%x", rnti)
//	f.DebugHex(tti, pdu, len(pdu), "rx pdu len=%d", len(pdu))
//
// Level checks happen before any formatting, and a Filter without a
// sink skips every call entirely. Arguments are boxed into the
// variadic slice by the caller before the check runs, so a suppressed
// call with arguments can still allocate. Hot paths guard the call:
//
//	if f.Enabled(core.DebugLevel) {
//		f.Debugf(tti, "mcs=%d tbs=%d", mcs, tbs)
//	}
//
// A suppressed call without arguments, or a guarded call, does not
// allocate. The threshold and
// hex limit are atomics read once per call, so a concurrent SetLevel
// is seen by some later call without locking on the log path.
//
// A Filter adds no synchronization around the sink. Goroutines that
// share one Filter rely on the sink for ordering; the sinks in package
// sink are safe for concurrent use. Lines from a single goroutine
// reach the sink in call order.
package filter
