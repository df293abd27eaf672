package formatter

import (
	"bytes"
	"strconv"
	"time"

	"github.com/philipp01105/logfilter/core"
)

// Record holds the fields of one log line whose message is already
// rendered.
type Record struct {
	Time    time.Time
	Service string
	Level   core.Level
	Seq     uint32
	Message string
	// Dump appends a hex block of Hex after the message
	Dump     bool
	Hex      []byte
	HexLen   int
	HexLimit int
}

// AppendHeader appends "<timestamp> [<service>] <label> [<seq>] " to dst.
func AppendHeader(dst []byte, t time.Time, service string, level core.Level, seq uint32) []byte {
	dst = AppendTimestamp(dst, t)
	dst = append(dst, " ["...)
	dst = append(dst, service...)
	dst = append(dst, "] "...)
	dst = append(dst, level.Label()...)
	dst = append(dst, " ["...)
	dst = strconv.AppendUint(dst, uint64(seq), 10)
	return append(dst, "] "...)
}

// WriteHeader renders the line header straight into buf.
func WriteHeader(buf *bytes.Buffer, t time.Time, service string, level core.Level, seq uint32) {
	buf.Write(AppendHeader(buf.AvailableBuffer(), t, service, level, seq))
}

// FormatRecord writes the full line for r into buf.
func FormatRecord(buf *bytes.Buffer, r *Record) {
	WriteHeader(buf, r.Time, r.Service, r.Level, r.Seq)
	buf.WriteString(r.Message)
	if r.Dump {
		buf.WriteByte('\n')
		WriteHex(buf, r.Hex, r.HexLen, r.HexLimit)
	}
}

// Line returns the rendered line for r. The result does not share
// memory with any pooled buffer.
func Line(r *Record) string {
	buf := GetBuffer()
	FormatRecord(buf, r)
	s := buf.String()
	PutBuffer(buf)
	return s
}
