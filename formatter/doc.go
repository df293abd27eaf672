// Package formatter renders log lines.
//
// Every function here is pure: the same input produces byte-identical
// output. A line is laid out as
//
//	<timestamp> [<service>] <label> [<seq>] <message>
//
// where timestamp is the 12-character local time-of-day HH:MM:SS.fff
// and label is the 7-character level column. A hex dump line carries
// a newline after the message followed by the hex block:
//
//	       0000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f
//	       0010: 10 11
//
// Hex blocks are capped at a caller-supplied limit; bytes past it are
// dropped silently.
//
// Lines are built in pooled bytes.Buffer values using Append-style
// helpers. Buffers larger than 64 KiB are not returned to the pool to
// prevent a single large log line from permanently inflating memory
// usage. Strings returned to callers are always copies.
package formatter
