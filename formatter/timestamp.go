package formatter

import "time"

// TimestampLayout renders local time-of-day cropped to 12 characters.
const TimestampLayout = "15:04:05.000"

// TimestampWidth is the length of every rendered timestamp.
const TimestampWidth = len(TimestampLayout)

// AppendTimestamp appends the local time-of-day of t to dst.
// The date is discarded, so the value wraps at midnight.
func AppendTimestamp(dst []byte, t time.Time) []byte {
	return t.Local().AppendFormat(dst, TimestampLayout)
}

// Timestamp returns the rendered time-of-day of t.
func Timestamp(t time.Time) string {
	return string(AppendTimestamp(make([]byte, 0, TimestampWidth), t))
}
