package formatter

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/philipp01105/logfilter/core"
)

var timestampRe = regexp.MustCompile(`^[0-9]{2}:[0-9]{2}:[0-9]{2}\.[0-9]{3}$`)

func seqBytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestTimestamp_Shape(t *testing.T) {
	times := []time.Time{
		time.Now(),
		time.Date(2026, 2, 18, 0, 0, 0, 0, time.Local),
		time.Date(2026, 2, 18, 23, 59, 59, 999999999, time.Local),
		time.Date(2026, 2, 18, 9, 5, 7, 1000, time.UTC),
	}

	for _, ts := range times {
		got := Timestamp(ts)
		if len(got) != TimestampWidth || TimestampWidth != 12 {
			t.Errorf("Timestamp(%v) = %q, want 12 characters", ts, got)
		}
		if !timestampRe.MatchString(got) {
			t.Errorf("Timestamp(%v) = %q, want HH:MM:SS.fff", ts, got)
		}
	}
}

func TestTimestamp_Value(t *testing.T) {
	ts := time.Date(2026, 2, 18, 13, 4, 5, 678901234, time.Local)
	if got := Timestamp(ts); got != "13:04:05.678" {
		t.Errorf("Timestamp() = %q, want %q", got, "13:04:05.678")
	}
}

func TestTimestamp_NonDecreasing(t *testing.T) {
	base := time.Date(2026, 2, 18, 10, 0, 0, 0, time.Local)
	prev := Timestamp(base)
	for i := 1; i < 1000; i++ {
		cur := Timestamp(base.Add(time.Duration(i) * 997 * time.Microsecond))
		if cur < prev {
			t.Fatalf("timestamp went backwards: %q after %q", cur, prev)
		}
		prev = cur
	}
}

func TestHexBlock_Rows(t *testing.T) {
	tests := []struct {
		name   string
		length int
		limit  int
		rows   int
	}{
		{"empty", 0, 128, 0},
		{"one byte", 1, 128, 1},
		{"one full row", 16, 128, 1},
		{"row and a bit", 17, 128, 2},
		{"several rows", 100, 128, 7},
		{"capped", 100, 32, 2},
		{"capped mid-row", 100, 20, 2},
		{"zero limit", 100, 0, 0},
		{"unbounded", 100, NoHexLimit, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HexBlock(seqBytes(tt.length), tt.length, tt.limit)
			if tt.rows == 0 {
				if got != "" {
					t.Fatalf("HexBlock() = %q, want empty", got)
				}
				return
			}
			if !strings.HasSuffix(got, "\n") {
				t.Errorf("HexBlock() missing trailing newline: %q", got)
			}
			lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
			if len(lines) != tt.rows {
				t.Fatalf("HexBlock() rows = %d, want %d\n%s", len(lines), tt.rows, got)
			}

			remaining := HexLen(seqBytes(tt.length), tt.length, tt.limit)
			for i, line := range lines {
				tokens := strings.Fields(line)
				want := remaining
				if want > 16 {
					want = 16
				}
				// first token is the offset
				if len(tokens)-1 != want {
					t.Errorf("row %d has %d byte tokens, want %d: %q", i, len(tokens)-1, want, line)
				}
				for _, tok := range tokens[1:] {
					if len(tok) != 2 {
						t.Errorf("row %d token %q is not two hex digits", i, tok)
					}
				}
				remaining -= want
			}
		})
	}
}

func TestHexBlock_Exact(t *testing.T) {
	want := "       0000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f \n" +
		"       0010: 10 11 \n"

	if diff := cmp.Diff(want, HexBlock(seqBytes(18), 18, 64)); diff != "" {
		t.Errorf("HexBlock() mismatch (-want +got):\n%s", diff)
	}
}

func TestHexBlock_TruncationMatchesCap(t *testing.T) {
	buf := seqBytes(18)
	capped := HexBlock(buf, len(buf), 16)
	exact := HexBlock(buf[:16], 16, NoHexLimit)
	if capped != exact {
		t.Errorf("capped block differs from rendering exactly cap bytes:\n%q\n%q", capped, exact)
	}
	if strings.Contains(capped, "0010:") {
		t.Errorf("capped block rendered bytes past the cap: %q", capped)
	}
}

func TestHexBlock_LengthClamped(t *testing.T) {
	buf := seqBytes(4)
	if got, want := HexBlock(buf, 40, NoHexLimit), HexBlock(buf, 4, NoHexLimit); got != want {
		t.Errorf("length beyond buffer: got %q, want %q", got, want)
	}
	if got := HexBlock(buf, -3, NoHexLimit); got != "" {
		t.Errorf("negative length: got %q, want empty", got)
	}
	if got := HexBlock(nil, 10, NoHexLimit); got != "" {
		t.Errorf("nil buffer: got %q, want empty", got)
	}
}

func TestHexBlock_WideOffset(t *testing.T) {
	buf := make([]byte, 0x10010)
	got := HexBlock(buf, len(buf), NoHexLimit)
	if !strings.Contains(got, "       10000: ") {
		t.Errorf("offset past 0xffff not rendered in full")
	}
}

func TestHexBlock_Idempotent(t *testing.T) {
	buf := []byte("the quick brown fox jumps over the lazy dog")
	first := HexBlock(buf, len(buf), 32)
	second := HexBlock(buf, len(buf), 32)
	if first != second {
		t.Errorf("HexBlock() not idempotent:\n%q\n%q", first, second)
	}
}

func TestLine_FieldOrder(t *testing.T) {
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.Local)
	r := &Record{
		Time:    ts,
		Service: "MAC",
		Level:   core.ErrorLevel,
		Seq:     5,
		Message: "failure 42",
	}

	want := "13:00:00.000 [MAC] Error   [5] failure 42"
	if got := Line(r); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}
}

func TestLine_WithHex(t *testing.T) {
	ts := time.Date(2026, 2, 18, 13, 0, 0, 0, time.Local)
	r := &Record{
		Time:     ts,
		Service:  "PHY",
		Level:    core.DebugLevel,
		Seq:      7,
		Message:  "dump",
		Dump:     true,
		Hex:      seqBytes(18),
		HexLen:   18,
		HexLimit: 16,
	}

	want := "13:00:00.000 [PHY] Debug   [7] dump\n" +
		"       0000: 00 01 02 03 04 05 06 07 08 09 0a 0b 0c 0d 0e 0f \n"
	if diff := cmp.Diff(want, Line(r)); diff != "" {
		t.Errorf("Line() mismatch (-want +got):\n%s", diff)
	}
}

func TestLine_EmptyHexStillBreaksLine(t *testing.T) {
	r := &Record{Time: time.Now(), Service: "RLC", Level: core.InfoLevel, Message: "empty", Dump: true}
	got := Line(r)
	if !strings.HasSuffix(got, "empty\n") {
		t.Errorf("Line() = %q, want trailing newline after message", got)
	}
}

func TestLine_LongMessageNotTruncated(t *testing.T) {
	msg := strings.Repeat("x", 200*1024)
	got := Line(&Record{Time: time.Now(), Service: "S", Level: core.InfoLevel, Message: msg})
	if !strings.HasSuffix(got, msg) {
		t.Errorf("long message truncated: len(line) = %d", len(got))
	}
}

func BenchmarkLine(b *testing.B) {
	r := &Record{
		Time:    time.Now(),
		Service: "MAC",
		Level:   core.InfoLevel,
		Seq:     1234,
		Message: "rach preamble detected",
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = Line(r)
	}
}

func BenchmarkHexBlock(b *testing.B) {
	buf := seqBytes(256)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = HexBlock(buf, len(buf), 128)
	}
}
