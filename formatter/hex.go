package formatter

import (
	"bytes"
	"strconv"
)

const (
	hexDigits  = "0123456789abcdef"
	hexRowLen  = 16
	hexIndent  = "       "
	offsetSize = 4
)

// NoHexLimit disables truncation of hex blocks.
const NoHexLimit = -1

// HexLen returns how many bytes of buf a hex block renders for the
// requested length and limit. length is clamped to [0, len(buf)] and
// then to limit, unless limit is negative.
func HexLen(buf []byte, length, limit int) int {
	n := length
	if n > len(buf) {
		n = len(buf)
	}
	if n < 0 {
		n = 0
	}
	if limit >= 0 && n > limit {
		n = limit
	}
	return n
}

// AppendHex appends a hex table of buf to dst. Each row holds a
// zero-padded hex offset and up to 16 bytes, and ends with a newline.
// Bytes past the limit are omitted.
func AppendHex(dst []byte, buf []byte, length, limit int) []byte {
	n := HexLen(buf, length, limit)
	for c := 0; c < n; {
		dst = append(dst, hexIndent...)
		dst = appendOffset(dst, c)
		dst = append(dst, ':', ' ')

		end := c + hexRowLen
		if end > n {
			end = n
		}
		for ; c < end; c++ {
			b := buf[c]
			dst = append(dst, hexDigits[b>>4], hexDigits[b&0x0f], ' ')
		}
		dst = append(dst, '\n')
	}
	return dst
}

// WriteHex renders the hex table of buf straight into w.
func WriteHex(w *bytes.Buffer, buf []byte, length, limit int) {
	w.Write(AppendHex(w.AvailableBuffer(), buf, length, limit))
}

// HexBlock returns the hex table of buf as a string. It is empty when
// nothing is left to render.
func HexBlock(buf []byte, length, limit int) string {
	n := HexLen(buf, length, limit)
	if n == 0 {
		return ""
	}
	rows := (n + hexRowLen - 1) / hexRowLen
	dst := make([]byte, 0, rows*(len(hexIndent)+offsetSize+3)+n*3)
	return string(AppendHex(dst, buf, n, NoHexLimit))
}

// appendOffset writes c in hex, padded to at least four digits.
func appendOffset(dst []byte, c int) []byte {
	var tmp [16]byte
	digits := strconv.AppendUint(tmp[:0], uint64(c), 16)
	for i := len(digits); i < offsetSize; i++ {
		dst = append(dst, '0')
	}
	return append(dst, digits...)
}
