package encoding

import (
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
)

// EncodeChar appends a Char column to buf: one byte per non-null row.
// Only the low byte of each rune is written: Char is a single-byte wire
// type, so callers pushing non-ASCII runes lose information on encode, the
// mirror of DecodeChar's "non-scalars become U+0000" rule.
func EncodeChar(buf *pool.ByteBuffer, values []*rune) {
	for _, v := range values {
		if v == nil {
			continue
		}
		buf.MustWrite([]byte{byte(*v)})
	}
}

// DecodeChar reads a Char column, widening each byte to a Unicode scalar.
// A byte that is not itself a valid Unicode scalar (none are, since every
// byte value 0-255 is a valid scalar on its own, but the rule is kept for
// forward compatibility with wider char widths) becomes U+0000.
func DecodeChar(data []byte, offset int, rows int, nullFlags []byte) ([]*rune, int, error) {
	values := make([]*rune, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}
		if pos >= len(data) {
			return nil, 0, fmt.Errorf("%w: char at offset %d", errs.ErrIO, pos)
		}

		r := rune(data[pos])
		if r > 0x10FFFF {
			r = 0
		}
		values[i] = &r
		pos++
	}

	return values, pos - offset, nil
}
