package encoding

import (
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
)

// EncodeBoolean packs a Boolean column MSB-first, 8 bits per byte, but only
// across non-null rows: a null row contributes no bit at all. The final
// partial byte, if any, is flushed with the remaining bits zero-padded.
func EncodeBoolean(values []*bool) []byte {
	var out []byte
	var curByte byte
	var bitCount int

	for _, v := range values {
		if v == nil {
			continue
		}

		curByte <<= 1
		if *v {
			curByte |= 1
		}
		bitCount++

		if bitCount == 8 {
			out = append(out, curByte)
			curByte = 0
			bitCount = 0
		}
	}

	if bitCount > 0 {
		curByte <<= uint(8 - bitCount) //nolint:gosec
		out = append(out, curByte)
	}

	return out
}

// EncodeBooleanTo appends the packed Boolean bitmap for values to buf.
func EncodeBooleanTo(buf *pool.ByteBuffer, values []*bool) {
	buf.MustWrite(EncodeBoolean(values))
}

// boolBitReader walks a packed boolean bitmap one bit at a time, MSB-first,
// refilling its current byte every 8 bits consumed.
type boolBitReader struct {
	data     []byte
	pos      int
	curByte  byte
	bitsLeft int
}

func (r *boolBitReader) next() (bool, error) {
	if r.bitsLeft == 0 {
		if r.pos >= len(r.data) {
			return false, fmt.Errorf("%w: boolean bitmap at offset %d", errs.ErrIO, r.pos)
		}
		r.curByte = r.data[r.pos]
		r.pos++
		r.bitsLeft = 8
	}

	bit := r.curByte&0x80 != 0
	r.curByte <<= 1
	r.bitsLeft--

	return bit, nil
}

// DecodeBoolean reads a Boolean column of the given row count from data
// starting at offset. bitmapLen is the number of packed-bitmap bytes
// available to this field's value region (ceil(non-null rows / 8)).
func DecodeBoolean(data []byte, offset int, rows int, nullFlags []byte, bitmapLen int) ([]*bool, int, error) {
	values := make([]*bool, rows)
	end := offset + bitmapLen
	if end > len(data) {
		return nil, 0, fmt.Errorf("%w: boolean bitmap at offset %d", errs.ErrIO, offset)
	}

	reader := &boolBitReader{data: data[:end]}
	reader.pos = offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		bit, err := reader.next()
		if err != nil {
			return nil, 0, err
		}
		v := bit
		values[i] = &v
	}

	return values, bitmapLen, nil
}

// BooleanBitmapLen returns the number of bytes the packed bitmap for
// nonNullCount boolean rows occupies.
func BooleanBitmapLen(nonNullCount int) int {
	return (nonNullCount + 7) / 8
}
