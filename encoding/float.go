package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/sdocodec/endian"
	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/format"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

var floatEngine = endian.GetBigEndianEngine()

// EncodeFloat appends a Float column to buf, one IEEE-754 big-endian 4-byte
// value per non-null row.
//
// The byte order deliberately differs from EncodeDouble: the observed wire
// reads Float big-endian and Double little-endian, and that asymmetry is
// preserved rather than "fixed".
func EncodeFloat(buf *pool.ByteBuffer, values []*float32) {
	for _, v := range values {
		if v == nil {
			continue
		}
		buf.Grow(4)
		start := buf.Len()
		buf.ExtendOrGrow(4)
		floatEngine.PutUint32(buf.Bytes()[start:start+4], math.Float32bits(*v))
	}
}

// DecodeFloat reads a Float column. When wireType is format.Varint, each
// value is a varint cast to float32; otherwise each value is an IEEE-754
// big-endian 4-byte float.
func DecodeFloat(data []byte, offset int, rows int, nullFlags []byte, wireType format.WireType) ([]*float32, int, error) {
	values := make([]*float32, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		if wireType == format.Varint {
			u, n, err := varint.ReadUvarint32(data, pos)
			if err != nil {
				return nil, 0, err
			}
			pos += n
			v := float32(u)
			values[i] = &v

			continue
		}

		if pos+4 > len(data) {
			return nil, 0, fmt.Errorf("%w: float at offset %d", errs.ErrIO, pos)
		}
		v := math.Float32frombits(floatEngine.Uint32(data[pos : pos+4]))
		values[i] = &v
		pos += 4
	}

	return values, pos - offset, nil
}
