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

var doubleEngine = endian.GetLittleEndianEngine()

// EncodeDouble appends a Double column to buf, one IEEE-754 little-endian
// 8-byte value per non-null row.
//
// Only the fixed-width wire type is exercised by this codec's encoder; the
// varint branch exists solely on the decode side for values the wire
// format is observed to carry that way.
func EncodeDouble(buf *pool.ByteBuffer, values []*float64) {
	for _, v := range values {
		if v == nil {
			continue
		}
		buf.Grow(8)
		start := buf.Len()
		buf.ExtendOrGrow(8)
		doubleEngine.PutUint64(buf.Bytes()[start:start+8], math.Float64bits(*v))
	}
}

// DecodeDouble reads a Double column. When wireType is format.Varint, each
// value is a varint widened from an integer to a float64; otherwise each
// value is an IEEE-754 little-endian 8-byte double.
func DecodeDouble(data []byte, offset int, rows int, nullFlags []byte, wireType format.WireType) ([]*float64, int, error) {
	values := make([]*float64, rows)
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
			v := float64(u)
			values[i] = &v

			continue
		}

		if pos+8 > len(data) {
			return nil, 0, fmt.Errorf("%w: double at offset %d", errs.ErrIO, pos)
		}
		v := math.Float64frombits(doubleEngine.Uint64(data[pos : pos+8]))
		values[i] = &v
		pos += 8
	}

	return values, pos - offset, nil
}
