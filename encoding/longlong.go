package encoding

import (
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// EncodeUint64 appends a LongLong column to buf: an unsigned 64-bit varint
// per non-null row.
func EncodeUint64(buf *pool.ByteBuffer, values []*uint64) {
	for _, v := range values {
		if v == nil {
			continue
		}
		varint.WriteUvarint64(buf, *v)
	}
}

// DecodeUint64 reads a LongLong column of the given row count.
func DecodeUint64(data []byte, offset int, rows int, nullFlags []byte) ([]*uint64, int, error) {
	values := make([]*uint64, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		v, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n
		values[i] = &v
	}

	return values, pos - offset, nil
}
