package encoding

import (
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// EncodeUint32 appends a Long/Short column to buf: an unsigned 32-bit
// varint per non-null row. Long and Short differ only in declared width,
// not in encoding.
func EncodeUint32(buf *pool.ByteBuffer, values []*uint32) {
	for _, v := range values {
		if v == nil {
			continue
		}
		varint.WriteUvarint32(buf, *v)
	}
}

// DecodeUint32 reads a Long/Short column of the given row count.
func DecodeUint32(data []byte, offset int, rows int, nullFlags []byte) ([]*uint32, int, error) {
	values := make([]*uint32, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		v, n, err := varint.ReadUvarint32(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n
		values[i] = &v
	}

	return values, pos - offset, nil
}
