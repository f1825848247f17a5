package encoding

import (
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// EncodeBinary appends a Binary column to buf: varint length followed by
// the raw bytes, per non-null row.
func EncodeBinary(buf *pool.ByteBuffer, values [][]byte) {
	for _, v := range values {
		if v == nil {
			continue
		}
		varint.WriteUvarint64(buf, uint64(len(v)))
		buf.MustWrite(v)
	}
}

// DecodeBinary reads a Binary column of the given row count.
func DecodeBinary(data []byte, offset int, rows int, nullFlags []byte) ([][]byte, int, error) {
	values := make([][]byte, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		blobLen, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if pos+int(blobLen) > len(data) {
			return nil, 0, fmt.Errorf("%w: binary body at offset %d", errs.ErrIO, pos)
		}
		// make (not append to nil) so a present-but-empty blob stays a
		// non-nil, distinguishable from a null row.
		v := make([]byte, blobLen)
		copy(v, data[pos:pos+int(blobLen)])
		values[i] = v
		pos += int(blobLen)
	}

	return values, pos - offset, nil
}
