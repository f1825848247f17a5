package encoding

import (
	"fmt"
	"strings"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// EncodeAsciiString appends an AsciiString/EncString/String column to buf:
// varint length followed by the raw bytes, no encoding tag.
func EncodeAsciiString(buf *pool.ByteBuffer, values []*string) {
	for _, v := range values {
		if v == nil {
			continue
		}

		varint.WriteUvarint64(buf, uint64(len(*v)))
		buf.MustWrite([]byte(*v))
	}
}

// DecodeAsciiString reads an AsciiString/EncString/String column. The raw
// bytes are decoded as lossy UTF-8.
func DecodeAsciiString(data []byte, offset int, rows int, nullFlags []byte) ([]*string, int, error) {
	values := make([]*string, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		strLen, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if pos+int(strLen) > len(data) {
			return nil, 0, fmt.Errorf("%w: ascii string body at offset %d", errs.ErrIO, pos)
		}

		// Lossy UTF-8: invalid byte sequences become U+FFFD, mirroring
		// String::from_utf8_lossy rather than passing raw bytes through.
		s := strings.ToValidUTF8(string(data[pos:pos+int(strLen)]), "�")
		values[i] = &s
		pos += int(strLen)
	}

	return values, pos - offset, nil
}
