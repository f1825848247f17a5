package encoding

import (
	"fmt"
	"unicode/utf16"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// stringWEncodingUTF8 and stringWEncodingUTF16BE are the encoding tags
// carried after a non-empty StringW length.
const (
	stringWEncodingUTF8    = 0
	stringWEncodingUTF16BE = 1
)

// EncodeStringW appends a StringW column to buf. Null rows are skipped
// entirely; present rows are always written as UTF-8 with encoding tag 0.
func EncodeStringW(buf *pool.ByteBuffer, values []*string) {
	for _, v := range values {
		if v == nil {
			continue
		}

		varint.WriteUvarint64(buf, uint64(len(*v))+1)
		buf.MustWrite([]byte{stringWEncodingUTF8})
		buf.MustWrite([]byte(*v))
	}
}

// DecodeStringW reads a StringW column of the given row count, consulting
// nullFlags (nil means "no nulls"). Returns the decoded values, the number
// of bytes consumed, and an error on buffer underflow.
func DecodeStringW(data []byte, offset int, rows int, nullFlags []byte) ([]*string, int, error) {
	values := make([]*string, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		wireLen, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if wireLen == 0 {
			empty := ""
			values[i] = &empty

			continue
		}

		strLen := int(wireLen - 1)
		if pos >= len(data) {
			return nil, 0, fmt.Errorf("%w: stringw encoding tag at offset %d", errs.ErrIO, pos)
		}
		tag := data[pos]
		pos++

		switch tag {
		case stringWEncodingUTF8:
			if pos+strLen > len(data) {
				return nil, 0, fmt.Errorf("%w: stringw utf8 body at offset %d", errs.ErrIO, pos)
			}
			s := string(data[pos : pos+strLen])
			values[i] = &s
			pos += strLen
		case stringWEncodingUTF16BE:
			byteLen := strLen * 2
			if pos+byteLen > len(data) {
				return nil, 0, fmt.Errorf("%w: stringw utf16 body at offset %d", errs.ErrIO, pos)
			}
			s := decodeUTF16BE(data[pos : pos+byteLen])
			values[i] = &s
			pos += byteLen
		default:
			// Unknown encoding tag: empty string for this row. The tag byte
			// itself was already consumed; no further bytes belong to this
			// row.
			empty := ""
			values[i] = &empty
		}
	}

	return values, pos - offset, nil
}

func decodeUTF16BE(b []byte) string {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = uint16(b[i*2])<<8 | uint16(b[i*2+1])
	}

	return string(utf16.Decode(units))
}

// isNull reports whether row i is null in the given bitmap, mirroring
// section.FieldHeader.IsNull for use by value codecs that only receive the
// raw bitmap rather than a full FieldHeader.
func isNull(nullFlags []byte, i int) bool {
	if len(nullFlags) == 0 {
		return false
	}
	byteIdx := i / 8
	if byteIdx >= len(nullFlags) {
		return false
	}

	return nullFlags[byteIdx]&(1<<uint(7-(i%8))) != 0
}
