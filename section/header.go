package section

import (
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/format"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

const (
	// DataTypeShift is how far hdr1 shifts data_type into position.
	DataTypeShift = 3
	// WireTypeMask selects the wire_type bits after shifting out has_null.
	WireTypeMask = 0x3
	// WireTypeShift is how far hdr1 shifts wire_type into position.
	WireTypeShift = 1
	// HasNullMask selects the has_null bit (bit 0) of hdr1.
	HasNullMask = 0x1

	// HasExtraMask selects the has_extra bit (bit 0) of the hdr2 varint.
	HasExtraMask = 0x1
	// FieldIDShift is how far hdr2 shifts field_id into position.
	FieldIDShift = 1
)

// FieldHeader is the decoded form of a field's header region: hdr1, hdr2,
// and the conditionally-present row count, null bitmap, and extra info.
//
// A zero hdr1 byte ("Terminator") signals the end of an SDO's field list;
// callers check Terminator before trusting the rest of the struct.
type FieldHeader struct {
	DataType   format.DataType
	WireType   format.WireType
	FieldID    uint32
	SingleRow  bool
	Rows       int
	NullFlags  []byte
	ExtraInfo  []byte
	Terminator bool
}

// IsNull reports whether row i is null according to h.NullFlags.
//
// MSB of byte 0 is row 0.
func (h FieldHeader) IsNull(i int) bool {
	if len(h.NullFlags) == 0 {
		return false
	}

	byteIdx := i / 8
	if byteIdx >= len(h.NullFlags) {
		return false
	}
	bitPos := uint(7 - (i % 8))

	return h.NullFlags[byteIdx]&(1<<bitPos) != 0
}

// DecodeFieldHeader reads a field header starting at offset.
//
// sdoSingleRow comes from the enclosing SDO's preamble: single_row
// descriptors never carry a rows varint on the wire, so the field header
// codec cannot determine it on its own.
//
// Returns the decoded header, the number of bytes consumed, and an error if
// the buffer is malformed.
func DecodeFieldHeader(data []byte, offset int, sdoSingleRow bool) (FieldHeader, int, error) {
	pos := offset
	if pos >= len(data) {
		return FieldHeader{}, 0, fmt.Errorf("%w: field header at offset %d", errs.ErrIO, offset)
	}

	r1 := data[pos]
	pos++
	if r1 == 0 {
		return FieldHeader{Terminator: true}, pos - offset, nil
	}

	h := FieldHeader{
		DataType:  format.DataType(r1 >> DataTypeShift),
		WireType:  format.WireType((r1 >> WireTypeShift) & WireTypeMask),
		SingleRow: sdoSingleRow,
	}
	hasNull := r1&HasNullMask != 0

	r2, n, err := varint.ReadUvarint64(data, pos)
	if err != nil {
		return FieldHeader{}, 0, err
	}
	pos += n

	h.FieldID = uint32(r2 >> FieldIDShift) //nolint:gosec
	hasExtra := r2&HasExtraMask != 0

	if h.SingleRow {
		h.Rows = 1
		if hasNull {
			h.NullFlags = []byte{0x80}
		}
	} else {
		rows, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return FieldHeader{}, 0, err
		}
		pos += n
		h.Rows = int(rows) //nolint:gosec

		if hasNull && h.Rows > 0 {
			nBytes := (h.Rows + 7) / 8
			if pos+nBytes > len(data) {
				return FieldHeader{}, 0, fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrInvalidLengthOfNullData, nBytes, pos)
			}
			h.NullFlags = append([]byte(nil), data[pos:pos+nBytes]...)
			pos += nBytes
		}
	}

	if hasExtra {
		extraLen, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return FieldHeader{}, 0, err
		}
		pos += n

		if pos+int(extraLen) > len(data) {
			return FieldHeader{}, 0, fmt.Errorf("%w: need %d bytes at offset %d", errs.ErrInvalidLengthOfExtraInfo, extraLen, pos)
		}
		h.ExtraInfo = append([]byte(nil), data[pos:pos+int(extraLen)]...)
		pos += int(extraLen)
	}

	return h, pos - offset, nil
}

// EncodeFieldHeader appends a field's header region to buf. Outbound fields
// treat every row as non-null; has_extra is set only when extraInfo is
// non-empty.
func EncodeFieldHeader(buf *pool.ByteBuffer, dataType format.DataType, wireType format.WireType, fieldID uint32, extraInfo []byte, singleRow bool, rows int) {
	r1 := byte(dataType)<<DataTypeShift | byte(wireType)<<WireTypeShift
	buf.MustWrite([]byte{r1})

	hasExtra := len(extraInfo) > 0
	r2 := uint64(fieldID) << FieldIDShift
	if hasExtra {
		r2 |= HasExtraMask
	}
	varint.WriteUvarint64(buf, r2)

	if !singleRow {
		varint.WriteUvarint64(buf, uint64(rows))
	}

	if hasExtra {
		varint.WriteUvarint64(buf, uint64(len(extraInfo)))
		buf.MustWrite(extraInfo)
	}
}

// EncodeTerminator appends the zero byte that ends an SDO's field list.
func EncodeTerminator(buf *pool.ByteBuffer) {
	buf.MustWrite([]byte{0x00})
}
