package sdo

import (
	"fmt"
	"time"

	"github.com/arloliu/sdocodec/encoding"
	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/format"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/section"
	"github.com/arloliu/sdocodec/topic"
	"github.com/arloliu/sdocodec/varint"
)

// DefaultMaxDepth bounds nested-SDO recursion when a caller does not supply
// its own limit, guarding against pathologically nested inputs.
const DefaultMaxDepth = 32

// FieldDescriptor is the decoded metadata for one column.
type FieldDescriptor struct {
	DataType  format.DataType
	WireType  format.WireType
	FieldID   uint32
	SingleRow bool
	Rows      int
	NullFlags []byte
	ExtraInfo []byte

	// Diagnostics collects soft-failure notes produced while decoding this
	// field. Only an out-of-range data type is recorded here; an unknown
	// StringW encoding tag, an out-of-range char and a DateTime overflow
	// substitute their fallback value (empty string, U+0000, the base
	// instant) without adding a note. Decode never fails for these.
	Diagnostics []string
}

// Field pairs a FieldDescriptor with its decoded column values.
type Field struct {
	Descriptor FieldDescriptor
	Data       Data
}

// SDO is a tagged record: a topic plus an ordered sequence of fields.
// Field order is significant: it is the on-wire order.
type SDO struct {
	Topic  topic.Topic
	Fields []Field
}

// New returns an empty SDO for the given topic, ready for Add* calls.
func New(t topic.Topic) *SDO {
	return &SDO{Topic: t}
}

func (s *SDO) addField(descriptor FieldDescriptor, data Data) {
	descriptor.SingleRow = descriptor.Rows == 1
	s.Fields = append(s.Fields, Field{Descriptor: descriptor, Data: data})
}

// AddStringW appends a StringW field built from values.
func (s *SDO) AddStringW(fieldID uint32, values []*string) {
	s.addField(
		FieldDescriptor{DataType: format.StringW, WireType: format.LengthDelimited, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.StringW, Strings: values},
	)
}

// AddAsciiString appends an AsciiString field built from values.
func (s *SDO) AddAsciiString(fieldID uint32, values []*string) {
	s.addField(
		FieldDescriptor{DataType: format.String, WireType: format.LengthDelimited, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.String, Strings: values},
	)
}

// AddLong appends a Long field built from values.
func (s *SDO) AddLong(fieldID uint32, values []*uint32) {
	s.addField(
		FieldDescriptor{DataType: format.Long, WireType: format.Varint, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Long, Uint32s: values},
	)
}

// AddShort appends a Short field built from values.
func (s *SDO) AddShort(fieldID uint32, values []*uint32) {
	s.addField(
		FieldDescriptor{DataType: format.Short, WireType: format.Varint, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Short, Uint32s: values},
	)
}

// AddLongLong appends a LongLong field built from values.
func (s *SDO) AddLongLong(fieldID uint32, values []*uint64) {
	s.addField(
		FieldDescriptor{DataType: format.LongLong, WireType: format.Varint, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.LongLong, Uint64s: values},
	)
}

// AddBoolean appends a Boolean field built from values.
func (s *SDO) AddBoolean(fieldID uint32, values []*bool) {
	s.addField(
		FieldDescriptor{DataType: format.Boolean, WireType: format.Bit64, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Boolean, Booleans: values},
	)
}

// AddFloat appends a Float field built from values, using the fixed-width
// big-endian wire type.
func (s *SDO) AddFloat(fieldID uint32, values []*float32) {
	s.addField(
		FieldDescriptor{DataType: format.Float, WireType: format.Bit64, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Float, Floats: values},
	)
}

// AddDouble appends a Double field built from values, using the fixed-width
// little-endian wire type.
func (s *SDO) AddDouble(fieldID uint32, values []*float64) {
	s.addField(
		FieldDescriptor{DataType: format.Double, WireType: format.Bit64, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Double, Doubles: values},
	)
}

// AddChar appends a Char field built from values.
func (s *SDO) AddChar(fieldID uint32, values []*rune) {
	s.addField(
		FieldDescriptor{DataType: format.Char, WireType: format.Varint, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Char, Chars: values},
	)
}

// AddBinary appends a Binary field built from values.
func (s *SDO) AddBinary(fieldID uint32, values [][]byte) {
	s.addField(
		FieldDescriptor{DataType: format.Binary, WireType: format.LengthDelimited, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.Binary, Binaries: values},
	)
}

// AddDateTime appends a DateTime field built from values. A DateTime column
// always carries its one-byte precision code in ExtraInfo.
func (s *SDO) AddDateTime(fieldID uint32, values []*time.Time, precision byte) {
	s.addField(
		FieldDescriptor{
			DataType:  format.DateTime,
			WireType:  format.Varint,
			FieldID:   fieldID,
			Rows:      len(values),
			ExtraInfo: []byte{precision},
		},
		Data{Kind: format.DateTime, DateTimes: values},
	)
}

// AddSDO appends a nested SDO field built from values.
func (s *SDO) AddSDO(fieldID uint32, values []*SDO) {
	s.addField(
		FieldDescriptor{DataType: format.SDOType, WireType: format.EmbeddedSDO, FieldID: fieldID, Rows: len(values)},
		Data{Kind: format.SDOType, SDOs: values},
	)
}

// Encode appends s to buf: preamble, topic varint (topic+1), each field,
// then a zero terminator.
//
// The preamble's single_row bit is SDO-level state: it can only be set when
// every field holds exactly one row, because the decoder applies it to all
// field headers uniformly. An SDO with any multi-row field is encoded with
// single_row clear and an explicit rows varint on every field.
func Encode(buf *pool.ByteBuffer, s *SDO) error {
	preamble := section.NewPreamble()
	for _, f := range s.Fields {
		if f.Descriptor.Rows != 1 {
			preamble.SingleRow = false
			break
		}
	}

	buf.MustWrite([]byte{preamble.Encode()})
	varint.WriteUvarint64(buf, topic.ToWire(s.Topic))

	for _, f := range s.Fields {
		if err := encodeField(buf, f, preamble.SingleRow); err != nil {
			return err
		}
	}

	section.EncodeTerminator(buf)

	return nil
}

func encodeField(buf *pool.ByteBuffer, f Field, singleRow bool) error {
	d := f.Descriptor
	section.EncodeFieldHeader(buf, d.DataType, d.WireType, d.FieldID, d.ExtraInfo, singleRow, d.Rows)

	switch d.DataType {
	case format.StringW:
		encoding.EncodeStringW(buf, f.Data.Strings)
	case format.String, format.EncString:
		encoding.EncodeAsciiString(buf, f.Data.Strings)
	case format.Long, format.Short:
		encoding.EncodeUint32(buf, f.Data.Uint32s)
	case format.LongLong:
		encoding.EncodeUint64(buf, f.Data.Uint64s)
	case format.Boolean:
		encoding.EncodeBooleanTo(buf, f.Data.Booleans)
	case format.Float:
		encoding.EncodeFloat(buf, f.Data.Floats)
	case format.Double:
		encoding.EncodeDouble(buf, f.Data.Doubles)
	case format.Char:
		encoding.EncodeChar(buf, f.Data.Chars)
	case format.Binary:
		encoding.EncodeBinary(buf, f.Data.Binaries)
	case format.DateTime:
		precision, err := encoding.ValidateDateTimePrecision(d.ExtraInfo)
		if err != nil {
			return err
		}
		encoding.EncodeDateTime(buf, f.Data.DateTimes, precision)
	case format.SDOType:
		for _, nested := range f.Data.SDOs {
			if nested == nil {
				continue
			}
			if err := Encode(buf, nested); err != nil {
				return err
			}
		}
	default:
		// NoType and Unknown carry no value bytes.
	}

	return nil
}

// Decode reads one SDO from data starting at offset, using DefaultMaxDepth
// for nested-SDO recursion.
func Decode(data []byte, offset int) (*SDO, int, error) {
	return DecodeDepth(data, offset, DefaultMaxDepth)
}

// DecodeDepth reads one SDO from data starting at offset, failing with
// errs.ErrMaxDepthExceeded once maxDepth nested SDOs have been entered.
func DecodeDepth(data []byte, offset int, maxDepth int) (*SDO, int, error) {
	if maxDepth < 0 {
		return nil, 0, errs.ErrMaxDepthExceeded
	}

	pos := offset
	if pos >= len(data) {
		return nil, 0, fmt.Errorf("%w: sdo preamble at offset %d", errs.ErrIO, pos)
	}

	preamble := section.DecodePreamble(data[pos])
	pos++
	pos += int(preamble.PadBytes)

	wireTopic, n, err := varint.ReadUvarint64(data, pos)
	if err != nil {
		return nil, 0, err
	}
	pos += n

	s := &SDO{Topic: topic.FromWire(wireTopic)}

	// The terminator byte is optional at the very end of the buffer: the
	// field list also ends when the input runs out.
	for pos < len(data) {
		header, n, err := section.DecodeFieldHeader(data, pos, preamble.SingleRow)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		if header.Terminator {
			break
		}

		field, n, err := decodeFieldValue(data, pos, header, maxDepth)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		s.Fields = append(s.Fields, field)
	}

	return s, pos - offset, nil
}

func decodeFieldValue(data []byte, offset int, header section.FieldHeader, maxDepth int) (Field, int, error) {
	descriptor := FieldDescriptor{
		DataType:  header.DataType,
		WireType:  header.WireType,
		FieldID:   header.FieldID,
		SingleRow: header.SingleRow,
		Rows:      header.Rows,
		NullFlags: header.NullFlags,
		ExtraInfo: header.ExtraInfo,
	}

	switch header.DataType {
	case format.StringW:
		vals, n, err := encoding.DecodeStringW(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: format.StringW, Strings: vals}}, n, err
	case format.String, format.EncString:
		vals, n, err := encoding.DecodeAsciiString(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: header.DataType, Strings: vals}}, n, err
	case format.Long, format.Short:
		vals, n, err := encoding.DecodeUint32(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: header.DataType, Uint32s: vals}}, n, err
	case format.LongLong:
		vals, n, err := encoding.DecodeUint64(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: format.LongLong, Uint64s: vals}}, n, err
	case format.Boolean:
		nonNull := header.Rows - countNull(header.NullFlags, header.Rows)
		bitmapLen := encoding.BooleanBitmapLen(nonNull)
		vals, n, err := encoding.DecodeBoolean(data, offset, header.Rows, header.NullFlags, bitmapLen)
		return Field{descriptor, Data{Kind: format.Boolean, Booleans: vals}}, n, err
	case format.Float:
		vals, n, err := encoding.DecodeFloat(data, offset, header.Rows, header.NullFlags, header.WireType)
		return Field{descriptor, Data{Kind: format.Float, Floats: vals}}, n, err
	case format.Double:
		vals, n, err := encoding.DecodeDouble(data, offset, header.Rows, header.NullFlags, header.WireType)
		return Field{descriptor, Data{Kind: format.Double, Doubles: vals}}, n, err
	case format.Char:
		vals, n, err := encoding.DecodeChar(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: format.Char, Chars: vals}}, n, err
	case format.Binary:
		vals, n, err := encoding.DecodeBinary(data, offset, header.Rows, header.NullFlags)
		return Field{descriptor, Data{Kind: format.Binary, Binaries: vals}}, n, err
	case format.DateTime:
		precision, err := encoding.ValidateDateTimePrecision(header.ExtraInfo)
		if err != nil {
			return Field{Descriptor: descriptor}, 0, err
		}
		vals, n, err := encoding.DecodeDateTime(data, offset, header.Rows, header.NullFlags, precision)
		return Field{descriptor, Data{Kind: format.DateTime, DateTimes: vals}}, n, err
	case format.SDOType:
		sdos := make([]*SDO, header.Rows)
		pos := offset
		for i := range header.Rows {
			if header.IsNull(i) {
				continue
			}
			nested, n, err := DecodeDepth(data, pos, maxDepth-1)
			if err != nil {
				return Field{Descriptor: descriptor}, 0, err
			}
			sdos[i] = nested
			pos += n
		}

		return Field{descriptor, Data{Kind: format.SDOType, SDOs: sdos}}, pos - offset, nil
	default:
		descriptor.Diagnostics = append(descriptor.Diagnostics,
			fmt.Sprintf("unknown data type %d: field %d treated as Unknown, no value bytes consumed", header.DataType, header.FieldID))

		return Field{Descriptor: descriptor, Data: Data{Kind: format.Unknown}}, 0, nil
	}
}

func countNull(nullFlags []byte, rows int) int {
	count := 0
	for i := range rows {
		byteIdx := i / 8
		if byteIdx >= len(nullFlags) {
			continue
		}
		if nullFlags[byteIdx]&(1<<uint(7-(i%8))) != 0 {
			count++
		}
	}

	return count
}
