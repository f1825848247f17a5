// Package format defines the small closed enumerations that describe how a
// field's value is typed and framed on the wire: DataType and WireType.
package format

// DataType identifies the Go-level type a field's column holds. It is the
// high 5 bits of a field header's first byte (hdr1 >> 3).
type DataType uint8

const (
	NoType    DataType = 0
	String    DataType = 1
	Short     DataType = 2
	Float     DataType = 3
	Double    DataType = 4
	Long      DataType = 5
	Binary    DataType = 6
	Char      DataType = 7
	EncString DataType = 8
	StringW   DataType = 9
	SDOType   DataType = 10
	DateTime  DataType = 11
	LongLong  DataType = 12
	Boolean   DataType = 13
	Unknown   DataType = 14 // 14 and above all decode as "unknown"
)

// WireType identifies how a field's value is framed on the wire, independent
// of its logical DataType. It occupies bits 1-2 of a field header's first
// byte ((hdr1 >> 1) & 0x3).
type WireType uint8

const (
	Varint          WireType = 0
	Bit64           WireType = 1
	LengthDelimited WireType = 2
	EmbeddedSDO     WireType = 3
	WireUnknown     WireType = 4
)

func (d DataType) String() string {
	switch d {
	case NoType:
		return "NoType"
	case String:
		return "String"
	case Short:
		return "Short"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Long:
		return "Long"
	case Binary:
		return "Binary"
	case Char:
		return "Char"
	case EncString:
		return "EncString"
	case StringW:
		return "StringW"
	case SDOType:
		return "SDO"
	case DateTime:
		return "DateTime"
	case LongLong:
		return "LongLong"
	case Boolean:
		return "Boolean"
	default:
		return "Unknown"
	}
}

func (w WireType) String() string {
	switch w {
	case Varint:
		return "Varint"
	case Bit64:
		return "Bit64"
	case LengthDelimited:
		return "LengthDelimited"
	case EmbeddedSDO:
		return "EmbeddedSDO"
	default:
		return "Unknown"
	}
}

// IsString reports whether d is one of the string-shaped data types accepted
// as a Message header id field.
func (d DataType) IsString() bool {
	switch d {
	case StringW, String, EncString:
		return true
	default:
		return false
	}
}
