package section

const (
	// VersionMask selects the low 4 bits of a Preamble byte.
	VersionMask = 0x0F
	// SingleRowMask selects bit 4 of a Preamble byte.
	SingleRowMask = 0x10
	// PadShift is how far the pad count is shifted into the byte.
	PadShift = 5

	// BinaryV3 is the only version value observed on the wire.
	BinaryV3 = 0x07
)

// Preamble is the packed one-byte field that opens every SDO:
//
//	bits: [pad:3 | single_row:1 | version:4]
type Preamble struct {
	Version   uint8
	SingleRow bool
	PadBytes  uint8
}

// NewPreamble returns the preamble an encode starts from: version BinaryV3,
// single_row=true, no padding. sdo.Encode clears single_row when any field
// holds other than exactly one row.
func NewPreamble() Preamble {
	return Preamble{Version: BinaryV3, SingleRow: true, PadBytes: 0}
}

// DecodePreamble unpacks a Preamble from its one-byte wire representation.
func DecodePreamble(b byte) Preamble {
	return Preamble{
		Version:   b & VersionMask,
		SingleRow: b&SingleRowMask != 0,
		PadBytes:  b >> PadShift,
	}
}

// Encode packs p into its one-byte wire representation.
func (p Preamble) Encode() byte {
	b := p.Version & VersionMask
	if p.SingleRow {
		b |= SingleRowMask
	}
	b |= p.PadBytes << PadShift

	return b
}
