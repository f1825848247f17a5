// Package varint implements the unsigned variable-length integer framing
// used throughout the SDO wire format: 7-bit little-endian groups with the
// MSB of each byte as a continuation flag.
//
// This is the one primitive every other layer of the codec builds on (field
// header fields, row counts, extra_info length, string lengths, the topic
// tag, and scalar values for Long/Short/LongLong/DateTime).
package varint

import (
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
)

// maxVarintBytes bounds how many bytes a single varint may occupy before a
// read is considered malformed. 10 bytes is exactly what a full 64-bit value
// needs (ceil(64/7)); an 11th byte is rejected.
const maxVarintBytes = 10

// ReadUvarint64 decodes an unsigned 64-bit varint starting at offset.
//
// Returns the decoded value, the number of bytes consumed, and an error
// (errs.ErrIO) if the buffer runs out before a terminating byte is seen.
func ReadUvarint64(data []byte, offset int) (value uint64, n int, err error) {
	var shift uint
	pos := offset
	for {
		if pos >= len(data) {
			return 0, 0, fmt.Errorf("%w: varint truncated at offset %d", errs.ErrIO, offset)
		}
		if pos-offset >= maxVarintBytes {
			return 0, 0, fmt.Errorf("%w: varint too long at offset %d", errs.ErrIO, offset)
		}

		b := data[pos]
		pos++
		value |= uint64(b&0x7F) << shift
		if b&0x80 == 0 {
			return value, pos - offset, nil
		}
		shift += 7
	}
}

// ReadUvarint32 decodes an unsigned varint and narrows it to uint32.
//
// Values wider than 32 bits are truncated rather than rejected: the wire
// format never documents overflow behavior, and truncation matches what a
// naive reader observed on the wire would do.
func ReadUvarint32(data []byte, offset int) (value uint32, n int, err error) {
	v, n, err := ReadUvarint64(data, offset)
	if err != nil {
		return 0, 0, err
	}

	return uint32(v), n, nil //nolint:gosec
}

// WriteUvarint64 appends the varint encoding of value to buf.
func WriteUvarint64(buf *pool.ByteBuffer, value uint64) {
	buf.Grow(Len(value))
	for value >= 0x80 {
		buf.MustWrite([]byte{byte(value) | 0x80})
		value >>= 7
	}
	buf.MustWrite([]byte{byte(value)})
}

// WriteUvarint32 appends the varint encoding of value to buf.
func WriteUvarint32(buf *pool.ByteBuffer, value uint32) {
	WriteUvarint64(buf, uint64(value))
}

// Len returns the number of bytes the varint encoding of value occupies.
func Len(value uint64) int {
	n := 1
	for value >= 0x80 {
		value >>= 7
		n++
	}

	return n
}
