// Package section defines the low-level binary layout of the two fixed
// structures in the SDO wire format: the SDO preamble byte and the field
// header that precedes every field's row vector.
//
// # Overview
//
// Unlike a fixed-size blob header, both structures here are mostly one byte
// wide with bits packed into sub-fields, plus small conditionally-present
// regions (row count, null bitmap, extra info). This package owns the
// bit-packing and leaves value encoding to the encoding package.
//
//	preamble := 1 byte  bits: [pad:3 | single_row:1 | version:4]
//	hdr1     := 1 byte  bits: [data_type:5 | wire_type:2 | has_null:1]
//	hdr2     := varint  bits: [field_id:31 | has_extra:1]
package section
