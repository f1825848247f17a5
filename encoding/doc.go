// Package encoding implements the per-DataType value readers and writers
// that a field's column vector is built from.
//
// Every codec in this package shares the same shape, because every field's
// value region shares the same null-skipping rule: a field carries exactly
// Rows logical values, but a null row contributes no bytes to the wire at
// all. So each decoder walks the row index from 0 to Rows-1, consults the
// null bitmap, and only advances its read cursor on non-null rows. Encoders
// are the mirror image: they walk a []*T (nil entry = null row) and only
// emit bytes for non-null entries.
//
// Nullability is modeled with plain Go pointers rather than a boxed Option
// type: a nil *T is absent, a non-nil *T is present.
//
// # Varint vs fixed-width
//
// Float and Double decoders additionally branch on format.WireType: Varint
// reads the value as an integer-widened varint, anything else falls back to
// fixed-width IEEE-754. The encoders always write the fixed-width form. The
// two fixed-width paths intentionally use
// different byte orders (Double little-endian, Float big-endian), preserved
// from the reverse-engineered wire.
package encoding
