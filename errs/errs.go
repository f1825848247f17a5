// Package errs defines the sentinel errors returned by the codec packages.
//
// Callers should compare against these with errors.Is, since call sites wrap
// them with fmt.Errorf("%w: ...") to attach positional context.
package errs

import "errors"

var (
	// ErrIO is returned when a read or write runs out of buffer.
	ErrIO = errors.New("sdo: buffer underflow")

	// ErrInvalidLengthOfNullData is returned when a null bitmap's byte count
	// does not match the row count it is supposed to cover.
	ErrInvalidLengthOfNullData = errors.New("sdo: invalid length of null data")

	// ErrInvalidLengthOfExtraInfo is returned when a field's extra_info region
	// cannot be read for its declared length.
	ErrInvalidLengthOfExtraInfo = errors.New("sdo: invalid length of extra info")

	// ErrInvalidHeaderID is returned when a Message header's first field is
	// not a string- or short-typed value.
	ErrInvalidHeaderID = errors.New("sdo: invalid message header id field")

	// ErrMissingDateTimePrecision is returned when a DateTime field has no
	// extra_info, or extra_info is not exactly one byte.
	ErrMissingDateTimePrecision = errors.New("sdo: missing datetime precision")

	// ErrInvalidDateTimePrecision is returned when a DateTime field's
	// precision byte is outside {0,1,2,3}.
	ErrInvalidDateTimePrecision = errors.New("sdo: invalid datetime precision")

	// ErrMaxDepthExceeded is returned when nested-SDO recursion exceeds the
	// configured depth limit.
	ErrMaxDepthExceeded = errors.New("sdo: max nesting depth exceeded")
)
