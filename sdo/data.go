// Package sdo implements the SDO ("Self-Describing Object") record: a
// numeric topic tag plus an ordered list of typed, nullable-per-row field
// columns, recursively nestable.
package sdo

import (
	"strings"
	"time"

	"github.com/arloliu/sdocodec/format"
)

// Data is the tagged union of typed column vectors a Field carries. Exactly
// one of the slices below is populated, selected by Kind; the others stay
// nil. A struct with a Kind tag is used instead of an interface hierarchy
// since the set of variants is closed and the zero value is meaningful ("no
// value decoded for this field").
type Data struct {
	Kind format.DataType

	Strings   []*string // StringW, AsciiString, EncString, String
	Booleans  []*bool
	Uint32s   []*uint32 // Short, Long
	Uint64s   []*uint64 // LongLong
	Floats    []*float32
	Doubles   []*float64
	Chars     []*rune
	Binaries  [][]byte
	DateTimes []*time.Time
	SDOs      []*SDO
}

// ToString comma-joins the present values of a StringW/AsciiString column.
func (d Data) ToString() (string, bool) {
	if d.Strings == nil {
		return "", false
	}

	present := make([]string, 0, len(d.Strings))
	for _, v := range d.Strings {
		if v != nil {
			present = append(present, *v)
		}
	}

	return strings.Join(present, ","), true
}

// AsFirstStr returns the first non-null string value.
func (d Data) AsFirstStr() (string, bool) {
	for _, v := range d.Strings {
		if v != nil {
			return *v, true
		}
	}

	return "", false
}

// AsVecStr returns the raw string column, preserving nullability.
func (d Data) AsVecStr() ([]*string, bool) {
	if d.Strings == nil {
		return nil, false
	}

	return d.Strings, true
}

// ToVecString returns only the present string values, dropping nulls.
func (d Data) ToVecString() ([]string, bool) {
	if d.Strings == nil {
		return nil, false
	}

	out := make([]string, 0, len(d.Strings))
	for _, v := range d.Strings {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out, true
}

// AsFirstU32 returns the first non-null value from a Short or Long column.
func (d Data) AsFirstU32() (uint32, bool) {
	for _, v := range d.Uint32s {
		if v != nil {
			return *v, true
		}
	}

	return 0, false
}

// AsVecU32 returns the raw uint32 column for a Short or Long field.
func (d Data) AsVecU32() ([]*uint32, bool) {
	if d.Uint32s == nil {
		return nil, false
	}

	return d.Uint32s, true
}

// AsVecU64 returns every present value widened to uint64, accepting Short,
// Long, and LongLong columns alike.
func (d Data) AsVecU64() ([]uint64, bool) {
	switch {
	case d.Uint64s != nil:
		out := make([]uint64, 0, len(d.Uint64s))
		for _, v := range d.Uint64s {
			if v != nil {
				out = append(out, *v)
			}
		}

		return out, true
	case d.Uint32s != nil:
		out := make([]uint64, 0, len(d.Uint32s))
		for _, v := range d.Uint32s {
			if v != nil {
				out = append(out, uint64(*v))
			}
		}

		return out, true
	default:
		return nil, false
	}
}

// AsFirstBool returns the first non-null boolean value.
func (d Data) AsFirstBool() (bool, bool) {
	for _, v := range d.Booleans {
		if v != nil {
			return *v, true
		}
	}

	return false, false
}

// AsVecChar returns every present rune value.
func (d Data) AsVecChar() ([]rune, bool) {
	if d.Chars == nil {
		return nil, false
	}

	out := make([]rune, 0, len(d.Chars))
	for _, v := range d.Chars {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out, true
}

// ToVecSDO returns the nested SDO column.
func (d Data) ToVecSDO() ([]*SDO, bool) {
	if d.SDOs == nil {
		return nil, false
	}

	return d.SDOs, true
}

// ToVecDateTime returns every present DateTime value.
func (d Data) ToVecDateTime() ([]time.Time, bool) {
	if d.DateTimes == nil {
		return nil, false
	}

	out := make([]time.Time, 0, len(d.DateTimes))
	for _, v := range d.DateTimes {
		if v != nil {
			out = append(out, *v)
		}
	}

	return out, true
}

// AsVecF64 returns every present value widened to float64, accepting both
// Float and Double columns.
func (d Data) AsVecF64() ([]float64, bool) {
	switch {
	case d.Doubles != nil:
		out := make([]float64, 0, len(d.Doubles))
		for _, v := range d.Doubles {
			if v != nil {
				out = append(out, *v)
			}
		}

		return out, true
	case d.Floats != nil:
		out := make([]float64, 0, len(d.Floats))
		for _, v := range d.Floats {
			if v != nil {
				out = append(out, float64(*v))
			}
		}

		return out, true
	default:
		return nil, false
	}
}
