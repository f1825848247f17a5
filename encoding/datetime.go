package encoding

import (
	"fmt"
	"time"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/varint"
)

// dateTimeEpoch is the base instant every DateTime value is offset from.
var dateTimeEpoch = time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)

// Precision codes carried in a DateTime field's one-byte extra_info.
const (
	PrecisionNanosecond  byte = 0
	PrecisionMicrosecond byte = 1
	PrecisionMillisecond byte = 2
	PrecisionSecond      byte = 3
)

// microsecondOverflowGuard is the threshold near math.MaxInt64 microseconds
// past the epoch at which a value is treated as overflow and degrades to
// the base instant rather than wrapping into a bogus far-future time.
const microsecondOverflowGuard = uint64(1<<63) - 1_000_000

// ValidateDateTimePrecision checks that extraInfo is a single byte holding
// one of the four known precision codes.
func ValidateDateTimePrecision(extraInfo []byte) (byte, error) {
	if len(extraInfo) != 1 {
		return 0, errs.ErrMissingDateTimePrecision
	}

	p := extraInfo[0]
	if p > PrecisionSecond {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidDateTimePrecision, p)
	}

	return p, nil
}

// EncodeDateTime appends a DateTime column to buf: one varint per non-null
// row, scaled into the unit named by precision.
func EncodeDateTime(buf *pool.ByteBuffer, values []*time.Time, precision byte) {
	for _, v := range values {
		if v == nil {
			continue
		}
		varint.WriteUvarint64(buf, dateTimeToVarint(*v, precision))
	}
}

func dateTimeToVarint(t time.Time, precision byte) uint64 {
	d := t.Sub(dateTimeEpoch)
	if d < 0 {
		d = 0
	}

	switch precision {
	case PrecisionSecond:
		return uint64(d / time.Second)
	case PrecisionMillisecond:
		return uint64(d / time.Millisecond)
	case PrecisionMicrosecond:
		return uint64(d / time.Microsecond)
	default: // PrecisionNanosecond: v is nanoseconds; readers recover microsecond resolution as v/1000
		return uint64(d)
	}
}

// DecodeDateTime reads a DateTime column of the given row count. extraInfo
// must already have been validated with ValidateDateTimePrecision.
func DecodeDateTime(data []byte, offset int, rows int, nullFlags []byte, precision byte) ([]*time.Time, int, error) {
	values := make([]*time.Time, rows)
	pos := offset

	for i := range rows {
		if isNull(nullFlags, i) {
			continue
		}

		v, n, err := varint.ReadUvarint64(data, pos)
		if err != nil {
			return nil, 0, err
		}
		pos += n

		t := varintToDateTime(v, precision)
		values[i] = &t
	}

	return values, pos - offset, nil
}

func varintToDateTime(v uint64, precision byte) time.Time {
	var micros uint64

	switch precision {
	case PrecisionSecond:
		return dateTimeEpoch.Add(time.Duration(v) * time.Second)
	case PrecisionMillisecond:
		return dateTimeEpoch.Add(time.Duration(v) * time.Millisecond)
	case PrecisionMicrosecond:
		micros = v
	default: // PrecisionNanosecond: the wire value v is nanoseconds; decoded at microsecond resolution as v/1000
		micros = v / 1000
	}

	if micros >= microsecondOverflowGuard {
		return dateTimeEpoch
	}

	// Whole seconds and the sub-second rest are applied separately: a
	// time.Duration spans only about 292 years, far short of the guard.
	sec := int64(micros / 1_000_000)        //nolint:gosec
	nsec := int64(micros%1_000_000) * 1_000 //nolint:gosec

	return time.Unix(dateTimeEpoch.Unix()+sec, nsec).UTC()
}
