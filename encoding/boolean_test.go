package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

func TestBooleanRoundTripSkipsNullBits(t *testing.T) {
	require := require.New(t)

	// 10 rows, row 3 and row 7 null. Only the 8 non-null rows consume bits.
	values := []*bool{
		boolPtr(true), boolPtr(false), boolPtr(true), nil,
		boolPtr(true), boolPtr(true), boolPtr(false), nil,
		boolPtr(false), boolPtr(true),
	}
	nullFlags := []byte{0x11, 0x00} // bit 3 and bit 7 set (MSB-first over 10 rows)

	packed := EncodeBoolean(values)
	require.Equal(BooleanBitmapLen(8), len(packed))

	got, n, err := DecodeBoolean(packed, 0, len(values), nullFlags, len(packed))
	require.NoError(err)
	require.Equal(len(packed), n)

	require.True(*got[0])
	require.False(*got[1])
	require.True(*got[2])
	require.Nil(got[3])
	require.True(*got[4])
	require.True(*got[5])
	require.False(*got[6])
	require.Nil(got[7])
	require.False(*got[8])
	require.True(*got[9])
}

func TestBooleanBitmapLenPartialByte(t *testing.T) {
	require := require.New(t)

	require.Equal(1, BooleanBitmapLen(1))
	require.Equal(1, BooleanBitmapLen(8))
	require.Equal(2, BooleanBitmapLen(9))
	require.Equal(0, BooleanBitmapLen(0))
}

func TestBooleanMSBFirstOrder(t *testing.T) {
	require := require.New(t)

	values := []*bool{boolPtr(true), boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false)}
	packed := EncodeBoolean(values)
	require.Equal([]byte{0x80}, packed)
}

func TestBooleanPackingNineValuesNoNulls(t *testing.T) {
	require := require.New(t)

	values := []*bool{
		boolPtr(true), boolPtr(false), boolPtr(true), boolPtr(true),
		boolPtr(false), boolPtr(false), boolPtr(false), boolPtr(false),
		boolPtr(true),
	}
	packed := EncodeBoolean(values)
	require.Equal([]byte{0xB0, 0x80}, packed)
}
