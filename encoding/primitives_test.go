package encoding

import (
	"testing"

	"github.com/arloliu/sdocodec/format"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/stretchr/testify/require"
)

func u32Ptr(v uint32) *uint32 { return &v }
func u64Ptr(v uint64) *uint64 { return &v }
func f32Ptr(v float32) *float32 { return &v }
func f64Ptr(v float64) *float64 { return &v }
func runePtr(v rune) *rune { return &v }

func TestAsciiStringRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []*string{strPtr("AAPL"), nil, strPtr("")}
	buf := pool.NewByteBuffer(16)
	EncodeAsciiString(buf, values)

	nullFlags := []byte{0x40}
	got, n, err := DecodeAsciiString(buf.Bytes(), 0, len(values), nullFlags)
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal("AAPL", *got[0])
	require.Nil(got[1])
	require.Equal("", *got[2])
}

func TestUint32RoundTrip(t *testing.T) {
	require := require.New(t)

	values := []*uint32{u32Ptr(0), nil, u32Ptr(1 << 20)}
	buf := pool.NewByteBuffer(16)
	EncodeUint32(buf, values)

	got, n, err := DecodeUint32(buf.Bytes(), 0, len(values), []byte{0x40})
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal(uint32(0), *got[0])
	require.Nil(got[1])
	require.Equal(uint32(1<<20), *got[2])
}

func TestUint64RoundTrip(t *testing.T) {
	require := require.New(t)

	values := []*uint64{u64Ptr(1 << 40), nil}
	buf := pool.NewByteBuffer(16)
	EncodeUint64(buf, values)

	got, n, err := DecodeUint64(buf.Bytes(), 0, len(values), []byte{0x40})
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal(uint64(1<<40), *got[0])
	require.Nil(got[1])
}

func TestCharRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []*rune{runePtr('A'), nil, runePtr('z')}
	buf := pool.NewByteBuffer(8)
	EncodeChar(buf, values)

	got, n, err := DecodeChar(buf.Bytes(), 0, len(values), []byte{0x40})
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal('A', *got[0])
	require.Nil(got[1])
	require.Equal('z', *got[2])
}

func TestBinaryRoundTrip(t *testing.T) {
	require := require.New(t)

	values := [][]byte{{1, 2, 3}, nil, {}}
	buf := pool.NewByteBuffer(16)
	EncodeBinary(buf, values)

	got, n, err := DecodeBinary(buf.Bytes(), 0, len(values), []byte{0x40})
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal([]byte{1, 2, 3}, got[0])
	require.Nil(got[1])
	require.NotNil(got[2])
	require.Empty(got[2])
}

func TestFloatRoundTripFixedWidth(t *testing.T) {
	require := require.New(t)

	values := []*float32{f32Ptr(3.5), nil, f32Ptr(-1.25)}
	buf := pool.NewByteBuffer(16)
	EncodeFloat(buf, values)

	got, n, err := DecodeFloat(buf.Bytes(), 0, len(values), []byte{0x40}, format.Bit64)
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.InDelta(float32(3.5), *got[0], 0.0001)
	require.Nil(got[1])
	require.InDelta(float32(-1.25), *got[2], 0.0001)
}

func TestFloatVarintWireType(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(8)
	buf.MustWrite([]byte{42}) // varint 42

	got, n, err := DecodeFloat(buf.Bytes(), 0, 1, nil, format.Varint)
	require.NoError(err)
	require.Equal(1, n)
	require.InDelta(float32(42), *got[0], 0.0001)
}

func TestDoubleRoundTripFixedWidth(t *testing.T) {
	require := require.New(t)

	values := []*float64{f64Ptr(3.5), nil, f64Ptr(-1.25)}
	buf := pool.NewByteBuffer(32)
	EncodeDouble(buf, values)

	got, n, err := DecodeDouble(buf.Bytes(), 0, len(values), []byte{0x40}, format.Bit64)
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.InDelta(3.5, *got[0], 0.0001)
	require.Nil(got[1])
	require.InDelta(-1.25, *got[2], 0.0001)
}

func TestFloatDoubleEndiannessAsymmetry(t *testing.T) {
	require := require.New(t)

	f := float32(1.0)
	fbuf := pool.NewByteBuffer(8)
	EncodeFloat(fbuf, []*float32{&f})

	d := float64(1.0)
	dbuf := pool.NewByteBuffer(8)
	EncodeDouble(dbuf, []*float64{&d})

	// IEEE-754 1.0 as big-endian float32 starts 0x3F, as little-endian
	// float64 starts with the low byte (0x00) rather than the sign/exponent
	// byte. The two encodings' leading bytes must differ.
	require.NotEqual(fbuf.Bytes()[0], dbuf.Bytes()[0])
}
