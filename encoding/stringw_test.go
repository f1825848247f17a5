package encoding

import (
	"testing"

	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestStringWRoundTrip(t *testing.T) {
	require := require.New(t)

	values := []*string{strPtr("hi"), nil, strPtr(""), strPtr("market data")}
	buf := pool.NewByteBuffer(32)
	EncodeStringW(buf, values)

	nullFlags := []byte{0x40} // row 1 (second from MSB) is null
	got, n, err := DecodeStringW(buf.Bytes(), 0, len(values), nullFlags)
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal("hi", *got[0])
	require.Nil(got[1])
	require.Equal("", *got[2])
	require.Equal("market data", *got[3])
}

func TestDecodeStringWUnknownEncodingTagIsEmpty(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(8)
	// len+1 = 3 (len=2), tag = 9 (unknown)
	buf.MustWrite([]byte{3, 9})

	got, _, err := DecodeStringW(buf.Bytes(), 0, 1, nil)
	require.NoError(err)
	require.Equal("", *got[0])
}

func TestDecodeStringWUTF16BE(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(8)
	// "hi" as UTF-16BE: len=2 -> wireLen=3, tag=1, then 2 code units big-endian
	buf.MustWrite([]byte{3, 1, 0x00, 'h', 0x00, 'i'})

	got, n, err := DecodeStringW(buf.Bytes(), 0, 1, nil)
	require.NoError(err)
	require.Equal(buf.Len(), n)
	require.Equal("hi", *got[0])
}
