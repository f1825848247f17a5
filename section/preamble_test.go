package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPreamble(t *testing.T) {
	require := require.New(t)

	p := NewPreamble()
	require.Equal(uint8(BinaryV3), p.Version)
	require.True(p.SingleRow)
	require.Equal(uint8(0), p.PadBytes)
	require.Equal(byte(0x17), p.Encode())
}

func TestPreambleEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	cases := []Preamble{
		{Version: 7, SingleRow: true, PadBytes: 0},
		{Version: 7, SingleRow: false, PadBytes: 0},
		{Version: 3, SingleRow: true, PadBytes: 5},
		{Version: 0, SingleRow: false, PadBytes: 7},
	}

	for _, p := range cases {
		b := p.Encode()
		got := DecodePreamble(b)
		require.Equal(p, got)
	}
}

func TestDecodePreambleBitLayout(t *testing.T) {
	require := require.New(t)

	// pad=1, single_row=1, version=7 -> 0b001_1_0111 = 0x37
	p := DecodePreamble(0x37)
	require.Equal(uint8(7), p.Version)
	require.True(p.SingleRow)
	require.Equal(uint8(1), p.PadBytes)
}
