// Package sdocodec provides a binary encoder/decoder for the SDO wire
// format: a self-describing columnar record used by a market-data gateway
// to carry a numeric topic and an ordered list of typed, nullable-per-row
// field columns over a stream.
//
// # Basic usage
//
// Building and encoding an SDO:
//
//	s := sdo.New(topic.MarketData)
//	name := "AAPL"
//	s.AddStringW(uint32(fieldid.TargetName), []*string{&name})
//	buf, err := sdocodec.EncodeSDO(s)
//
// Decoding it back:
//
//	decoded, err := sdocodec.DecodeSDO(buf)
//
// Wrapping a payload in a request/response envelope:
//
//	msg, _ := message.New(s, message.WithTimeout("30s"))
//	buf, err := sdocodec.EncodeMessage(msg)
//
// # Package structure
//
// This package is a thin convenience wrapper around sdo and message, the
// two packages doing the actual encode/decode work. Reach for those
// directly for recursion-depth control, functional options, or streaming
// multiple SDOs into one buffer.
package sdocodec

import (
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/message"
	"github.com/arloliu/sdocodec/sdo"
)

// EncodeSDO encodes s into a freshly allocated byte slice.
func EncodeSDO(s *sdo.SDO) ([]byte, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := sdo.Encode(buf, s); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeSDO decodes one SDO from the start of data.
func DecodeSDO(data []byte) (*sdo.SDO, error) {
	s, _, err := sdo.Decode(data, 0)

	return s, err
}

// EncodeMessage encodes m's header and payload SDOs into a freshly
// allocated byte slice.
func EncodeMessage(m *message.Message) ([]byte, error) {
	buf := pool.GetBuffer()
	defer pool.PutBuffer(buf)

	if err := message.Encode(buf, m); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

// DecodeMessage decodes a Message's two SDOs from the start of data.
func DecodeMessage(data []byte, opts ...message.Option) (*message.Message, error) {
	m, _, err := message.Decode(data, 0, opts...)

	return m, err
}
