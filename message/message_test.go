package message

import (
	"testing"

	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/sdo"
	"github.com/arloliu/sdocodec/topic"
	"github.com/stretchr/testify/require"
)

func encodeToBytes(t *testing.T, m *Message) []byte {
	t.Helper()
	buf := pool.NewByteBuffer(128)
	require.NoError(t, Encode(buf, m))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

// S3: encoding Message{id: "R_42_", sdo: SDO::new(topic1)} produces a header
// SDO (undefined topic, one StringW field id 74 = the id) followed by a
// payload SDO (topic 1) carrying a PAGE_SIZE="1000" field.
func TestMessageEncodeDecodeRoundTrip(t *testing.T) {
	require := require.New(t)

	payload := sdo.New(topic.Topic(1))
	m, err := New(payload, WithIDGenerator(func() string { return "R_42_" }))
	require.NoError(err)

	bytes := encodeToBytes(t, m)

	decoded, n, err := Decode(bytes, 0)
	require.NoError(err)
	require.Equal(len(bytes), n)
	require.Equal("R_42_", decoded.ID)
	require.Equal("1000", decoded.PageSize)
	require.Equal(topic.Topic(1), decoded.SDO.Topic)
}

func TestMessageWithTimeoutRoundTrip(t *testing.T) {
	require := require.New(t)

	payload := sdo.New(topic.Topic(2))
	m, err := New(payload, WithTimeout("30s"), WithPageSize("500"), WithIDGenerator(func() string { return "abc" }))
	require.NoError(err)

	bytes := encodeToBytes(t, m)

	decoded, _, err := Decode(bytes, 0)
	require.NoError(err)
	require.Equal("abc", decoded.ID)
	require.Equal("30s", decoded.Timeout)
	require.Equal("500", decoded.PageSize)
}

func TestMessageDefaultIDGenerator(t *testing.T) {
	require := require.New(t)

	m, err := New(sdo.New(topic.Topic(1)))
	require.NoError(err)
	require.NotEmpty(m.ID)
	require.Equal(defaultPageSize, m.PageSize)
}

// Decoding a payload-only stream (no header id field) must not fail: an
// absent id is a normal "no id" result, not InvalidHeaderId.
func TestMessageDecodeHeaderWithNoFieldsYieldsEmptyID(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(64)
	require.NoError(sdo.Encode(buf, sdo.New(topic.UndefinedTopic)))

	payload := sdo.New(topic.Topic(3))
	payload.AddStringW(1, []*string{strPtr("v")})
	require.NoError(sdo.Encode(buf, payload))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	decoded, _, err := Decode(out, 0)
	require.NoError(err)
	require.Empty(decoded.ID)
	require.Equal(topic.Topic(3), decoded.SDO.Topic)
}

// A header whose topic isn't Undefined also just means "no id", not a
// decode failure.
func TestMessageDecodeHeaderWithNonUndefinedTopicYieldsEmptyID(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(64)
	header := sdo.New(topic.Topic(9))
	header.AddStringW(74, []*string{strPtr("ignored")})
	require.NoError(sdo.Encode(buf, header))
	require.NoError(sdo.Encode(buf, sdo.New(topic.Topic(1))))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	decoded, _, err := Decode(out, 0)
	require.NoError(err)
	require.Empty(decoded.ID)
}

// A header whose first field is present but not string- or short-typed is
// the one shape that is rejected as an invalid header id.
func TestMessageDecodeHeaderWithWrongFieldTypeErrors(t *testing.T) {
	require := require.New(t)

	buf := pool.NewByteBuffer(64)
	header := sdo.New(topic.UndefinedTopic)
	header.AddDouble(74, []*float64{func() *float64 { v := 1.5; return &v }()})
	require.NoError(sdo.Encode(buf, header))
	require.NoError(sdo.Encode(buf, sdo.New(topic.Topic(1))))

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	_, _, err := Decode(out, 0)
	require.Error(err)
}

func strPtr(s string) *string { return &s }
