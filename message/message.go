// Package message implements the two-SDO envelope used to carry a request
// or response over a stream: a header SDO (the request id) followed by a
// payload SDO (the caller's data plus transport metadata).
package message

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/arloliu/sdocodec/errs"
	"github.com/arloliu/sdocodec/fieldid"
	"github.com/arloliu/sdocodec/format"
	"github.com/arloliu/sdocodec/internal/options"
	"github.com/arloliu/sdocodec/internal/pool"
	"github.com/arloliu/sdocodec/sdo"
	"github.com/arloliu/sdocodec/topic"
)

// defaultPageSize is the PAGE_SIZE value appended to every payload SDO
// that does not override it.
const defaultPageSize = "1000"

// Message is a request/response envelope: a generated id, a payload SDO,
// and optional transport metadata. It is constructed once, encoded once,
// and read once on the peer.
type Message struct {
	ID       string
	SDO      *sdo.SDO
	Timeout  string
	PageSize string
}

type config struct {
	timeout    string
	pageSize   string
	maxDepth   int
	idGen      func() string
	hasTimeout bool
}

// Option configures New and Decode.
type Option = options.Option[*config]

// WithTimeout sets the Message's TIMEOUT field.
func WithTimeout(timeout string) Option {
	return options.NoError(func(c *config) {
		c.timeout = timeout
		c.hasTimeout = true
	})
}

// WithPageSize overrides the default PAGE_SIZE ("1000").
func WithPageSize(pageSize string) Option {
	return options.NoError(func(c *config) { c.pageSize = pageSize })
}

// WithMaxDepth overrides the default nested-SDO recursion limit used by
// Decode for both the header and the payload SDO.
func WithMaxDepth(maxDepth int) Option {
	return options.NoError(func(c *config) { c.maxDepth = maxDepth })
}

// WithIDGenerator overrides the default id generator. Request-id quality is
// the caller's concern; this option is how a caller supplies theirs.
func WithIDGenerator(gen func() string) Option {
	return options.NoError(func(c *config) { c.idGen = gen })
}

func defaultIDGenerator() string {
	var b [8]byte
	_, _ = rand.Read(b[:])

	return hex.EncodeToString(b[:])
}

// New constructs a Message wrapping payload, generating an id unless
// WithIDGenerator overrides the generator.
func New(payload *sdo.SDO, opts ...Option) (*Message, error) {
	cfg := &config{pageSize: defaultPageSize, maxDepth: sdo.DefaultMaxDepth, idGen: defaultIDGenerator}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	m := &Message{ID: cfg.idGen(), SDO: payload, PageSize: cfg.pageSize}
	if cfg.hasTimeout {
		m.Timeout = cfg.timeout
	}

	return m, nil
}

// Encode appends the header SDO then the payload SDO to buf. The header is
// an undefined-topic SDO carrying m's id in a single wide-string field; the
// payload is m.SDO augmented with TIMEOUT (when set) and PAGE_SIZE.
func Encode(buf *pool.ByteBuffer, m *Message) error {
	header := sdo.New(topic.UndefinedTopic)
	id := m.ID
	header.AddStringW(uint32(fieldid.HeaderRequestID), []*string{&id})
	if err := sdo.Encode(buf, header); err != nil {
		return err
	}

	// Build a fresh SDO carrying m.SDO's fields plus transport metadata,
	// rather than mutating m.SDO in place; Encode may be called more than
	// once on the same Message and must not accumulate duplicate fields.
	payload := sdo.New(topic.UndefinedTopic)
	if m.SDO != nil {
		payload.Topic = m.SDO.Topic
		payload.Fields = append(payload.Fields, m.SDO.Fields...)
	}

	if m.Timeout != "" {
		timeout := m.Timeout
		payload.AddStringW(uint32(fieldid.Timeout), []*string{&timeout})
	}

	pageSize := m.PageSize
	if pageSize == "" {
		pageSize = defaultPageSize
	}
	payload.AddStringW(uint32(fieldid.PageSize), []*string{&pageSize})

	return sdo.Encode(buf, payload)
}

// Decode reads a Message's two SDOs from data starting at offset.
//
// The first SDO's id is accepted only when its topic is Undefined and its
// first field is string-typed (StringW, AsciiString, or Short; Short values
// are stringified).
func Decode(data []byte, offset int, opts ...Option) (*Message, int, error) {
	cfg := &config{pageSize: defaultPageSize, maxDepth: sdo.DefaultMaxDepth, idGen: defaultIDGenerator}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, 0, err
	}

	pos := offset

	header, n, err := sdo.DecodeDepth(data, pos, cfg.maxDepth)
	if err != nil {
		return nil, 0, err
	}
	pos += n

	id, err := extractHeaderID(header)
	if err != nil {
		return nil, 0, err
	}

	payload, n, err := sdo.DecodeDepth(data, pos, cfg.maxDepth)
	if err != nil {
		return nil, 0, err
	}
	pos += n

	m := &Message{ID: id, SDO: payload}
	if f, ok := payload.GetField(uint32(fieldid.Timeout)); ok {
		if s, ok := f.Data.AsFirstStr(); ok {
			m.Timeout = s
		}
	}
	if f, ok := payload.GetField(uint32(fieldid.PageSize)); ok {
		if s, ok := f.Data.AsFirstStr(); ok {
			m.PageSize = s
		}
	}
	if m.PageSize == "" {
		m.PageSize = defaultPageSize
	}

	return m, pos - offset, nil
}

// extractHeaderID reads the message id off the header SDO. A header only
// carries an id when its topic is Undefined and it has a first field.
// Neither condition holding just means "no id", not a decode failure;
// ErrInvalidHeaderID is reserved for a present first field whose type isn't
// string- or short-typed.
func extractHeaderID(header *sdo.SDO) (string, error) {
	if header.Topic != topic.UndefinedTopic || len(header.Fields) == 0 {
		return "", nil
	}

	first := header.Fields[0]
	if !first.Descriptor.DataType.IsString() && first.Descriptor.DataType != format.Short {
		return "", fmt.Errorf("%w: header field type %s", errs.ErrInvalidHeaderID, first.Descriptor.DataType)
	}

	if first.Descriptor.DataType == format.Short {
		if v, ok := first.Data.AsFirstU32(); ok {
			return fmt.Sprintf("%d", v), nil
		}

		return "", nil
	}

	if s, ok := first.Data.AsFirstStr(); ok {
		return s, nil
	}

	return "", nil
}
