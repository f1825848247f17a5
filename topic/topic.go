// Package topic defines the Topic identifier carried by every SDO, as a
// varint right after its preamble byte. Topics form a fixed but extensible closed set: the gateway owns
// the catalogue of meaningful values, and this package exists only so
// callers have a named, type-safe handle on the numbers rather than passing
// bare int32s around.
package topic

import "strconv"

// Topic is the signed 32-bit identifier in an SDO's topic field. Values
// outside the named set below are legal and preserved as-is on the wire.
type Topic int32

// Sentinels. UndefinedTopic is the zero-bias anchor: it is the only topic
// value whose on-wire varint is 0 (topic+1 == 0 only when topic == -1).
const (
	UndefinedTopic   Topic = -1
	UserDefinedTopic Topic = -2
)

// A representative slice of the known topic catalogue. The full set is
// owned by the gateway's higher layers; these are the values exercised by
// this module's own tests and examples.
const (
	MarketData      Topic = 1
	Trade           Topic = 2
	Quote           Topic = 3
	OrderBook       Topic = 4
	Instrument      Topic = 5
	Session         Topic = 6
	Heartbeat       Topic = 7
	Subscribe       Topic = 8
	Unsubscribe     Topic = 9
	WatchUpdate     Topic = 10
	News            Topic = 11
	Reference       Topic = 12
	Corporate       Topic = 13
	Fundamental     Topic = 14
	Index           Topic = 15
	Fx              Topic = 16
	Bond            Topic = 17
	Option          Topic = 18
	Future          Topic = 19
	Statistics      Topic = 20
	Imbalance       Topic = 21
	Auction         Topic = 22
	Halt            Topic = 23
	Circuit         Topic = 24
	Settlement      Topic = 25
	Dividend        Topic = 26
	Split           Topic = 27
	Earnings        Topic = 28
	Rating          Topic = 29
	Administrative  Topic = 30
)

var names = map[Topic]string{
	UndefinedTopic:   "Undefined",
	UserDefinedTopic: "UserDefined",
	MarketData:       "MarketData",
	Trade:            "Trade",
	Quote:            "Quote",
	OrderBook:        "OrderBook",
	Instrument:       "Instrument",
	Session:          "Session",
	Heartbeat:        "Heartbeat",
	Subscribe:        "Subscribe",
	Unsubscribe:      "Unsubscribe",
	WatchUpdate:      "WatchUpdate",
	News:             "News",
	Reference:        "Reference",
	Corporate:        "Corporate",
	Fundamental:      "Fundamental",
	Index:            "Index",
	Fx:               "Fx",
	Bond:             "Bond",
	Option:           "Option",
	Future:           "Future",
	Statistics:       "Statistics",
	Imbalance:        "Imbalance",
	Auction:          "Auction",
	Halt:             "Halt",
	Circuit:          "Circuit",
	Settlement:       "Settlement",
	Dividend:         "Dividend",
	Split:            "Split",
	Earnings:         "Earnings",
	Rating:           "Rating",
	Administrative:   "Administrative",
}

// String returns the known name for t, or its decimal value when t falls
// outside the named set.
func (t Topic) String() string {
	if name, ok := names[t]; ok {
		return name
	}

	return strconv.Itoa(int(t))
}

// FromWire converts a decoded on-wire varint value into a Topic, undoing
// the +1 bias. Wire value 0 decodes to UndefinedTopic.
func FromWire(wire uint64) Topic {
	return Topic(int64(wire) - 1) //nolint:gosec
}

// ToWire converts a Topic into its on-wire varint value.
func ToWire(t Topic) uint64 {
	return uint64(int64(t) + 1) //nolint:gosec
}
