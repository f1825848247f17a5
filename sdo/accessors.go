package sdo

import (
	"github.com/arloliu/sdocodec/fieldid"
	"github.com/arloliu/sdocodec/topic"
)

// Well-known request-id values used to address every subscriber at once
// rather than a single request.
const (
	BroadcastAddress       = "-2"
	BroadcastUpdateAddress = "-1"
)

// NewWithBroadcastAddress returns an undefined-topic SDO whose REQUEST_ID
// field addresses every subscriber.
func NewWithBroadcastAddress() *SDO {
	s := New(topic.UndefinedTopic)
	addr := BroadcastAddress
	s.AddStringW(uint32(fieldid.RequestID), []*string{&addr})

	return s
}

// NewWithBroadcastUpdateAddress returns an undefined-topic SDO whose
// REQUEST_ID field addresses every subscriber's update stream.
func NewWithBroadcastUpdateAddress() *SDO {
	s := New(topic.UndefinedTopic)
	addr := BroadcastUpdateAddress
	s.AddStringW(uint32(fieldid.RequestID), []*string{&addr})

	return s
}

// GetField returns the first field carrying the given field id, if any.
func (s *SDO) GetField(id uint32) (Field, bool) {
	for _, f := range s.Fields {
		if f.Descriptor.FieldID == id {
			return f, true
		}
	}

	return Field{}, false
}

// RemoveField drops every field carrying the given field id.
func (s *SDO) RemoveField(id uint32) {
	kept := s.Fields[:0]
	for _, f := range s.Fields {
		if f.Descriptor.FieldID != id {
			kept = append(kept, f)
		}
	}
	s.Fields = kept
}

// RequestID returns an address SDO's REQUEST_ID field.
func (s *SDO) RequestID() (string, bool) {
	f, ok := s.GetField(uint32(fieldid.RequestID))
	if !ok {
		return "", false
	}

	return f.Data.AsFirstStr()
}

// TargetID returns a control SDO's TARGET_ID field.
func (s *SDO) TargetID() (string, bool) {
	f, ok := s.GetField(uint32(fieldid.TargetID))
	if !ok {
		return "", false
	}

	return f.Data.AsFirstStr()
}

// TargetName returns a control SDO's TARGET_NAME field.
func (s *SDO) TargetName() (string, bool) {
	f, ok := s.GetField(uint32(fieldid.TargetName))
	if !ok {
		return "", false
	}

	return f.Data.AsFirstStr()
}

// IsTestData reports a control SDO's IS_TEST_DATA flag.
func (s *SDO) IsTestData() (bool, bool) {
	f, ok := s.GetField(uint32(fieldid.IsTestData))
	if !ok {
		return false, false
	}

	return f.Data.AsFirstBool()
}

// PacketFlag returns a payload SDO's PACKET_FLAG field.
func (s *SDO) PacketFlag() (fieldid.PacketFlag, bool) {
	f, ok := s.GetField(uint32(fieldid.PacketFlagID))
	if !ok {
		return 0, false
	}

	v, ok := f.Data.AsFirstU32()
	if !ok {
		return 0, false
	}

	return fieldid.PacketFlag(v), true
}

// HasMoreData reports whether HAS_MORE_DATA is present and set to 1.
func (s *SDO) HasMoreData() bool {
	f, ok := s.GetField(uint32(fieldid.HasMoreData))
	if !ok {
		return false
	}

	v, ok := f.Data.AsFirstU32()

	return ok && v == 1
}

// IsLastPacket reports whether this packet is the last of a multi-packet
// reply: true both when PACKET_FLAG is absent (single-packet reply) and
// when it is present with the Last bit set.
func (s *SDO) IsLastPacket() bool {
	flag, ok := s.PacketFlag()

	return !ok || flag.Has(fieldid.Last)
}

// IsFirstPacket reports whether this packet is the first of a multi-packet
// reply, by the same absent-means-true convention as IsLastPacket.
func (s *SDO) IsFirstPacket() bool {
	flag, ok := s.PacketFlag()

	return !ok || flag.Has(fieldid.First)
}

// MessageSource returns a payload SDO's MESSAGE_SOURCE field.
func (s *SDO) MessageSource() (string, bool) {
	f, ok := s.GetField(uint32(fieldid.MessageSource))
	if !ok {
		return "", false
	}

	return f.Data.AsFirstStr()
}

// IsWatchUpdates reports whether IS_WATCH_UPDATES is present and true.
func (s *SDO) IsWatchUpdates() bool {
	f, ok := s.GetField(uint32(fieldid.IsWatchUpdates))
	if !ok {
		return false
	}

	v, ok := f.Data.AsFirstBool()

	return ok && v
}

// WatchTopic returns a watch-request SDO's WATCH_TOPIC field.
func (s *SDO) WatchTopic() (uint32, bool) {
	f, ok := s.GetField(uint32(fieldid.WatchTopic))
	if !ok {
		return 0, false
	}

	return f.Data.AsFirstU32()
}

// WatchKeyIndex returns the WATCH_KEY_INDEX field.
func (s *SDO) WatchKeyIndex() (uint32, bool) {
	f, ok := s.GetField(uint32(fieldid.WatchKeyIndex))
	if !ok {
		return 0, false
	}

	return f.Data.AsFirstU32()
}

// WatchRequestID returns the WATCH_REQUEST_ID field.
func (s *SDO) WatchRequestID() (string, bool) {
	f, ok := s.GetField(uint32(fieldid.WatchRequestID))
	if !ok {
		return "", false
	}

	return f.Data.AsFirstStr()
}
