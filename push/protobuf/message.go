package protobuf

import "github.com/bgpfix/push"

// Message is the accumulator a FieldMap-driven decode fills in: one
// slice of decoded values per field number, since protobuf allows a
// field to repeat. A singular field is simply a slice of length 1.
type Message struct {
	Fields map[int][]any
}

// NewMessage returns an empty accumulator ready to be decoded into.
func NewMessage() *Message {
	return &Message{Fields: map[int][]any{}}
}

func (m *Message) append(field int, v any) {
	m.Fields[field] = append(m.Fields[field], v)
}

// Get returns the first decoded value for field, if any.
func (m *Message) Get(field int) (any, bool) {
	vs, ok := m.Fields[field]
	if !ok || len(vs) == 0 {
		return nil, false
	}
	return vs[0], true
}

// DecodeMessage returns a callback that reads tag/value pairs against
// fm until end of stream, accumulating into msg. It is built as
// Fold(dispatch): dispatch reads one tag, decodes the matching field
// value, appends it to msg, and succeeds with msg itself, so that Fold
// can feed msg straight back in as the next iteration's input.
//
// Because msg is mutated as a side effect rather than threaded
// functionally, the same *Message pointer comes back out of every
// iteration; Fold's invariant that Out feeds back as the next In holds
// trivially.
func DecodeMessage(msg *Message, fm *FieldMap) push.Callback[*Message, *Message] {
	return push.Fold[*Message](&dispatchCB{msg: msg, fm: fm})
}

// dispatchCB reads one field: a tag, then the value the tag's wire
// type and field number select from fm. It captures msg at
// construction time (mirroring how the C reference associates a
// field map with a specific message struct pointer) so Activate can be
// reused as Fold's re-entry point without needing msg threaded through
// as a distinct value.
type dispatchCB struct {
	push.Slots[*Message]
	msg *Message
	fm  *FieldMap
}

func (c *dispatchCB) Activate(msg *Message, initial []byte) {
	tag := ReadTag[*Message]()
	tag.SetSuccess(c.onTag)
	tag.SetIncomplete(c.Incomplete)
	tag.SetError(c.Error)
	tag.Activate(msg, initial)
}

func (c *dispatchCB) onTag(t Tag, remaining []byte) {
	entry, ok := c.fm.lookup(t.Field)
	if !ok || entry.Wire != t.Wire {
		// Unregistered field, or a registered one that showed up with a
		// different wire type than expected: skip the value based on
		// what is actually on the wire, the way the reference decoder
		// falls back to its length-prefixed skipper for fields it has no
		// reader for.
		c.skip(t.Wire, remaining)
		return
	}

	value := entry.Value
	value.SetSuccess(func(v any, rem2 []byte) {
		c.msg.append(t.Field, v)
		c.Success(c.msg, rem2)
	})
	value.SetIncomplete(c.Incomplete)
	value.SetError(c.Error)
	value.Activate(nil, remaining)
}

func (c *dispatchCB) skip(wire WireType, remaining []byte) {
	skipper := skipValue(wire)
	if skipper == nil {
		c.Error(push.StatusParseError, push.ErrNoMatch)
		return
	}
	skipper.SetSuccess(func(_ any, rem2 []byte) { c.Success(c.msg, rem2) })
	skipper.SetIncomplete(c.Incomplete)
	skipper.SetError(c.Error)
	skipper.Activate(nil, remaining)
}

// skipValue returns a callback that discards a value of the given wire
// type without storing it. Start/end group markers have no defined
// length to skip over and are reported as nil, the same TODO the
// reference decoder leaves for non-length-delimited unknown fields.
func skipValue(wire WireType) push.Callback[any, any] {
	switch wire {
	case WireVarint:
		return push.Box[any, uint64](ReadVarint64())
	case Wire64:
		return push.Box[any, uint64](ReadFixed64())
	case Wire32:
		return push.Box[any, uint32](ReadFixed32())
	case WireLengthDelimited:
		return push.Box[any, []byte](LengthPrefixed[[]byte](ReadAll()))
	default:
		return nil
	}
}
