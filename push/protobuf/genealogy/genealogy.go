// Package genealogy is a small demonstrator for the protobuf decoder:
// a Person message with an id, a name, a mother and father id, and a
// date of birth, modelled on the reference library's own genealogy
// example.
package genealogy

import (
	"github.com/bgpfix/push"
	"github.com/bgpfix/push/protobuf"
)

// Person mirrors the genealogy example's person_t: a small record with
// two scalar links (mother, father) and a name. Each field holds a
// single value; if a field appears more than once on the wire, only
// its first value is kept.
type Person struct {
	ID     uint32
	Name   string
	Mother uint32
	Father uint32
	DOB    uint64
}

const (
	fieldID     = 1
	fieldName   = 2
	fieldMother = 3
	fieldFather = 4
	fieldDOB    = 5
)

// fieldMap builds the FieldMap a Person message is decoded against:
// field 1 and 3/4 are varint-encoded uint32s, field 2 is a
// length-delimited string, field 5 is a varint-encoded uint64.
func fieldMap() *protobuf.FieldMap {
	return protobuf.NewFieldMap().
		Set(fieldID, protobuf.WireVarint, boxUint32()).
		Set(fieldName, protobuf.WireLengthDelimited, boxString()).
		Set(fieldMother, protobuf.WireVarint, boxUint32()).
		Set(fieldFather, protobuf.WireVarint, boxUint32()).
		Set(fieldDOB, protobuf.WireVarint, boxUint64())
}

func boxUint32() push.Callback[any, any] {
	return push.Box[any, uint32](protobuf.ReadVarint32())
}

func boxUint64() push.Callback[any, any] {
	return push.Box[any, uint64](protobuf.ReadVarint64())
}

func boxString() push.Callback[any, any] {
	asString := push.Compose[any, []byte, string](
		protobuf.ReadAll(),
		push.Pure(func(b []byte) (string, bool) { return string(b), true }),
	)
	return push.Box[any, string](protobuf.LengthPrefixed[string](asString))
}

// DecodePerson returns a callback that decodes a stream of protobuf
// tag/value pairs into a Person.
func DecodePerson() push.Callback[any, *Person] {
	msg := protobuf.NewMessage()
	decode := protobuf.DecodeMessage(msg, fieldMap())
	return push.Compose[any, *protobuf.Message, *Person](
		ignoreInput(msg, decode),
		push.Pure(func(m *protobuf.Message) (*Person, bool) {
			return toPerson(m), true
		}),
	)
}

// ignoreInput adapts DecodeMessage's Callback[*Message, *Message],
// which re-enters itself via Fold using the message pointer it was
// built with, to a Callback[any, *Message] an outer Compose can
// activate with a plain any input.
func ignoreInput(msg *protobuf.Message, decode push.Callback[*protobuf.Message, *protobuf.Message]) push.Callback[any, *protobuf.Message] {
	return &ignoreInputMsgCB{msg: msg, inner: decode}
}

type ignoreInputMsgCB struct {
	push.Slots[*protobuf.Message]
	msg   *protobuf.Message
	inner push.Callback[*protobuf.Message, *protobuf.Message]
}

func (c *ignoreInputMsgCB) Activate(_ any, initial []byte) {
	c.inner.SetSuccess(func(result *protobuf.Message, remaining []byte) { c.Success(result, remaining) })
	c.inner.SetIncomplete(func(cont push.ContinueFunc) { c.Incomplete(cont) })
	c.inner.SetError(func(status push.Status, err error) { c.Error(status, err) })
	c.inner.Activate(c.msg, initial)
}

func toPerson(m *protobuf.Message) *Person {
	p := &Person{}
	if v, ok := m.Get(fieldID); ok {
		p.ID = v.(uint32)
	}
	if v, ok := m.Get(fieldName); ok {
		p.Name = v.(string)
	}
	if v, ok := m.Get(fieldMother); ok {
		p.Mother = v.(uint32)
	}
	if v, ok := m.Get(fieldFather); ok {
		p.Father = v.(uint32)
	}
	if v, ok := m.Get(fieldDOB); ok {
		p.DOB = v.(uint64)
	}
	return p
}
