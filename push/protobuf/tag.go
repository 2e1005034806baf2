package protobuf

import "github.com/bgpfix/push"

// WireType is one of the six encodings protobuf uses on the wire.
type WireType int

const (
	WireVarint          WireType = 0
	Wire64              WireType = 1
	WireLengthDelimited WireType = 2
	WireStartGroup      WireType = 3
	WireEndGroup        WireType = 4
	Wire32              WireType = 5
)

// Tag is a decoded field tag: the field number and the wire type that
// follows it.
type Tag struct {
	Field int
	Wire  WireType
}

// ReadTag decodes a tag as a single varint32 and splits it into field
// number and wire type. It ignores its activation input, like
// ReadVarint32, so it can open any message-decoding loop regardless of
// what that loop threads through as state.
func ReadTag[T any]() push.Callback[T, Tag] {
	return push.Compose[T, uint32, Tag](
		boxedVarint[T](),
		push.Pure(func(v uint32) (Tag, bool) {
			return Tag{Field: int(v >> 3), Wire: WireType(v & 0x7)}, true
		}),
	)
}

// boxedVarint adapts ReadVarint32 (Callback[any, uint32]) to whatever
// input type T the enclosing message loop uses.
func boxedVarint[T any]() push.Callback[T, uint32] {
	return &ignoreInputCB[T, uint32]{inner: ReadVarint32()}
}

type ignoreInputCB[T, Out any] struct {
	push.Slots[Out]
	inner push.Callback[any, Out]
}

func (c *ignoreInputCB[T, Out]) Activate(_ T, initial []byte) {
	c.inner.SetSuccess(func(result Out, remaining []byte) { c.Success(result, remaining) })
	c.inner.SetIncomplete(func(cont push.ContinueFunc) { c.Incomplete(cont) })
	c.inner.SetError(func(status push.Status, err error) { c.Error(status, err) })
	c.inner.Activate(nil, initial)
}
