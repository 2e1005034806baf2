package protobuf

import "github.com/bgpfix/push"

// ReadAll accumulates every byte it is handed until it receives an
// end-of-stream chunk, then succeeds with everything it saw. On its
// own this never terminates; it exists to sit inside LengthPrefixed,
// where DynamicMaxBytes injects the end-of-stream probe once the
// encoded length has been reached.
func ReadAll() push.Callback[any, []byte] { return &readAllCB{} }

type readAllCB struct {
	push.Slots[[]byte]
	buf []byte
}

func (c *readAllCB) Activate(_ any, initial []byte) {
	c.buf = append([]byte(nil), initial...)
	c.Incomplete(c.consume)
}

func (c *readAllCB) consume(chunk []byte) {
	if len(chunk) == 0 {
		c.Success(c.buf, nil)
		return
	}
	c.buf = append(c.buf, chunk...)
	c.Incomplete(c.consume)
}

// sizePrefix reads a varint32 and narrows it to an int, the type
// DynamicMaxBytes expects for its cap.
func sizePrefix() push.Callback[any, int] {
	return push.Compose[any, uint32, int](ReadVarint32(), push.Pure(func(v uint32) (int, bool) {
		return int(v), true
	}))
}

// LengthPrefixed reads a varint length L followed by exactly L bytes,
// which are handed to wrapped: dup(2) ⟫ first(size-prefix) ⟫
// dynamic-max-bytes(wrapped). wrapped is expected to consume its
// entire window, the way ReadAll and the protobuf message loop do.
func LengthPrefixed[Out any](wrapped push.Callback[any, Out]) push.Callback[any, Out] {
	withSize := push.Compose[any, push.Tuple, push.Tuple](
		push.Dup[any](2),
		push.First(push.Box[any, int](sizePrefix())),
	)
	return push.Compose[any, push.Tuple, Out](withSize, push.DynamicMaxBytes[any, Out](wrapped))
}
