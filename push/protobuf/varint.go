package protobuf

import (
	"errors"

	"github.com/bgpfix/push"
)

var (
	ErrVarintOverflow  = errors.New("protobuf: varint overflows its target width")
	ErrTruncatedVarint = errors.New("protobuf: stream ended inside a varint")
)

// ReadVarint64 decodes a base-128 varint: 1 to 10 bytes, each
// contributing 7 bits, terminated by the first byte whose high bit is
// clear. It ignores its activation input, so it can sit anywhere a
// Callback[any, uint64] is expected, including boxed inside a tuple.
func ReadVarint64() push.Callback[any, uint64] { return &varintCB{maxBytes: 10} }

// ReadVarint32 is ReadVarint64 truncated to 32 bits, erroring instead of
// silently discarding the high bits if the encoded value doesn't fit.
func ReadVarint32() push.Callback[any, uint32] {
	return &varint32CB{inner: &varintCB{maxBytes: 5}}
}

type varintCB struct {
	push.Slots[uint64]
	value    uint64
	shift    uint
	count    int
	maxBytes int
}

func (c *varintCB) Activate(_ any, initial []byte) {
	c.value, c.shift, c.count = 0, 0, 0
	c.step(initial)
}

func (c *varintCB) consume(chunk []byte) {
	if len(chunk) == 0 {
		c.Error(push.StatusParseError, ErrTruncatedVarint)
		return
	}
	c.step(chunk)
}

func (c *varintCB) step(chunk []byte) {
	for i, b := range chunk {
		if c.count >= c.maxBytes {
			c.Error(push.StatusParseError, ErrVarintOverflow)
			return
		}
		c.value |= uint64(b&0x7f) << c.shift
		c.shift += 7
		c.count++
		if b&0x80 == 0 {
			c.Success(c.value, chunk[i+1:])
			return
		}
	}
	c.Incomplete(c.consume)
}

// varint32CB wraps varintCB (configured for a 5-byte ceiling, the most
// a 32-bit value can need) and narrows the result, rejecting anything
// whose top bits don't fit.
type varint32CB struct {
	push.Slots[uint32]
	inner *varintCB
}

func (c *varint32CB) Activate(input any, initial []byte) {
	c.inner.SetSuccess(func(v uint64, remaining []byte) {
		if v > 0xffffffff {
			c.Error(push.StatusParseError, ErrVarintOverflow)
			return
		}
		c.Success(uint32(v), remaining)
	})
	c.inner.SetIncomplete(func(cont push.ContinueFunc) { c.Incomplete(cont) })
	c.inner.SetError(func(status push.Status, err error) { c.Error(status, err) })
	c.inner.Activate(input, initial)
}
