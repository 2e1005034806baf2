package protobuf

import (
	"github.com/bgpfix/push"
	"github.com/bgpfix/push/protobuf/wire"
)

// ReadFixed32 reads protobuf's 32-bit wire type: 4 little-endian bytes
// decoded straight into a uint32, no varint framing involved.
func ReadFixed32() push.Callback[any, uint32] {
	return push.Compose[any, []byte, uint32](push.Fixed(4), push.Pure(func(b []byte) (uint32, bool) {
		return wire.Lsb.Fixed32(b), true
	}))
}

// ReadFixed64 reads protobuf's 64-bit wire type: 8 little-endian bytes
// decoded straight into a uint64.
func ReadFixed64() push.Callback[any, uint64] {
	return push.Compose[any, []byte, uint64](push.Fixed(8), push.Pure(func(b []byte) (uint64, bool) {
		return wire.Lsb.Fixed64(b), true
	}))
}
