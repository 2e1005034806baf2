// Package wire provides the little-endian byte-order helpers the
// protobuf decoder needs for its fixed32 and fixed64 wire types.
package wire

import "encoding/binary"

// Lsb exposes the little-endian ByteOrder/AppendByteOrder pair, mirroring
// how the BGP binary package exposes Msb for the big-endian wire format.
var Lsb = lsb{
	binary.LittleEndian,
	binary.LittleEndian,
}

type lsb struct {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Fixed32 decodes 4 little-endian bytes into a uint32.
func (lsb) Fixed32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

// Fixed64 decodes 8 little-endian bytes into a uint64.
func (lsb) Fixed64(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
