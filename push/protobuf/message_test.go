package protobuf

import (
	"testing"

	"github.com/bgpfix/push"
	"github.com/stretchr/testify/require"
)

func tagBytes(field int, wire WireType) []byte {
	return encodeVarint(uint64(field)<<3 | uint64(wire))
}

func TestDecodeMessageReadsMultipleFields(t *testing.T) {
	fm := NewFieldMap().
		Set(1, WireVarint, push.Box[any, uint64](ReadVarint64())).
		Set(2, WireLengthDelimited, push.Box[any, []byte](LengthPrefixed[[]byte](ReadAll())))

	var data []byte
	data = append(data, tagBytes(1, WireVarint)...)
	data = append(data, encodeVarint(42)...)
	data = append(data, tagBytes(2, WireLengthDelimited)...)
	data = append(data, encodeVarint(5)...)
	data = append(data, []byte("hello")...)

	msg := NewMessage()
	d := push.NewDriver[*Message, *Message](DecodeMessage(msg, fm))
	st := d.Activate(msg, data)
	require.Equal(t, push.StatusIncomplete, st)

	st = d.EOF()
	require.Equal(t, push.StatusSuccess, st)

	id, ok := msg.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(42), id)

	name, ok := msg.Get(2)
	require.True(t, ok)
	require.Equal(t, []byte("hello"), name)
}

func TestDecodeMessageSkipsUnknownField(t *testing.T) {
	fm := NewFieldMap().Set(1, WireVarint, push.Box[any, uint64](ReadVarint64()))

	var data []byte
	data = append(data, tagBytes(7, WireVarint)...)
	data = append(data, encodeVarint(12345)...)
	data = append(data, tagBytes(1, WireVarint)...)
	data = append(data, encodeVarint(99)...)

	msg := NewMessage()
	d := push.NewDriver[*Message, *Message](DecodeMessage(msg, fm))
	st := d.Activate(msg, data)
	require.Equal(t, push.StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, push.StatusSuccess, st)

	_, ok := msg.Get(7)
	require.False(t, ok)
	v, ok := msg.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(99), v)
}

func TestDecodeMessageSkipsFieldWithUnexpectedWireType(t *testing.T) {
	fm := NewFieldMap().Set(1, WireLengthDelimited, push.Box[any, []byte](LengthPrefixed[[]byte](ReadAll())))

	var data []byte
	data = append(data, tagBytes(1, WireVarint)...)
	data = append(data, encodeVarint(1)...)

	msg := NewMessage()
	d := push.NewDriver[*Message, *Message](DecodeMessage(msg, fm))
	st := d.Activate(msg, data)
	require.Equal(t, push.StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, push.StatusSuccess, st)

	_, ok := msg.Get(1)
	require.False(t, ok)
}

func TestDecodeMessageSkipsUnknownFixedWidthFields(t *testing.T) {
	fm := NewFieldMap().Set(1, WireVarint, push.Box[any, uint64](ReadVarint64()))

	var data []byte
	data = append(data, tagBytes(9, Wire32)...)
	data = append(data, []byte{0xAA, 0xBB, 0xCC, 0xDD}...)
	data = append(data, tagBytes(10, Wire64)...)
	data = append(data, []byte{1, 2, 3, 4, 5, 6, 7, 8}...)
	data = append(data, tagBytes(1, WireVarint)...)
	data = append(data, encodeVarint(7)...)

	msg := NewMessage()
	d := push.NewDriver[*Message, *Message](DecodeMessage(msg, fm))
	st := d.Activate(msg, data)
	require.Equal(t, push.StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, push.StatusSuccess, st)

	_, ok := msg.Get(9)
	require.False(t, ok)
	_, ok = msg.Get(10)
	require.False(t, ok)
	v, ok := msg.Get(1)
	require.True(t, ok)
	require.Equal(t, uint64(7), v)
}
