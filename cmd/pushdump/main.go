// Command pushdump feeds a file through a schema-free protobuf message
// parser built from the push combinators and prints the decoded field
// map as JSON, the way example.go fed a BGP stream through a pipe and
// printed each message.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/bgpfix/push"
	"github.com/bgpfix/push/protobuf"
)

var opt_chunk = flag.Int("chunk", 0, "feed the file in chunks of this many bytes (0 = all at once)")

func main() {
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: pushdump [OPTIONS] <file.bin>\n")
		os.Exit(1)
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "pushdump: %v\n", err)
		os.Exit(1)
	}

	fields, status, err := dump(data, *opt_chunk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pushdump: %s: %v\n", status, err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(fields, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "pushdump: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// dump decodes data as a top-level protobuf message with no schema: every
// field it encounters is captured under its field number, decoded only as
// far as its wire type dictates (varint or 32/64-bit fixed as a number,
// length-delimited as raw bytes — printed as a base64 string by
// encoding/json).
// chunkSize, if positive, replays data through the driver in pieces
// instead of all at once, demonstrating that the result does not depend
// on how the bytes were fragmented.
func dump(data []byte, chunkSize int) (map[int][]any, push.Status, error) {
	msg := newRawMessage()
	d := push.NewDriver[*rawMessage, *rawMessage](decodeRaw(msg))

	var status push.Status
	if chunkSize <= 0 || chunkSize >= len(data) {
		status = d.Activate(msg, data)
	} else {
		status = d.Activate(msg, nil)
		for len(data) > 0 && status == push.StatusIncomplete {
			n := chunkSize
			if n > len(data) {
				n = len(data)
			}
			status = d.Submit(data[:n])
			data = data[n:]
		}
	}
	if status == push.StatusIncomplete {
		status = d.EOF()
	}
	if status != push.StatusSuccess {
		return nil, status, d.Err()
	}
	return msg.fields, status, nil
}

// rawMessage accumulates one decoded value per occurrence of a field
// number, the schema-free analogue of protobuf.Message.
type rawMessage struct {
	fields map[int][]any
}

func newRawMessage() *rawMessage { return &rawMessage{fields: map[int][]any{}} }

func (m *rawMessage) append(field int, v any) {
	m.fields[field] = append(m.fields[field], v)
}

// decodeRaw is protobuf.DecodeMessage without a FieldMap: every field
// is decoded purely from its wire type, exactly the fallback skip path
// protobuf.dispatchCB takes for fields it has no reader registered for,
// except the decoded value is kept instead of discarded.
func decodeRaw(msg *rawMessage) push.Callback[*rawMessage, *rawMessage] {
	return push.Fold[*rawMessage](&rawDispatch{msg: msg})
}

type rawDispatch struct {
	push.Slots[*rawMessage]
	msg *rawMessage
}

func (c *rawDispatch) Activate(msg *rawMessage, initial []byte) {
	tag := protobuf.ReadTag[*rawMessage]()
	tag.SetSuccess(c.onTag)
	tag.SetIncomplete(c.Incomplete)
	tag.SetError(c.Error)
	tag.Activate(msg, initial)
}

func (c *rawDispatch) onTag(t protobuf.Tag, remaining []byte) {
	value := rawValueReader(t.Wire)
	if value == nil {
		c.Error(push.StatusParseError, fmt.Errorf("pushdump: field %d: unsupported wire type %d", t.Field, t.Wire))
		return
	}
	value.SetSuccess(func(v any, rem2 []byte) {
		c.msg.append(t.Field, v)
		c.Success(c.msg, rem2)
	})
	value.SetIncomplete(c.Incomplete)
	value.SetError(c.Error)
	value.Activate(nil, remaining)
}

// rawValueReader returns a callback that decodes one value of the given
// wire type into a display-friendly Go value: a number for varint and
// fixed-width fields, a raw byte slice for length-delimited fields.
func rawValueReader(wire protobuf.WireType) push.Callback[any, any] {
	switch wire {
	case protobuf.WireVarint:
		return push.Box[any, uint64](protobuf.ReadVarint64())
	case protobuf.Wire64:
		return push.Box[any, uint64](protobuf.ReadFixed64())
	case protobuf.Wire32:
		return push.Box[any, uint32](protobuf.ReadFixed32())
	case protobuf.WireLengthDelimited:
		return push.Box[any, []byte](protobuf.LengthPrefixed[[]byte](protobuf.ReadAll()))
	default:
		return nil
	}
}
