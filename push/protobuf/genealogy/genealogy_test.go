package genealogy

import (
	"testing"

	"github.com/bgpfix/push"
	"github.com/stretchr/testify/require"
)

func varint(v uint64) []byte {
	var out []byte
	for v >= 0x80 {
		out = append(out, byte(v)|0x80)
		v >>= 7
	}
	return append(out, byte(v))
}

func tag(field int, wire int) []byte {
	return varint(uint64(field)<<3 | uint64(wire))
}

// encodePerson builds the wire bytes for a Person the way a protobuf
// encoder would: one tag/value pair per populated field, in field-number
// order (Fold places no requirement on field ordering, but a real
// encoder emits them this way and the decoder must not care either way).
func encodePerson(p *Person) []byte {
	var out []byte
	out = append(out, tag(fieldID, 0)...)
	out = append(out, varint(uint64(p.ID))...)
	out = append(out, tag(fieldName, 2)...)
	out = append(out, varint(uint64(len(p.Name)))...)
	out = append(out, []byte(p.Name)...)
	out = append(out, tag(fieldMother, 0)...)
	out = append(out, varint(uint64(p.Mother))...)
	out = append(out, tag(fieldFather, 0)...)
	out = append(out, varint(uint64(p.Father))...)
	out = append(out, tag(fieldDOB, 0)...)
	out = append(out, varint(p.DOB)...)
	return out
}

// feedInChunks replays data against a fresh driver split into pieces of
// size chunkSize (0 meaning "submit it all at once"), exercising the
// chunking-invariance property: the same bytes must decode to the same
// Person no matter how the host fragments them across Submit calls.
func feedInChunks(t *testing.T, data []byte, chunkSize int) (push.Status, *Person) {
	t.Helper()

	d := push.NewDriver[any, *Person](DecodePerson())

	if chunkSize <= 0 || chunkSize >= len(data) {
		st := d.Activate(nil, data)
		if st == push.StatusIncomplete {
			st = d.EOF()
		}
		return st, d.Result()
	}

	st := d.Activate(nil, nil)
	for len(data) > 0 && st == push.StatusIncomplete {
		n := chunkSize
		if n > len(data) {
			n = len(data)
		}
		st = d.Submit(data[:n])
		data = data[n:]
	}
	if st == push.StatusIncomplete {
		st = d.EOF()
	}
	return st, d.Result()
}

func TestDecodePersonAgreesAcrossChunkSizes(t *testing.T) {
	want := &Person{ID: 7, Name: "Ada Lovelace", Mother: 3, Father: 4, DOB: 18151210}
	data := encodePerson(want)

	for _, size := range []int{0, 1, 3, 5, 11} {
		st, got := feedInChunks(t, append([]byte(nil), data...), size)
		require.Equal(t, push.StatusSuccess, st, "chunk size %d", size)
		require.Equal(t, want, got, "chunk size %d", size)
	}
}

func TestDecodePersonHandlesZeroValuedFields(t *testing.T) {
	want := &Person{ID: 1, Name: "Root Ancestor"}
	data := encodePerson(want)

	st, got := feedInChunks(t, data, 0)
	require.Equal(t, push.StatusSuccess, st)
	require.Equal(t, want, got)
}

func TestDecodePersonWithLongNameAcrossWindow(t *testing.T) {
	longName := ""
	for i := 0; i < 40; i++ {
		longName += "genealogist-"
	}
	want := &Person{ID: 42, Name: longName, Mother: 10, Father: 11, DOB: 19000101}
	data := encodePerson(want)

	for _, size := range []int{7, 17} {
		st, got := feedInChunks(t, append([]byte(nil), data...), size)
		require.Equal(t, push.StatusSuccess, st, "chunk size %d", size)
		require.Equal(t, want, got, "chunk size %d", size)
	}
}
