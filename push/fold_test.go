package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// readU32LE reads a little-endian uint32 and ignores its own input,
// making it usable as the first element of a dup'd pair inside fold.
func readU32LE() Callback[any, uint32] {
	return Compose[any, []byte, uint32](Fixed(4), Pure(func(b []byte) (uint32, bool) {
		return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, true
	}))
}

// sumOfU32LE folds a stream of little-endian uint32 values into their
// running sum: dup(2) ⟫ first(read-u32-le) ⟫ pure(sum).
func sumOfU32LE() Callback[int, int] {
	step := Compose[int, Tuple, int](
		Compose[int, Tuple, Tuple](Dup[int](2), First(Box[any, uint32](readU32LE()))),
		Pure(func(t Tuple) (int, bool) {
			return int(t.First().(uint32)) + t.Second().(int), true
		}),
	)
	return Fold[int](step)
}

func u32le(v uint32) []byte {
	return []byte{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func TestFoldSumsAStreamOfValues(t *testing.T) {
	var data []byte
	data = append(data, u32le(1)...)
	data = append(data, u32le(2)...)
	data = append(data, u32le(3)...)

	d := NewDriver[int, int](sumOfU32LE())
	st := d.Activate(0, data)
	require.Equal(t, StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, 6, d.Result())
}

func TestFoldSucceedsOnCleanEndBetweenElements(t *testing.T) {
	data := u32le(10)

	d := NewDriver[int, int](sumOfU32LE())
	st := d.Activate(0, data)
	require.Equal(t, StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, 10, d.Result())
}

func TestFoldFailsOnTruncatedFinalElement(t *testing.T) {
	var data []byte
	data = append(data, u32le(10)...)
	data = append(data, 0, 0) // two stray bytes: a truncated element

	d := NewDriver[int, int](sumOfU32LE())
	st := d.Activate(0, data)
	require.Equal(t, StatusIncomplete, st)
	st = d.EOF()
	require.Equal(t, StatusParseError, st)
	require.ErrorIs(t, d.Err(), ErrShort)
}

func TestFoldChunkInvarianceOfResult(t *testing.T) {
	var data []byte
	data = append(data, u32le(4)...)
	data = append(data, u32le(5)...)
	data = append(data, u32le(6)...)

	for _, size := range []int{0, 1, 3, 5} {
		d := NewDriver[int, int](sumOfU32LE())
		st := feedInChunks(t, d, 0, append([]byte(nil), data...), size)
		require.Equal(t, StatusSuccess, st, "chunk size %d", size)
		require.Equal(t, 15, d.Result(), "chunk size %d", size)
	}
}
