package push

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeSequencesTwoCallbacks(t *testing.T) {
	for _, size := range []int{0, 1} {
		d := NewDriver[any, int](Compose[any, []byte, int](Fixed(3), Pure(func(b []byte) (int, bool) { return len(b), true })))
		st := feedInChunks(t, d, nil, []byte("abcREST"), size)
		require.Equal(t, StatusSuccess, st)
		require.Equal(t, 3, d.Result())
	}

	// Trailing bytes are only defined relative to what was actually
	// submitted, so check them precisely with a single submission.
	d := NewDriver[any, int](Compose[any, []byte, int](Fixed(3), Pure(func(b []byte) (int, bool) { return len(b), true })))
	st := d.Activate(nil, []byte("abcREST"))
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, []byte("REST"), d.Trailing())
}

func TestComposePropagatesErrorFromEitherStage(t *testing.T) {
	// First stage errors.
	d1 := NewDriver[any, int](Compose[any, []byte, int](Fixed(5), Pure(func(b []byte) (int, bool) { return len(b), true })))
	st := d1.Activate(nil, []byte("ab"))
	require.Equal(t, StatusIncomplete, st)
	st = d1.EOF()
	require.Equal(t, StatusParseError, st)
	require.ErrorIs(t, d1.Err(), ErrShort)

	// Second stage errors.
	d2 := NewDriver[any, int](Compose[any, []byte, int](Fixed(2), Pure(func(b []byte) (int, bool) { return 0, false })))
	st = d2.Activate(nil, []byte("ab"))
	require.Equal(t, StatusParseError, st)
	require.ErrorIs(t, d2.Err(), ErrNoMatch)
}

func TestBindIsAliasForCompose(t *testing.T) {
	d := NewDriver[any, int](Bind[any, []byte, int](Fixed(2), Pure(func(b []byte) (int, bool) { return len(b), true })))
	st := d.Activate(nil, []byte("xy"))
	require.Equal(t, StatusSuccess, st)
	require.Equal(t, 2, d.Result())
}
