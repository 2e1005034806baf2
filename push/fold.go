package push

import "fmt"

// Fold runs wrapped repeatedly, feeding each iteration's result back in
// as the next iteration's activation input, until wrapped itself signals
// the sequence is done. Two distinct ways exist for the sequence to end
// cleanly, both translated directly from the reference library's
// fold.c:
//
//   - wrapped reports StatusParseError as the very first thing it does
//     in an iteration (before consuming any bytes of that iteration) —
//     read as "no more elements here", not a malformed one.
//   - an iteration starts with no bytes available yet, and the chunk
//     that eventually arrives is empty — read as end of stream between
//     elements.
//
// Once an iteration has consumed at least one byte, a subsequent parse
// error is a genuine failure and is reported as one.
func Fold[T any](wrapped Callback[T, T]) Callback[T, T] {
	return &foldCB[T]{wrapped: wrapped}
}

type foldCB[T any] struct {
	Slots[T]
	wrapped     Callback[T, T]
	wrappedCont ContinueFunc
	last        T
	firstChunk  []byte
}

func (c *foldCB[T]) Activate(input T, initial []byte) {
	c.last = input
	c.firstChunk = initial
	c.wrapped.SetSuccess(c.Activate)
	c.wrapped.SetIncomplete(c.rememberIncomplete)
	c.wrapped.SetError(c.initialError)
	c.wrapped.Activate(input, initial)
}

func (c *foldCB[T]) rememberIncomplete(cont ContinueFunc) {
	if len(c.firstChunk) > 0 {
		// This iteration has already consumed at least one byte: from
		// here on, a parse error is real, and incomplete passes through
		// directly without further interception.
		c.wrapped.SetIncomplete(func(cont ContinueFunc) { c.Incomplete(cont) })
		c.wrapped.SetError(c.laterError)
		c.Incomplete(cont)
		return
	}

	c.wrappedCont = cont
	c.Incomplete(c.continueAfterEmpty)
}

func (c *foldCB[T]) continueAfterEmpty(chunk []byte) {
	if len(chunk) == 0 {
		c.Success(c.last, nil)
		return
	}
	c.firstChunk = chunk
	c.wrappedCont(chunk)
}

func (c *foldCB[T]) initialError(status Status, err error) {
	if status == StatusParseError {
		c.Success(c.last, c.firstChunk)
		return
	}
	c.Error(status, err)
}

func (c *foldCB[T]) laterError(status Status, err error) {
	if status == StatusParseError {
		c.Error(StatusParseError, fmt.Errorf("fold: %w", err))
		return
	}
	c.Error(status, err)
}
