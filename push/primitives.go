package push

// Noop succeeds immediately with its input as its result, consuming no
// bytes. It is the identity element for Compose.
type noopCB[T any] struct{ Slots[T] }

func Noop[T any]() Callback[T, T] { return &noopCB[T]{} }

func (c *noopCB[T]) Activate(input T, initial []byte) {
	c.Success(input, initial)
}

// Pure wraps an ordinary Go function as a callback that consumes no
// bytes. f reports ok=false to signal StatusParseError, the same way
// the reference library's pure callback treats a NULL result as a
// rejected match.
type pureCB[In, Out any] struct {
	Slots[Out]
	f func(In) (Out, bool)
}

func Pure[In, Out any](f func(In) (Out, bool)) Callback[In, Out] {
	return &pureCB[In, Out]{f: f}
}

func (c *pureCB[In, Out]) Activate(input In, initial []byte) {
	result, ok := c.f(input)
	if !ok {
		c.Error(StatusParseError, ErrNoMatch)
		return
	}
	c.Success(result, initial)
}

// Skip discards n bytes, where n is the activation input itself (the
// same "take the count as input" shape as HWMString), and succeeds
// with nothing once they're gone. It is the simplest byte-consuming
// primitive and the template the other primitives follow: Activate
// never treats an empty initial chunk as end of stream (there may
// simply be no data yet); only a later, empty continuation chunk means
// that.
//
// Taking n as the activation input rather than a constructor argument
// is what lets a runtime-computed size flow straight into Skip via
// Compose, e.g. Compose(read_size, Skip()) for a length-delimited
// field whose value is never needed.
type skipCB struct {
	Slots[struct{}]
	remaining int
}

func Skip() Callback[int, struct{}] { return &skipCB{} }

func (c *skipCB) Activate(n int, initial []byte) {
	c.remaining = n
	c.consumeData(initial)
}

func (c *skipCB) consume(chunk []byte) {
	if len(chunk) == 0 && c.remaining > 0 {
		c.Error(StatusParseError, ErrShort)
		return
	}
	c.consumeData(chunk)
}

func (c *skipCB) consumeData(chunk []byte) {
	if c.remaining == 0 {
		c.Success(struct{}{}, chunk)
		return
	}
	n := len(chunk)
	if n >= c.remaining {
		rest := chunk[c.remaining:]
		c.remaining = 0
		c.Success(struct{}{}, rest)
		return
	}
	c.remaining -= n
	c.Incomplete(c.consume)
}

// innerFixed returns the bytes verbatim, once min-bytes has guaranteed
// at least size of them are available. It is never used on its own;
// Fixed composes it with MinBytes, matching push_fixed_new in the
// reference library.
type innerFixedCB struct {
	Slots[[]byte]
	size int
}

func (c *innerFixedCB) Activate(_ any, initial []byte) {
	if len(initial) < c.size {
		c.Error(StatusParseError, ErrShort)
		return
	}
	c.Success(initial[:c.size], initial[c.size:])
}

// Fixed reads exactly size bytes and returns them as a slice.
func Fixed(size int) Callback[any, []byte] {
	inner := &innerFixedCB{size: size}
	return MinBytes[any, []byte](inner, size)
}

// HWMString reads exactly n bytes (n supplied as the activation input,
// hence "high water mark") and returns them followed by a trailing NUL,
// mirroring the reference library's push_hwm_string, which hands back a
// C-style string.
type hwmStringCB struct {
	Slots[[]byte]
	left int
	buf  []byte
}

func HWMString() Callback[int, []byte] { return &hwmStringCB{} }

func (c *hwmStringCB) Activate(n int, initial []byte) {
	c.left = n
	c.buf = make([]byte, 0, n+1)
	c.consumeData(initial)
}

func (c *hwmStringCB) consume(chunk []byte) {
	if len(chunk) == 0 && c.left > 0 {
		c.Error(StatusParseError, ErrShort)
		return
	}
	c.consumeData(chunk)
}

func (c *hwmStringCB) consumeData(chunk []byte) {
	n := c.left
	if len(chunk) < n {
		n = len(chunk)
	}
	c.buf = append(c.buf, chunk[:n]...)
	c.left -= n
	rest := chunk[n:]
	if c.left == 0 {
		c.buf = append(c.buf, 0)
		c.Success(c.buf, rest)
		return
	}
	c.Incomplete(c.consume)
}

// EOF succeeds with its activation input once the stream actually ends,
// and fails with StatusParseError if any byte arrives instead — whether
// that byte is part of the activation chunk or a later one.
type eofCB[T any] struct {
	Slots[T]
	input T
}

func EOF[T any]() Callback[T, T] { return &eofCB[T]{} }

func (c *eofCB[T]) Activate(input T, initial []byte) {
	c.input = input
	if len(initial) > 0 {
		c.Error(StatusParseError, ErrNotZero)
		return
	}
	c.Incomplete(c.consume)
}

func (c *eofCB[T]) consume(chunk []byte) {
	if len(chunk) > 0 {
		c.Error(StatusParseError, ErrNotZero)
		return
	}
	c.Success(c.input, nil)
}
