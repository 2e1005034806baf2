package push

// Box adapts a concretely-typed callback for use inside the tuple-based
// product combinators (Nth, Par, All, Both), whose elements are always
// boxed as any. A failed type assertion on activation is a wiring
// mistake, not a data-dependent parse outcome, so it reports
// StatusMemoryError rather than StatusParseError.
func Box[In, Out any](cb Callback[In, Out]) Callback[any, any] {
	return &boxCB[In, Out]{inner: cb}
}

type boxCB[In, Out any] struct {
	Slots[any]
	inner Callback[In, Out]
}

func (b *boxCB[In, Out]) Activate(input any, initial []byte) {
	var in In
	// A nil input is a valid value when In is itself an interface type
	// (e.g. any); a type assertion on nil would reject it.
	if input != nil || any(in) != nil {
		v, ok := input.(In)
		if !ok {
			b.Error(StatusMemoryError, ErrTupleSize)
			return
		}
		in = v
	}
	b.inner.SetSuccess(func(result Out, remaining []byte) { b.Success(result, remaining) })
	b.inner.SetIncomplete(func(cont ContinueFunc) { b.Incomplete(cont) })
	b.inner.SetError(func(status Status, err error) { b.Error(status, err) })
	b.inner.Activate(in, initial)
}

// Dup builds an n-element tuple whose elements are all the activation
// input, the seed a fan-out composition starts from. It is generic
// over the input type so it can sit at the head of a Compose chain
// whose input is not itself boxed as any (e.g. a Fold accumulator).
type dupCB[T any] struct {
	Slots[Tuple]
	n int
}

func Dup[T any](n int) Callback[T, Tuple] { return &dupCB[T]{n: n} }

func (c *dupCB[T]) Activate(input T, initial []byte) {
	t := make(Tuple, c.n)
	for i := range t {
		t[i] = input
	}
	c.Success(t, initial)
}

// Nth runs wrapped against element i of an n-element tuple, replacing
// that element with wrapped's result and leaving the rest untouched.
type nthCB struct {
	Slots[Tuple]
	wrapped Callback[any, any]
	i, n    int
}

func Nth(wrapped Callback[any, any], i, n int) Callback[Tuple, Tuple] {
	return &nthCB{wrapped: wrapped, i: i, n: n}
}

func (c *nthCB) Activate(t Tuple, initial []byte) {
	if len(t) != c.n {
		c.Error(StatusMemoryError, ErrTupleSize)
		return
	}
	c.wrapped.SetSuccess(func(result any, remaining []byte) {
		c.Success(t.With(c.i, result), remaining)
	})
	c.wrapped.SetIncomplete(func(cont ContinueFunc) { c.Incomplete(cont) })
	c.wrapped.SetError(func(status Status, err error) { c.Error(status, err) })
	c.wrapped.Activate(t[c.i], initial)
}

// First runs wrapped against element 0 of a Pair.
func First(wrapped Callback[any, any]) Callback[Tuple, Tuple] { return Nth(wrapped, 0, 2) }

// Second runs wrapped against element 1 of a Pair.
func Second(wrapped Callback[any, any]) Callback[Tuple, Tuple] { return Nth(wrapped, 1, 2) }

// Par runs callback i against element i of an n-element tuple, where n
// is len(cbs), by chaining n calls to Nth with Compose.
func Par(cbs ...Callback[any, any]) Callback[Tuple, Tuple] {
	if len(cbs) == 0 {
		return Noop[Tuple]()
	}
	n := len(cbs)
	result := Nth(cbs[0], 0, n)
	for i := 1; i < n; i++ {
		result = Compose[Tuple, Tuple, Tuple](result, Nth(cbs[i], i, n))
	}
	return result
}

// All runs every callback in cbs against a copy of the same activation
// input, returning their results as a tuple: Dup followed by Par.
func All(cbs ...Callback[any, any]) Callback[any, Tuple] {
	return Compose[any, Tuple, Tuple](Dup[any](len(cbs)), Par(cbs...))
}

// Both is All specialised to two callbacks.
func Both(a, b Callback[any, any]) Callback[any, Tuple] {
	return All(a, b)
}
