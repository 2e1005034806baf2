package push

// Tuple is the payload type shared by the product combinators (Dup,
// Nth, Par, All, Both). Go has no variadic generic arity, so unlike the
// sequential combinators (which carry their precise element types as
// type parameters), tuple elements are boxed as any, the same way
// gomme-style combinators box a Result payload.
type Tuple []any

// NewTuple returns a tuple of n elements, all nil.
func NewTuple(n int) Tuple {
	return make(Tuple, n)
}

// With returns a copy of t with element i replaced by v. The receiver
// is left untouched, since wrapped callbacks may still hold a reference
// to it (e.g. inside a Fold iteration).
func (t Tuple) With(i int, v any) Tuple {
	out := make(Tuple, len(t))
	copy(out, t)
	out[i] = v
	return out
}

// First returns element 0. Meaningful for any tuple, but named for the
// common case of a size-2 tuple (a Pair).
func (t Tuple) First() any { return t[0] }

// Second returns element 1, meaningful for a size-2 tuple (a Pair).
func (t Tuple) Second() any { return t[1] }

// WithFirst returns a copy of t with element 0 replaced by v.
func (t Tuple) WithFirst(v any) Tuple { return t.With(0, v) }

// WithSecond returns a copy of t with element 1 replaced by v.
func (t Tuple) WithSecond(v any) Tuple { return t.With(1, v) }

// Pair is the size-2 specialisation of Tuple used by DynamicMaxBytes:
// element 0 is the byte count, element 1 is the value to forward to the
// wrapped callback.
type Pair = Tuple

// NewPair builds a size-2 tuple.
func NewPair(a, b any) Pair {
	return Pair{a, b}
}
