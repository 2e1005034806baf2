package push

// Compose sequences two callbacks: a runs first, and its result becomes
// the activation input for b. The composite forwards whichever
// callback is currently active straight through for incomplete and
// error; only a's success is intercepted, to launch b.
func Compose[In, Mid, Out any](a Callback[In, Mid], b Callback[Mid, Out]) Callback[In, Out] {
	c := &composeCB[In, Mid, Out]{a: a, b: b}
	a.SetSuccess(func(result Mid, remaining []byte) { b.Activate(result, remaining) })
	a.SetIncomplete(func(cont ContinueFunc) { c.Incomplete(cont) })
	a.SetError(func(status Status, err error) { c.Error(status, err) })
	b.SetSuccess(func(result Out, remaining []byte) { c.Success(result, remaining) })
	b.SetIncomplete(func(cont ContinueFunc) { c.Incomplete(cont) })
	b.SetError(func(status Status, err error) { c.Error(status, err) })
	return c
}

type composeCB[In, Mid, Out any] struct {
	Slots[Out]
	a Callback[In, Mid]
	b Callback[Mid, Out]
}

func (c *composeCB[In, Mid, Out]) Activate(input In, initial []byte) {
	c.a.Activate(input, initial)
}

// Bind is an alias for Compose. The reference library draws a
// distinction between "compose, which only sequences" and "bind, which
// additionally threads a result" — in continuation-passing style under
// Go's type system the two collapse into the same operation, so Bind is
// kept only for callers translating code from that vocabulary.
func Bind[In, Mid, Out any](a Callback[In, Mid], b Callback[Mid, Out]) Callback[In, Out] {
	return Compose(a, b)
}
