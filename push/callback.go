package push

// Callback is a single node of a streaming parser. It never owns an I/O
// loop: it is handed bytes by whatever activates it, and it reports its
// outcome by invoking one of the three continuations registered via
// SetSuccess, SetIncomplete and SetError.
//
// Every constructor in this package (Fixed, Compose, Fold, and so on)
// returns a Callback. A tree of callbacks is built once, wired together,
// and then driven by calling Activate and then the continuation
// returned through SetIncomplete (any number of times after that).
type Callback[In, Out any] interface {
	// SetSuccess registers the continuation invoked when the callback
	// completes successfully.
	SetSuccess(fn SuccessFunc[Out])

	// SetIncomplete registers the continuation invoked when the callback
	// suspends, waiting for more bytes.
	SetIncomplete(fn IncompleteFunc)

	// SetError registers the continuation invoked when the callback
	// cannot make progress.
	SetError(fn ErrorFunc)

	// Activate starts the callback with an input value and the first
	// chunk of bytes available to it. Each call starts a fresh parse;
	// a combinator that reuses a callback, such as Fold, calls it again
	// for every iteration. An empty initial chunk means "nothing is
	// available yet", not end of stream.
	Activate(input In, initial []byte)
}

// Slots is embedded by every concrete callback in this package, and by
// any callback an external package builds on top of it (see the
// protobuf package's varint reader). It holds the three continuations
// registered by the parent combinator and exposes trampoline methods
// (Success, Incomplete, Error) that combinators wire their wrapped
// children to at construction time, so that a later call to
// SetSuccess/SetIncomplete/SetError on the parent transparently reaches
// whichever child is currently active.
//
// This stands in for the C reference's trick of aliasing continuation
// pointers between a combinator and the callback it wraps; Go has no
// raw pointer aliasing, so the indirection is made explicit here.
type Slots[Out any] struct {
	success    SuccessFunc[Out]
	incomplete IncompleteFunc
	error_     ErrorFunc
}

func (s *Slots[Out]) SetSuccess(fn SuccessFunc[Out])  { s.success = fn }
func (s *Slots[Out]) SetIncomplete(fn IncompleteFunc) { s.incomplete = fn }
func (s *Slots[Out]) SetError(fn ErrorFunc)           { s.error_ = fn }

// Success invokes the registered success continuation.
func (s *Slots[Out]) Success(result Out, remaining []byte) {
	s.success(result, remaining)
}

// Incomplete invokes the registered incomplete continuation.
func (s *Slots[Out]) Incomplete(cont ContinueFunc) {
	s.incomplete(cont)
}

// Error invokes the registered error continuation.
func (s *Slots[Out]) Error(status Status, err error) {
	s.error_(status, err)
}
