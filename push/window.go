package push

// MinBytes buffers activation bytes until at least min of them have
// arrived, then forwards them to wrapped in a single chunk. If the
// first chunk already meets the threshold, it is forwarded directly
// with no buffering or copying at all.
//
// Unlike the reference library's push_min_bytes, which must refuse any
// leftover bytes from its internal buffer (it has nowhere safe to put
// them back), this version can return them as genuine remaining bytes:
// Go slices are independently owned memory, so there is no hazard in
// handing back a suffix of an assembled buffer to whatever comes next.
type minBytesCB[In, Out any] struct {
	Slots[Out]
	wrapped Callback[In, Out]
	min     int
	input   In
	buf     []byte
}

func MinBytes[In, Out any](wrapped Callback[In, Out], min int) Callback[In, Out] {
	return &minBytesCB[In, Out]{wrapped: wrapped, min: min}
}

func (c *minBytesCB[In, Out]) Activate(input In, initial []byte) {
	c.input = input
	c.wrapped.SetSuccess(c.Success)
	c.wrapped.SetIncomplete(c.Incomplete)
	c.wrapped.SetError(c.Error)

	if len(initial) >= c.min {
		c.wrapped.Activate(input, initial)
		return
	}

	c.buf = append([]byte(nil), initial...)
	c.Incomplete(c.accumulate)
}

func (c *minBytesCB[In, Out]) accumulate(chunk []byte) {
	if len(chunk) == 0 {
		c.Error(StatusParseError, ErrShort)
		return
	}
	c.buf = append(c.buf, chunk...)
	if len(c.buf) < c.min {
		c.Incomplete(c.accumulate)
		return
	}
	c.wrapped.Activate(c.input, c.buf)
}

// maxBytesCB implements both MaxBytes and DynamicMaxBytes: it caps the
// bytes handed to wrapped at max, splitting any chunk that would exceed
// the cap into a forwarded prefix and a saved leftover suffix. If
// wrapped finishes before the cap is reached, any bytes it leaves
// unconsumed are spliced back together with the saved leftover before
// being reported as this combinator's own remaining bytes. If wrapped
// is still going once the cap is reached exactly, it is sent an
// end-of-stream probe (an empty chunk) to force it to conclude.
type maxBytesCB[In, Out any] struct {
	Slots[Out]
	wrapped     Callback[In, Out]
	max         int
	processed   int
	leftover    []byte
	wrappedCont ContinueFunc
}

// MaxBytes caps the bytes wrapped may consume at max.
func MaxBytes[In, Out any](wrapped Callback[In, Out], max int) Callback[In, Out] {
	return &maxBytesCB[In, Out]{wrapped: wrapped, max: max}
}

func (c *maxBytesCB[In, Out]) Activate(input In, initial []byte) {
	c.wireWrapped()
	c.activateChunk(input, initial)
}

func (c *maxBytesCB[In, Out]) wireWrapped() {
	c.wrapped.SetSuccess(c.wrappedSuccess)
	c.wrapped.SetError(c.Error)
}

func (c *maxBytesCB[In, Out]) activateChunk(input In, chunk []byte) {
	if len(chunk) <= c.max {
		c.processed = len(chunk)
		if len(chunk) == c.max {
			c.leftover = nil
			c.wrapped.SetIncomplete(c.wrappedFinished)
		} else {
			c.wrapped.SetIncomplete(c.wrappedIncomplete)
		}
		c.wrapped.Activate(input, chunk)
		return
	}

	c.processed = c.max
	c.leftover = chunk[c.max:]
	c.wrapped.SetIncomplete(c.wrappedFinished)
	c.wrapped.Activate(input, chunk[:c.max])
}

func (c *maxBytesCB[In, Out]) cont(chunk []byte) {
	remaining := c.max - c.processed
	if len(chunk) <= remaining {
		c.processed += len(chunk)
		if len(chunk) == remaining {
			c.leftover = nil
			c.wrapped.SetIncomplete(c.wrappedFinished)
		} else {
			c.wrapped.SetIncomplete(c.wrappedIncomplete)
		}
		c.wrappedCont(chunk)
		return
	}

	send := chunk[:remaining]
	c.leftover = chunk[remaining:]
	c.processed = c.max
	c.wrapped.SetIncomplete(c.wrappedFinished)
	c.wrappedCont(send)
}

func (c *maxBytesCB[In, Out]) wrappedIncomplete(cont ContinueFunc) {
	c.wrappedCont = cont
	c.Incomplete(c.cont)
}

func (c *maxBytesCB[In, Out]) wrappedFinished(cont ContinueFunc) {
	// The cap has been reached. Probe wrapped with an end-of-stream
	// chunk; its reaction (success or error) is caught by the slots
	// already wired for this round.
	cont(nil)
}

func (c *maxBytesCB[In, Out]) wrappedSuccess(result Out, remaining []byte) {
	if len(c.leftover) == 0 {
		c.Success(result, remaining)
		return
	}
	combined := make([]byte, 0, len(remaining)+len(c.leftover))
	combined = append(combined, remaining...)
	combined = append(combined, c.leftover...)
	c.Success(result, combined)
}

// dynamicMaxBytesCB reads its cap from the activation input itself,
// rather than from a constructor argument.
type dynamicMaxBytesCB[In, Out any] struct {
	maxBytesCB[In, Out]
}

// DynamicMaxBytes caps the bytes wrapped may consume at a value carried
// in the activation Pair: element 0 is the cap (an int), element 1 is
// the In value to forward to wrapped.
func DynamicMaxBytes[In, Out any](wrapped Callback[In, Out]) Callback[Pair, Out] {
	return &dynamicMaxBytesCB[In, Out]{maxBytesCB: maxBytesCB[In, Out]{wrapped: wrapped}}
}

func (c *dynamicMaxBytesCB[In, Out]) Activate(pair Pair, initial []byte) {
	size, ok := pair.First().(int)
	if !ok {
		c.Error(StatusMemoryError, ErrTupleSize)
		return
	}
	var input In
	// As in Box, a nil element is accepted when In is an interface type.
	if second := pair.Second(); second != nil || any(input) != nil {
		v, ok := second.(In)
		if !ok {
			c.Error(StatusMemoryError, ErrTupleSize)
			return
		}
		input = v
	}
	c.max = size
	c.wireWrapped()
	c.activateChunk(input, initial)
}
