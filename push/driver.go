package push

import "github.com/rs/zerolog"

// Driver owns the suspend/resume loop for a callback tree: it activates
// the top callback once, buffers the continuation the tree registers
// when it suspends, and forwards each later chunk (or end of stream) to
// that continuation, the same pattern pipe.Input.Write uses to turn a
// stdlib io.Writer into the chunked feed a BGP decoder expects.
//
// A Driver is not safe for concurrent use: only one goroutine may call
// Activate, Submit or EOF on it at a time. Nothing enforces this.
type Driver[In, Out any] struct {
	// Log, if non-nil, receives a trace-level event per Submit/EOF call.
	// Left nil, a Driver logs nothing (the zero value is ready to use).
	Log *zerolog.Logger

	top      Callback[In, Out]
	cont     ContinueFunc
	status   Status
	result   Out
	err      error
	trailing []byte
}

// NewDriver wires a fresh Driver to the given top-level callback. The
// callback must not have been activated yet.
func NewDriver[In, Out any](top Callback[In, Out]) *Driver[In, Out] {
	d := &Driver[In, Out]{top: top}
	top.SetSuccess(d.onSuccess)
	top.SetIncomplete(d.onIncomplete)
	top.SetError(d.onError)
	return d
}

func (d *Driver[In, Out]) log() *zerolog.Logger {
	if d.Log != nil {
		return d.Log
	}
	nop := zerolog.Nop()
	return &nop
}

// Activate starts the parse with an input value and the first chunk of
// bytes, if any are already available. Call it exactly once.
func (d *Driver[In, Out]) Activate(input In, initial []byte) Status {
	d.status = StatusIncomplete
	d.top.Activate(input, initial)
	return d.status
}

// Submit feeds the next chunk of bytes to the suspended continuation.
// It is a no-op, returning the driver's current status unchanged, if
// the driver is not currently suspended (StatusIncomplete) — matching
// spec's stated implementation choice to treat a superfluous Submit as
// harmless rather than fatal.
func (d *Driver[In, Out]) Submit(chunk []byte) Status {
	if d.status != StatusIncomplete || d.cont == nil {
		return d.status
	}
	d.log().Trace().Int("bytes", len(chunk)).Msg("push: submit")
	cont := d.cont
	d.cont = nil
	cont(chunk)
	return d.status
}

// EOF signals end of stream: no more bytes will ever arrive. It is
// equivalent to Submit(nil) and exists so call sites can express intent
// without an empty-slice literal.
func (d *Driver[In, Out]) EOF() Status {
	if d.status != StatusIncomplete || d.cont == nil {
		return d.status
	}
	d.log().Trace().Msg("push: eof")
	cont := d.cont
	d.cont = nil
	cont(nil)
	return d.status
}

// Status reports the driver's current state.
func (d *Driver[In, Out]) Status() Status { return d.status }

// Result returns the decoded value. Valid only once Status() is
// StatusSuccess.
func (d *Driver[In, Out]) Result() Out { return d.result }

// Err returns the parse or memory error. Valid only once Status() is
// one of StatusParseError or StatusMemoryError.
func (d *Driver[In, Out]) Err() error { return d.err }

func (d *Driver[In, Out]) onSuccess(result Out, remaining []byte) {
	d.status = StatusSuccess
	d.result = result
	if len(remaining) > 0 {
		d.log().Trace().Int("bytes", len(remaining)).Msg("push: trailing bytes after success")
	}
	d.trailing = remaining
}

func (d *Driver[In, Out]) onIncomplete(cont ContinueFunc) {
	d.status = StatusIncomplete
	d.cont = cont
}

func (d *Driver[In, Out]) onError(status Status, err error) {
	d.status = status
	d.err = err
	d.log().Debug().Err(err).Stringer("status", status).Msg("push: error")
}

// Trailing returns whatever bytes were left over after a successful
// parse, making the byte-conservation property directly observable
// instead of only inferable from the driver's book-keeping.
func (d *Driver[In, Out]) Trailing() []byte { return d.trailing }
