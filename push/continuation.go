package push

// This package translates the continuation-passing design of the C
// reference library directly into Go closures: a push_continuation_t
// plus its void* user data becomes a plain function value that closes
// over whatever state it needs. There is no separate "continuation
// object" to allocate or wire up by hand.

// SuccessFunc is invoked when a callback finishes parsing. result is the
// decoded value; remaining is the suffix of the most recently submitted
// chunk that the callback did not consume.
type SuccessFunc[Out any] func(result Out, remaining []byte)

// ContinueFunc resumes a callback that previously reported itself
// incomplete. An empty chunk means end of stream: no more bytes will
// ever arrive.
type ContinueFunc func(chunk []byte)

// IncompleteFunc registers the continuation that should be invoked the
// next time bytes (or end of stream) become available.
type IncompleteFunc func(cont ContinueFunc)

// ErrorFunc reports that a callback cannot proceed. status is always
// StatusParseError or StatusMemoryError.
type ErrorFunc func(status Status, err error)
