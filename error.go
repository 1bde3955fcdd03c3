package saddle

import "fmt"

// Kind distinguishes the five ways a run can fail, per the error handling
// design: nothing is recovered locally, a run produces either success or
// exactly one error carrying one of these kinds.
type Kind int

const (
	// IoFailure means the input could not be read. Only ever produced by
	// the CLI layer, never by the core library itself, but the kind lives
	// here so callers can branch on it uniformly.
	IoFailure Kind = iota
	// Malformed means the Decoder found a directive prefix it could not
	// parse to completion.
	Malformed
	// NoDirectives means a scan completed without finding a single
	// directive.
	NoDirectives
	// Cycle means the scope graph contains a strongly connected component
	// of size greater than one, or a self-loop.
	Cycle
	// BorrowConflict means at least one scope's borrow is incompatible
	// with what may already be held when it is entered.
	BorrowConflict
)

func (k Kind) String() string {
	switch k {
	case IoFailure:
		return "IoFailure"
	case Malformed:
		return "Malformed"
	case NoDirectives:
		return "NoDirectives"
	case Cycle:
		return "Cycle"
	case BorrowConflict:
		return "BorrowConflict"
	default:
		return "Unknown"
	}
}

// Error is the one error shape this analyzer ever returns: a Kind plus the
// full diagnostic body, and optionally the lower-level error it wraps in
// Err. Error() returns Message when it is set, and falls back to the Kind
// and Err otherwise.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// newError builds an *Error carrying a formatted diagnostic body.
func newError(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrapError builds an *Error of the given kind around a lower-level error;
// the original error is always retrievable with errors.Unwrap.
func wrapError(kind Kind, err error, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

// WrapIoFailure builds an *Error of Kind IoFailure around a failed read.
// The core library never produces this kind itself (the decoder and
// validator take an in-memory buffer and a frozen graph respectively); it
// is exported for the CLI layer, which is the one place an IoFailure can
// occur, so it can report file errors through the same *Error shape.
func WrapIoFailure(err error, format string, args ...interface{}) *Error {
	return wrapError(IoFailure, err, format, args...)
}
