// Package agenterr defines the error taxonomy shared by the network,
// controllers, elements and geometry packages. Callers branch on Kind
// rather than on error strings or concrete Go types, matching the
// "error kinds, not types" design spec'd for this system.
package agenterr

import "fmt"

// Kind names a class of failure. Construction-time kinds are fatal to the
// caller that attempted construction; runtime kinds are fatal to the step
// or call that produced them.
type Kind string

const (
	// NetworkInitializationError covers duplicate region names or unknown
	// region names in a connectome, raised only at Network construction.
	NetworkInitializationError Kind = "NetworkInitializationError"
	// NetworkCommunicationError covers unknown region names or mismatched
	// state sizes supplied to propagation or motor decoding.
	NetworkCommunicationError Kind = "NetworkCommunicationError"
	// ControllerInitializationError covers a motor controller connected to
	// a non-existent or ill-sized set of motor regions.
	ControllerInitializationError Kind = "ControllerInitializationError"
	// InvalidAverage covers a graph-generator functor invoked with a mean
	// outside (0, 1).
	InvalidAverage Kind = "InvalidAverage"
	// SizeMismatch covers a self-referential graph-generator functor
	// invoked with unequal source/target sizes.
	SizeMismatch Kind = "SizeMismatch"
	// OutOfBounds covers an element state that violates its declared speed
	// or position envelope.
	OutOfBounds Kind = "OutOfBounds"
	// CurvedEdgeError covers an attempt to enumerate the corners of a
	// curved shape (a Circle).
	CurvedEdgeError Kind = "CurvedEdgeError"
	// LoadingError covers persisted configuration that does not
	// deserialize to the expected shape.
	LoadingError Kind = "LoadingError"
)

// Error is the concrete error type carried by every Kind above. FaultyNames
// holds the offending region/identifier names when applicable (e.g. for
// NetworkCommunicationError); it is nil otherwise.
type Error struct {
	Kind        Kind
	Message     string
	FaultyNames []string
	Cause       error
}

func (e *Error) Error() string {
	if len(e.FaultyNames) > 0 {
		return fmt.Sprintf("%s: %s %v", e.Kind, e.Message, e.FaultyNames)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap allows errors.Is/errors.As to reach a wrapped cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an *Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithFaultyNames attaches the faulty identifier list and returns the
// receiver for chaining.
func (e *Error) WithFaultyNames(names ...string) *Error {
	e.FaultyNames = names
	return e
}

// Wrap builds an *Error of the given kind wrapping cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// Is reports whether err, or any *Error reachable from it through the
// Cause chain, is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	for err != nil {
		if ae, ok := err.(*Error); ok {
			if ae.Kind == kind {
				return true
			}
			err = ae.Cause
			continue
		}
		break
	}
	return false
}
