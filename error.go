// error.go — the InternalError type: construction, display, cause access.
//
// Scope (tiny core):
//   - One concrete type wrapping a low-level failure whose details are not
//     actionable by the caller.
//   - Four constructors, mutually exclusive in the fields they populate.
//   - Display (Error) stays concise; structured diagnostics live in debug.go.
//
// Interop:
//   - Unwrap() error exposes the wrapped cause, so errors.Is/As traverse
//     chains of InternalErrors like any other wrapped error.
//
// Notes:
//   - Optionality is explicit (has-flags) rather than "" sentinels: the
//     empty string is a legal, distinct message or prefix, and presence of
//     a message changes which rendering branch is taken.
//   - Values are immutable after construction. The reduced flag in
//     reduce.go is the single sanctioned exception (one-shot guard for the
//     consuming conversion).
package xgxinternal

import "fmt"

// InternalError is an opaque error produced when an operation fails for
// reasons internal to its implementation. There is no specific information
// a caller could use to recover or take corrective action; distinctions
// between call sites are carried only by message, prefix, and cause
// content, never by a discriminant callers switch on.
//
// An InternalError may wrap a lower-level cause. The cause is exclusively
// owned: it is consumed at construction and reachable afterwards only
// through this value (Unwrap, DebugString).
//
// Values are plain immutable data, safe to hand between goroutines. The
// one terminal operation is ReduceToString; see reduce.go.
type InternalError struct {
	message    string
	hasMessage bool
	cause      *causeInfo

	// reduced guards the one-shot sink emission in ReduceToString.
	reduced bool
}

// causeInfo pairs the wrapped cause with its optional display prefix.
// The prefix is display-only metadata; it is never exposed via Unwrap.
type causeInfo struct {
	prefix    string
	hasPrefix bool
	err       error
}

// FromSource wraps cause without a message or prefix.
//
// Display passes the cause's own text through unmodified; the wrapper is
// invisible to the caller.
func FromSource(cause error) *InternalError {
	return &InternalError{cause: &causeInfo{err: cause}}
}

// FromSourceWithMessage wraps cause behind message.
//
// Display is message verbatim; the cause remains reachable via Unwrap and
// in the debug rendering.
func FromSourceWithMessage(cause error, message string) *InternalError {
	return &InternalError{
		message:    message,
		hasMessage: true,
		cause:      &causeInfo{err: cause},
	}
}

// FromSourceWithPrefix wraps cause behind a display prefix.
//
// Display is "prefix: cause". The prefix labels the cause's rendering only;
// Unwrap still returns the bare cause.
func FromSourceWithPrefix(cause error, prefix string) *InternalError {
	return &InternalError{
		cause: &causeInfo{prefix: prefix, hasPrefix: true, err: cause},
	}
}

// WithMessage constructs an InternalError carrying only message.
func WithMessage(message string) *InternalError {
	return &InternalError{message: message, hasMessage: true}
}

// Error returns the safe, user-facing rendering: the message when present,
// otherwise the (optionally prefixed) cause text. The zero value, which no
// public constructor produces, falls back to the type's own name.
func (e *InternalError) Error() string {
	switch {
	case e.hasMessage:
		return e.message
	case e.cause != nil:
		if e.cause.hasPrefix {
			return fmt.Sprintf("%s: %v", e.cause.prefix, e.cause.err)
		}
		return fmt.Sprintf("%v", e.cause.err)
	default:
		return fmt.Sprintf("%T", *e)
	}
}

// Unwrap returns exactly the wrapped cause object, or nil when none is
// wrapped, so generic chain-walking code (errors.Is/As, Walk) traverses
// nested causes uniformly.
func (e *InternalError) Unwrap() error {
	if e.cause == nil {
		return nil
	}
	return e.cause.err
}

// Interface conformance guard (Formatter guard lives in format.go).
var _ error = (*InternalError)(nil)
