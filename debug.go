// debug.go — structured debug rendering in record notation.
//
// DebugString renders `InternalError { field: value, ... }` with a fixed
// field order (message, prefix, source), absent fields omitted, and string
// values quoted. Consumers log and snapshot this exact text, so the
// renderer is hand-rolled rather than delegated to fmt's struct printing
// (which would leak has-flags and unexported layout).
//
// Recursion: the source field holds the cause's own structured rendering.
// Nested InternalErrors nest; causes implementing DebugStringer contribute
// their own record form; any other error contributes its quoted text.
package xgxinternal

import (
	"strconv"
	"strings"
)

// DebugStringer is implemented by errors that render themselves in
// structured record notation. DebugString recurses into causes that
// implement it.
type DebugStringer interface {
	DebugString() string
}

// DebugString returns the verbose diagnostic rendering of e. This is the
// form an operator needs when the cause's concrete type matters; Display
// (Error) drops it.
//
// A value with no populated fields renders as the bare type name
// "InternalError".
func (e *InternalError) DebugString() string {
	r := record{name: "InternalError"}
	if e.hasMessage {
		r.field("message", strconv.Quote(e.message))
	}
	if e.cause != nil {
		if e.cause.hasPrefix {
			r.field("prefix", strconv.Quote(e.cause.prefix))
		}
		r.field("source", debugValue(e.cause.err))
	}
	return r.String()
}

// debugValue renders a cause for the source field.
func debugValue(err error) string {
	if err == nil {
		return "<nil>"
	}
	if d, ok := err.(DebugStringer); ok {
		return d.DebugString()
	}
	return strconv.Quote(err.Error())
}

// record accumulates `Name { k: v, ... }` notation. Zero fields leave the
// bare name, matching conventional struct-debug output.
type record struct {
	name   string
	b      strings.Builder
	fields int
}

func (r *record) field(key, val string) {
	if r.fields == 0 {
		r.b.WriteString(r.name)
		r.b.WriteString(" { ")
	} else {
		r.b.WriteString(", ")
	}
	r.b.WriteString(key)
	r.b.WriteString(": ")
	r.b.WriteString(val)
	r.fields++
}

func (r *record) String() string {
	if r.fields == 0 {
		return r.name
	}
	return r.b.String() + " }"
}

var _ DebugStringer = (*InternalError)(nil)
