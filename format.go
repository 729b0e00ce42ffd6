// format.go — fmt.Formatter implementation for InternalError.
//
// Behavior:
//
//   %s, %v   → concise display string (Error()).
//   %+v, %#v → structured debug rendering (DebugString()).
//   %q       → quoted display string.
//
// Rationale:
//   - Display is the safe, user-facing form; Debug is the verbose
//     diagnostic form operators reach for when the dropped cause type
//     matters. The verb split mirrors that policy and nothing else.
package xgxinternal

import (
	"fmt"
	"io"
)

func (e *InternalError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') || s.Flag('#') {
			_, _ = io.WriteString(s, e.DebugString())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

var _ fmt.Formatter = (*InternalError)(nil)
