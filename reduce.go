// reduce.go — terminal reduction of an InternalError to its display string.
package xgxinternal

// ReduceToString reduces e to its display string.
//
// If e wraps a cause, the structured debug rendering is first emitted to
// the diagnostic sink at debug severity, preserving information (notably
// the cause's concrete type and nesting) that the display string drops.
// Without a cause there is nothing to preserve and no emission happens.
//
// The call is terminal: it consumes e, which must not be used afterwards.
// Go cannot enforce the move, so a one-shot guard ensures the sink sees at
// most one emission per value even if the caller violates the contract.
// Not safe for concurrent use on the same value.
func (e *InternalError) ReduceToString() string {
	if e.cause != nil && !e.reduced {
		e.reduced = true
		activeSink().Debug(e.DebugString())
	}
	return e.Error()
}
