// doc.go — package documentation for xgx-internal
//
// Package xgxinternal provides a single opaque error primitive,
// InternalError, used to wrap low-level failures whose details are not
// actionable by the caller. It gives framework code one uniform type to
// construct, display, debug-render, and chain, regardless of what
// underlying failure produced it. It is designed to be:
//   - Ergonomic at call sites (four constructors, nothing to configure)
//   - Interoperable with the stdlib (errors.Is/As via Unwrap, fmt.Formatter)
//   - Policy-free (no classification taxonomy, no retry or HTTP rules)
//
// # Construction
//
// Exactly one of four shapes exists after construction, chosen by
// constructor:
//
//	WithMessage(msg)                       // message only
//	FromSource(cause)                      // cause only
//	FromSourceWithMessage(cause, msg)      // cause + message
//	FromSourceWithPrefix(cause, prefix)    // cause + prefix
//
// Constructors never validate their string arguments (the empty string is a
// legal message or prefix) and never inspect the cause's dynamic type. The
// cause is consumed into the InternalError: callers must not retain or
// mutate it afterwards.
//
// # Display vs Debug
//
// Display (Error, %v, %s) is the safe, user-facing rendering:
//   - message, verbatim, when present;
//   - otherwise "prefix: cause" when a prefix is present;
//   - otherwise the cause's own text, unmodified.
//
// Debug (DebugString, %+v) is the verbose diagnostic rendering, in record
// notation with a fixed field order and absent fields omitted:
//
//	InternalError { message: "oops", source: InternalError { message: "io error" } }
//
// The exact debug text is a contract; consumers snapshot and log it.
//
// # Reducing to a String
//
// ReduceToString is the terminal conversion: it returns the display string.
// When a cause is wrapped, it first emits the debug rendering to the
// diagnostic sink so that the cause's concrete type survives somewhere
// before the value is discarded. The call consumes the value; it must not be used
// afterwards.
//
// # Diagnostic Sink
//
// The sink is an injected collaborator with a single debug-severity
// operation. The default logs through log/slog; SetSink installs a
// replacement (tests substitute a capturing sink). ReduceToString is the
// only caller within this package.
//
// # Interop
//
//   - errors.Is/As traverse the wrapped cause via Unwrap().
//   - Walk and Root provide generic traversal over causal chains for
//     consumers that need the whole chain rather than a single match.
//
// Adapters for transports or serialization do not belong here; the core is
// deliberately one type and its formatting rules.
package xgxinternal
