// unwrap.go — stdlib-interop helpers for walking causal chains.
//
// Scope (tiny core):
//   - Pre-order traversal over classic Unwrap() error chains.
//   - Root extraction (the deepest cause), nil-safe.
//   - No policy, no matching — errors.Is/As remain the matching primitives.
//
// An InternalError exposes exactly one causal parent, so traversal here
// handles the single-unwrap form only; multi-error containers (errors.Join)
// are treated as opaque nodes.
//
// Cycle safety:
//   - We must NOT use map[error] as a blanket "seen" set: interface values
//     whose dynamic type is not comparable will panic as map keys. We use a
//     dual guard:
//       • seenErr (map[error]struct{})   — only for comparable dynamic types
//       • seenPtr (map[uintptr]struct{}) — pointer identity otherwise
//     Non-comparable, non-pointer dynamics are treated as acyclic and
//     bounded by the depth cap.
package xgxinternal

import "reflect"

// singleUnwrapper is the stdlib-compatible single-unwrap interface.
type singleUnwrapper interface{ Unwrap() error }

// maxChainDepth is a generous cap against runaway chains.
const maxChainDepth = 1 << 12

// Walk visits err and each distinct cause beneath it, outermost first,
// following Unwrap() error. Traversal stops early when visit returns
// false. A nil err or visit is a no-op; cycles terminate.
func Walk(err error, visit func(error) bool) {
	if err == nil || visit == nil {
		return
	}

	seenErr := make(map[error]struct{}, 8)
	seenPtr := make(map[uintptr]struct{}, 8)

	for depth := 0; err != nil && depth < maxChainDepth; depth++ {
		if !markSeen(err, seenErr, seenPtr) {
			return // cycle
		}
		if !visit(err) {
			return
		}
		u, ok := err.(singleUnwrapper)
		if !ok {
			return
		}
		err = u.Unwrap()
	}
}

// Root returns the deepest cause in err's chain, or err itself when
// nothing unwraps beneath it. Nil-safe.
func Root(err error) error {
	var root error
	Walk(err, func(e error) bool {
		root = e
		return true
	})
	return root
}

// markSeen returns true if err was newly marked; false if already seen.
// Uses seenErr for comparable dynamics, seenPtr for pointer-typed
// non-comparable dynamics.
func markSeen(err error, seenErr map[error]struct{}, seenPtr map[uintptr]struct{}) bool {
	if isComparable(err) {
		if _, dup := seenErr[err]; dup {
			return false
		}
		seenErr[err] = struct{}{}
		return true
	}
	if rv := reflect.ValueOf(err); rv.Kind() == reflect.Pointer && !rv.IsNil() {
		id := rv.Pointer()
		if _, dup := seenPtr[id]; dup {
			return false
		}
		seenPtr[id] = struct{}{}
		return true
	}
	// Non-comparable & non-pointer: allow; bounded by depth cap.
	return true
}

// isComparable reports whether err's dynamic type is safe as a map key.
func isComparable(err error) bool {
	return err != nil && reflect.TypeOf(err).Comparable()
}
