package cells

import "reflect"

// Equal is the library's default change check: common scalar kinds compare
// directly, everything else falls back to deep structural equality.
func Equal[T any](a, b T) bool {
	av, bv := any(a), any(b)
	switch av.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64,
		complex64, complex128:
		return av == bv
	}
	return reflect.DeepEqual(av, bv)
}

func defaultEquals[T any](a, b T) bool {
	return Equal(a, b)
}

// StrictEquals compares with ==, for use with WithEquals when identity
// semantics are wanted for comparable payloads.
func StrictEquals[T comparable](a, b T) bool {
	return a == b
}

// NeverEqual makes every Set count as a change, the shallow-cell behavior
// for collection payloads: notify on top-level replacement, never inspect
// contents.
func NeverEqual[T any](a, b T) bool {
	return false
}
