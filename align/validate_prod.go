//go:build !debug_memaddr

package align

import "golang.org/x/exp/constraints"

// DebugChecks is true when the debug_memaddr build tag is present
const DebugChecks = false

// DebugCheckPow2 will verify that the numerical value passed in is a power of two, and panics if it is not.
// This method no-ops unless the debug_memaddr build tag is present.
func DebugCheckPow2[T constraints.Unsigned](value T, name string) {
}
