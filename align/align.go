// Package align provides the bitmask alignment primitives used by every address kind.
//
// All alignment values must be powers of two. Release builds never check this; builds
// tagged debug_memaddr panic when a non-power-of-two alignment is passed.
package align

import "golang.org/x/exp/constraints"

const (
	// PageShift4K is the binary log of PageSize4K
	PageShift4K = 12
	// PageSize4K is the default page granularity used by the *4K helpers
	PageSize4K = 1 << PageShift4K
)

// AlignDown rounds addr down to the nearest multiple of alignment.
func AlignDown[T constraints.Unsigned](addr, alignment T) T {
	DebugCheckPow2(alignment, "alignment")
	return addr &^ (alignment - 1)
}

// AlignUp rounds addr up to the nearest multiple of alignment. The caller must ensure
// addr + alignment - 1 does not overflow T; if it does, the result silently wraps. Use
// CheckedAlignUp when that cannot be guaranteed.
func AlignUp[T constraints.Unsigned](addr, alignment T) T {
	DebugCheckPow2(alignment, "alignment")
	return (addr + alignment - 1) &^ (alignment - 1)
}

// CheckedAlignUp rounds addr up to the nearest multiple of alignment. ok is false iff
// the rounding wrapped around T, in which case result is meaningless.
func CheckedAlignUp[T constraints.Unsigned](addr, alignment T) (result T, ok bool) {
	result = AlignUp(addr, alignment)
	return result, result >= addr
}

// AlignOffset returns the remainder of addr modulo alignment.
func AlignOffset[T constraints.Unsigned](addr, alignment T) T {
	DebugCheckPow2(alignment, "alignment")
	return addr & (alignment - 1)
}

// IsAligned reports whether addr is a multiple of alignment.
func IsAligned[T constraints.Unsigned](addr, alignment T) bool {
	return AlignOffset(addr, alignment) == 0
}

// PageSized is the set of unsigned types wide enough to represent PageSize4K.
type PageSized interface {
	~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

func page4K[T PageSized]() T {
	return T(1) << PageShift4K
}

func AlignDown4K[T PageSized](addr T) T {
	return AlignDown(addr, page4K[T]())
}

func AlignUp4K[T PageSized](addr T) T {
	return AlignUp(addr, page4K[T]())
}

func AlignOffset4K[T PageSized](addr T) T {
	return AlignOffset(addr, page4K[T]())
}

func IsAligned4K[T PageSized](addr T) bool {
	return IsAligned(addr, page4K[T]())
}
