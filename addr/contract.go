package addr

import (
	"github.com/vkngwrapper/memaddr/align"
	"golang.org/x/exp/constraints"
)

// Word is satisfied by every address kind: any type whose underlying type is uintptr.
// Such types are trivially copyable, totally ordered and convert to and from uintptr,
// which is all the operations below require.
type Word interface {
	~uintptr
}

// MaxWord is the largest value any address kind can hold
const MaxWord = ^uintptr(0)

// AlignDown aligns the address downwards to the given alignment.
func AlignDown[A Word, U constraints.Unsigned](a A, alignment U) A {
	return A(align.AlignDown(uintptr(a), uintptr(alignment)))
}

// AlignUp aligns the address upwards to the given alignment. The result wraps silently
// if the rounding overflows the word; see CheckedAlignUp.
func AlignUp[A Word, U constraints.Unsigned](a A, alignment U) A {
	return A(align.AlignUp(uintptr(a), uintptr(alignment)))
}

// CheckedAlignUp aligns the address upwards to the given alignment. ok is false if the
// rounding wrapped around the word.
func CheckedAlignUp[A Word, U constraints.Unsigned](a A, alignment U) (A, bool) {
	result, ok := align.CheckedAlignUp(uintptr(a), uintptr(alignment))
	return A(result), ok
}

// AlignOffset returns the offset of the address within the given alignment.
func AlignOffset[A Word, U constraints.Unsigned](a A, alignment U) uintptr {
	return align.AlignOffset(uintptr(a), uintptr(alignment))
}

// IsAligned checks whether the address has the demanded alignment.
func IsAligned[A Word, U constraints.Unsigned](a A, alignment U) bool {
	return align.IsAligned(uintptr(a), uintptr(alignment))
}

// AlignDown4K aligns the address downwards to 4096 bytes.
func AlignDown4K[A Word](a A) A {
	return A(align.AlignDown4K(uintptr(a)))
}

// AlignUp4K aligns the address upwards to 4096 bytes.
func AlignUp4K[A Word](a A) A {
	return A(align.AlignUp4K(uintptr(a)))
}

// AlignOffset4K returns the offset of the address within a 4K-sized page.
func AlignOffset4K[A Word](a A) uintptr {
	return align.AlignOffset4K(uintptr(a))
}

// IsAligned4K checks whether the address is 4K-aligned.
func IsAligned4K[A Word](a A) bool {
	return align.IsAligned4K(uintptr(a))
}

// Offset adds a signed offset to the address. It panics with an error marked ErrOverflow
// if the result does not fit in the word.
func Offset[A Word](a A, offset int) A {
	result := A(uintptr(a) + uintptr(offset))
	if (offset >= 0) != (result >= a) {
		panic(overflowf("offset %#x by %d", uintptr(a), offset))
	}
	return result
}

// WrappingOffset adds a signed offset to the address, wrapping around the word on
// overflow.
func WrappingOffset[A Word](a A, offset int) A {
	return A(uintptr(a) + uintptr(offset))
}

// OffsetFrom returns the signed distance a - base. It panics with an error marked
// ErrOverflow if the distance is not representable as an int.
func OffsetFrom[A Word](a, base A) int {
	result := int(uintptr(a) - uintptr(base))
	// A positive wrapped difference with base >= a means the true distance is a huge
	// negative number, and a non-positive one with base < a means a huge positive one.
	if (result > 0) != (base < a) {
		panic(overflowf("distance from %#x to %#x", uintptr(base), uintptr(a)))
	}
	return result
}

// Add adds an unsigned offset to the address. It panics with an error marked
// ErrOverflow if the result does not fit in the word.
func Add[A Word](a A, rhs uintptr) A {
	result, overflow := OverflowingAdd(a, rhs)
	if overflow {
		panic(overflowf("add %#x to %#x", rhs, uintptr(a)))
	}
	return result
}

// WrappingAdd adds an unsigned offset to the address, wrapping around the word on
// overflow.
func WrappingAdd[A Word](a A, rhs uintptr) A {
	return A(uintptr(a) + rhs)
}

// OverflowingAdd adds an unsigned offset to the address and reports whether the
// addition wrapped around the word.
func OverflowingAdd[A Word](a A, rhs uintptr) (A, bool) {
	result := uintptr(a) + rhs
	return A(result), result < uintptr(a)
}

// Sub subtracts an unsigned offset from the address. It panics with an error marked
// ErrUnderflow if the result would be below zero.
func Sub[A Word](a A, rhs uintptr) A {
	result, overflow := OverflowingSub(a, rhs)
	if overflow {
		panic(underflowf("subtract %#x from %#x", rhs, uintptr(a)))
	}
	return result
}

// WrappingSub subtracts an unsigned offset from the address, wrapping around the word
// on underflow.
func WrappingSub[A Word](a A, rhs uintptr) A {
	return A(uintptr(a) - rhs)
}

// OverflowingSub subtracts an unsigned offset from the address and reports whether the
// subtraction wrapped around the word.
func OverflowingSub[A Word](a A, rhs uintptr) (A, bool) {
	return A(uintptr(a) - rhs), rhs > uintptr(a)
}

// Compare returns -1, 0 or +1 depending on whether a is below, equal to or above b.
func Compare[A Word](a, b A) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
