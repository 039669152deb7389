package addr

// MemoryAddr is the method set every generated address kind exposes. A is the address
// kind itself, so PhysAddr satisfies MemoryAddr[PhysAddr].
//
// The interface exists to let code accept "some address kind" without naming it; the
// operations themselves live in the generic functions of this package and work for any
// Word, generated or not.
type MemoryAddr[A Word] interface {
	// Uintptr returns the raw integer value of the address
	Uintptr() uintptr

	AlignDown(alignment uintptr) A
	AlignUp(alignment uintptr) A
	CheckedAlignUp(alignment uintptr) (A, bool)
	AlignOffset(alignment uintptr) uintptr
	IsAligned(alignment uintptr) bool

	AlignDown4K() A
	AlignUp4K() A
	AlignOffset4K() uintptr
	IsAligned4K() bool

	Offset(offset int) A
	WrappingOffset(offset int) A
	OffsetFrom(base A) int

	Add(rhs uintptr) A
	WrappingAdd(rhs uintptr) A
	OverflowingAdd(rhs uintptr) (A, bool)
	Sub(rhs uintptr) A
	WrappingSub(rhs uintptr) A
	OverflowingSub(rhs uintptr) (A, bool)

	Plus(rhs uintptr) A
	Minus(rhs uintptr) A
	Distance(base A) uintptr
	Compare(other A) int
}

