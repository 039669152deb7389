package addr

import "github.com/vkngwrapper/memaddr/align"

// Plus is the + operator between an address and an unsigned offset. Like Go's native
// operator it wraps on overflow, unless built with the debug_memaddr tag, in which case
// it panics the way Add does.
func Plus[A Word](a A, rhs uintptr) A {
	if align.DebugChecks {
		return Add(a, rhs)
	}
	return WrappingAdd(a, rhs)
}

// Minus is the - operator between an address and an unsigned offset. It wraps on
// underflow, unless built with the debug_memaddr tag, in which case it panics the way
// Sub does.
func Minus[A Word](a A, rhs uintptr) A {
	if align.DebugChecks {
		return Sub(a, rhs)
	}
	return WrappingSub(a, rhs)
}

// AddAssign is the += operator: it advances the address held in a by rhs.
func AddAssign[A Word](a *A, rhs uintptr) {
	*a = Plus(*a, rhs)
}

// SubAssign is the -= operator: it moves the address held in a back by rhs.
func SubAssign[A Word](a *A, rhs uintptr) {
	*a = Minus(*a, rhs)
}

// Distance is the - operator between two addresses of the same kind and returns the
// unsigned distance a - base. The caller must guarantee a >= base; Distance panics with
// an error marked ErrUnderflow otherwise, in every build.
func Distance[A Word](a, base A) uintptr {
	if base > a {
		panic(underflowf("distance from %#x to %#x", uintptr(base), uintptr(a)))
	}
	return uintptr(a) - uintptr(base)
}
