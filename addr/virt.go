package addr

import "unsafe"

// PA is shorthand for PhysAddr(v).
func PA(v uintptr) PhysAddr {
	return PhysAddr(v)
}

// VA is shorthand for VirtAddr(v).
func VA(v uintptr) VirtAddr {
	return VirtAddr(v)
}

// The conversions below reinterpret a virtual address as a pointer. Nothing is
// validated: the caller must ensure the address refers to memory that is safe to
// access as the requested type, and that the Go garbage collector neither moves nor
// frees it while the pointer is in use. Addresses taken from Go values follow the
// usual unsafe.Pointer rules. go vet's unsafeptr check reports the integer to pointer
// conversion in AsPtr; that warning is expected and should be excluded for this file.

// AsPtr converts the virtual address to an untyped pointer.
func (a VirtAddr) AsPtr() unsafe.Pointer {
	return unsafe.Pointer(uintptr(a))
}

// AsBytePtr converts the virtual address to a pointer to its first byte.
func (a VirtAddr) AsBytePtr() *byte {
	return (*byte)(a.AsPtr())
}

// PtrOf converts the virtual address to a pointer of a specific type.
func PtrOf[T any](a VirtAddr) *T {
	return (*T)(a.AsPtr())
}

// SliceOf converts the virtual address to a slice of n elements of type T starting at
// the address.
func SliceOf[T any](a VirtAddr, n int) []T {
	return unsafe.Slice(PtrOf[T](a), n)
}

// VirtAddrOf returns the virtual address p points to.
func VirtAddrOf[T any](p *T) VirtAddr {
	return VirtAddr(uintptr(unsafe.Pointer(p)))
}

// VirtAddrFromPointer returns the virtual address of an untyped pointer.
func VirtAddrFromPointer(p unsafe.Pointer) VirtAddr {
	return VirtAddr(uintptr(p))
}
