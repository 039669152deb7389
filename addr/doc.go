// Package addr provides distinct, zero-cost address kinds built on uintptr.
//
// Any type whose underlying type is uintptr satisfies Word and receives the full
// MemoryAddr operation set through the generic functions in this package:
//
//	type GuestPhysAddr uintptr
//
//	page := addr.AlignDown4K(GuestPhysAddr(0x2123))      // 0x2000
//	next := addr.Add(page, 0x1000)                        // 0x3000, panics on overflow
//	wrapped, overflowed := addr.OverflowingSub(page, 0x3000)
//
// PhysAddr and VirtAddr are generated from addrgen.yaml by cmd/addrgen and expose the
// same operations as methods. Address kinds never convert implicitly into one another;
// conversions always pass through uintptr.
//
// Three arithmetic families are provided. The checked family (Offset, OffsetFrom, Add,
// Sub) panics with an error marked ErrOverflow or ErrUnderflow. The wrapping family
// wraps around the word silently. The overflowing family returns the wrapped value and
// a flag.
package addr

//go:generate go run ../cmd/addrgen --config addrgen.yaml
