package addr_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/memaddr/addr"
	"github.com/vkngwrapper/memaddr/align"
)

func TestPhysVirtConversions(t *testing.T) {
	const kernelBase = addr.VirtAddr(0x8000_0000)

	require.Equal(t, uintptr(0x1234), addr.NewPhysAddr(0x1234).Uintptr())
	require.Equal(t, addr.PhysAddr(0x1234), addr.PA(0x1234))
	require.Equal(t, addr.VirtAddr(0x5678), addr.NewVirtAddr(0x5678))
	require.Equal(t, addr.VA(0x5678), addr.NewVirtAddr(0x5678))
	require.Equal(t, uintptr(kernelBase), kernelBase.Uintptr())

	var zero addr.PhysAddr
	require.Equal(t, addr.PA(0), zero)

	// conversion between kinds always passes through uintptr
	va := addr.VA(addr.PA(0x2000).Uintptr())
	require.Equal(t, addr.VA(0x2000), va)
}

func TestPhysAddrMethods(t *testing.T) {
	a := addr.PA(0x2123)

	require.Equal(t, addr.PA(0x2000), a.AlignDown(0x1000))
	require.Equal(t, addr.PA(0x3000), a.AlignUp(0x1000))
	require.Equal(t, uintptr(0x123), a.AlignOffset(0x1000))
	require.False(t, a.IsAligned(0x1000))
	require.True(t, addr.PA(0x2000).IsAligned(0x1000))
	require.Equal(t, addr.PA(0x2000), addr.PA(0x2000).AlignUp(0x1000))

	require.Equal(t, addr.PA(0x2000), a.AlignDown4K())
	require.Equal(t, addr.PA(0x3000), a.AlignUp4K())
	require.Equal(t, uintptr(0x123), a.AlignOffset4K())
	require.False(t, a.IsAligned4K())

	up, ok := a.CheckedAlignUp(0x1000)
	require.True(t, ok)
	require.Equal(t, addr.PA(0x3000), up)

	require.Equal(t, addr.PA(0x2223), a.Offset(0x100))
	require.Equal(t, addr.PA(0x2023), a.Offset(-0x100))
	require.Equal(t, addr.PA(0x2223), a.WrappingOffset(0x100))
	require.Equal(t, 0x100, addr.PA(0x2223).OffsetFrom(a))
	require.Equal(t, addr.PA(0x2223), a.Add(0x100))
	require.Equal(t, addr.PA(0x2223), a.WrappingAdd(0x100))
	require.Equal(t, addr.PA(0x2023), a.Sub(0x100))
	require.Equal(t, addr.PA(0x2023), a.WrappingSub(0x100))

	result, overflow := a.OverflowingAdd(0x100)
	require.False(t, overflow)
	require.Equal(t, addr.PA(0x2223), result)

	result, overflow = a.OverflowingSub(0x3000)
	require.True(t, overflow)
	require.Equal(t, addr.PA(0x2123).WrappingSub(0x3000), result)

	require.Equal(t, addr.PA(0x2223), a.Plus(0x100))
	require.Equal(t, addr.PA(0x2023), a.Minus(0x100))
	require.Equal(t, uintptr(0x223), addr.PA(0x2223).Distance(addr.PA(0x2000)))
	require.Equal(t, -1, a.Compare(addr.PA(0x2124)))
}

func TestVirtAddrOverflowScenarios(t *testing.T) {
	maxVA := addr.VA(addr.MaxWord)
	zeroVA := addr.VA(0)

	requirePanicsWith(t, addr.ErrOverflow, func() { maxVA.Add(1) })
	requirePanicsWith(t, addr.ErrOverflow, func() { maxVA.Offset(1) })
	requirePanicsWith(t, addr.ErrUnderflow, func() { zeroVA.Sub(1) })
	requirePanicsWith(t, addr.ErrOverflow, func() { zeroVA.OffsetFrom(maxVA) })
	requirePanicsWith(t, addr.ErrOverflow, func() { maxVA.OffsetFrom(zeroVA) })
	requirePanicsWith(t, addr.ErrUnderflow, func() { zeroVA.Distance(maxVA) })

	require.Equal(t, zeroVA, maxVA.WrappingAdd(1))
	require.Equal(t, maxVA, zeroVA.WrappingSub(1))
}

func TestOperatorMethods(t *testing.T) {
	a := addr.VA(0x1000)
	a.AddAssign(0x234)
	require.Equal(t, addr.VA(0x1234), a)

	a.SubAssign(0x1234)
	require.Equal(t, addr.VA(0), a)

	// native operators remain available on every kind
	require.Equal(t, addr.VA(0x1010), addr.VA(0x1000)+0x10)

	if align.DebugChecks {
		require.Panics(t, func() { a.Minus(1) })
		require.Panics(t, func() { a.SubAssign(1) })
		require.Panics(t, func() { addr.VA(addr.MaxWord).Plus(1) })
	} else {
		require.Equal(t, addr.VA(addr.MaxWord), a.Minus(1))
		a.SubAssign(1)
		require.Equal(t, addr.VA(addr.MaxWord), a)
		require.Equal(t, addr.VA(0), addr.VA(addr.MaxWord).Plus(1))
	}
}

func TestAddrFmt(t *testing.T) {
	require.Equal(t, "PA:0x1abc", fmt.Sprintf("%v", addr.PA(0x1abc)))
	require.Equal(t, "PA:0x1abc", fmt.Sprintf("%x", addr.PA(0x1abc)))
	require.Equal(t, "PA:0x1ABC", fmt.Sprintf("%X", addr.PA(0x1abc)))
	require.Equal(t, "PA:0x1abc", addr.PA(0x1abc).String())

	require.Equal(t, "VA:0x1abc", fmt.Sprintf("%s", addr.VA(0x1abc)))
	require.Equal(t, "VA:0x1abc", fmt.Sprintf("%x", addr.VA(0x1abc)))
	require.Equal(t, "VA:0x1ABC", fmt.Sprintf("%X", addr.VA(0x1abc)))
	require.Equal(t, "VA:0x0", addr.VA(0).String())

	require.Equal(t, "[PA:0x1000 PA:0x2000]", fmt.Sprint([]addr.PhysAddr{0x1000, 0x2000}))
	require.Equal(t, "  VA:0x10|", fmt.Sprintf("%9v|", addr.VA(0x10)))
	require.Equal(t, "VA:0x10  |", fmt.Sprintf("%-9v|", addr.VA(0x10)))
	require.Equal(t, "%!d(PA:0x10)", fmt.Sprintf("%d", addr.PA(0x10)))
}

type mapping struct {
	Phys addr.PhysAddr `json:"phys"`
	Virt addr.VirtAddr `json:"virt"`
}

func TestAddrJSON(t *testing.T) {
	data, err := json.Marshal(mapping{Phys: addr.PA(0x1abc), Virt: addr.VA(0xffff_f000)})
	require.NoError(t, err)
	require.JSONEq(t, `{"phys":"0x1abc","virt":"0xfffff000"}`, string(data))

	var decoded mapping
	require.NoError(t, json.Unmarshal([]byte(`{"phys":"0x2000","virt":"4096"}`), &decoded))
	require.Equal(t, mapping{Phys: addr.PA(0x2000), Virt: addr.VA(0x1000)}, decoded)

	require.Error(t, json.Unmarshal([]byte(`{"phys":"0xzz"}`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`{"phys":12}`), &decoded))

	keyed, err := json.Marshal(map[addr.PhysAddr]int{0x10: 1})
	require.NoError(t, err)
	require.JSONEq(t, `{"0x10":1}`, string(keyed))
}

func TestAddrText(t *testing.T) {
	text, err := addr.VA(0xabc).MarshalText()
	require.NoError(t, err)
	require.Equal(t, "0xabc", string(text))

	var a addr.VirtAddr
	require.NoError(t, a.UnmarshalText([]byte("0x1000")))
	require.Equal(t, addr.VA(0x1000), a)

	require.Error(t, a.UnmarshalText([]byte("")))
	require.Equal(t, addr.VA(0x1000), a)
}

// pageBase is written once against the interface and works for every generated kind
func pageBase[A addr.Word, M addr.MemoryAddr[A]](a M) (A, uintptr) {
	return a.AlignDown4K(), a.AlignOffset4K()
}

func TestMemoryAddrInterface(t *testing.T) {
	page, offset := pageBase[addr.PhysAddr](addr.PA(0x2123))
	require.Equal(t, addr.PA(0x2000), page)
	require.Equal(t, uintptr(0x123), offset)

	vpage, voffset := pageBase[addr.VirtAddr](addr.VA(0x7fff))
	require.Equal(t, addr.VA(0x7000), vpage)
	require.Equal(t, uintptr(0xfff), voffset)
}
