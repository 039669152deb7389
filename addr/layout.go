package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// LayoutSlot is the placeholder a layout template replaces with the address value
const LayoutSlot = "{}"

// Layout renders address values into a template such as "PA:{}", which lets each
// address kind carry a distinguishing prefix in diagnostics.
type Layout struct {
	prefix string
	suffix string
}

// ParseLayout parses a template containing exactly one "{}" slot.
func ParseLayout(template string) (Layout, error) {
	count := strings.Count(template, LayoutSlot)
	if count != 1 {
		return Layout{}, errors.Newf("layout %q must contain exactly one %s slot, found %d", template, LayoutSlot, count)
	}

	prefix, suffix, _ := strings.Cut(template, LayoutSlot)
	return Layout{prefix: prefix, suffix: suffix}, nil
}

// MustLayout is like ParseLayout but panics if the template is invalid. It is intended
// for package-level layout variables.
func MustLayout(template string) Layout {
	layout, err := ParseLayout(template)
	if err != nil {
		panic(err)
	}
	return layout
}

// Template returns the template the layout was parsed from
func (l Layout) Template() string {
	return l.prefix + LayoutSlot + l.suffix
}

// Render substitutes v into the layout as 0x-prefixed hex. upper selects uppercase
// hex digits; the 0x prefix is always lowercase.
func (l Layout) Render(v uintptr, upper bool) string {
	digits := strconv.FormatUint(uint64(v), 16)
	if upper {
		digits = strings.ToUpper(digits)
	}

	var b strings.Builder
	b.Grow(len(l.prefix) + 2 + len(digits) + len(l.suffix))
	b.WriteString(l.prefix)
	b.WriteString("0x")
	b.WriteString(digits)
	b.WriteString(l.suffix)
	return b.String()
}

// FormatTo implements the body of fmt.Formatter for an address kind rendered with this
// layout. %v, %s and %x render lowercase digits and %X uppercase. Width pads the whole
// rendering, on the left by default and on the right with the - flag. Other verbs
// produce fmt's usual bad-verb marker.
func (l Layout) FormatTo(f fmt.State, verb rune, v uintptr) {
	var rendered string
	switch verb {
	case 'v', 's', 'x':
		rendered = l.Render(v, false)
	case 'X':
		rendered = l.Render(v, true)
	default:
		fmt.Fprintf(f, "%%!%c(%s)", verb, l.Render(v, false))
		return
	}

	width, ok := f.Width()
	if !ok || width <= len(rendered) {
		_, _ = f.Write([]byte(rendered))
		return
	}

	padding := strings.Repeat(" ", width-len(rendered))
	if f.Flag('-') {
		rendered += padding
	} else {
		rendered = padding + rendered
	}
	_, _ = f.Write([]byte(rendered))
}
