package addrgen

import "text/template"

const fileTemplateText = `// Code generated by addrgen. DO NOT EDIT.

package {{.Package}}
{{with .Imports}}
import (
{{- range .}}
	"{{.}}"
{{- end}}
)
{{end}}
{{- range .Types}}{{template "type" dict "T" . "Q" $.Q}}{{end}}
{{- range .Formatters}}{{template "formatter" .}}{{end}}`

const typeTemplateText = `{{define "type"}}{{$t := .T.Name}}{{$q := .Q}}
{{- range .T.Doc}}
// {{.}}
{{- end}}
type {{$t}} uintptr

var _ {{$q}}MemoryAddr[{{$t}}] = {{$t}}(0)

// {{.T.Constructor}} converts a uintptr to a {{$t}}.
func {{.T.Constructor}}(v uintptr) {{$t}} {
	return {{$t}}(v)
}

// Uintptr converts the {{$t}} to a uintptr.
func (a {{$t}}) Uintptr() uintptr {
	return uintptr(a)
}

// AlignDown aligns the address downwards to the given alignment.
func (a {{$t}}) AlignDown(alignment uintptr) {{$t}} {
	return {{$q}}AlignDown(a, alignment)
}

// AlignUp aligns the address upwards to the given alignment.
func (a {{$t}}) AlignUp(alignment uintptr) {{$t}} {
	return {{$q}}AlignUp(a, alignment)
}

// CheckedAlignUp aligns the address upwards to the given alignment, reporting false if
// the rounding wrapped around.
func (a {{$t}}) CheckedAlignUp(alignment uintptr) ({{$t}}, bool) {
	return {{$q}}CheckedAlignUp(a, alignment)
}

// AlignOffset returns the offset of the address within the given alignment.
func (a {{$t}}) AlignOffset(alignment uintptr) uintptr {
	return {{$q}}AlignOffset(a, alignment)
}

// IsAligned checks whether the address has the demanded alignment.
func (a {{$t}}) IsAligned(alignment uintptr) bool {
	return {{$q}}IsAligned(a, alignment)
}

// AlignDown4K aligns the address downwards to 4096 bytes.
func (a {{$t}}) AlignDown4K() {{$t}} {
	return {{$q}}AlignDown4K(a)
}

// AlignUp4K aligns the address upwards to 4096 bytes.
func (a {{$t}}) AlignUp4K() {{$t}} {
	return {{$q}}AlignUp4K(a)
}

// AlignOffset4K returns the offset of the address within a 4K-sized page.
func (a {{$t}}) AlignOffset4K() uintptr {
	return {{$q}}AlignOffset4K(a)
}

// IsAligned4K checks whether the address is 4K-aligned.
func (a {{$t}}) IsAligned4K() bool {
	return {{$q}}IsAligned4K(a)
}

// Offset adds a signed offset to the address. It panics on overflow.
func (a {{$t}}) Offset(offset int) {{$t}} {
	return {{$q}}Offset(a, offset)
}

// WrappingOffset adds a signed offset to the address, wrapping around on overflow.
func (a {{$t}}) WrappingOffset(offset int) {{$t}} {
	return {{$q}}WrappingOffset(a, offset)
}

// OffsetFrom returns the signed distance from base to the address. It panics if the
// distance does not fit in an int.
func (a {{$t}}) OffsetFrom(base {{$t}}) int {
	return {{$q}}OffsetFrom(a, base)
}

// Add adds an unsigned offset to the address. It panics on overflow.
func (a {{$t}}) Add(rhs uintptr) {{$t}} {
	return {{$q}}Add(a, rhs)
}

// WrappingAdd adds an unsigned offset to the address, wrapping around on overflow.
func (a {{$t}}) WrappingAdd(rhs uintptr) {{$t}} {
	return {{$q}}WrappingAdd(a, rhs)
}

// OverflowingAdd adds an unsigned offset to the address and reports whether it
// overflowed.
func (a {{$t}}) OverflowingAdd(rhs uintptr) ({{$t}}, bool) {
	return {{$q}}OverflowingAdd(a, rhs)
}

// Sub subtracts an unsigned offset from the address. It panics on underflow.
func (a {{$t}}) Sub(rhs uintptr) {{$t}} {
	return {{$q}}Sub(a, rhs)
}

// WrappingSub subtracts an unsigned offset from the address, wrapping around on
// underflow.
func (a {{$t}}) WrappingSub(rhs uintptr) {{$t}} {
	return {{$q}}WrappingSub(a, rhs)
}

// OverflowingSub subtracts an unsigned offset from the address and reports whether it
// underflowed.
func (a {{$t}}) OverflowingSub(rhs uintptr) ({{$t}}, bool) {
	return {{$q}}OverflowingSub(a, rhs)
}

// Plus returns a + rhs with the semantics of Go's + operator.
func (a {{$t}}) Plus(rhs uintptr) {{$t}} {
	return {{$q}}Plus(a, rhs)
}

// Minus returns a - rhs with the semantics of Go's - operator.
func (a {{$t}}) Minus(rhs uintptr) {{$t}} {
	return {{$q}}Minus(a, rhs)
}

// AddAssign advances the address by rhs in place.
func (a *{{$t}}) AddAssign(rhs uintptr) {
	{{$q}}AddAssign(a, rhs)
}

// SubAssign moves the address back by rhs in place.
func (a *{{$t}}) SubAssign(rhs uintptr) {
	{{$q}}SubAssign(a, rhs)
}

// Distance returns the unsigned distance from base to the address. It panics if base
// is above the address.
func (a {{$t}}) Distance(base {{$t}}) uintptr {
	return {{$q}}Distance(a, base)
}

// Compare returns -1, 0 or +1 depending on whether the address is below, equal to or
// above other.
func (a {{$t}}) Compare(other {{$t}}) int {
	return {{$q}}Compare(a, other)
}
{{- if .T.JSON}}

// MarshalJSON encodes the address as a JSON hex string.
func (a {{$t}}) MarshalJSON() ([]byte, error) {
	return {{$q}}MarshalJSON(a)
}

// UnmarshalJSON decodes a JSON hex string into the address.
func (a *{{$t}}) UnmarshalJSON(data []byte) error {
	return {{$q}}UnmarshalJSON(data, a)
}
{{- end}}
{{- if .T.Text}}

// MarshalText encodes the address as a hex string.
func (a {{$t}}) MarshalText() ([]byte, error) {
	return {{$q}}MarshalText(a)
}

// UnmarshalText decodes a hex string into the address.
func (a *{{$t}}) UnmarshalText(data []byte) error {
	return {{$q}}UnmarshalText(data, a)
}
{{- end}}
{{end}}`

const formatterTemplateText = `{{define "formatter"}}
var {{.Var}} = {{.Q}}MustLayout({{printf "%q" .Template}})

// String renders the address through the {{printf "%q" .Template}} layout.
func (a {{.Name}}) String() string {
	return {{.Var}}.Render(uintptr(a), false)
}

// Format implements fmt.Formatter. %v, %s and %x render lowercase hex digits, %X
// uppercase.
func (a {{.Name}}) Format(f fmt.State, verb rune) {
	{{.Var}}.FormatTo(f, verb, uintptr(a))
}
{{end}}`

var fileTemplate = template.Must(
	template.Must(
		template.Must(template.New("file").Funcs(template.FuncMap{"dict": dict}).Parse(fileTemplateText)).
			Parse(typeTemplateText),
	).Parse(formatterTemplateText),
)

func dict(pairs ...any) map[string]any {
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i].(string)] = pairs[i+1]
	}
	return m
}
