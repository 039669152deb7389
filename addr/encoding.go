package addr

import (
	"math/bits"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jreader"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
)

// FormatHex renders an address as a bare 0x-prefixed hex string, the encoding used by
// the JSON and text marshalers of generated address kinds.
func FormatHex[A Word](a A) string {
	return "0x" + strconv.FormatUint(uint64(a), 16)
}

// ParseHex parses a string produced by FormatHex. Decimal, octal (0o) and binary (0b)
// literals are accepted too, following strconv.ParseUint's base prefixes.
func ParseHex[A Word](s string) (A, error) {
	value, err := strconv.ParseUint(s, 0, bits.UintSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid address %q", s)
	}
	return A(value), nil
}

// WriteJSON writes the address to w as a hex string.
func WriteJSON[A Word](w *jwriter.Writer, a A) {
	w.String(FormatHex(a))
}

// ReadJSON reads an address written by WriteJSON from r. A malformed value is reported
// through the returned error; errors in the JSON stream itself are left on r.
func ReadJSON[A Word](r *jreader.Reader) (A, error) {
	s := r.String()
	if r.Error() != nil {
		return 0, r.Error()
	}
	return ParseHex[A](s)
}

// MarshalJSON encodes a single address as a JSON string.
func MarshalJSON[A Word](a A) ([]byte, error) {
	w := jwriter.NewWriter()
	WriteJSON(&w, a)
	if err := w.Error(); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// UnmarshalJSON decodes a single address encoded by MarshalJSON into a.
func UnmarshalJSON[A Word](data []byte, a *A) error {
	r := jreader.NewReader(data)
	value, err := ReadJSON[A](&r)
	if err != nil {
		return errors.Wrap(err, "failed to decode address")
	}
	if err := r.RequireEOF(); err != nil {
		return errors.Wrap(err, "failed to decode address")
	}
	*a = value
	return nil
}

// MarshalText encodes an address as its hex string.
func MarshalText[A Word](a A) ([]byte, error) {
	return []byte(FormatHex(a)), nil
}

// UnmarshalText decodes an address encoded by MarshalText into a.
func UnmarshalText[A Word](data []byte, a *A) error {
	value, err := ParseHex[A](string(data))
	if err != nil {
		return err
	}
	*a = value
	return nil
}
