package addr

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrOverflow marks the panic value raised when checked address arithmetic exceeds
	// the range of the word
	ErrOverflow = errors.New("address arithmetic overflow")
	// ErrUnderflow marks the panic value raised when checked address arithmetic drops
	// below zero
	ErrUnderflow = errors.New("address arithmetic underflow")
)

func overflowf(format string, args ...any) error {
	return errors.WrapWithDepthf(2, ErrOverflow, format, args...)
}

func underflowf(format string, args ...any) error {
	return errors.WrapWithDepthf(2, ErrUnderflow, format, args...)
}
