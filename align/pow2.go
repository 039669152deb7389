package align

import (
	cerrors "github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// IsPow2 reports whether number is a non-zero power of two
func IsPow2[T constraints.Unsigned](number T) bool {
	return number != 0 && number&(number-1) == 0
}

// CheckPow2 returns an error wrapping PowerOfTwoError if number is not a power of two. name
// identifies the value in the error message.
func CheckPow2[T constraints.Unsigned](number T, name string) error {
	if !IsPow2(number) {
		return cerrors.Wrapf(PowerOfTwoError, "%s is %#x", name, uint64(number))
	}
	return nil
}
