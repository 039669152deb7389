package addrgen

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Visibility controls whether a generated address kind is exported from its package.
// Go expresses visibility through the case of the identifier, so the configured value
// must agree with the name.
type Visibility uint32

const (
	// VisibilityPublic marks an exported address kind
	VisibilityPublic Visibility = iota + 1
	// VisibilityPrivate marks an unexported address kind
	VisibilityPrivate
)

var visibilityMapping = map[Visibility]string{
	VisibilityPublic:  "public",
	VisibilityPrivate: "private",
}

func (v Visibility) String() string {
	return visibilityMapping[v]
}

// ParseVisibility converts a config value into a Visibility.
func ParseVisibility(s string) (Visibility, error) {
	for visibility, name := range visibilityMapping {
		if strings.EqualFold(name, s) {
			return visibility, nil
		}
	}
	return 0, errors.Newf("unknown visibility %q, expected public or private", s)
}

// Derive is an auxiliary method set that can be requested for a generated address kind
type Derive uint32

const (
	// DeriveJSON adds MarshalJSON and UnmarshalJSON, encoding the address as a hex string
	DeriveJSON Derive = iota + 1
	// DeriveText adds MarshalText and UnmarshalText, encoding the address as a hex string
	DeriveText
)

var deriveMapping = map[Derive]string{
	DeriveJSON: "json",
	DeriveText: "text",
}

func (d Derive) String() string {
	return deriveMapping[d]
}

// ParseDerive converts a config value into a Derive.
func ParseDerive(s string) (Derive, error) {
	for derive, name := range deriveMapping {
		if strings.EqualFold(name, s) {
			return derive, nil
		}
	}
	return 0, errors.Newf("unknown derive %q, expected json or text", s)
}
