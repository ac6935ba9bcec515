package config

import (
	_ "embed"
	"fmt"
)

//go:embed defaults/layout.yaml
var defaultLayoutYAML []byte

// DefaultLayoutID is the id of the embedded layout.
const DefaultLayoutID = "classic"

// DefaultLayout returns the embedded classic layout.
// Panics if the embedded file does not parse, which is a build defect.
func DefaultLayout() Layout {
	l, err := Parse(defaultLayoutYAML)
	if err != nil {
		panic(fmt.Sprintf("config: embedded layout: %v", err))
	}
	return l
}

// DefaultYAML returns the embedded layout file, e.g. for `layouts --dump`.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultLayoutYAML))
	copy(out, defaultLayoutYAML)
	return out
}
