package settings

import (
	"github.com/fortresskit/gfxpack/pkg/paths"
)

// Context carries the explicit state every component call needs: which
// install is being managed, what DF version it runs, and any build
// variations. Passing it explicitly keeps cross-version validation
// possible without mutating any global.
type Context struct {
	// Version is the active DF version string, e.g. "0.47.05".
	Version string

	// Variations are build flavor tags, e.g. "legacy", "twbt".
	Variations []string

	// Paths navigates the install and workshop layout.
	Paths paths.Paths
}

// HasVariation reports whether the install carries a build variation.
func (c Context) HasVariation(name string) bool {
	for _, v := range c.Variations {
		if v == name {
			return true
		}
	}
	return false
}
