package manifest

import (
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/types"
)

// Source answers compatibility queries for packs of a given category.
// The graphics catalog and validator consult it rather than reading
// manifest files themselves, so tests can substitute fixed answers.
type Source interface {
	// Cfg returns the manifest for a pack, zero value when unknown.
	Cfg(category, pack string) Manifest

	// IsCompatible reports whether the pack may be used with the given
	// DF version.
	IsCompatible(category, pack, version string) bool
}

// DirSource reads manifests from per-category root directories, the
// layout the CLI operates on: roots["graphics"] is the graphics packs
// root and each pack is a subdirectory of it.
type DirSource struct {
	fs    types.FS
	roots map[string]string
}

// NewDirSource creates a Source over category root directories.
func NewDirSource(fs types.FS, roots map[string]string) *DirSource {
	return &DirSource{fs: fs, roots: roots}
}

func (s *DirSource) Cfg(category, pack string) Manifest {
	root, ok := s.roots[category]
	if !ok {
		return Manifest{}
	}
	m, err := Load(s.fs, filepath.Join(root, pack))
	if err != nil {
		log.Warn().Err(err).Str("category", category).Str("pack", pack).
			Msg("Ignoring unreadable manifest")
		return Manifest{}
	}
	return m
}

func (s *DirSource) IsCompatible(category, pack, version string) bool {
	return s.Cfg(category, pack).CompatibleWith(version)
}
