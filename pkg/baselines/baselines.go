// Package baselines locates the reference "vanilla" Dwarf Fortress data
// used as the source of truth for files a graphics pack may omit and
// for deduplicating pack contents.
package baselines

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("baselines")

// Provider locates vanilla reference data. The installer requires a
// baseline before mutating anything; other consumers use it to compare
// pack files against vanilla.
type Provider interface {
	// FindVanilla returns the vanilla tree for the active version.
	FindVanilla() (string, bool)

	// FindVanillaRaws returns the vanilla tree's raw directory.
	FindVanillaRaws() (string, bool)
}

// DirProvider finds baselines as unpacked `df_*` trees under the
// workshop's Baselines directory, matching each tree's derived version
// against the active one.
type DirProvider struct {
	fs      types.FS
	root    string
	version string
}

// NewDirProvider creates a Provider scanning root for the given active
// version.
func NewDirProvider(fs types.FS, root, version string) *DirProvider {
	return &DirProvider{fs: fs, root: root, version: version}
}

func (p *DirProvider) FindVanilla() (string, bool) {
	entries, err := p.fs.ReadDir(p.root)
	if err != nil {
		log.Warn().Err(err).Str("root", p.root).Msg("Cannot scan baselines")
		return "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() || !strings.HasPrefix(entry.Name(), "df_") {
			continue
		}
		if dfversion.FromBaselineID(entry.Name()) == p.version {
			return filepath.Join(p.root, entry.Name()), true
		}
	}

	log.Debug().Str("version", p.version).Msg("No baseline for version")
	return "", false
}

func (p *DirProvider) FindVanillaRaws() (string, bool) {
	vanilla, ok := p.FindVanilla()
	if !ok {
		return "", false
	}

	raws := filepath.Join(vanilla, "raw")
	if info, err := p.fs.Stat(raws); err != nil || !info.IsDir() {
		return "", false
	}
	return raws, true
}

// SameContent reports whether two files hold identical bytes. Missing
// files never match anything.
func SameContent(fs types.FS, a, b string) bool {
	dataA, err := fs.ReadFile(a)
	if err != nil {
		return false
	}
	dataB, err := fs.ReadFile(b)
	if err != nil {
		return false
	}
	return bytes.Equal(dataA, dataB)
}
