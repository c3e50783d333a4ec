package graphics

import (
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/manifest"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("graphics")

// Category is the manifest and provenance category for graphics packs.
const Category = "graphics"

// Validator checks that a pack carries everything an install onto a
// given DF version needs. The version is always an explicit parameter:
// savegame updates validate the same pack against the version a save
// was built with, not just the running one.
type Validator struct {
	fs        types.FS
	paths     paths.Paths
	manifests manifest.Source
}

// NewValidator creates a validator over the given pack layout.
func NewValidator(fs types.FS, p paths.Paths, manifests manifest.Source) *Validator {
	return &Validator{fs: fs, paths: p, manifests: manifests}
}

// Check is one named validation step and its verdict.
type Check struct {
	Name string
	OK   bool
}

// Checks runs every validation step for pack against version and
// reports each verdict. All steps run even after a failure so callers
// can show the full picture.
func (v *Validator) Checks(pack, version string) []Check {
	dir := v.paths.PackPath(pack)
	initDir := filepath.Join(dir, paths.DataDirName, paths.InitDirName)

	checks := []Check{
		{"pack directory", v.isDir(dir)},
		{"data/init directory", v.isDir(initDir)},
		{"data/art directory", v.isDir(filepath.Join(dir, paths.DataDirName, paths.ArtDirName))},
		{"data/init/init.txt", v.isFile(filepath.Join(initDir, "init.txt"))},
		{"manifest compatibility", v.manifests.IsCompatible(Category, pack, version)},
	}
	if dfversion.HasDetailedInit(version) {
		checks = append(checks,
			Check{"data/init/d_init.txt", v.isFile(filepath.Join(initDir, "d_init.txt"))},
			Check{"data/init/colors.txt", v.isFile(filepath.Join(initDir, "colors.txt"))},
		)
	}
	return checks
}

// Validate reports whether pack passes every check for version.
func (v *Validator) Validate(pack, version string) bool {
	for _, c := range v.Checks(pack, version) {
		if !c.OK {
			return false
		}
	}
	return true
}

func (v *Validator) isDir(path string) bool {
	info, err := v.fs.Stat(path)
	return err == nil && info.IsDir()
}

func (v *Validator) isFile(path string) bool {
	info, err := v.fs.Stat(path)
	return err == nil && !info.IsDir()
}
