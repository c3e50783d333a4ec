package graphics

import (
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/baselines"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Simplifier strips a graphics pack down to the files that actually
// differ from the vanilla baseline, so packs only carry their own
// changes.
type Simplifier struct {
	fs       types.FS
	ctx      settings.Context
	catalog  *Catalog
	baseline baselines.Provider
}

// NewSimplifier returns a simplifier over the given catalog and
// baseline provider.
func NewSimplifier(fs types.FS, ctx settings.Context, catalog *Catalog,
	baseline baselines.Provider) *Simplifier {
	return &Simplifier{fs: fs, ctx: ctx, catalog: catalog, baseline: baseline}
}

// SimplifyPack removes every file under the pack's raw tree that is
// byte-identical to the baseline file at the same relative path, then
// prunes directories the removals left empty. It returns the number of
// files removed.
func (s *Simplifier) SimplifyPack(pack string) (int, error) {
	vanillaRaws, ok := s.baseline.FindVanillaRaws()
	if !ok {
		return 0, errors.Newf(errors.ErrMissingBaseline,
			"no vanilla baseline raws for version %s", s.ctx.Version)
	}

	packRaw := filepath.Join(s.ctx.Paths.PackPath(pack), paths.RawDirName)
	if info, err := s.fs.Stat(packRaw); err != nil || !info.IsDir() {
		log.Debug().Str("pack", pack).Msg("Pack has no raw directory to simplify")
		return 0, nil
	}

	removed, err := s.removeBaselineCopies(packRaw, vanillaRaws)
	if err != nil {
		return removed, err
	}
	if _, err := s.pruneEmptyDirs(packRaw); err != nil {
		return removed, err
	}

	log.Info().Str("pack", pack).Int("removed", removed).
		Msg("Simplified graphics pack")
	return removed, nil
}

// SimplifyAll simplifies every readable pack in the catalog. Packs that
// fail are logged and skipped; the total removal count covers the packs
// that succeeded.
func (s *Simplifier) SimplifyAll() (int, error) {
	if _, ok := s.baseline.FindVanillaRaws(); !ok {
		return 0, errors.Newf(errors.ErrMissingBaseline,
			"no vanilla baseline raws for version %s", s.ctx.Version)
	}

	total := 0
	for _, pack := range s.catalog.ListPacks() {
		removed, err := s.SimplifyPack(pack.Name)
		total += removed
		if err != nil {
			log.Warn().Err(err).Str("pack", pack.Name).Msg("Could not simplify pack")
		}
	}
	return total, nil
}

func (s *Simplifier) removeBaselineCopies(dir, baseDir string) (int, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return 0, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}

	removed := 0
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		basePath := filepath.Join(baseDir, entry.Name())
		if entry.IsDir() {
			n, err := s.removeBaselineCopies(path, basePath)
			removed += n
			if err != nil {
				return removed, err
			}
			continue
		}
		if !baselines.SameContent(s.fs, path, basePath) {
			continue
		}
		if err := s.fs.Remove(path); err != nil {
			return removed, errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", path)
		}
		removed++
	}
	return removed, nil
}

// pruneEmptyDirs removes subdirectories left empty, children first, and
// reports whether dir itself ended up empty. The root the caller passes
// in is never removed.
func (s *Simplifier) pruneEmptyDirs(dir string) (bool, error) {
	entries, err := s.fs.ReadDir(dir)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", dir)
	}

	empty := true
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			childEmpty, err := s.pruneEmptyDirs(path)
			if err != nil {
				return false, err
			}
			if childEmpty {
				if err := s.fs.Remove(path); err != nil {
					return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot remove %s", path)
				}
				continue
			}
		}
		empty = false
	}
	return empty, nil
}
