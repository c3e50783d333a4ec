package settings

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var releaseNotesRe = regexp.MustCompile(`Release notes for (\d+(?:\.\d+)+[a-z]?)`)

// Discover inspects the install at p and builds its Context. The DF
// version comes from the release notes file shipped next to the
// executable; build variations from the files DF and its common mods
// leave behind.
func Discover(fs types.FS, p paths.Paths) (Context, error) {
	log := logging.GetLogger("settings")

	notes := filepath.Join(p.DFDir(), "release notes.txt")
	data, err := fs.ReadFile(notes)
	if err != nil {
		return Context{}, errors.Wrapf(err, errors.ErrNotFound,
			"cannot read %s to determine the DF version", notes)
	}
	match := releaseNotesRe.FindSubmatch(data)
	if match == nil {
		return Context{}, errors.Newf(errors.ErrNotFound,
			"no DF version found in %s", notes)
	}

	ctx := Context{Version: string(match[1]), Paths: p}
	if !hasSDL(fs, p.DFDir()) {
		ctx.Variations = append(ctx.Variations, "legacy")
	}
	if hasTwbT(fs, p.DFDir()) {
		ctx.Variations = append(ctx.Variations, "twbt")
	}

	log.Info().Str("dfVersion", ctx.Version).Strs("variations", ctx.Variations).
		Str("dir", p.DFDir()).Msg("Identified DF install")
	return ctx, nil
}

// hasSDL reports whether the install ships an SDL library. Builds
// without one are the legacy console releases.
func hasSDL(fs types.FS, dfDir string) bool {
	for _, name := range []string{
		"SDL.dll",
		"sdl.dll",
		filepath.Join("libs", "libSDL-1.2.so.0"),
		filepath.Join("libs", "SDL.framework"),
	} {
		if _, err := fs.Stat(filepath.Join(dfDir, name)); err == nil {
			return true
		}
	}
	return false
}

// hasTwbT reports whether a Text Will Be Text plugin is installed.
func hasTwbT(fs types.FS, dfDir string) bool {
	entries, err := fs.ReadDir(filepath.Join(dfDir, "hack", "plugins"))
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "twbt.") {
			return true
		}
	}
	return false
}
