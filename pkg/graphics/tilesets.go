package graphics

import (
	"context"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Engine-internal art files that are not selectable tilesets. Names are
// prefix-matched, so "mouse." also covers mouse.bmp.
var internalArtPrefixes = []string{
	"transparent1px.png", "white1px.png", "shadows.png", "mouse.", "_",
}

// Tilesets manages the standalone tileset pool and the live install's
// selectable tileset files.
type Tilesets struct {
	fs      types.FS
	ctx     settings.Context
	session *settings.Session
	exec    *assets.Executor
}

// NewTilesets creates a tileset manager for the install in ctx.
func NewTilesets(fs types.FS, ctx settings.Context, session *settings.Session, exec *assets.Executor) *Tilesets {
	return &Tilesets{fs: fs, ctx: ctx, session: session, exec: exec}
}

// Add copies entries from the tilesets pool into the live data/art
// directory when they are not already there. Existing entries are never
// overwritten. A missing pool is not an error.
func (t *Tilesets) Add(ctx context.Context) error {
	pool := t.ctx.Paths.TilesetsDir()
	entries, err := t.fs.ReadDir(pool)
	if err != nil {
		log.Debug().Str("dir", pool).Msg("No tilesets pool to copy from")
		return nil
	}

	artDir := t.ctx.Paths.ArtDir()
	plan := assets.NewPlan()
	for _, entry := range entries {
		src := filepath.Join(pool, entry.Name())
		dst := filepath.Join(artDir, entry.Name())
		if _, err := t.fs.Stat(dst); err == nil {
			continue
		}
		if entry.IsDir() {
			if err := assets.AddTree(t.fs, plan, src, dst, assets.CopyTreeOptions{SkipExisting: true}); err != nil {
				return err
			}
			continue
		}
		assets.AddCopyFile(t.fs, plan, src, dst, true)
	}
	return t.exec.Run(ctx, plan)
}

// Read returns the selectable tileset files in the live data/art
// directory, after topping it up from the pool. BMP files are always
// included, PNG files only when the install is not a legacy variant.
// Engine-internal art is excluded and TwbT layer triplets collapse to
// their base file. The result is sorted.
func (t *Tilesets) Read(ctx context.Context) ([]string, error) {
	if err := t.Add(ctx); err != nil {
		return nil, err
	}

	pattern := "*.{bmp,png}"
	if t.ctx.HasVariation("legacy") {
		pattern = "*.bmp"
	}

	artDir := t.ctx.Paths.ArtDir()
	entries, err := t.fs.ReadDir(artDir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read art directory %s", artDir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ok, _ := doublestar.Match(pattern, name); !ok {
			continue
		}
		if isInternalArt(name) {
			continue
		}
		files = append(files, name)
	}
	sort.Strings(files)

	return collapseLayerFiles(files), nil
}

func isInternalArt(name string) bool {
	for _, prefix := range internalArtPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// collapseLayerFiles removes "-bg.png" and "-top.png" companions when a
// base file with the same stem is present, keeping only the base entry.
func collapseLayerFiles(files []string) []string {
	present := make(map[string]bool, len(files))
	for _, f := range files {
		present[f] = true
	}

	companion := make(map[string]bool)
	for _, f := range files {
		stem := strings.TrimSuffix(f, filepath.Ext(f))
		bg, top := stem+"-bg.png", stem+"-top.png"
		if present[bg] && present[top] {
			companion[bg] = true
			companion[top] = true
		}
	}

	out := files[:0]
	for _, f := range files {
		if !companion[f] {
			out = append(out, f)
		}
	}
	return out
}

// Current returns the live FONT and GRAPHICS_FONT values. The second
// value is empty when the DF version has no GRAPHICS_FONT option.
func (t *Tilesets) Current() (string, string) {
	if dfversion.HasOption("GRAPHICS_FONT", t.ctx.Version) {
		return t.session.Value("FONT"), t.session.Value("GRAPHICS_FONT")
	}
	return t.session.Value("FONT"), ""
}

// Install selects tilesets: font becomes FONT and FULLFONT, and when
// the version supports it graphicsFont becomes GRAPHICS_FONT and
// GRAPHICS_FULLFONT. Either argument may be empty to leave that half
// alone, and a file absent from data/art is skipped. Changes are
// flushed.
func (t *Tilesets) Install(font, graphicsFont string) error {
	artDir := t.ctx.Paths.ArtDir()

	if font != "" && t.isFile(filepath.Join(artDir, font)) {
		t.session.SetOption("FONT", font)
		t.session.SetOption("FULLFONT", font)
	}
	if graphicsFont != "" && dfversion.HasOption("GRAPHICS_FONT", t.ctx.Version) &&
		t.isFile(filepath.Join(artDir, graphicsFont)) {
		t.session.SetOption("GRAPHICS_FONT", graphicsFont)
		t.session.SetOption("GRAPHICS_FULLFONT", graphicsFont)
	}
	return t.session.Flush()
}

func (t *Tilesets) isFile(path string) bool {
	info, err := t.fs.Stat(path)
	return err == nil && !info.IsDir()
}
