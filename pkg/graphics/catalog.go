package graphics

import (
	"path/filepath"
	"sort"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/initfile"
	"github.com/fortresskit/gfxpack/pkg/manifest"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Catalog enumerates the graphics packs under the workshop root and
// identifies the one currently merged into the live install. Packs are
// rescanned on every query, nothing is cached.
type Catalog struct {
	fs        types.FS
	ctx       settings.Context
	validator *Validator
	manifests manifest.Source
	session   *settings.Session
}

// NewCatalog creates a catalog for the install described by ctx.
func NewCatalog(fs types.FS, ctx settings.Context, validator *Validator,
	manifests manifest.Source, session *settings.Session) *Catalog {
	return &Catalog{
		fs:        fs,
		ctx:       ctx,
		validator: validator,
		manifests: manifests,
		session:   session,
	}
}

// ListPacks scans the graphics root and returns every pack that passes
// validation for the active DF version, sorted by name. Display fields
// come from the pack manifest, the two font identifiers from the pack's
// own init.txt.
func (c *Catalog) ListPacks() []types.Pack {
	root := c.ctx.Paths.GraphicsDir()
	entries, err := c.fs.ReadDir(root)
	if err != nil {
		log.Warn().Err(err).Str("dir", root).Msg("Cannot scan graphics packs")
		return nil
	}

	var packs []types.Pack
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !c.validator.Validate(name, c.ctx.Version) {
			log.Debug().Str("pack", name).Str("dfVersion", c.ctx.Version).
				Msg("Skipping pack that fails validation")
			continue
		}

		dir := filepath.Join(root, name)
		init, err := initfile.Load(c.fs, filepath.Join(dir, paths.DataDirName, paths.InitDirName, "init.txt"))
		if err != nil {
			log.Warn().Err(err).Str("pack", name).Msg("Cannot read pack init.txt")
			continue
		}
		font, _ := init.Value("FONT")
		graphicsFont, _ := init.Value("GRAPHICS_FONT")

		m := c.manifests.Cfg(Category, name)
		packs = append(packs, types.Pack{
			Name:         name,
			Path:         dir,
			Title:        m.Title,
			Tooltip:      m.Tooltip,
			FolderPrefix: m.FolderPrefix,
			Font:         font,
			GraphicsFont: graphicsFont,
		})
	}

	sort.Slice(packs, func(i, j int) bool { return packs[i].Name < packs[j].Name })
	return packs
}

// Detection sources reported by Current, ordered by confidence.
const (
	SourceProvenance = "provenance"
	SourceFonts      = "fonts"
	SourceFallback   = "fallback"
)

// CurrentPack identifies the installed graphics pack.
func (c *Catalog) CurrentPack() string {
	pack, _ := c.Current()
	return pack
}

// Current identifies the installed graphics pack and how it was
// detected. The provenance log on the live raw directory is
// authoritative; when it is missing the catalog is searched for a pack
// whose fonts match the live settings; failing that a descriptive font
// string is synthesized and flagged low-confidence with a warning.
func (c *Catalog) Current() (pack, source string) {
	logPath := filepath.Join(c.ctx.Paths.RawDir(), provenance.LogName)
	if logged := provenance.Read(c.fs, logPath, provenance.CategoryGraphics); logged != "" {
		log.Info().Str("pack", logged).Msg("Read installed graphics pack from provenance log")
		return logged, SourceProvenance
	}

	font := c.session.Value("FONT")
	graphicsFont := c.session.Value("GRAPHICS_FONT")
	for _, p := range c.ListPacks() {
		if font == p.Font && graphicsFont == p.GraphicsFont {
			log.Info().Str("pack", p.Name).Msg("Identified installed graphics pack by its tilesets")
			return p.Name, SourceFonts
		}
	}

	result := font
	if dfversion.HasOption("GRAPHICS_FONT", c.ctx.Version) {
		result += "/" + graphicsFont
	}
	log.Warn().Str("tileset", result).Msg("Could not determine installed graphics pack")
	return result, SourceFallback
}
