package testutil

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/filesystem"
	"github.com/fortresskit/gfxpack/pkg/manifest"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// DefaultVersion is the DF version fixtures target unless a test asks
// for another one.
const DefaultVersion = "0.47.05"

// DefaultInit is the live init.txt every fixture starts with. The
// bracket header and the WINDOWED lines are outside the merge
// allow-list, so tests can verify they survive untouched.
const DefaultInit = `[Window and font settings]
FONT curses_640x300.png
FULLFONT curses_640x300.png
GRAPHICS NO
GRAPHICS_FONT curses_square_16x16.png
GRAPHICS_FULLFONT curses_square_16x16.png
GRAPHICS_BLACK_SPACE YES
TRUETYPE YES
PRINT_MODE 2D
TEXTURE_PARAM LINEAR
MOUSE_PICTURE NO
WINDOWEDX 80
WINDOWEDY 25
`

// DefaultDInit is the live d_init.txt every fixture starts with. IDLERS
// is outside the merge allow-list.
const DefaultDInit = `ENGRAVINGS_START_OBSCURED NO
VARIED_GROUND_TILES YES
SKY 178
CHASM 250
PILLAR_TILE 79
TRACK_N 208
TRACK_S 210
TRACK_E 198
TRACK_W 181
TREE_ROOTS 172
TREE_TWIGS 59
WOUND_COLOR_NONE 7:0:1
IDLERS TOP
`

// DefaultColors is the live colors.txt every fixture starts with.
const DefaultColors = `BLACK_R 0
BLACK_G 0
BLACK_B 0
BLUE_R 0
BLUE_G 0
BLUE_B 128
WHITE_R 255
WHITE_G 255
WHITE_B 255
`

// Install is a workshop plus managed Dwarf Fortress folder fixture.
type Install struct {
	FS      types.FS
	Root    string
	DFDir   string
	Version string
	Paths   paths.Paths
}

// NewMemInstall builds the fixture on an in-memory filesystem.
func NewMemInstall(t *testing.T, version string) *Install {
	t.Helper()
	return newInstall(t, filesystem.NewAferoFS(afero.NewMemMapFs()), "/workshop", version)
}

// NewTempInstall builds the fixture in a temp directory on the real
// filesystem, for tests that execute asset plans.
func NewTempInstall(t *testing.T, version string) *Install {
	t.Helper()
	return newInstall(t, filesystem.NewOS(), filepath.Join(t.TempDir(), "workshop"), version)
}

func newInstall(t *testing.T, fs types.FS, root, version string) *Install {
	t.Helper()
	if version == "" {
		version = DefaultVersion
	}

	dfDir := filepath.Join(root, "df")
	p, err := paths.New(root, dfDir)
	require.NoError(t, err)

	in := &Install{FS: fs, Root: root, DFDir: dfDir, Version: version, Paths: p}
	for _, dir := range []string{
		p.GraphicsDir(), p.BaselinesDir(), p.TilesetsDir(), p.ColorSchemesDir(),
		p.InitDir(), p.ArtDir(), p.RawDir(), p.SaveDir(),
	} {
		in.Mkdir(t, dir)
	}

	in.WriteFile(t, p.InitFilePath(), DefaultInit)
	in.WriteFile(t, p.DInitFilePath(), DefaultDInit)
	in.WriteFile(t, p.ColorsFilePath(), DefaultColors)
	in.WriteFile(t, filepath.Join(p.ArtDir(), "curses_640x300.png"), "curses")
	in.WriteFile(t, filepath.Join(p.ArtDir(), "curses_square_16x16.png"), "curses-square")
	return in
}

// Context returns a settings context for the fixture.
func (in *Install) Context(variations ...string) settings.Context {
	return settings.Context{Version: in.Version, Variations: variations, Paths: in.Paths}
}

// Session opens a live settings session over the fixture.
func (in *Install) Session(t *testing.T) *settings.Session {
	t.Helper()
	s, err := settings.NewSession(in.FS, in.Context())
	require.NoError(t, err)
	return s
}

// Manifests returns a manifest source over the workshop's pack roots.
func (in *Install) Manifests() manifest.Source {
	return manifest.NewDirSource(in.FS, map[string]string{
		"graphics": in.Paths.GraphicsDir(),
	})
}

// WriteFile writes content to path, creating parent directories.
func (in *Install) WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, in.FS.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, in.FS.WriteFile(path, []byte(content), 0o644))
}

// Mkdir creates a directory and any missing parents.
func (in *Install) Mkdir(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, in.FS.MkdirAll(path, 0o755))
}

// ReadFile returns the content at path, failing the test when missing.
func (in *Install) ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := in.FS.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// Exists reports whether path exists on the fixture filesystem.
func (in *Install) Exists(path string) bool {
	_, err := in.FS.Stat(path)
	return err == nil
}

// AddBaseline creates a vanilla baseline tree under Baselines and
// returns its directory. The id should derive to the fixture version,
// e.g. "df_47_05" for 0.47.05.
func (in *Install) AddBaseline(t *testing.T, id string) string {
	t.Helper()
	dir := filepath.Join(in.Paths.BaselinesDir(), id)
	in.WriteFile(t, filepath.Join(dir, "raw", "objects", "creature_standard.txt"), "[CREATURE:DWARF]\n")
	in.Mkdir(t, filepath.Join(dir, "data", "art"))
	return dir
}

// WriteStagingLog records the staged rebuild's provenance: the baseline
// it was built from and, when non-empty, the graphics pack merged in.
func (in *Install) WriteStagingLog(t *testing.T, baselineID, graphicsID string) {
	t.Helper()
	content := "baselines/" + baselineID + "\n"
	if graphicsID != "" {
		content += "graphics/" + graphicsID + "\n"
	}
	in.WriteFile(t, in.Paths.StagingLogPath(), content)
}

// WriteRawLog writes a provenance log into rawDir recording pack as the
// merged graphics layer.
func (in *Install) WriteRawLog(t *testing.T, rawDir, pack string) {
	t.Helper()
	in.WriteFile(t, filepath.Join(rawDir, provenance.LogName), "graphics/"+pack+"\n")
}

// AddSave creates a savegame folder and returns its raw directory.
func (in *Install) AddSave(t *testing.T, name string) string {
	t.Helper()
	rawDir := filepath.Join(in.Paths.SaveDir(), name, "raw")
	in.Mkdir(t, filepath.Join(rawDir, "objects"))
	return rawDir
}

// Pack is a graphics pack fixture under the workshop's Graphics root.
type Pack struct {
	in   *Install
	Name string
	Dir  string
}

// AddPack creates a complete graphics pack: init files referencing the
// two fonts, a colorscheme, the font files under data/art and a token
// raw file.
func (in *Install) AddPack(t *testing.T, name, font, graphicsFont string) *Pack {
	t.Helper()
	p := &Pack{in: in, Name: name, Dir: in.Paths.PackPath(name)}

	init := fmt.Sprintf(`[Window and font settings]
FONT %[1]s
FULLFONT %[1]s
GRAPHICS YES
GRAPHICS_FONT %[2]s
GRAPHICS_FULLFONT %[2]s
GRAPHICS_BLACK_SPACE NO
TRUETYPE NO
PRINT_MODE STANDARD
TEXTURE_PARAM NEAREST
MOUSE_PICTURE NO
WINDOWEDX 1280
`, font, graphicsFont)
	p.AddFile(t, filepath.Join("data", "init", "init.txt"), init)

	p.AddFile(t, filepath.Join("data", "init", "d_init.txt"), `ENGRAVINGS_START_OBSCURED NO
VARIED_GROUND_TILES NO
SKY 32
CHASM 176
PILLAR_TILE 79
TRACK_N 197
TRACK_S 217
TREE_ROOTS 219
WOUND_COLOR_NONE 7:0:0
`)
	p.AddFile(t, filepath.Join("data", "init", "colors.txt"), `BLACK_R 20
BLACK_G 20
BLACK_B 25
WHITE_R 230
WHITE_G 230
WHITE_B 220
`)
	p.AddFile(t, filepath.Join("data", "art", font), "font of "+name)
	p.AddFile(t, filepath.Join("data", "art", graphicsFont), "graphics font of "+name)
	p.AddFile(t, filepath.Join("raw", "graphics", "graphics_"+strings.ToLower(name)+".txt"),
		"[TILE_PAGE:"+strings.ToUpper(name)+"]\n")
	return p
}

// AddFile adds a file to the pack, relative to the pack root.
func (p *Pack) AddFile(t *testing.T, rel, content string) string {
	t.Helper()
	path := filepath.Join(p.Dir, rel)
	p.in.WriteFile(t, path, content)
	return path
}

// SetManifest writes the pack's manifest.toml.
func (p *Pack) SetManifest(t *testing.T, toml string) {
	t.Helper()
	p.in.WriteFile(t, filepath.Join(p.Dir, "manifest.toml"), toml)
}

// RemoveArt deletes the pack's data/art directory, leaving the pack
// incomplete.
func (p *Pack) RemoveArt(t *testing.T) {
	t.Helper()
	require.NoError(t, p.in.FS.RemoveAll(filepath.Join(p.Dir, "data", "art")))
}
