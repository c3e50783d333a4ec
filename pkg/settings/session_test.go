package settings_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/filesystem"
	"github.com/fortresskit/gfxpack/pkg/initfile"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

func newInstall(t *testing.T, version string) (types.FS, settings.Context) {
	t.Helper()
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	p, err := paths.New("/lnp", "/lnp/df")
	require.NoError(t, err)

	require.NoError(t, fs.MkdirAll(p.InitDir(), 0755))
	require.NoError(t, fs.WriteFile(p.InitFilePath(), []byte(
		"FONT curses_640x300.png\nFULLFONT curses_800x600.png\nGRAPHICS NO\nGRAPHICS_FONT curses_square_16x16.png\nPRINT_MODE 2D\n"), 0644))
	require.NoError(t, fs.WriteFile(p.DInitFilePath(), []byte(
		"SKY 178:3:0:0\nVARIED_GROUND_TILES YES\nENGRAVINGS_START_OBSCURED NO\n"), 0644))

	return fs, settings.Context{Version: version, Paths: p}
}

func TestSessionValue(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	assert.Equal(t, "curses_640x300.png", s.Value("FONT"))
	assert.Equal(t, "178:3:0:0", s.Value("SKY"), "d_init fields resolve too")
	assert.Empty(t, s.Value("NOT_PRESENT"))
}

func TestSessionSingleFileBelowThreshold(t *testing.T) {
	fs, ctx := newInstall(t, "0.28.181.40d")

	// Below 0.31.04 everything lives in init.txt, d_init.txt may not
	// even exist.
	require.NoError(t, fs.Remove(ctx.Paths.DInitFilePath()))
	require.NoError(t, fs.WriteFile(ctx.Paths.InitFilePath(), []byte(
		"FONT curses_640x300.png\nSKY 178:3:0:0\n"), 0644))

	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	assert.Equal(t, "178:3:0:0", s.Value("SKY"))

	// Patching the appearance set must land in init.txt.
	src := initfile.Parse([]byte("SKY 176:11:0:0\n"))
	assert.Equal(t, 1, s.PatchDInit(src, []string{"SKY"}))
	require.NoError(t, s.Flush())

	data, err := fs.ReadFile(ctx.Paths.InitFilePath())
	require.NoError(t, err)
	assert.Contains(t, string(data), "SKY 176:11:0:0")
}

func TestPatchInitRestrictedToFields(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	// Pack defines FONT (allowed) and GRAPHICS (not in the list).
	src := initfile.Parse([]byte("FONT phoebus_16x16.png\nGRAPHICS YES\n"))
	written := s.PatchInit(src, []string{"FONT", "FULLFONT"})

	assert.Equal(t, 1, written)
	assert.Equal(t, "phoebus_16x16.png", s.Value("FONT"))
	assert.Equal(t, "NO", s.Value("GRAPHICS"), "field outside the allow-list untouched")
	assert.Equal(t, "curses_800x600.png", s.Value("FULLFONT"), "field absent from src untouched")
}

func TestPatchSkipsFieldsMissingFromLive(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	src := initfile.Parse([]byte("TRUETYPE YES\n"))
	written := s.PatchInit(src, []string{"TRUETYPE"})

	assert.Zero(t, written)
	assert.Empty(t, s.Value("TRUETYPE"))
}

func TestFlushPreservesUntouchedLines(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	s.SetOption("GRAPHICS", "YES")
	require.NoError(t, s.Flush())

	data, err := fs.ReadFile(ctx.Paths.InitFilePath())
	require.NoError(t, err)
	assert.Equal(t,
		"FONT curses_640x300.png\nFULLFONT curses_800x600.png\nGRAPHICS YES\nGRAPHICS_FONT curses_square_16x16.png\nPRINT_MODE 2D\n",
		string(data))
}

func TestReloadDiscardsPendingChanges(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	s.SetOption("GRAPHICS", "YES")
	require.NoError(t, s.Reload())

	assert.Equal(t, "NO", s.Value("GRAPHICS"))
}

func TestDiff(t *testing.T) {
	fs, ctx := newInstall(t, "0.47.05")
	s, err := settings.NewSession(fs, ctx)
	require.NoError(t, err)

	assert.Empty(t, s.Diff(), "no pending changes, no diff")

	s.SetOption("FONT", "phoebus_16x16.png")
	diff := s.Diff()
	assert.NotEmpty(t, diff)
	assert.Contains(t, diff, "phoebus_16x16.png")
}

func TestHasVariation(t *testing.T) {
	ctx := settings.Context{Variations: []string{"legacy", "twbt"}}

	assert.True(t, ctx.HasVariation("legacy"))
	assert.True(t, ctx.HasVariation("twbt"))
	assert.False(t, ctx.HasVariation("steam"))
	assert.False(t, settings.Context{}.HasVariation("legacy"))
}
