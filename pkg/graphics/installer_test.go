package graphics_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/baselines"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/graphics"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/testutil"
	"github.com/fortresskit/gfxpack/pkg/types"
)

func newInstaller(t *testing.T, in *testutil.Install, engine raws.Engine,
	exec *assets.Executor, twbt bool) (*graphics.Installer, *settings.Session) {
	t.Helper()
	session, err := settings.NewSession(in.FS, in.Context())
	require.NoError(t, err)

	validator := graphics.NewValidator(in.FS, in.Paths, in.Manifests())
	ins := graphics.NewInstaller(graphics.InstallerOptions{
		FS:          in.FS,
		Context:     in.Context(),
		Session:     session,
		Bridge:      raws.NewBridge(in.FS, in.Context(), validator, engine),
		Merger:      graphics.NewFieldMerger(in.FS, in.Context(), session),
		Tilesets:    graphics.NewTilesets(in.FS, in.Context(), session, exec),
		Baseline:    baselines.NewDirProvider(in.FS, in.Paths.BaselinesDir(), in.Version),
		Executor:    exec,
		InstallTwbT: twbt,
	})
	return ins, session
}

// fullFixture builds a temp-dir install with a baseline, a staged
// rebuild log and a complete Phoebus pack.
func fullFixture(t *testing.T) (*testutil.Install, *testutil.Pack) {
	t.Helper()
	in := testutil.NewTempInstall(t, "")
	base := in.AddBaseline(t, "df_47_05")
	in.WriteFile(t, filepath.Join(base, "data", "art", "mouse.png"), "baseline mouse")
	in.WriteFile(t, filepath.Join(base, "data", "art", "font.ttf"), "baseline ttf")
	in.WriteStagingLog(t, "df_47_05", "")

	pack := in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	return in, pack
}

func TestInstallerInstall(t *testing.T) {
	in, pack := fullFixture(t)
	pack.AddFile(t, "data/init/overrides.txt", "[OVERRIDE:1]\n")
	in.WriteFile(t, filepath.Join(in.Paths.ArtDir(), "stale.png"), "stale")
	in.WriteFile(t, filepath.Join(in.Paths.ArtDir(), "white1px.png"), "white")
	in.WriteFile(t, filepath.Join(in.Paths.TilesetsDir(), "extra_font.png"), "extra")

	engine := &testutil.Engine{FS: in.FS}
	ins, session := newInstaller(t, in, engine, assets.NewExecutor(false), false)

	res := ins.Install(context.Background(), "Phoebus")
	require.Equal(t, types.InstallSuccess, res)

	// The raw merge ran against the live raw directory.
	require.Len(t, engine.UpdateCalls, 1)
	assert.Equal(t, in.Paths.RawDir(), engine.UpdateCalls[0].RawDir)
	assert.Equal(t, "Phoebus", engine.UpdateCalls[0].Overlay.Pack)

	// The art tree was replaced, not merged over.
	art := in.Paths.ArtDir()
	assert.False(t, in.Exists(filepath.Join(art, "stale.png")))
	assert.Equal(t, "font of Phoebus", in.ReadFile(t, filepath.Join(art, "phoebus_16x16.png")))
	// Renderer art survived, the pool was topped up, engine art came
	// back from the baseline.
	assert.Equal(t, "white", in.ReadFile(t, filepath.Join(art, "white1px.png")))
	assert.Equal(t, "extra", in.ReadFile(t, filepath.Join(art, "extra_font.png")))
	assert.Equal(t, "baseline mouse", in.ReadFile(t, filepath.Join(art, "mouse.png")))
	assert.Equal(t, "baseline ttf", in.ReadFile(t, filepath.Join(art, "font.ttf")))
	// No staging residue.
	assert.False(t, in.Exists(art+".gfxpack-stage"))
	assert.False(t, in.Exists(art+".gfxpack-old"))

	// Allow-listed init fields moved, everything else stayed.
	liveInit := in.ReadFile(t, in.Paths.InitFilePath())
	assert.Contains(t, liveInit, "FONT phoebus_16x16.png")
	assert.Contains(t, liveInit, "WINDOWEDX 80")
	assert.Contains(t, liveInit, "[Window and font settings]")

	// The session was reloaded from disk after the install.
	assert.Equal(t, "phoebus_16x16.png", session.Value("FONT"))
	assert.Equal(t, "32", session.Value("SKY"))

	// Colorscheme applied and recorded, overrides refreshed.
	liveColors := in.ReadFile(t, in.Paths.ColorsFilePath())
	assert.Contains(t, liveColors, "BLACK_R 20")
	assert.Contains(t, liveColors, "BLUE_B 128")
	assert.True(t, in.Exists(filepath.Join(in.Paths.ColorSchemesDir(), "_Current graphics pack.txt")))
	assert.Equal(t, "[OVERRIDE:1]\n", in.ReadFile(t, filepath.Join(in.Paths.InitDir(), "overrides.txt")))

	// The provenance the engine left behind now identifies the pack.
	catalog := newCatalog(t, in)
	assert.Equal(t, "Phoebus", catalog.CurrentPack())
}

func TestInstallerMissingBaseline(t *testing.T) {
	in := testutil.NewTempInstall(t, "")
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")

	engine := &testutil.Engine{FS: in.FS}
	ins, _ := newInstaller(t, in, engine, assets.NewExecutor(false), false)

	res := ins.Install(context.Background(), "Phoebus")
	assert.Equal(t, types.InstallMissingBaseline, res)
	assert.Empty(t, engine.UpdateCalls)
	// Nothing was touched.
	assert.True(t, in.Exists(filepath.Join(in.Paths.ArtDir(), "curses_640x300.png")))
	assert.Contains(t, in.ReadFile(t, in.Paths.InitFilePath()), "FONT curses_640x300.png")
}

func TestInstallerDeclined(t *testing.T) {
	t.Run("validation declines", func(t *testing.T) {
		in, pack := fullFixture(t)
		pack.SetManifest(t, "df_max_version = \"0.44.12\"\n")

		engine := &testutil.Engine{FS: in.FS}
		ins, _ := newInstaller(t, in, engine, assets.NewExecutor(false), false)

		res := ins.Install(context.Background(), "Phoebus")
		assert.Equal(t, types.InstallDeclined, res)
		assert.Empty(t, engine.UpdateCalls)
		assert.True(t, in.Exists(filepath.Join(in.Paths.ArtDir(), "curses_640x300.png")))
	})

	t.Run("engine declines", func(t *testing.T) {
		in, _ := fullFixture(t)

		engine := &testutil.Engine{FS: in.FS, DeclineUpdates: true}
		ins, _ := newInstaller(t, in, engine, assets.NewExecutor(false), false)

		res := ins.Install(context.Background(), "Phoebus")
		assert.Equal(t, types.InstallDeclined, res)
		require.Len(t, engine.UpdateCalls, 1)
		assert.True(t, in.Exists(filepath.Join(in.Paths.ArtDir(), "curses_640x300.png")))
	})
}

func TestInstallerEngineError(t *testing.T) {
	in, _ := fullFixture(t)

	engine := &testutil.Engine{
		FS:        in.FS,
		UpdateErr: errors.Newf(errors.ErrMergeEngine, "merge engine crashed"),
	}
	ins, _ := newInstaller(t, in, engine, assets.NewExecutor(false), false)

	res := ins.Install(context.Background(), "Phoebus")
	assert.Equal(t, types.InstallError, res)
	assert.True(t, in.Exists(filepath.Join(in.Paths.ArtDir(), "curses_640x300.png")))
}

func TestInstallerDryRun(t *testing.T) {
	in, _ := fullFixture(t)
	in.WriteFile(t, filepath.Join(in.Paths.ArtDir(), "stale.png"), "stale")

	engine := &testutil.Engine{FS: in.FS}
	ins, session := newInstaller(t, in, engine, assets.NewExecutor(true), false)

	res := ins.Install(context.Background(), "Phoebus")
	assert.Equal(t, types.InstallSuccess, res)

	// The engine was never asked to merge and no file changed.
	assert.Empty(t, engine.UpdateCalls)
	art := in.Paths.ArtDir()
	assert.True(t, in.Exists(filepath.Join(art, "stale.png")))
	assert.False(t, in.Exists(filepath.Join(art, "phoebus_16x16.png")))
	assert.Contains(t, in.ReadFile(t, in.Paths.InitFilePath()), "FONT curses_640x300.png")
	assert.Equal(t, "curses_640x300.png", session.Value("FONT"))
}

func TestInstallerTwbT(t *testing.T) {
	in, pack := fullFixture(t)
	pack.AddFile(t, "data/twbt_art/overlay_font.png", "twbt overlay")
	pack.AddFile(t, "raw/twbt_graphics/graphics_twbt.txt", "[TILE_PAGE:TWBT]\n")

	engine := &testutil.Engine{FS: in.FS}
	ins, _ := newInstaller(t, in, engine, assets.NewExecutor(false), true)

	res := ins.Install(context.Background(), "Phoebus")
	require.Equal(t, types.InstallSuccess, res)

	assert.Equal(t, "twbt overlay",
		in.ReadFile(t, filepath.Join(in.Paths.ArtDir(), "overlay_font.png")))
	assert.Equal(t, "[TILE_PAGE:TWBT]\n",
		in.ReadFile(t, filepath.Join(in.Paths.RawDir(), "graphics", "graphics_twbt.txt")))
}
