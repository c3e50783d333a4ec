package graphics_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/graphics"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/testutil"
)

func newBatchDriver(t *testing.T, in *testutil.Install, engine *testutil.Engine) *graphics.BatchDriver {
	t.Helper()
	return newBatchDriverOpts(t, in, engine, false)
}

func newBatchDriverOpts(t *testing.T, in *testutil.Install, engine *testutil.Engine,
	keepBackups bool) *graphics.BatchDriver {
	t.Helper()
	validator := newValidator(in)
	catalog := graphics.NewCatalog(in.FS, in.Context(), validator, in.Manifests(), in.Session(t))
	return graphics.NewBatchDriver(graphics.BatchOptions{
		FS:          in.FS,
		Context:     in.Context(),
		Catalog:     catalog,
		Guard:       raws.NewGuard(in.FS, catalog, engine),
		Bridge:      raws.NewBridge(in.FS, in.Context(), validator, engine),
		KeepBackups: keepBackups,
	})
}

func TestSavegamesToUpdate(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	in.AddSave(t, "region2")
	in.AddSave(t, "region1")
	in.AddSave(t, "current")
	in.WriteFile(t, filepath.Join(in.Paths.SaveDir(), "notes.txt"), "not a save")

	driver := newBatchDriver(t, in, &testutil.Engine{})
	assert.Equal(t, []string{"region1", "region2"}, driver.SavegamesToUpdate())
}

func TestSavegamesToUpdateNoSaveDir(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	require.NoError(t, in.FS.RemoveAll(in.Paths.SaveDir()))

	driver := newBatchDriver(t, in, &testutil.Engine{})
	assert.Empty(t, driver.SavegamesToUpdate())
}

func TestUpdateSavegames(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	phoebus := in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	phoebus.SetManifest(t, "folder_prefix = \"phoebus\"\n")
	in.WriteStagingLog(t, "df_47_05", "Phoebus")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")

	// Two saves carry known identities (name and folder prefix), one
	// carries a pack the catalog has never heard of.
	in.WriteRawLog(t, in.AddSave(t, "region1"), "Phoebus")
	in.WriteRawLog(t, in.AddSave(t, "region2"), "phoebus")
	in.WriteRawLog(t, in.AddSave(t, "region3"), "Obsolete")
	in.AddSave(t, "current")

	engine := &testutil.Engine{FS: in.FS}
	driver := newBatchDriver(t, in, engine)
	updated, skipped := driver.UpdateSavegames()

	assert.Equal(t, 2, updated)
	assert.Equal(t, 1, skipped)
	require.Len(t, engine.UpdateCalls, 2)
	assert.Equal(t, filepath.Join(in.Paths.SaveDir(), "region1", "raw"),
		engine.UpdateCalls[0].RawDir)
	assert.Equal(t, "Phoebus", engine.UpdateCalls[0].Overlay.Pack)
	assert.Equal(t, "Phoebus", engine.UpdateCalls[0].Overlay.Baseline)
	assert.Equal(t, filepath.Join(in.Paths.SaveDir(), "region2", "raw"),
		engine.UpdateCalls[1].RawDir)
}

func TestUpdateSavegamesKeepsBackups(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	phoebus := in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	phoebus.SetManifest(t, "folder_prefix = \"phoebus\"\n")
	in.WriteStagingLog(t, "df_47_05", "Phoebus")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")

	rawDir := in.AddSave(t, "region1")
	in.WriteRawLog(t, rawDir, "phoebus")
	in.WriteFile(t, filepath.Join(rawDir, "objects", "creature_custom.txt"), "[CREATURE:MOLE]\n")

	engine := &testutil.Engine{FS: in.FS}
	driver := newBatchDriverOpts(t, in, engine, true)
	updated, skipped := driver.UpdateSavegames()

	assert.Equal(t, 1, updated)
	assert.Zero(t, skipped)

	// The backup holds the pre-update raws while the live log carries
	// the new provenance.
	backup := filepath.Join(in.Paths.SaveDir(), "region1", "raw.bak")
	assert.Equal(t, "graphics/phoebus\n",
		in.ReadFile(t, filepath.Join(backup, "installed_raws.txt")))
	assert.Equal(t, "[CREATURE:MOLE]\n",
		in.ReadFile(t, filepath.Join(backup, "objects", "creature_custom.txt")))
	assert.Equal(t, "graphics/Phoebus\n",
		in.ReadFile(t, filepath.Join(rawDir, "installed_raws.txt")))
}

func TestUpdateSavegamesMissingLogIsStrict(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.WriteStagingLog(t, "df_47_05", "Phoebus")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")
	in.AddSave(t, "region1")

	engine := &testutil.Engine{FS: in.FS}
	driver := newBatchDriver(t, in, engine)
	updated, skipped := driver.UpdateSavegames()

	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, skipped)
	assert.Empty(t, engine.UpdateCalls)
}

func TestUpdateSavegamesEngineDeclinesRebuild(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.WriteStagingLog(t, "df_47_05", "Phoebus")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")
	in.WriteRawLog(t, in.AddSave(t, "region1"), "Phoebus")

	engine := &testutil.Engine{FS: in.FS, DeclineRebuilds: true}
	driver := newBatchDriver(t, in, engine)
	updated, skipped := driver.UpdateSavegames()

	assert.Equal(t, 0, updated)
	assert.Equal(t, 1, skipped)
	// The rebuild guard said no before any merge was attempted.
	assert.Len(t, engine.RebuildCalls, 1)
	assert.Empty(t, engine.UpdateCalls)
}

func TestUpdateSavegamesNothingToDo(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	driver := newBatchDriver(t, in, &testutil.Engine{})

	updated, skipped := driver.UpdateSavegames()
	assert.Zero(t, updated)
	assert.Zero(t, skipped)
}
