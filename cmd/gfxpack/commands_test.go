package gfxpack

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/testutil"
)

// newCLIInstall builds a workshop fixture the CLI can discover: the
// usual tree plus the release notes the version detection reads. The
// config dir is pointed at an empty temp dir so a developer's real
// gfxpack.toml cannot leak into the test.
func newCLIInstall(t *testing.T) *testutil.Install {
	t.Helper()

	in := testutil.NewTempInstall(t, "")
	in.WriteFile(t, filepath.Join(in.DFDir, "release notes.txt"),
		"Release notes for 0.47.05\n\nFixed one thing.\n")
	in.WriteFile(t, filepath.Join(in.DFDir, "libs", "libSDL-1.2.so.0"), "")
	t.Setenv(paths.EnvConfigDir, t.TempDir())
	return in
}

// run executes the CLI against the fixture and returns the combined
// output. Color is forced off so assertions see plain text.
func run(t *testing.T, in *testutil.Install, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(append(args, "--no-color", "--lnp-dir", in.Root, "--df-dir", in.DFDir))
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootNoCommand(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
	assert.Contains(t, out, "gfxpack")
}

func TestVersionCommand(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gfxpack version dev")
	assert.Contains(t, out, "commit:")
}

func TestDocsListsTopics(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "docs")
	require.NoError(t, err)
	assert.Contains(t, out, "packs-layout")
	assert.Contains(t, out, "provenance")
	assert.Contains(t, out, "save-updating")
}

func TestDocsRendersTopic(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "docs", "provenance")
	require.NoError(t, err)
	assert.Contains(t, out, "installed_raws.txt")
}

func TestListShowsPacks(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")

	out, err := run(t, in, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Phoebus")
	assert.Contains(t, out, "phoebus_16x16.png / phoebus_gfx.png")
}

func TestListEmpty(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No graphics packs found.")
}

func TestCurrentFromProvenance(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")

	out, err := run(t, in, "current")
	require.NoError(t, err)
	assert.Contains(t, out, "Phoebus")
	assert.Contains(t, out, "(provenance)")
}

func TestValidateOK(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")

	out, err := run(t, in, "validate", "Phoebus")
	require.NoError(t, err)
	assert.Contains(t, out, "ok")
	assert.Contains(t, out, "Phoebus is valid for DF 0.47.05")
}

func TestValidateFailure(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "validate", "NoSuchPack")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation checks")
	assert.Contains(t, out, "failed")
}

func TestInstallMissingBaselineExitCode(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")

	out, err := run(t, in, "install", "Phoebus")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.Code)
	assert.Contains(t, out, "baseline")
}

func TestInstallDeclinedExitCode(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.AddBaseline(t, "df_47_05")
	in.WriteStagingLog(t, "df_47_05", "")

	out, err := run(t, in, "install", "Phoebus")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, out, "declined")
}

func TestUpdateSavesEmpty(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.WriteRawLog(t, in.Paths.RawDir(), "Phoebus")

	out, err := run(t, in, "update-saves")
	require.NoError(t, err)
	assert.Contains(t, out, "updated 0, skipped 0")
}

func TestSimplifyPack(t *testing.T) {
	in := newCLIInstall(t)
	in.AddPack(t, "Phoebus", "phoebus_16x16.png", "phoebus_gfx.png")
	in.AddBaseline(t, "df_47_05")

	out, err := run(t, in, "simplify", "Phoebus")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 0 duplicate files")
}

func TestLegendsNone(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "legends")
	require.NoError(t, err)
	assert.Contains(t, out, "processed 0 regions")
}

func TestTilesetsList(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "tilesets")
	require.NoError(t, err)
	assert.Contains(t, out, "* curses_640x300.png")
	assert.Contains(t, out, "* curses_square_16x16.png")
}

func TestTilesetsInstallFlag(t *testing.T) {
	in := newCLIInstall(t)

	out, err := run(t, in, "tilesets", "--install", "curses_square_16x16.png")
	require.NoError(t, err)
	assert.Contains(t, out, "* curses_square_16x16.png")
	assert.Equal(t, "curses_square_16x16.png", in.Session(t).Value("FONT"))
}
