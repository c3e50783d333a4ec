package graphics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/graphics"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/testutil"
)

func newMerger(t *testing.T, in *testutil.Install) (*graphics.FieldMerger, *settings.Session) {
	t.Helper()
	session := in.Session(t)
	return graphics.NewFieldMerger(in.FS, in.Context(), session), session
}

func TestPatchInits(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	pack := in.AddPack(t, "GemSet", "gemset_24x24.png", "gemset_gfx.png")
	merger, session := newMerger(t, in)

	require.NoError(t, merger.PatchInits(pack.Dir))

	// Allow-listed fields take the pack's values.
	assert.Equal(t, "gemset_24x24.png", session.Value("FONT"))
	assert.Equal(t, "gemset_gfx.png", session.Value("GRAPHICS_FONT"))
	assert.Equal(t, "YES", session.Value("GRAPHICS"))
	assert.Equal(t, "NO", session.Value("TRUETYPE"))
	assert.Equal(t, "STANDARD", session.Value("PRINT_MODE"))
	assert.Equal(t, "32", session.Value("SKY"))
	assert.Equal(t, "197", session.Value("TRACK_N"))

	// Everything else survives byte for byte.
	liveInit := in.ReadFile(t, in.Paths.InitFilePath())
	assert.Contains(t, liveInit, "[Window and font settings]")
	assert.Contains(t, liveInit, "WINDOWEDX 80")
	assert.Contains(t, liveInit, "WINDOWEDY 25")
	liveDInit := in.ReadFile(t, in.Paths.DInitFilePath())
	assert.Contains(t, liveDInit, "IDLERS TOP")
}

func TestPatchInitsIdempotent(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	pack := in.AddPack(t, "GemSet", "gemset_24x24.png", "gemset_gfx.png")
	merger, _ := newMerger(t, in)

	require.NoError(t, merger.PatchInits(pack.Dir))
	firstInit := in.ReadFile(t, in.Paths.InitFilePath())
	firstDInit := in.ReadFile(t, in.Paths.DInitFilePath())

	require.NoError(t, merger.PatchInits(pack.Dir))
	assert.Equal(t, firstInit, in.ReadFile(t, in.Paths.InitFilePath()))
	assert.Equal(t, firstDInit, in.ReadFile(t, in.Paths.DInitFilePath()))
}

func TestPatchInitsSkipsUnsupportedFields(t *testing.T) {
	// 0.31.08 has d_init.txt but predates PRINT_MODE, TRUETYPE and the
	// track tiles.
	in := testutil.NewMemInstall(t, "0.31.08")
	pack := in.AddPack(t, "GemSet", "gemset_24x24.png", "gemset_gfx.png")
	merger, session := newMerger(t, in)

	require.NoError(t, merger.PatchInits(pack.Dir))

	assert.Equal(t, "gemset_24x24.png", session.Value("FONT"))
	assert.Equal(t, "32", session.Value("SKY"))
	assert.Equal(t, "YES", session.Value("TRUETYPE"))
	assert.Equal(t, "2D", session.Value("PRINT_MODE"))
	assert.Equal(t, "208", session.Value("TRACK_N"))
}

func TestPatchInitsSingleFileVersions(t *testing.T) {
	// Before 0.31.04 appearance fields live in init.txt on both sides.
	in := testutil.NewMemInstall(t, "0.28.181.40d")
	in.WriteFile(t, in.Paths.InitFilePath(), `FONT curses_640x300.png
FULLFONT curses_640x300.png
GRAPHICS NO
SKY 178
WINDOWEDX 80
`)
	pack := in.AddPack(t, "Legacy", "legacy.png", "legacy_gfx.png")
	pack.AddFile(t, "data/init/init.txt", `FONT legacy.png
FULLFONT legacy.png
GRAPHICS YES
SKY 60
`)
	merger, session := newMerger(t, in)

	require.NoError(t, merger.PatchInits(pack.Dir))

	assert.Equal(t, "legacy.png", session.Value("FONT"))
	assert.Equal(t, "60", session.Value("SKY"))
	liveInit := in.ReadFile(t, in.Paths.InitFilePath())
	assert.Contains(t, liveInit, "SKY 60")
	assert.Contains(t, liveInit, "WINDOWEDX 80")
	// d_init.txt is not touched on these versions.
	assert.Equal(t, testutil.DefaultDInit, in.ReadFile(t, in.Paths.DInitFilePath()))
}

func TestPatchInitsMissingPackInit(t *testing.T) {
	in := testutil.NewMemInstall(t, "")
	merger, _ := newMerger(t, in)

	err := merger.PatchInits(in.Paths.PackPath("Ghost"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrPackInvalid))
}
