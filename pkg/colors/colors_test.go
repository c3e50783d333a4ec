package colors_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/colors"
	"github.com/fortresskit/gfxpack/pkg/filesystem"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

func TestFields(t *testing.T) {
	fields := colors.Fields()

	assert.Len(t, fields, 48)
	assert.Equal(t, "BLACK_R", fields[0])
	assert.Equal(t, "BLACK_G", fields[1])
	assert.Equal(t, "BLACK_B", fields[2])
	assert.Equal(t, "WHITE_B", fields[47])
}

func TestLoad(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/Colors", 0755))
	require.NoError(t, fs.WriteFile("/Colors/Phoebus.txt", []byte(
		"BLACK_R 26\nBLACK_G 26\nBLACK_B 26\nWHITE_R 230\n# comment\n"), 0644))

	s, err := colors.Load(fs, "/Colors/Phoebus.txt")
	require.NoError(t, err)

	assert.Equal(t, 4, s.Len())
	v, ok := s.Value("BLACK_R")
	assert.True(t, ok)
	assert.Equal(t, "26", v)
	_, ok = s.Value("BLUE_R")
	assert.False(t, ok)
}

func colorInstall(t *testing.T, version string) (types.FS, settings.Context) {
	t.Helper()
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())

	p, err := paths.New("/lnp", "/lnp/df")
	require.NoError(t, err)

	require.NoError(t, fs.MkdirAll(p.InitDir(), 0755))
	require.NoError(t, fs.WriteFile(p.InitFilePath(), []byte(
		"FONT curses.png\nBLACK_R 0\nBLACK_G 0\nBLACK_B 0\n"), 0644))
	require.NoError(t, fs.WriteFile(p.ColorsFilePath(), []byte(
		"BLACK_R 0\nBLACK_G 0\nBLACK_B 0\nWHITE_R 255\n"), 0644))

	return fs, settings.Context{Version: version, Paths: p}
}

func TestApplyAboveThresholdTargetsColorsFile(t *testing.T) {
	fs, ctx := colorInstall(t, "0.47.05")

	s, err := colors.Load(fs, ctx.Paths.InitFilePath())
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	require.NoError(t, s.Apply(fs, ctx))

	data, err := fs.ReadFile(ctx.Paths.ColorsFilePath())
	require.NoError(t, err)
	assert.Equal(t, "BLACK_R 0\nBLACK_G 0\nBLACK_B 0\nWHITE_R 255\n", string(data))
}

func TestApplyBelowThresholdTargetsInit(t *testing.T) {
	fs, ctx := colorInstall(t, "0.28.181.40d")

	scheme, err := colors.Load(fs, ctx.Paths.ColorsFilePath())
	require.NoError(t, err)

	require.NoError(t, scheme.Apply(fs, ctx))

	data, err := fs.ReadFile(ctx.Paths.InitFilePath())
	require.NoError(t, err)
	// WHITE_R is not in the live init, so it is skipped; FONT is
	// preserved untouched.
	assert.Equal(t, "FONT curses.png\nBLACK_R 0\nBLACK_G 0\nBLACK_B 0\n", string(data))
}

func TestSaveCanonicalOrder(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/Colors", 0755))
	require.NoError(t, fs.WriteFile("/Colors/src.txt", []byte(
		"WHITE_R 230\nBLACK_R 26\n"), 0644))

	s, err := colors.Load(fs, "/Colors/src.txt")
	require.NoError(t, err)
	require.NoError(t, s.Save(fs, "/Colors/out.txt"))

	data, err := fs.ReadFile("/Colors/out.txt")
	require.NoError(t, err)
	assert.Equal(t, "BLACK_R 26\nWHITE_R 230\n", string(data))
}

func TestListSchemes(t *testing.T) {
	fs := filesystem.NewAferoFS(afero.NewMemMapFs())
	require.NoError(t, fs.MkdirAll("/Colors/sub", 0755))
	require.NoError(t, fs.WriteFile("/Colors/Natural.txt", nil, 0644))
	require.NoError(t, fs.WriteFile("/Colors/ASCII Default.txt", nil, 0644))
	require.NoError(t, fs.WriteFile("/Colors/readme.md", nil, 0644))

	assert.Equal(t, []string{"ASCII Default", "Natural"}, colors.ListSchemes(fs, "/Colors"))
	assert.Nil(t, colors.ListSchemes(fs, "/missing"))
}
