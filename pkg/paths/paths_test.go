package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	tempDir := t.TempDir()

	p, err := New(tempDir, filepath.Join(tempDir, "df_linux"))
	require.NoError(t, err)

	assert.Equal(t, tempDir, p.Root())
	assert.False(t, p.UsedFallback())
	assert.Equal(t, filepath.Join(tempDir, "Graphics"), p.GraphicsDir())
	assert.Equal(t, filepath.Join(tempDir, "Baselines"), p.BaselinesDir())
	assert.Equal(t, filepath.Join(tempDir, "Tilesets"), p.TilesetsDir())
	assert.Equal(t, filepath.Join(tempDir, "Colors"), p.ColorSchemesDir())
	assert.Equal(t, filepath.Join(tempDir, "Graphics", "Phoebus"), p.PackPath("Phoebus"))
}

func TestNew_RootFromEnv(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvRoot, tempDir)

	p, err := New("", filepath.Join(tempDir, "df"))
	require.NoError(t, err)

	assert.Equal(t, tempDir, p.Root())
	assert.False(t, p.UsedFallback())
}

func TestNew_FallbackToCwd(t *testing.T) {
	t.Setenv(EnvRoot, "")
	t.Setenv(EnvDFDir, "")

	p, err := New("", "/some/df")
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, cwd, p.Root())
	assert.True(t, p.UsedFallback())
}

func TestDFLayout(t *testing.T) {
	tempDir := t.TempDir()
	dfDir := filepath.Join(tempDir, "df_linux")

	p, err := New(tempDir, dfDir)
	require.NoError(t, err)

	assert.Equal(t, dfDir, p.DFDir())
	assert.Equal(t, filepath.Join(dfDir, "data"), p.DataDir())
	assert.Equal(t, filepath.Join(dfDir, "data", "init"), p.InitDir())
	assert.Equal(t, filepath.Join(dfDir, "data", "art"), p.ArtDir())
	assert.Equal(t, filepath.Join(dfDir, "raw"), p.RawDir())
	assert.Equal(t, filepath.Join(dfDir, "data", "save"), p.SaveDir())
	assert.Equal(t, filepath.Join(dfDir, "data", "init", "init.txt"), p.InitFilePath())
	assert.Equal(t, filepath.Join(dfDir, "data", "init", "d_init.txt"), p.DInitFilePath())
	assert.Equal(t, filepath.Join(dfDir, "data", "init", "colors.txt"), p.ColorsFilePath())
}

func TestStagingPaths(t *testing.T) {
	tempDir := t.TempDir()

	p, err := New(tempDir, filepath.Join(tempDir, "df"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "Baselines", "temp"), p.StagingDir())
	assert.Equal(t, filepath.Join(tempDir, "Baselines", "temp", "raw", "installed_raws.txt"),
		p.StagingLogPath())
}

func TestDetectDFDir(t *testing.T) {
	tempDir := t.TempDir()

	// Decoy without data/init
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "Graphics"), 0755))
	// Real DF folder
	dfDir := filepath.Join(tempDir, "df_linux")
	require.NoError(t, os.MkdirAll(filepath.Join(dfDir, "data", "init"), 0755))

	t.Setenv(EnvDFDir, "")
	p, err := New(tempDir, "")
	require.NoError(t, err)

	assert.Equal(t, dfDir, p.DFDir())
}

func TestDetectDFDir_NoCandidate(t *testing.T) {
	tempDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "Graphics"), 0755))

	t.Setenv(EnvDFDir, "")
	p, err := New(tempDir, "")
	require.NoError(t, err)

	assert.Empty(t, p.DFDir())
}

func TestXDGOverrides(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvConfigDir, filepath.Join(tempDir, "conf"))
	t.Setenv(EnvCacheDir, filepath.Join(tempDir, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tempDir, "state"))

	p, err := New(tempDir, filepath.Join(tempDir, "df"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tempDir, "conf"), p.ConfigDir())
	assert.Equal(t, filepath.Join(tempDir, "cache"), p.CacheDir())
	assert.Equal(t, filepath.Join(tempDir, "state", "gfxpack"), p.StateDir())
	assert.Equal(t, filepath.Join(tempDir, "state", "gfxpack", "gfxpack.log"), p.LogFilePath())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, home, expandHome("~"))
	assert.Equal(t, filepath.Join(home, "df"), expandHome("~/df"))
	assert.Equal(t, "/abs/path", expandHome("/abs/path"))
	assert.Equal(t, "relative", expandHome("relative"))
}
