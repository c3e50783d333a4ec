package output_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fortresskit/gfxpack/pkg/output"
)

// tempStream returns an open regular file, which is never a terminal.
func tempStream(t *testing.T) *os.File {
	t.Helper()
	f, err := os.Create(filepath.Join(t.TempDir(), "stream"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func TestFormatString(t *testing.T) {
	assert.Equal(t, "term", output.FormatTerminal.String())
	assert.Equal(t, "text", output.FormatText.String())
	assert.Equal(t, "unknown", output.Format(99).String())
}

func TestDetectFormatNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.Equal(t, output.FormatText, output.DetectFormat(os.Stdout))
}

func TestDetectFormatPipe(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, output.FormatText, output.DetectFormat(tempStream(t)))
}

func TestSetupColorForced(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	assert.Equal(t, output.FormatText, output.SetupColor(true, tempStream(t)))
}
