// Package provenance reads the text logs the raw merge engine leaves
// behind to record which overlay produced a merged raw directory.
//
// The log is plain text, one `category/identifier` line per contributing
// layer, written only by the merge engine. This package never writes it.
package provenance

import (
	"strings"

	"github.com/fortresskit/gfxpack/pkg/types"
)

// LogName is the log's fixed file name inside a raw directory.
const LogName = "installed_raws.txt"

// Categories recorded by the merge engine.
const (
	CategoryGraphics  = "graphics"
	CategoryBaselines = "baselines"
	CategoryMods      = "mods"
)

// Read returns the identifier logged for a category: the suffix of the
// first line starting with `category + "/"`, with that prefix stripped.
// A missing file or absent category yields the empty string; Read never
// fails.
func Read(fs types.FS, logPath, category string) string {
	data, err := fs.ReadFile(logPath)
	if err != nil {
		return ""
	}

	prefix := category + "/"
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, prefix) {
			return strings.TrimPrefix(line, prefix)
		}
	}
	return ""
}
