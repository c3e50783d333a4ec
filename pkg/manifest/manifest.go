// Package manifest reads per-pack metadata and answers version
// compatibility queries against it.
//
// A manifest lives in the pack's root directory as manifest.toml,
// manifest.yaml or manifest.json; the first format found wins. Packs
// without a manifest get the zero Manifest, which is compatible with
// every version and leaves display fields to their directory-name
// defaults.
package manifest

import (
	"encoding/json"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("manifest")

// Manifest holds the metadata a pack may declare about itself.
type Manifest struct {
	// Title is the display name shown in place of the directory name.
	Title string `toml:"title" yaml:"title" json:"title"`

	// Tooltip is a longer description for display surfaces.
	Tooltip string `toml:"tooltip" yaml:"tooltip" json:"tooltip"`

	// FolderPrefix is the historical distribution name of the pack.
	// Provenance records written under that name still match the pack.
	FolderPrefix string `toml:"folder_prefix" yaml:"folder_prefix" json:"folder_prefix"`

	// Author credits the pack's creator. Display only.
	Author string `toml:"author" yaml:"author" json:"author"`

	// ContentVersion is the pack's own release identifier. Display only.
	ContentVersion string `toml:"content_version" yaml:"content_version" json:"content_version"`

	// MinVersion is the lowest DF version the pack supports.
	MinVersion string `toml:"df_min_version" yaml:"df_min_version" json:"df_min_version"`

	// MaxVersion is the highest DF version the pack supports.
	MaxVersion string `toml:"df_max_version" yaml:"df_max_version" json:"df_max_version"`

	// Incompatible lists specific DF versions the pack does not work
	// with, inside the min/max range.
	Incompatible []string `toml:"df_incompatible" yaml:"df_incompatible" json:"df_incompatible"`
}

// fileNames in lookup order. TOML is the native format; YAML and JSON
// cover packs distributed for other launchers.
var fileNames = []string{"manifest.toml", "manifest.yaml", "manifest.json"}

// Load reads the manifest from packDir. A pack without a manifest file
// yields the zero Manifest and no error; a present but unparseable
// manifest is an error.
func Load(fs types.FS, packDir string) (Manifest, error) {
	for _, name := range fileNames {
		path := filepath.Join(packDir, name)
		data, err := fs.ReadFile(path)
		if err != nil {
			continue
		}

		var m Manifest
		switch filepath.Ext(name) {
		case ".toml":
			err = toml.Unmarshal(data, &m)
		case ".yaml":
			err = yaml.Unmarshal(data, &m)
		default:
			err = json.Unmarshal(data, &m)
		}
		if err != nil {
			return Manifest{}, errors.Wrapf(err, errors.ErrConfigParse,
				"cannot parse manifest %s", path)
		}

		log.Debug().Str("path", path).Str("title", m.Title).Msg("Manifest loaded")
		return m, nil
	}

	return Manifest{}, nil
}

// CompatibleWith reports whether the manifest permits the given DF
// version. Bounds apply only when declared.
func (m Manifest) CompatibleWith(version string) bool {
	if m.MinVersion != "" && version < m.MinVersion {
		return false
	}
	if m.MaxVersion != "" && version > m.MaxVersion {
		return false
	}
	for _, v := range m.Incompatible {
		if v == version {
			return false
		}
	}
	return true
}
