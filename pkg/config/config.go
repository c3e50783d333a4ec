package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/paths"
)

// FileName is the user config file name under the config directory.
const FileName = "gfxpack.toml"

// envPrefix marks the environment variables the config layer reads.
const envPrefix = "GFXPACK_"

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config is the merged application configuration.
type Config struct {
	Install InstallConfig `koanf:"install"`
	Paths   PathsConfig   `koanf:"paths"`
}

// InstallConfig holds the install and batch update preferences.
type InstallConfig struct {
	// TwbT copies a pack's extended renderer asset trees during
	// install.
	TwbT bool `koanf:"twbt"`

	// KeepSaveBackups copies each save's raw folder aside before a
	// batch update touches it.
	KeepSaveBackups bool `koanf:"keep_save_backups"`
}

// PathsConfig overrides path discovery. Empty values keep the
// automatic behavior.
type PathsConfig struct {
	DFDir  string `koanf:"df_dir"`
	LNPDir string `koanf:"lnp_dir"`
}

// LoadOptions adjusts where Load reads from.
type LoadOptions struct {
	// File replaces the default user config location. The file may be
	// missing; a load error is only reported for a file that exists
	// but cannot be parsed.
	File string

	// Overrides are applied last, keyed by koanf path
	// (e.g. "install.twbt").
	Overrides map[string]interface{}
}

// rawBytesProvider implements a koanf provider for the embedded
// defaults.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrNotImplemented, "not implemented")
}

// Load builds the configuration from defaults, the user config file,
// environment variables and overrides, in that order.
func Load(opts LoadOptions) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot load built-in defaults")
	}

	path := opts.File
	if path == "" {
		path = DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"cannot load config from %s", path)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot load environment")
	}

	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot apply overrides")
		}
	}

	var cfg Config
	err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "cannot decode configuration")
	}
	return &cfg, nil
}

// DefaultPath returns the user config file location, honoring the same
// directory override as paths.ConfigDir.
func DefaultPath() string {
	dir := os.Getenv(paths.EnvConfigDir)
	if dir == "" {
		dir = filepath.Join(xdg.ConfigHome, paths.GfxpackDirName)
	}
	return filepath.Join(dir, FileName)
}

// envToKey maps GFXPACK_SECTION_SOME_KEY to "section.some_key". Only
// the first underscore separates the section, so multi word keys
// survive. Variables without a section part are not config keys.
func envToKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, key, found := strings.Cut(s, "_")
	if !found {
		return ""
	}
	return section + "." + key
}
