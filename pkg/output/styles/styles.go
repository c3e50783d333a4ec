// Package styles holds the lipgloss styles for gfxpack's terminal
// output. Style and color definitions live in an embedded YAML sheet
// keyed by semantic names, so command code asks for "Error" or "Pack"
// and never hardcodes an escape sequence.
package styles

import (
	_ "embed"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/v2"

	"github.com/fortresskit/gfxpack/pkg/errors"
)

//go:embed styles.yaml
var defaultSheet []byte

// ColorDef is an adaptive color entry in the style sheet.
type ColorDef struct {
	Light string `koanf:"light"`
	Dark  string `koanf:"dark"`
}

// StyleDef is a single style entry in the style sheet. The foreground
// and background fields name entries of the colors table.
type StyleDef struct {
	Bold         bool   `koanf:"bold"`
	Italic       bool   `koanf:"italic"`
	Underline    bool   `koanf:"underline"`
	Foreground   string `koanf:"foreground"`
	Background   string `koanf:"background"`
	Width        int    `koanf:"width"`
	Align        string `koanf:"align"`
	MarginLeft   int    `koanf:"margin_left"`
	MarginTop    int    `koanf:"margin_top"`
	MarginBottom int    `koanf:"margin_bottom"`
	PaddingLeft  int    `koanf:"padding_left"`
	PaddingRight int    `koanf:"padding_right"`
}

// Config is a fully parsed style sheet.
type Config struct {
	Colors map[string]ColorDef `koanf:"colors"`
	Styles map[string]StyleDef `koanf:"styles"`
}

// StyleRegistry maps semantic names to built lipgloss styles.
var StyleRegistry map[string]lipgloss.Style

var colors map[string]lipgloss.AdaptiveColor

func init() {
	if err := LoadStyles(defaultSheet); err != nil {
		panic("invalid embedded style sheet: " + err.Error())
	}
}

// LoadStyles replaces the registry with the styles defined in the given
// YAML sheet. On a parse error the previous registry stays in place.
func LoadStyles(sheet []byte) error {
	raw, err := yaml.Parser().Unmarshal(sheet)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "cannot parse style sheet")
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(raw, "."), nil); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "cannot load style sheet")
	}

	var config Config
	err = k.UnmarshalWithConf("", &config, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &config,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid style sheet")
	}

	colors = make(map[string]lipgloss.AdaptiveColor, len(config.Colors))
	for name, def := range config.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	StyleRegistry = make(map[string]lipgloss.Style, len(config.Styles))
	for name, def := range config.Styles {
		StyleRegistry[name] = buildStyle(def)
	}
	return nil
}

func buildStyle(def StyleDef) lipgloss.Style {
	style := lipgloss.NewStyle()

	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if def.Underline {
		style = style.Underline(true)
	}

	if def.Foreground != "" {
		if color, ok := colors[def.Foreground]; ok {
			style = style.Foreground(color)
		}
	}
	if def.Background != "" {
		if color, ok := colors[def.Background]; ok {
			style = style.Background(color)
		}
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "left":
		style = style.Align(lipgloss.Left)
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	}

	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	if def.MarginTop > 0 {
		style = style.MarginTop(def.MarginTop)
	}
	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 || def.PaddingRight > 0 {
		style = style.Padding(0, def.PaddingRight, 0, def.PaddingLeft)
	}

	return style
}

// GetStyle retrieves a style from the registry. Unknown names yield an
// unstyled default so callers never have to check.
func GetStyle(name string) lipgloss.Style {
	if style, ok := StyleRegistry[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// MergeStyles combines the named styles into one. Earlier names win
// where the same attribute is set more than once.
func MergeStyles(names ...string) lipgloss.Style {
	result := lipgloss.NewStyle()
	for _, name := range names {
		result = result.Inherit(GetStyle(name))
	}
	return result
}
