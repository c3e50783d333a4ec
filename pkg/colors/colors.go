// Package colors handles DF colorschemes: the 48 COLOR_R/G/B fields
// defining the 16-color palette.
//
// Where the palette lives depends on the DF version: colors.txt from
// 0.31.04 on, init.txt before that. Schemes themselves are stored as
// init-style files in the workshop's Colors directory.
package colors

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/initfile"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("colors")

// names is the palette in DF's canonical order.
var names = []string{
	"BLACK", "BLUE", "GREEN", "CYAN", "RED", "MAGENTA", "BROWN", "LGRAY",
	"DGRAY", "LBLUE", "LGREEN", "LCYAN", "LRED", "LMAGENTA", "YELLOW", "WHITE",
}

// Fields returns the 48 color field names in canonical order.
func Fields() []string {
	fields := make([]string, 0, len(names)*3)
	for _, name := range names {
		for _, ch := range []string{"_R", "_G", "_B"} {
			fields = append(fields, name+ch)
		}
	}
	return fields
}

// Scheme holds the color fields a scheme file defines.
type Scheme struct {
	values map[string]string
}

// Load reads a scheme from an init-style file, keeping only color
// fields. Files without any color field yield an empty scheme.
func Load(fs types.FS, path string) (*Scheme, error) {
	f, err := initfile.Load(fs, path)
	if err != nil {
		return nil, err
	}
	return FromFile(f), nil
}

// FromFile extracts the color fields from an already parsed init file.
func FromFile(f *initfile.File) *Scheme {
	s := &Scheme{values: make(map[string]string)}
	for _, field := range Fields() {
		if v, ok := f.Value(field); ok {
			s.values[field] = v
		}
	}
	return s
}

// Value returns the scheme's value for a color field.
func (s *Scheme) Value(field string) (string, bool) {
	v, ok := s.values[field]
	return v, ok
}

// Len returns how many color fields the scheme defines.
func (s *Scheme) Len() int {
	return len(s.values)
}

// Apply writes the scheme into the live palette location for the
// install in ctx: colors.txt at or above 0.31.04, init.txt below.
// Fields the live file does not carry are skipped, everything else in
// the file is preserved.
func (s *Scheme) Apply(fs types.FS, ctx settings.Context) error {
	path := ctx.Paths.ColorsFilePath()
	if dfversion.Before(ctx.Version, dfversion.DetailedInit) {
		path = ctx.Paths.InitFilePath()
	}

	f, err := initfile.Load(fs, path)
	if err != nil {
		return err
	}

	applied := 0
	for _, field := range Fields() {
		if v, ok := s.values[field]; ok {
			if f.SetExisting(field, v) {
				applied++
			}
		}
	}
	if err := f.Save(fs, path); err != nil {
		return err
	}

	log.Debug().Str("path", path).Int("fields", applied).Msg("Colorscheme applied")
	return nil
}

// Save writes the scheme as a standalone file, one field per line in
// canonical order.
func (s *Scheme) Save(fs types.FS, path string) error {
	var b strings.Builder
	for _, field := range Fields() {
		if v, ok := s.values[field]; ok {
			b.WriteString(field)
			b.WriteByte(' ')
			b.WriteString(v)
			b.WriteByte('\n')
		}
	}
	if err := fs.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write colorscheme %s", path)
	}
	return nil
}

// ListSchemes returns the scheme names (file stems) available in the
// workshop's Colors directory, sorted.
func ListSchemes(fs types.FS, dir string) []string {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil
	}

	var schemes []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".txt") {
			continue
		}
		schemes = append(schemes, strings.TrimSuffix(name, ".txt"))
	}
	sort.Strings(schemes)
	return schemes
}

// SchemePath returns the file path of a named scheme in dir.
func SchemePath(dir, name string) string {
	return filepath.Join(dir, name+".txt")
}
