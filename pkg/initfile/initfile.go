// Package initfile reads and writes Dwarf Fortress init-style
// configuration files: plain text, one `KEY value` pair per line.
//
// Files are kept as an ordered list of lines. Lines that do not parse as
// a field (comments, blanks, anything else) pass through writes verbatim,
// and mutating one field never removes or reorders any other line. That
// round-trip guarantee is what makes selective field merging safe against
// files full of user customizations.
package initfile

import (
	"bytes"
	"io/fs"
	"strings"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// line is one physical line of the file. Field lines keep key and value
// so the value can be rewritten; raw holds the original text and is only
// regenerated when the field is mutated, so untouched lines round-trip
// byte for byte.
type line struct {
	key   string
	value string
	raw   string
	field bool
}

// File is an ordered key-value view over an init-style text file.
type File struct {
	lines []line
	// trailingNewline records whether the source ended with a newline so
	// Bytes can reproduce it exactly.
	trailingNewline bool
}

// Parse builds a File from raw file contents. It never fails: lines that
// do not look like `KEY value` are retained as passthrough lines.
func Parse(data []byte) *File {
	f := &File{}
	if len(data) == 0 {
		return f
	}

	text := string(data)
	f.trailingNewline = strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	for _, raw := range strings.Split(text, "\n") {
		f.lines = append(f.lines, parseLine(raw))
	}
	return f
}

// parseLine classifies one line. A field line starts with a key token
// (letters, digits, underscores) followed by whitespace and a non-empty
// value.
func parseLine(raw string) line {
	trimmed := strings.TrimRight(raw, "\r")
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return line{raw: raw}
	}

	idx := strings.IndexAny(trimmed, " \t")
	if idx <= 0 {
		return line{raw: raw}
	}

	key := trimmed[:idx]
	value := strings.TrimSpace(trimmed[idx+1:])
	if !isKey(key) || value == "" {
		return line{raw: raw}
	}

	return line{key: key, value: value, raw: raw, field: true}
}

func isKey(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return false
		}
	}
	return s != ""
}

// Load reads and parses the named file.
func Load(filesystem types.FS, path string) (*File, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read init file %s", path)
	}
	return Parse(data), nil
}

// Value returns the value of the first occurrence of key.
func (f *File) Value(key string) (string, bool) {
	for _, ln := range f.lines {
		if ln.field && ln.key == key {
			return ln.value, true
		}
	}
	return "", false
}

// Values returns the values for the given keys in order, empty string
// for keys not present.
func (f *File) Values(keys ...string) []string {
	out := make([]string, len(keys))
	for i, key := range keys {
		out[i], _ = f.Value(key)
	}
	return out
}

// Has reports whether the file defines key.
func (f *File) Has(key string) bool {
	_, ok := f.Value(key)
	return ok
}

// Keys returns every field key in file order, duplicates included.
func (f *File) Keys() []string {
	var keys []string
	for _, ln := range f.lines {
		if ln.field {
			keys = append(keys, ln.key)
		}
	}
	return keys
}

// Set updates the first occurrence of key in place, or appends a new
// field line when the key is absent. Later duplicates are left alone.
func (f *File) Set(key, value string) {
	if f.SetExisting(key, value) {
		return
	}
	f.lines = append(f.lines, line{key: key, value: value, raw: key + " " + value, field: true})
	f.trailingNewline = true
}

// SetExisting updates the first occurrence of key and reports whether
// the key was present. Absent keys are not added. A write of the value
// the field already holds leaves the line untouched.
func (f *File) SetExisting(key, value string) bool {
	for i := range f.lines {
		if f.lines[i].field && f.lines[i].key == key {
			if f.lines[i].value != value {
				f.lines[i].value = value
				f.lines[i].raw = key + " " + value
			}
			return true
		}
	}
	return false
}

// Bytes serializes the file. Passthrough lines and untouched fields are
// reproduced byte for byte.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	for i, ln := range f.lines {
		if i > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(ln.raw)
	}
	if f.trailingNewline && len(f.lines) > 0 {
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}

// Save writes the file to path.
func (f *File) Save(filesystem types.FS, path string) error {
	if err := filesystem.WriteFile(path, f.Bytes(), fs.FileMode(0644)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write init file %s", path)
	}
	return nil
}
