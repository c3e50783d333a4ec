// Package settings manages the live init configuration of a Dwarf
// Fortress install: an in-memory view of init.txt and d_init.txt that
// components patch and flush as one unit.
//
// The in-memory view is the only writer the install's init files have
// while gfxpack runs, and Reload discards it in favor of disk. The
// installer reloads on every exit path so a failed install can never
// leave the view diverged from the files.
package settings

import (
	"github.com/rs/zerolog"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/initfile"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Session is the live configuration of one DF install.
type Session struct {
	fs  types.FS
	ctx Context
	log zerolog.Logger

	init *initfile.File
	// dInit aliases init below the detailed-init threshold, where a
	// single file holds both field sets.
	dInit *initfile.File
}

// NewSession loads the live init files for the install in ctx.
func NewSession(fs types.FS, ctx Context) (*Session, error) {
	s := &Session{
		fs:  fs,
		ctx: ctx,
		log: logging.GetLogger("settings"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Context returns the install context the session was opened with.
func (s *Session) Context() Context {
	return s.ctx
}

// Reload replaces the in-memory view with the current on-disk state,
// discarding unflushed changes.
func (s *Session) Reload() error {
	init, err := initfile.Load(s.fs, s.ctx.Paths.InitFilePath())
	if err != nil {
		return err
	}
	s.init = init

	if dfversion.HasDetailedInit(s.ctx.Version) {
		dInit, err := initfile.Load(s.fs, s.ctx.Paths.DInitFilePath())
		if err != nil {
			return err
		}
		s.dInit = dInit
	} else {
		s.dInit = s.init
	}

	s.log.Debug().Str("version", s.ctx.Version).Msg("Live settings loaded")
	return nil
}

// Value returns the live value of a field, searching init.txt first and
// d_init.txt second. Empty string when the field is absent.
func (s *Session) Value(field string) string {
	if v, ok := s.init.Value(field); ok {
		return v
	}
	if v, ok := s.dInit.Value(field); ok {
		return v
	}
	return ""
}

// SetOption updates a field in the live init.txt. Fields missing from
// the file are left absent rather than appended, mirroring how DF
// versions that lack a field simply have no line for it.
func (s *Session) SetOption(field, value string) {
	if !s.init.SetExisting(field, value) {
		s.log.Debug().Str("field", field).Msg("Field missing from live init, not set")
	}
}

// PatchInit merges values for the given fields from src into the live
// init.txt. Only fields present in src are written, only fields present
// in the live file are updated, and everything else is untouched.
// Returns the number of fields written.
func (s *Session) PatchInit(src *initfile.File, fields []string) int {
	return s.patch(s.init, src, fields)
}

// PatchDInit is PatchInit for the appearance field set, targeting
// d_init.txt where the version splits the files and init.txt below.
func (s *Session) PatchDInit(src *initfile.File, fields []string) int {
	return s.patch(s.dInit, src, fields)
}

func (s *Session) patch(dst, src *initfile.File, fields []string) int {
	written := 0
	for _, field := range fields {
		value, ok := src.Value(field)
		if !ok {
			continue
		}
		if dst.SetExisting(field, value) {
			written++
		} else {
			s.log.Debug().Str("field", field).Msg("Field missing from live init, not set")
		}
	}
	return written
}

// Diff renders pending unflushed changes as a patch against the on-disk
// files, for dry-run display and debug logging. Empty when nothing
// changed.
func (s *Session) Diff() string {
	dmp := diffmatchpatch.New()
	out := ""

	onDisk, err := s.fs.ReadFile(s.ctx.Paths.InitFilePath())
	if err == nil {
		patches := dmp.PatchMake(string(onDisk), string(s.init.Bytes()))
		if len(patches) > 0 {
			out += dmp.PatchToText(patches)
		}
	}

	if s.dInit != s.init {
		onDisk, err := s.fs.ReadFile(s.ctx.Paths.DInitFilePath())
		if err == nil {
			patches := dmp.PatchMake(string(onDisk), string(s.dInit.Bytes()))
			if len(patches) > 0 {
				out += dmp.PatchToText(patches)
			}
		}
	}

	return out
}

// Flush persists the in-memory view back to the live init files.
func (s *Session) Flush() error {
	if err := s.init.Save(s.fs, s.ctx.Paths.InitFilePath()); err != nil {
		return err
	}
	if s.dInit != s.init {
		if err := s.dInit.Save(s.fs, s.ctx.Paths.DInitFilePath()); err != nil {
			return err
		}
	}
	s.log.Debug().Msg("Live settings flushed")
	return nil
}
