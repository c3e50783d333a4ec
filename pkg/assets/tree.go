package assets

import (
	"context"
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Suffixes used by ReplaceTree for its intermediate directories. A
// crashed run can leave these behind; the next run clears them.
const (
	stageSuffix = ".gfxpack-stage"
	oldSuffix   = ".gfxpack-old"
)

// CopyTreeOptions controls how AddTree plans a recursive copy.
type CopyTreeOptions struct {
	// SkipExisting leaves files alone when the target already exists
	// instead of overwriting them.
	SkipExisting bool

	// MissingOK turns a missing source tree into an empty plan instead
	// of an error.
	MissingOK bool
}

// CopyFile copies a single file immediately, creating the target's
// parent directory when needed. Used for the small fixed-name drops
// that are not worth a staged plan.
func CopyFile(fsys types.FS, source, target string) error {
	data, err := fsys.ReadFile(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read %s", source)
	}
	if err := fsys.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create directory for %s", target)
	}
	if err := fsys.WriteFile(target, data, 0o644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"cannot write %s", target)
	}
	return nil
}

// CopyTree copies the tree at source into target immediately, without
// going through a plan. Existing target files are overwritten.
func CopyTree(fsys types.FS, source, target string) error {
	entries, err := fsys.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read source tree: %s", source)
	}
	if err := fsys.MkdirAll(target, 0o755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create directory %s", target)
	}
	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())
		if entry.IsDir() {
			if err := CopyTree(fsys, src, dst); err != nil {
				return err
			}
			continue
		}
		if err := CopyFile(fsys, src, dst); err != nil {
			return err
		}
	}
	return nil
}

// AddCopyFile plans copying a single file, deleting the target first
// when it already exists. With skipExisting an existing target is left
// untouched. Reports whether a copy was planned.
func AddCopyFile(fsys types.FS, plan *Plan, source, target string, skipExisting bool) bool {
	if _, err := fsys.Stat(target); err == nil {
		if skipExisting {
			return false
		}
		plan.DeleteFile(target)
	}
	plan.CopyFile(source, target)
	return true
}

// AddTree plans a recursive copy of the tree at source into target.
// Directories missing on the target side are created, files are copied
// per AddCopyFile. Entries are visited in directory order, parents
// before children.
func AddTree(fsys types.FS, plan *Plan, source, target string, opts CopyTreeOptions) error {
	info, err := fsys.Stat(source)
	if err != nil {
		if opts.MissingOK {
			log.Debug().Str("source", source).Msg("Source tree missing, nothing to copy")
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileNotFound,
			"source tree does not exist: %s", source)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrInvalidInput,
			"source is not a directory: %s", source)
	}
	return addTreeDir(fsys, plan, source, target, opts)
}

func addTreeDir(fsys types.FS, plan *Plan, source, target string, opts CopyTreeOptions) error {
	if _, err := fsys.Stat(target); err != nil {
		plan.CreateDir(target)
	}

	entries, err := fsys.ReadDir(source)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"failed to read source tree: %s", source)
	}
	for _, entry := range entries {
		src := filepath.Join(source, entry.Name())
		dst := filepath.Join(target, entry.Name())
		if entry.IsDir() {
			if err := addTreeDir(fsys, plan, src, dst, opts); err != nil {
				return err
			}
			continue
		}
		AddCopyFile(fsys, plan, src, dst, opts.SkipExisting)
	}
	return nil
}

// ReplaceTree swaps the directory at target for a copy of source
// without a window where target is missing. The copy is staged next to
// the target first, the old tree is moved aside, the staged tree takes
// its place and only then is the old tree removed. On a failed swap the
// old tree is moved back.
func ReplaceTree(ctx context.Context, fsys types.FS, exec *Executor, source, target string) error {
	stage := target + stageSuffix
	old := target + oldSuffix

	// Leftovers from an interrupted run.
	_ = fsys.RemoveAll(stage)
	_ = fsys.RemoveAll(old)

	plan := NewPlan()
	if err := AddTree(fsys, plan, source, stage, CopyTreeOptions{}); err != nil {
		return err
	}
	if err := exec.Run(ctx, plan); err != nil {
		_ = fsys.RemoveAll(stage)
		return err
	}

	if exec.DryRun() {
		log.Info().Str("source", source).Str("target", target).
			Msg("Would replace directory with staged copy")
		return nil
	}

	hadTarget := false
	if _, err := fsys.Stat(target); err == nil {
		hadTarget = true
		if err := fsys.Rename(target, old); err != nil {
			_ = fsys.RemoveAll(stage)
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to move aside %s", target)
		}
	}

	if err := fsys.Rename(stage, target); err != nil {
		if hadTarget {
			_ = fsys.Rename(old, target)
		}
		_ = fsys.RemoveAll(stage)
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to activate staged copy of %s", target)
	}

	if hadTarget {
		if err := fsys.RemoveAll(old); err != nil {
			log.Warn().Err(err).Str("dir", old).
				Msg("Could not remove the replaced tree")
		}
	}

	log.Debug().Str("source", source).Str("target", target).Msg("Replaced directory")
	return nil
}
