package assets

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/core"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/arthur-debert/synthfs/pkg/synthfs/operations"
	"github.com/rs/zerolog"

	"github.com/fortresskit/gfxpack/pkg/errors"
)

// Executor runs plans through a synthfs pipeline against the real
// filesystem. In dry-run mode it only logs what would happen.
type Executor struct {
	logger     zerolog.Logger
	dryRun     bool
	filesystem synthfs.FileSystem
}

// NewExecutor creates a plan executor rooted at the real filesystem.
func NewExecutor(dryRun bool) *Executor {
	return &Executor{
		logger:     log,
		dryRun:     dryRun,
		filesystem: filesystem.NewOSFileSystem("/"),
	}
}

// DryRun reports whether this executor only simulates plans.
func (e *Executor) DryRun() bool {
	return e.dryRun
}

// Run executes the plan. All ops are converted and queued before any of
// them runs, so a malformed op aborts before the filesystem is touched.
func (e *Executor) Run(ctx context.Context, plan *Plan) error {
	if plan == nil || plan.Empty() {
		e.logger.Debug().Msg("No operations to execute")
		return nil
	}

	if e.dryRun {
		e.logger.Info().Int("operationCount", plan.Len()).
			Msg("Dry run mode - operations would be executed:")
		for _, op := range plan.Ops() {
			e.logOperation(op)
		}
		return nil
	}

	synthOps := make([]synthfs.Operation, 0, plan.Len())
	for _, op := range plan.Ops() {
		synthOp, err := e.convert(op)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to convert operation: %s", op.Description)
		}
		synthOps = append(synthOps, synthOp)
	}

	pipeline := synthfs.NewMemPipeline()
	for _, op := range synthOps {
		if err := pipeline.Add(op); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite,
				"failed to add operation to pipeline")
		}
	}

	e.logger.Info().Int("operationCount", len(synthOps)).Msg("Executing operations")

	result := synthfs.NewExecutor().Run(ctx, pipeline, e.filesystem)
	if result.GetError() != nil {
		e.logger.Error().Err(result.GetError()).Msg("Pipeline execution failed")
		return errors.Wrapf(result.GetError(), errors.ErrFileWrite,
			"failed to execute operations")
	}

	e.logger.Debug().Msg("All operations executed successfully")
	return nil
}

// convert maps a planned op onto its synthfs operation.
func (e *Executor) convert(op Op) (synthfs.Operation, error) {
	switch op.Kind {
	case OpCreateDir:
		return e.convertCreateDir(op)
	case OpCopyFile:
		return e.convertCopyFile(op)
	case OpWriteFile:
		return e.convertWriteFile(op)
	case OpDeleteFile:
		return e.convertDeleteFile(op)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput,
			"unsupported operation kind: %s", op.Kind)
	}
}

func (e *Executor) convertCreateDir(op Op) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"create directory operation requires target")
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("create-dir-%s", op.Target))
	createOp := operations.NewCreateDirectoryOperation(opID, relPath)
	createOp.SetItem(&directoryItem{
		path: relPath,
		mode: os.FileMode(0755),
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertCopyFile(op Op) (synthfs.Operation, error) {
	if op.Source == "" || op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"copy file operation requires source and target")
	}

	relSource, err := filepath.Rel("/", op.Source)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert source path: %s", op.Source)
	}
	relTarget, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert target path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("copy-%s-to-%s", filepath.Base(op.Source), op.Target))
	copyOp := operations.NewCopyOperation(opID, relTarget)
	copyOp.SetPaths(relSource, relTarget)

	return synthfs.NewOperationsPackageAdapter(copyOp), nil
}

func (e *Executor) convertWriteFile(op Op) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"write file operation requires target")
	}

	mode := os.FileMode(0644)
	if op.Mode != 0 {
		mode = os.FileMode(op.Mode)
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("write-file-%s", op.Target))
	createOp := operations.NewCreateFileOperation(opID, relPath)
	createOp.SetItem(&fileItem{
		path:    relPath,
		content: op.Content,
		mode:    mode,
	})

	return synthfs.NewOperationsPackageAdapter(createOp), nil
}

func (e *Executor) convertDeleteFile(op Op) (synthfs.Operation, error) {
	if op.Target == "" {
		return nil, errors.New(errors.ErrInvalidInput,
			"delete file operation requires target")
	}

	relPath, err := filepath.Rel("/", op.Target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput,
			"failed to convert path: %s", op.Target)
	}

	opID := core.OperationID(fmt.Sprintf("delete-%s", op.Target))
	deleteOp := operations.NewDeleteOperation(opID, relPath)

	return synthfs.NewOperationsPackageAdapter(deleteOp), nil
}

// logOperation logs what an op would do in dry-run mode.
func (e *Executor) logOperation(op Op) {
	logger := e.logger.With().
		Str("kind", string(op.Kind)).
		Str("description", op.Description).
		Logger()

	switch op.Kind {
	case OpCreateDir:
		logger.Info().Str("target", op.Target).Msg("Would create directory")
	case OpCopyFile:
		logger.Info().Str("source", op.Source).Str("target", op.Target).Msg("Would copy file")
	case OpWriteFile:
		logger.Info().Str("target", op.Target).Int("contentLen", len(op.Content)).Msg("Would write file")
	case OpDeleteFile:
		logger.Info().Str("target", op.Target).Msg("Would delete file")
	default:
		logger.Info().Msg("Would execute operation")
	}
}

// Item types for synthfs operations

// fileItem implements the interface needed for file operations
type fileItem struct {
	path    string
	content []byte
	mode    fs.FileMode
}

func (f *fileItem) Path() string       { return f.path }
func (f *fileItem) Type() string       { return "file" }
func (f *fileItem) Content() []byte    { return f.content }
func (f *fileItem) Mode() fs.FileMode  { return f.mode }
func (f *fileItem) IsDir() bool        { return false }
func (f *fileItem) ModTime() time.Time { return time.Now() }
func (f *fileItem) Size() int64        { return int64(len(f.content)) }

// directoryItem implements the interface needed for directory operations
type directoryItem struct {
	path string
	mode fs.FileMode
}

func (d *directoryItem) Path() string       { return d.path }
func (d *directoryItem) Type() string       { return "directory" }
func (d *directoryItem) Mode() fs.FileMode  { return d.mode }
func (d *directoryItem) IsDir() bool        { return true }
func (d *directoryItem) ModTime() time.Time { return time.Now() }
func (d *directoryItem) Size() int64        { return 0 }
