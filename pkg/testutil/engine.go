package testutil

import (
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// EngineCall records one UpdateRawDir invocation.
type EngineCall struct {
	RawDir  string
	Overlay raws.Overlay
}

// Engine is a scriptable raw-merge engine. The zero value applies every
// update and approves every rebuild.
type Engine struct {
	// DeclineUpdates makes UpdateRawDir decline without error.
	DeclineUpdates bool

	// UpdateErr is returned by UpdateRawDir when set.
	UpdateErr error

	// DeclineRebuilds makes CanRebuild report false without error.
	DeclineRebuilds bool

	// RebuildErr is returned by CanRebuild when set.
	RebuildErr error

	// FS, when set, makes successful updates write the provenance log
	// the real engine leaves behind.
	FS types.FS

	UpdateCalls  []EngineCall
	RebuildCalls []string
}

func (e *Engine) UpdateRawDir(rawDir string, overlay raws.Overlay) (bool, error) {
	e.UpdateCalls = append(e.UpdateCalls, EngineCall{RawDir: rawDir, Overlay: overlay})
	if e.UpdateErr != nil {
		return false, e.UpdateErr
	}
	if e.DeclineUpdates {
		return false, nil
	}
	if e.FS != nil {
		log := filepath.Join(rawDir, provenance.LogName)
		if err := e.FS.WriteFile(log, []byte("graphics/"+overlay.Pack+"\n"), 0o644); err != nil {
			return false, err
		}
	}
	return true, nil
}

func (e *Engine) CanRebuild(logPath string, strict bool) (bool, error) {
	e.RebuildCalls = append(e.RebuildCalls, logPath)
	if e.RebuildErr != nil {
		return false, e.RebuildErr
	}
	return !e.DeclineRebuilds, nil
}
