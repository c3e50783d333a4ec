// Package raws connects gfxpack to the external raw-merge engine: the
// black box that performs the structural three-way merge of raw object
// files and writes the provenance log as a side effect of success.
//
// The Bridge validates a pack against both the running DF version and
// the version the target's raws were actually built from before handing
// off to the engine. The Guard decides whether a merged directory could
// be reproduced exactly from currently known components.
package raws

import (
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Overlay describes the graphics layer handed to the merge engine.
type Overlay struct {
	// Pack is the graphics pack to merge in.
	Pack string

	// Baseline is the graphics identifier of the staged rebuild the
	// merge starts from, empty when none is recorded.
	Baseline string
}

// Engine is the external raw-merge engine contract. Implementations are
// assumed synchronous and are expected to write their own provenance
// record when UpdateRawDir succeeds.
type Engine interface {
	// UpdateRawDir merges the overlay into the raw directory. False
	// means the engine declined; an error means it failed partway.
	UpdateRawDir(rawDir string, overlay Overlay) (bool, error)

	// CanRebuild reports whether the engine can reproduce the state
	// recorded in the provenance log, honoring strict mode.
	CanRebuild(logPath string, strict bool) (bool, error)
}

// Validator reports whether a pack is usable with a DF version. The
// graphics validator satisfies this; it is declared here so the bridge
// does not depend on the catalog package.
type Validator interface {
	Validate(pack, version string) bool
}

// PackLister supplies the currently known packs.
type PackLister interface {
	ListPacks() []types.Pack
}

// UnavailableEngine is the Engine wired when no merge engine
// integration is present. It declines every merge and only permits
// rebuilds in permissive mode, so nothing is ever claimed that the
// missing engine cannot deliver.
type UnavailableEngine struct{}

func (UnavailableEngine) UpdateRawDir(rawDir string, overlay Overlay) (bool, error) {
	log.Warn().Str("rawDir", rawDir).Str("pack", overlay.Pack).
		Msg("No raw merge engine available, declining update")
	return false, nil
}

func (UnavailableEngine) CanRebuild(logPath string, strict bool) (bool, error) {
	log.Warn().Str("log", logPath).Msg("No raw merge engine available")
	return !strict, nil
}
