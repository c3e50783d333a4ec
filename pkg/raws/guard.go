package raws

import (
	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// Guard answers whether a merged raw directory could be rebuilt exactly
// from components gfxpack currently knows about. Batch save updates ask
// it before touching each save so a half-known save is skipped rather
// than corrupted.
type Guard struct {
	fs     types.FS
	packs  PackLister
	engine Engine
}

// NewGuard wires a guard over the known-pack catalog and the engine.
func NewGuard(fs types.FS, packs PackLister, engine Engine) *Guard {
	return &Guard{fs: fs, packs: packs, engine: engine}
}

// CanRebuild reports whether the directory described by the provenance
// log at logPath can be reproduced. A missing log is only acceptable in
// permissive mode. The recorded graphics identifier must match a known
// pack by name or folder prefix before the engine is consulted; the
// engine then has the final word on the remaining layers.
func (g *Guard) CanRebuild(logPath string, strict bool) bool {
	if _, err := g.fs.Stat(logPath); err != nil {
		log.Warn().Str("log", logPath).Bool("strict", strict).
			Msg("No provenance log for raw directory")
		return !strict
	}

	logged := provenance.Read(g.fs, logPath, provenance.CategoryGraphics)
	if !g.knownPack(logged) {
		log.Info().Str("graphics", logged).Str("log", logPath).
			Msg("Recorded graphics pack is not in the catalog")
		return false
	}

	ok, err := g.engine.CanRebuild(logPath, strict)
	if err != nil {
		log.Warn().Err(err).Str("log", logPath).
			Msg("Raw merge engine could not verify rebuild")
		return false
	}
	return ok
}

// knownPack reports whether id names a catalog pack, matching either
// the pack name or its declared folder prefix.
func (g *Guard) knownPack(id string) bool {
	for _, p := range g.packs.ListPacks() {
		for _, ident := range p.Identities() {
			if id == ident {
				return true
			}
		}
	}
	return false
}
