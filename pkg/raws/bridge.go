package raws

import (
	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/logging"
	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

var log = logging.GetLogger("raws")

// Bridge guards calls into the merge engine with the two compatibility
// checks every raw update must pass: the pack has to be usable with the
// running DF version, and with the version the staged rebuild was built
// from. Only then is the engine asked to merge.
type Bridge struct {
	fs        types.FS
	ctx       settings.Context
	validator Validator
	engine    Engine
}

// NewBridge wires a bridge over the given engine.
func NewBridge(fs types.FS, ctx settings.Context, validator Validator, engine Engine) *Bridge {
	return &Bridge{fs: fs, ctx: ctx, validator: validator, engine: engine}
}

// Precheck runs the validations Update would run, without touching the
// engine: the pack must validate against the running DF version and
// against the version derived from the staging log's baseline record.
// UpdateApplied means an update would proceed.
func (b *Bridge) Precheck(pack string) types.UpdateResult {
	if !b.validator.Validate(pack, b.ctx.Version) {
		log.Warn().Str("pack", pack).Str("dfVersion", b.ctx.Version).
			Msg("Cannot merge raws from an incompatible graphics pack")
		return types.UpdateDeclined
	}

	baselineID := provenance.Read(b.fs, b.ctx.Paths.StagingLogPath(), provenance.CategoryBaselines)
	builtFrom := dfversion.FromBaselineID(baselineID)
	if !b.validator.Validate(pack, builtFrom) {
		log.Warn().Str("pack", pack).Str("builtFrom", builtFrom).
			Msg("Staged raws were built from a version this pack does not support")
		return types.UpdateDeclined
	}
	return types.UpdateApplied
}

// Update merges the named pack into rawDir. Precheck failures decline
// without touching rawDir. The staged graphics identifier is forwarded
// to the engine so it knows which layer the rebuild currently carries.
// A validation or engine decline reports UpdateDeclined; only an engine
// error reports UpdateError.
func (b *Bridge) Update(rawDir, pack string) types.UpdateResult {
	if res := b.Precheck(pack); res != types.UpdateApplied {
		return res
	}

	staged := provenance.Read(b.fs, b.ctx.Paths.StagingLogPath(), provenance.CategoryGraphics)
	ok, err := b.engine.UpdateRawDir(rawDir, Overlay{Pack: pack, Baseline: staged})
	if err != nil {
		log.Error().Err(err).Str("rawDir", rawDir).Str("pack", pack).
			Msg("Raw merge engine failed")
		return types.UpdateError
	}
	if !ok {
		log.Info().Str("rawDir", rawDir).Str("pack", pack).
			Msg("Raw merge engine declined the update")
		return types.UpdateDeclined
	}
	log.Info().Str("rawDir", rawDir).Str("pack", pack).Msg("Updated graphics raws")
	return types.UpdateApplied
}
