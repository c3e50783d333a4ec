package graphics

import (
	"context"
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/baselines"
	"github.com/fortresskit/gfxpack/pkg/colors"
	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// rendererArtFiles are extended-renderer art files that must survive an
// art tree replacement even though no pack ships them.
var rendererArtFiles = []string{"white1px.png", "transparent1px.png"}

// engineArtFiles must exist in data/art for DF to start.
var engineArtFiles = []string{"mouse.png", "font.ttf"}

const (
	currentSchemeName = "_Current graphics pack.txt"

	// Pre-0.31 builds wrote the marker with a leading space.
	legacySchemeName = " Current graphics pack.txt"
)

// Installer performs a full graphics pack installation into the live
// Dwarf Fortress folder: raw merge, asset tree replacement, init field
// merge, colorscheme and renderer extras. Any unexpected failure after
// the raw merge aborts the run, and the live settings session is
// reloaded from disk on every exit path so the in-memory view never
// diverges from what actually landed.
type Installer struct {
	fs       types.FS
	ctx      settings.Context
	session  *settings.Session
	bridge   *raws.Bridge
	merger   *FieldMerger
	tilesets *Tilesets
	baseline baselines.Provider
	exec     *assets.Executor
	twbt     bool
}

// InstallerOptions collects the collaborators an Installer needs.
type InstallerOptions struct {
	FS       types.FS
	Context  settings.Context
	Session  *settings.Session
	Bridge   *raws.Bridge
	Merger   *FieldMerger
	Tilesets *Tilesets
	Baseline baselines.Provider
	Executor *assets.Executor

	// InstallTwbT copies the pack's extended renderer asset trees into
	// the live install after the regular assets.
	InstallTwbT bool
}

// NewInstaller wires an installer from its collaborators.
func NewInstaller(opts InstallerOptions) *Installer {
	return &Installer{
		fs:       opts.FS,
		ctx:      opts.Context,
		session:  opts.Session,
		bridge:   opts.Bridge,
		merger:   opts.Merger,
		tilesets: opts.Tilesets,
		baseline: opts.Baseline,
		exec:     opts.Executor,
		twbt:     opts.InstallTwbT,
	}
}

// Install installs the named pack. Without baseline raws nothing is
// touched. A raw merge decline aborts before any asset changes. With a
// dry-run executor every mutation is logged instead of performed.
func (ins *Installer) Install(ctx context.Context, pack string) types.InstallResult {
	if _, ok := ins.baseline.FindVanillaRaws(); !ok {
		log.Warn().Str("pack", pack).
			Msg("Cannot install graphics while baseline raws are missing")
		return types.InstallMissingBaseline
	}

	defer func() {
		if err := ins.session.Reload(); err != nil {
			log.Warn().Err(err).Msg("Could not reload live settings after install")
		}
	}()

	res := types.UpdateApplied
	if ins.exec.DryRun() {
		if res = ins.bridge.Precheck(pack); res == types.UpdateApplied {
			log.Info().Str("pack", pack).Msg("Would merge graphics raws into the live install")
		}
	} else {
		res = ins.bridge.Update(ins.ctx.Paths.RawDir(), pack)
	}
	switch res {
	case types.UpdateApplied:
	case types.UpdateError:
		return types.InstallError
	default:
		return types.InstallDeclined
	}

	if err := ins.applyPack(ctx, pack); err != nil {
		log.Error().Err(err).Str("pack", pack).
			Msg("Something went wrong while installing graphics")
		return types.InstallError
	}

	log.Info().Str("pack", pack).Msg("Installed graphics pack")
	return types.InstallSuccess
}

// applyPack runs the asset and configuration steps, in order. The raw
// merge has already succeeded when this runs.
func (ins *Installer) applyPack(ctx context.Context, pack string) error {
	packDir := ins.ctx.Paths.PackPath(pack)
	packArt := filepath.Join(packDir, paths.DataDirName, paths.ArtDirName)
	liveArt := ins.ctx.Paths.ArtDir()

	if err := ins.preserveRendererArt(liveArt, packArt); err != nil {
		return err
	}
	if err := assets.ReplaceTree(ctx, ins.fs, ins.exec, packArt, liveArt); err != nil {
		return err
	}
	if err := ins.tilesets.Add(ctx); err != nil {
		return err
	}
	if err := ins.backfillEngineArt(liveArt); err != nil {
		return err
	}
	if err := ins.mergeInitFields(packDir); err != nil {
		return err
	}
	if err := ins.installColorScheme(packDir); err != nil {
		return err
	}
	ins.copyOverrides(packDir)
	if ins.twbt {
		if err := ins.copyRendererAssets(ctx, packDir); err != nil {
			return err
		}
	}
	return nil
}

// preserveRendererArt copies renderer-specific art from the live tree
// into the pack's art tree so the replacement brings it back.
func (ins *Installer) preserveRendererArt(liveArt, packArt string) error {
	for _, name := range rendererArtFiles {
		src := filepath.Join(liveArt, name)
		if !ins.isFile(src) {
			continue
		}
		if ins.exec.DryRun() {
			log.Info().Str("file", name).Msg("Would preserve renderer art file")
			continue
		}
		if err := assets.CopyFile(ins.fs, src, filepath.Join(packArt, name)); err != nil {
			return err
		}
	}
	return nil
}

// backfillEngineArt restores required engine art files from the vanilla
// baseline when neither the pack nor the live tree provides them.
func (ins *Installer) backfillEngineArt(liveArt string) error {
	base, ok := ins.baseline.FindVanilla()
	if !ok {
		return nil
	}
	for _, name := range engineArtFiles {
		cur := filepath.Join(liveArt, name)
		src := filepath.Join(base, paths.DataDirName, paths.ArtDirName, name)
		if ins.isFile(cur) || !ins.isFile(src) {
			continue
		}
		if ins.exec.DryRun() {
			log.Info().Str("file", name).Msg("Would backfill engine art file from baseline")
			continue
		}
		if err := assets.CopyFile(ins.fs, src, cur); err != nil {
			return err
		}
	}
	return nil
}

func (ins *Installer) mergeInitFields(packDir string) error {
	if ins.exec.DryRun() {
		log.Info().Msg("Would merge allow-listed init fields from the pack")
		return nil
	}
	return ins.merger.PatchInits(packDir)
}

// installColorScheme applies the pack's colorscheme to the live install
// and keeps the colorscheme folder's marker file in sync. From 0.31.04
// on the scheme lives in the pack's colors.txt; before, in its init.txt
// with no marker file kept.
func (ins *Installer) installColorScheme(packDir string) error {
	if ins.exec.DryRun() {
		log.Info().Msg("Would install the pack colorscheme")
		return nil
	}

	schemes := ins.ctx.Paths.ColorSchemesDir()
	legacy := filepath.Join(schemes, legacySchemeName)
	if ins.isFile(legacy) {
		if err := ins.fs.Remove(legacy); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess,
				"cannot remove legacy colorscheme marker")
		}
	}

	marker := filepath.Join(schemes, currentSchemeName)
	packInit := filepath.Join(packDir, paths.DataDirName, paths.InitDirName)

	if dfversion.HasDetailedInit(ins.ctx.Version) {
		src := filepath.Join(packInit, "colors.txt")
		scheme, err := colors.Load(ins.fs, src)
		if err != nil {
			return err
		}
		if err := scheme.Apply(ins.fs, ins.ctx); err != nil {
			return err
		}
		return assets.CopyFile(ins.fs, src, marker)
	}

	scheme, err := colors.Load(ins.fs, filepath.Join(packInit, "init.txt"))
	if err != nil {
		return err
	}
	if err := scheme.Apply(ins.fs, ins.ctx); err != nil {
		return err
	}
	if ins.isFile(marker) {
		if err := ins.fs.Remove(marker); err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess,
				"cannot remove colorscheme marker")
		}
	}
	return nil
}

// copyOverrides refreshes the renderer overrides file from the pack.
// Both the removal and the copy are best effort; packs without an
// overrides file simply leave none behind.
func (ins *Installer) copyOverrides(packDir string) {
	if ins.exec.DryRun() {
		log.Info().Msg("Would refresh the renderer overrides file")
		return
	}

	live := filepath.Join(ins.ctx.Paths.InitDir(), "overrides.txt")
	_ = ins.fs.Remove(live)

	src := filepath.Join(packDir, paths.DataDirName, paths.InitDirName, "overrides.txt")
	data, err := ins.fs.ReadFile(src)
	if err != nil {
		return
	}
	if err := ins.fs.WriteFile(live, data, 0o644); err != nil {
		log.Debug().Err(err).Msg("Could not write overrides file")
	}
}

// copyRendererAssets copies the pack's extended renderer asset trees
// over the live install. Packs without them are silently skipped, pair
// by pair.
func (ins *Installer) copyRendererAssets(ctx context.Context, packDir string) error {
	log.Info().Msg("Copying extended renderer assets")

	pairs := []struct{ src, dst string }{
		{filepath.Join(packDir, paths.DataDirName, "twbt_art"), ins.ctx.Paths.ArtDir()},
		{filepath.Join(packDir, paths.DataDirName, "twbt_init"), ins.ctx.Paths.InitDir()},
		{filepath.Join(packDir, paths.RawDirName, "twbt_graphics"), filepath.Join(ins.ctx.Paths.RawDir(), "graphics")},
		{filepath.Join(packDir, paths.RawDirName, "twbt_objects"), filepath.Join(ins.ctx.Paths.RawDir(), "objects")},
	}

	plan := assets.NewPlan()
	for _, p := range pairs {
		err := assets.AddTree(ins.fs, plan, p.src, p.dst, assets.CopyTreeOptions{MissingOK: true})
		if err != nil {
			return err
		}
	}
	return ins.exec.Run(ctx, plan)
}

func (ins *Installer) isFile(path string) bool {
	info, err := ins.fs.Stat(path)
	return err == nil && !info.IsDir()
}
