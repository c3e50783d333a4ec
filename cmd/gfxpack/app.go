package gfxpack

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/baselines"
	"github.com/fortresskit/gfxpack/pkg/config"
	"github.com/fortresskit/gfxpack/pkg/filesystem"
	"github.com/fortresskit/gfxpack/pkg/graphics"
	"github.com/fortresskit/gfxpack/pkg/legends"
	"github.com/fortresskit/gfxpack/pkg/manifest"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// app bundles the collaborators every command needs, wired once per
// invocation from flags, config and the discovered DF install.
type app struct {
	cfg       *config.Config
	fs        types.FS
	paths     paths.Paths
	ctx       settings.Context
	session   *settings.Session
	manifests manifest.Source
	validator *graphics.Validator
	catalog   *graphics.Catalog
}

// newApp resolves the configuration and builds the core collaborators.
// Path flags beat config file values, which beat discovery.
func newApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Root().PersistentFlags()
	overrides := map[string]interface{}{}
	if dir, _ := flags.GetString("lnp-dir"); dir != "" {
		overrides["paths.lnp_dir"] = dir
	}
	if dir, _ := flags.GetString("df-dir"); dir != "" {
		overrides["paths.df_dir"] = dir
	}

	cfg, err := config.Load(config.LoadOptions{Overrides: overrides})
	if err != nil {
		return nil, err
	}

	p, err := paths.New(cfg.Paths.LNPDir, cfg.Paths.DFDir)
	if err != nil {
		return nil, err
	}
	if p.UsedFallback() {
		fmt.Fprintf(os.Stderr, MsgFallbackWarning, p.Root())
	}

	fs := filesystem.NewOS()
	ctx, err := settings.Discover(fs, p)
	if err != nil {
		return nil, err
	}
	session, err := settings.NewSession(fs, ctx)
	if err != nil {
		return nil, err
	}

	manifests := manifest.NewDirSource(fs, map[string]string{
		graphics.Category: p.GraphicsDir(),
	})
	validator := graphics.NewValidator(fs, p, manifests)

	return &app{
		cfg:       cfg,
		fs:        fs,
		paths:     p,
		ctx:       ctx,
		session:   session,
		manifests: manifests,
		validator: validator,
		catalog:   graphics.NewCatalog(fs, ctx, validator, manifests, session),
	}, nil
}

// engine returns the raw merge engine. Raw regeneration needs an
// external tool this build does not ship, so merges are declined rather
// than guessed at.
func (a *app) engine() raws.Engine {
	return raws.UnavailableEngine{}
}

func (a *app) bridge() *raws.Bridge {
	return raws.NewBridge(a.fs, a.ctx, a.validator, a.engine())
}

func (a *app) baselines() baselines.Provider {
	return baselines.NewDirProvider(a.fs, a.paths.BaselinesDir(), a.ctx.Version)
}

func (a *app) tilesets(exec *assets.Executor) *graphics.Tilesets {
	return graphics.NewTilesets(a.fs, a.ctx, a.session, exec)
}

func (a *app) installer(dryRun bool) *graphics.Installer {
	exec := assets.NewExecutor(dryRun)
	return graphics.NewInstaller(graphics.InstallerOptions{
		FS:          a.fs,
		Context:     a.ctx,
		Session:     a.session,
		Bridge:      a.bridge(),
		Merger:      graphics.NewFieldMerger(a.fs, a.ctx, a.session),
		Tilesets:    a.tilesets(exec),
		Baseline:    a.baselines(),
		Executor:    exec,
		InstallTwbT: a.cfg.Install.TwbT,
	})
}

func (a *app) batchDriver() *graphics.BatchDriver {
	return graphics.NewBatchDriver(graphics.BatchOptions{
		FS:          a.fs,
		Context:     a.ctx,
		Catalog:     a.catalog,
		Guard:       raws.NewGuard(a.fs, a.catalog, a.engine()),
		Bridge:      a.bridge(),
		KeepBackups: a.cfg.Install.KeepSaveBackups,
	})
}

func (a *app) simplifier() *graphics.Simplifier {
	return graphics.NewSimplifier(a.fs, a.ctx, a.catalog, a.baselines())
}

func (a *app) legends() *legends.Processor {
	return legends.NewProcessor(a.fs, a.ctx)
}
