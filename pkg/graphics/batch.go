package graphics

import (
	"path/filepath"
	"sort"

	"github.com/fortresskit/gfxpack/pkg/assets"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/provenance"
	"github.com/fortresskit/gfxpack/pkg/raws"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// reservedSaveName is the folder DF uses for the running game's state;
// it is never batch-updated.
const reservedSaveName = "current"

// rawBackupName is the sibling folder a save's raws are copied to
// before an update. Only the latest backup is kept.
const rawBackupName = "raw.bak"

// BatchDriver brings savegame raw directories up to the currently
// installed graphics pack. Each save is handled on its own: a save that
// cannot be safely rebuilt, or whose update is declined, is counted as
// skipped and never stops the rest.
type BatchDriver struct {
	fs          types.FS
	ctx         settings.Context
	catalog     *Catalog
	guard       *raws.Guard
	bridge      *raws.Bridge
	keepBackups bool
}

// BatchOptions collects the collaborators a BatchDriver needs.
type BatchOptions struct {
	FS      types.FS
	Context settings.Context
	Catalog *Catalog
	Guard   *raws.Guard
	Bridge  *raws.Bridge

	// KeepBackups copies each save's raw directory aside before
	// updating it.
	KeepBackups bool
}

// NewBatchDriver wires a batch driver from its collaborators.
func NewBatchDriver(opts BatchOptions) *BatchDriver {
	return &BatchDriver{
		fs:          opts.FS,
		ctx:         opts.Context,
		catalog:     opts.Catalog,
		guard:       opts.Guard,
		bridge:      opts.Bridge,
		keepBackups: opts.KeepBackups,
	}
}

// SavegamesToUpdate lists the savegame folders eligible for an update,
// sorted by name.
func (d *BatchDriver) SavegamesToUpdate() []string {
	saveDir := d.ctx.Paths.SaveDir()
	entries, err := d.fs.ReadDir(saveDir)
	if err != nil {
		log.Debug().Str("dir", saveDir).Msg("No savegame directory to scan")
		return nil
	}

	var saves []string
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != reservedSaveName {
			saves = append(saves, entry.Name())
		}
	}
	sort.Strings(saves)
	return saves
}

// UpdateSavegames updates every eligible savegame to the installed
// graphics pack. A save is updated only when the rebuild guard accepts
// its provenance log in strict mode and the raw update reports applied;
// everything else counts as skipped.
func (d *BatchDriver) UpdateSavegames() (updated, skipped int) {
	saves := d.SavegamesToUpdate()
	if len(saves) == 0 {
		return 0, 0
	}

	pack := d.catalog.CurrentPack()
	for _, save := range saves {
		rawDir := filepath.Join(d.ctx.Paths.SaveDir(), save, paths.RawDirName)
		logPath := filepath.Join(rawDir, provenance.LogName)
		if !d.guard.CanRebuild(logPath, true) {
			log.Debug().Str("save", save).Msg("Savegame skipped")
			skipped++
			continue
		}
		if d.keepBackups {
			if err := d.backupRaws(rawDir); err != nil {
				log.Warn().Err(err).Str("save", save).
					Msg("Savegame raw backup failed, not updating")
				skipped++
				continue
			}
		}
		if d.bridge.Update(rawDir, pack) == types.UpdateApplied {
			updated++
			continue
		}
		log.Debug().Str("save", save).Msg("Savegame skipped")
		skipped++
	}

	log.Info().Int("updated", updated).Int("skipped", skipped).
		Msg("Savegame raw update finished")
	return updated, skipped
}

func (d *BatchDriver) backupRaws(rawDir string) error {
	backup := filepath.Join(filepath.Dir(rawDir), rawBackupName)
	if err := d.fs.RemoveAll(backup); err != nil {
		return err
	}
	return assets.CopyTree(d.fs, rawDir, backup)
}
