package gfxpack

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort        = "A graphics pack manager for Dwarf Fortress"
	MsgListShort        = "List the graphics packs in the workshop"
	MsgListLong         = "List shows every pack under the workshop's graphics root that is usable with the detected DF version."
	MsgCurrentShort     = "Show the currently installed graphics pack"
	MsgValidateShort    = "Check a pack against a DF version"
	MsgInstallShort     = "Install a graphics pack into the live DF directory"
	MsgUpdateSavesShort = "Update savegame raws to the installed pack"
	MsgTilesetsShort    = "List or select tilesets"
	MsgSimplifyShort    = "Remove pack files identical to the vanilla baseline"
	MsgLegendsShort     = "Archive and sort legends mode exports"
	MsgDocsShort        = "Show documentation topics"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"

	// Status messages
	MsgDryRunNotice      = "DRY RUN MODE - No changes were made"
	MsgNoPacks           = "No graphics packs found."
	MsgInstallSuccess    = "Installed %s"
	MsgInstallDeclined   = "Install of %s was declined, nothing changed"
	MsgInstallNoBaseline = "No vanilla baseline staged, cannot merge raws"
	MsgInstallFailed     = "Install of %s failed"
	MsgUpdateSavesFormat = "updated %d, skipped %d\n"
	MsgSimplifyFormat    = "removed %d duplicate files\n"
	MsgLegendsFormat     = "processed %d regions\n"

	// Flag descriptions
	MsgFlagVerbose        = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagNoColor        = "Disable colored output"
	MsgFlagLNPDir         = "Workshop root holding the Graphics, Baselines and Tilesets trees"
	MsgFlagDFDir          = "Dwarf Fortress directory (default: discovered under the workshop root)"
	MsgFlagDryRun         = "Log the install plan without touching any file"
	MsgFlagDFVersion      = "Validate against this DF version instead of the detected one"
	MsgFlagTilesetInstall = "Select tilesets as FONT[,GRAPHICS_FONT]"

	// Warnings
	MsgFallbackWarning = "Warning: no workshop root configured, using %s (set GFXPACK_ROOT or pass --lnp-dir)\n"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimSpace(msgInstallExampleRaw)

	//go:embed msgs/validate-long.txt
	msgValidateLongRaw string
	MsgValidateLong    = strings.TrimSpace(msgValidateLongRaw)

	//go:embed msgs/tilesets-long.txt
	msgTilesetsLongRaw string
	MsgTilesetsLong    = strings.TrimSpace(msgTilesetsLongRaw)

	//go:embed msgs/update-saves-long.txt
	msgUpdateSavesLongRaw string
	MsgUpdateSavesLong    = strings.TrimSpace(msgUpdateSavesLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
