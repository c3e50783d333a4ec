// Package paths provides centralized path handling for gfxpack.
// It implements XDG Base Directory specification compliance for the
// tool's own files and a consistent API for the Dwarf Fortress folder
// layout that every other package navigates.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/fortresskit/gfxpack/pkg/errors"
)

// Environment variable names
const (
	// EnvRoot is the primary environment variable for the workshop root,
	// the directory holding Graphics, Baselines and Tilesets.
	EnvRoot = "GFXPACK_ROOT"

	// EnvDFDir overrides Dwarf Fortress folder detection
	EnvDFDir = "GFXPACK_DF_DIR"

	// EnvConfigDir overrides the XDG config directory for gfxpack
	EnvConfigDir = "GFXPACK_CONFIG_DIR"

	// EnvCacheDir overrides the XDG cache directory for gfxpack
	EnvCacheDir = "GFXPACK_CACHE_DIR"
)

// Default directories and files
// IMPORTANT: These constants define the workshop layout gfxpack expects
// and are NOT user-configurable. The Dwarf Fortress side of the layout
// (data/init, data/art, raw, data/save) is fixed by the game itself.
const (
	// GfxpackDirName is the directory name for gfxpack-specific files
	GfxpackDirName = "gfxpack"

	// GraphicsDirName holds the graphics packs under the root
	GraphicsDirName = "Graphics"

	// BaselinesDirName holds the vanilla baseline trees under the root
	BaselinesDirName = "Baselines"

	// TilesetsDirName holds standalone tilesets under the root
	TilesetsDirName = "Tilesets"

	// ColorSchemesDirName holds colorscheme files under the root
	ColorSchemesDirName = "Colors"

	// StagingDirName is the scratch area used while rebuilding raws
	StagingDirName = "temp"

	// DataDirName is Dwarf Fortress' data directory
	DataDirName = "data"

	// InitDirName is the init file directory under data
	InitDirName = "init"

	// ArtDirName is the tileset image directory under data
	ArtDirName = "art"

	// RawDirName is the raw object directory in the game folder
	RawDirName = "raw"

	// SaveDirName is the savegame directory under data
	SaveDirName = "save"

	// LogFileName is the name of the log file
	LogFileName = "gfxpack.log"
)

// Paths provides centralized path management for gfxpack
type Paths interface {
	// Root is the workshop root holding Graphics, Baselines and Tilesets
	Root() string

	// UsedFallback reports whether the root fell back to the current
	// working directory (for warning display)
	UsedFallback() bool

	// GraphicsDir is the directory holding graphics packs
	GraphicsDir() string

	// PackPath returns the directory of a named graphics pack
	PackPath(packName string) string

	// BaselinesDir is the directory holding vanilla baseline trees
	BaselinesDir() string

	// StagingDir is the scratch directory used while rebuilding raws
	StagingDir() string

	// StagingLogPath is the provenance log inside a staged rebuild
	StagingLogPath() string

	// TilesetsDir is the directory holding standalone tilesets
	TilesetsDir() string

	// ColorSchemesDir is the directory holding colorscheme files
	ColorSchemesDir() string

	// DFDir is the Dwarf Fortress folder being managed
	DFDir() string

	// DataDir is <df>/data
	DataDir() string

	// InitDir is <df>/data/init
	InitDir() string

	// ArtDir is <df>/data/art
	ArtDir() string

	// RawDir is <df>/raw
	RawDir() string

	// SaveDir is <df>/data/save
	SaveDir() string

	// InitFilePath is <df>/data/init/init.txt
	InitFilePath() string

	// DInitFilePath is <df>/data/init/d_init.txt
	DInitFilePath() string

	// ColorsFilePath is <df>/data/init/colors.txt
	ColorsFilePath() string

	// ConfigDir is gfxpack's own XDG config directory
	ConfigDir() string

	// CacheDir is gfxpack's own XDG cache directory
	CacheDir() string

	// StateDir is gfxpack's own XDG state directory
	StateDir() string

	// LogFilePath is the log file inside the state directory
	LogFilePath() string
}

type paths struct {
	root  string
	dfDir string

	xdgConfig string
	xdgCache  string
	xdgState  string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given workshop root and
// Dwarf Fortress folder. Empty arguments are resolved from environment
// variables and, for the DF folder, by scanning the root.
func New(root, dfDir string) (Paths, error) {
	p := &paths{}

	if root == "" {
		r, usedFallback, err := findRoot()
		if err != nil {
			return nil, err
		}
		p.root = r
		p.usedFallback = usedFallback
	} else {
		p.root = expandHome(root)
	}

	absRoot, err := filepath.Abs(p.root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for root")
	}
	p.root = absRoot

	if dfDir == "" {
		dfDir = os.Getenv(EnvDFDir)
	}
	if dfDir == "" {
		dfDir = detectDFDir(p.root)
	}
	if dfDir != "" {
		abs, err := filepath.Abs(expandHome(dfDir))
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for DF folder")
		}
		p.dfDir = abs
	}

	p.setupXDGDirs()

	return p, nil
}

// setupXDGDirs initializes XDG directories, respecting environment overrides
func (p *paths) setupXDGDirs() {
	if configDir := os.Getenv(EnvConfigDir); configDir != "" {
		p.xdgConfig = expandHome(configDir)
	} else {
		p.xdgConfig = filepath.Join(xdg.ConfigHome, GfxpackDirName)
	}

	if cacheDir := os.Getenv(EnvCacheDir); cacheDir != "" {
		p.xdgCache = expandHome(cacheDir)
	} else {
		p.xdgCache = filepath.Join(xdg.CacheHome, GfxpackDirName)
	}

	// XDG doesn't provide StateHome in older versions, so check manually
	if stateDir := os.Getenv("XDG_STATE_HOME"); stateDir != "" {
		p.xdgState = filepath.Join(stateDir, GfxpackDirName)
	} else {
		homeDir, _ := os.UserHomeDir()
		p.xdgState = filepath.Join(homeDir, ".local", "state", GfxpackDirName)
	}
}

// findRoot determines the workshop root using the following priority:
// 1. GFXPACK_ROOT environment variable (if set)
// 2. Current working directory (fallback)
func findRoot() (string, bool, error) {
	if root := os.Getenv(EnvRoot); root != "" {
		return expandHome(root), false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// detectDFDir scans the root for a Dwarf Fortress folder. A directory
// qualifies when it contains data/init. The first match in sorted order
// wins so repeated runs are stable.
func detectDFDir(root string) string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return ""
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		candidate := filepath.Join(root, entry.Name())
		if info, err := os.Stat(filepath.Join(candidate, DataDirName, InitDirName)); err == nil && info.IsDir() {
			return candidate
		}
	}
	return ""
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

func (p *paths) Root() string {
	return p.root
}

func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) GraphicsDir() string {
	return filepath.Join(p.root, GraphicsDirName)
}

func (p *paths) PackPath(packName string) string {
	return filepath.Join(p.GraphicsDir(), packName)
}

func (p *paths) BaselinesDir() string {
	return filepath.Join(p.root, BaselinesDirName)
}

func (p *paths) StagingDir() string {
	return filepath.Join(p.BaselinesDir(), StagingDirName)
}

func (p *paths) StagingLogPath() string {
	return filepath.Join(p.StagingDir(), RawDirName, "installed_raws.txt")
}

func (p *paths) TilesetsDir() string {
	return filepath.Join(p.root, TilesetsDirName)
}

func (p *paths) ColorSchemesDir() string {
	return filepath.Join(p.root, ColorSchemesDirName)
}

func (p *paths) DFDir() string {
	return p.dfDir
}

func (p *paths) DataDir() string {
	return filepath.Join(p.dfDir, DataDirName)
}

func (p *paths) InitDir() string {
	return filepath.Join(p.dfDir, DataDirName, InitDirName)
}

func (p *paths) ArtDir() string {
	return filepath.Join(p.dfDir, DataDirName, ArtDirName)
}

func (p *paths) RawDir() string {
	return filepath.Join(p.dfDir, RawDirName)
}

func (p *paths) SaveDir() string {
	return filepath.Join(p.dfDir, DataDirName, SaveDirName)
}

func (p *paths) InitFilePath() string {
	return filepath.Join(p.InitDir(), "init.txt")
}

func (p *paths) DInitFilePath() string {
	return filepath.Join(p.InitDir(), "d_init.txt")
}

func (p *paths) ColorsFilePath() string {
	return filepath.Join(p.InitDir(), "colors.txt")
}

func (p *paths) ConfigDir() string {
	return p.xdgConfig
}

func (p *paths) CacheDir() string {
	return p.xdgCache
}

func (p *paths) StateDir() string {
	return p.xdgState
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.xdgState, LogFileName)
}
