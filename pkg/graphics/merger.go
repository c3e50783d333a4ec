package graphics

import (
	"path/filepath"

	"github.com/fortresskit/gfxpack/pkg/dfversion"
	"github.com/fortresskit/gfxpack/pkg/errors"
	"github.com/fortresskit/gfxpack/pkg/initfile"
	"github.com/fortresskit/gfxpack/pkg/paths"
	"github.com/fortresskit/gfxpack/pkg/settings"
	"github.com/fortresskit/gfxpack/pkg/types"
)

// initFields are the display and engine fields a pack may override in
// the live init.txt.
var initFields = []string{
	"FONT", "FULLFONT", "GRAPHICS", "GRAPHICS_FONT",
	"GRAPHICS_FULLFONT", "TRUETYPE", "PRINT_MODE",
	"GRAPHICS_BLACK_SPACE", "TEXTURE_PARAM", "MOUSE_PICTURE",
}

// dInitFields are the appearance fields a pack may override. They live
// in d_init.txt from 0.31.04 on and in init.txt before that.
var dInitFields = []string{
	"WOUND_COLOR_NONE", "WOUND_COLOR_MINOR",
	"WOUND_COLOR_INHIBITED", "WOUND_COLOR_FUNCTION_LOSS",
	"WOUND_COLOR_BROKEN", "WOUND_COLOR_MISSING", "SKY", "CHASM",
	"PILLAR_TILE", "VARIED_GROUND_TILES", "ENGRAVINGS_START_OBSCURED",
	// Tracks
	"TRACK_N", "TRACK_S", "TRACK_E", "TRACK_W", "TRACK_NS",
	"TRACK_NE", "TRACK_NW", "TRACK_SE", "TRACK_SW", "TRACK_EW",
	"TRACK_NSE", "TRACK_NSW", "TRACK_NEW", "TRACK_SEW",
	"TRACK_NSEW", "TRACK_RAMP_N", "TRACK_RAMP_S", "TRACK_RAMP_E",
	"TRACK_RAMP_W", "TRACK_RAMP_NS", "TRACK_RAMP_NE",
	"TRACK_RAMP_NW", "TRACK_RAMP_SE", "TRACK_RAMP_SW",
	"TRACK_RAMP_EW", "TRACK_RAMP_NSE", "TRACK_RAMP_NSW",
	"TRACK_RAMP_NEW", "TRACK_RAMP_SEW", "TRACK_RAMP_NSEW",
	// Trees
	"TREE_ROOT_SLOPING", "TREE_TRUNK_SLOPING",
	"TREE_ROOT_SLOPING_DEAD", "TREE_TRUNK_SLOPING_DEAD",
	"TREE_ROOTS", "TREE_ROOTS_DEAD", "TREE_BRANCHES",
	"TREE_BRANCHES_DEAD", "TREE_SMOOTH_BRANCHES",
	"TREE_SMOOTH_BRANCHES_DEAD", "TREE_TRUNK_PILLAR",
	"TREE_TRUNK_PILLAR_DEAD", "TREE_CAP_PILLAR",
	"TREE_CAP_PILLAR_DEAD", "TREE_TRUNK_N", "TREE_TRUNK_S",
	"TREE_TRUNK_N_DEAD", "TREE_TRUNK_S_DEAD", "TREE_TRUNK_EW",
	"TREE_TRUNK_EW_DEAD", "TREE_CAP_WALL_N", "TREE_CAP_WALL_S",
	"TREE_CAP_WALL_N_DEAD", "TREE_CAP_WALL_S_DEAD", "TREE_TRUNK_E",
	"TREE_TRUNK_W", "TREE_TRUNK_E_DEAD", "TREE_TRUNK_W_DEAD",
	"TREE_TRUNK_NS", "TREE_TRUNK_NS_DEAD", "TREE_CAP_WALL_E",
	"TREE_CAP_WALL_W", "TREE_CAP_WALL_E_DEAD",
	"TREE_CAP_WALL_W_DEAD", "TREE_TRUNK_NW", "TREE_CAP_WALL_NW",
	"TREE_TRUNK_NW_DEAD", "TREE_CAP_WALL_NW_DEAD", "TREE_TRUNK_NE",
	"TREE_CAP_WALL_NE", "TREE_TRUNK_NE_DEAD",
	"TREE_CAP_WALL_NE_DEAD", "TREE_TRUNK_SW", "TREE_CAP_WALL_SW",
	"TREE_TRUNK_SW_DEAD", "TREE_CAP_WALL_SW_DEAD", "TREE_TRUNK_SE",
	"TREE_CAP_WALL_SE", "TREE_TRUNK_SE_DEAD",
	"TREE_CAP_WALL_SE_DEAD", "TREE_TRUNK_NSE",
	"TREE_TRUNK_NSE_DEAD", "TREE_TRUNK_NSW", "TREE_TRUNK_NSW_DEAD",
	"TREE_TRUNK_NEW", "TREE_TRUNK_NEW_DEAD", "TREE_TRUNK_SEW",
	"TREE_TRUNK_SEW_DEAD", "TREE_TRUNK_NSEW",
	"TREE_TRUNK_NSEW_DEAD", "TREE_TRUNK_BRANCH_N",
	"TREE_TRUNK_BRANCH_N_DEAD", "TREE_TRUNK_BRANCH_S",
	"TREE_TRUNK_BRANCH_S_DEAD", "TREE_TRUNK_BRANCH_E",
	"TREE_TRUNK_BRANCH_E_DEAD", "TREE_TRUNK_BRANCH_W",
	"TREE_TRUNK_BRANCH_W_DEAD", "TREE_BRANCH_NS",
	"TREE_BRANCH_NS_DEAD", "TREE_BRANCH_EW", "TREE_BRANCH_EW_DEAD",
	"TREE_BRANCH_NW", "TREE_BRANCH_NW_DEAD", "TREE_BRANCH_NE",
	"TREE_BRANCH_NE_DEAD", "TREE_BRANCH_SW", "TREE_BRANCH_SW_DEAD",
	"TREE_BRANCH_SE", "TREE_BRANCH_SE_DEAD", "TREE_BRANCH_NSE",
	"TREE_BRANCH_NSE_DEAD", "TREE_BRANCH_NSW",
	"TREE_BRANCH_NSW_DEAD", "TREE_BRANCH_NEW",
	"TREE_BRANCH_NEW_DEAD", "TREE_BRANCH_SEW",
	"TREE_BRANCH_SEW_DEAD", "TREE_BRANCH_NSEW",
	"TREE_BRANCH_NSEW_DEAD", "TREE_TWIGS", "TREE_TWIGS_DEAD",
	"TREE_CAP_RAMP", "TREE_CAP_RAMP_DEAD", "TREE_CAP_FLOOR1",
	"TREE_CAP_FLOOR2", "TREE_CAP_FLOOR1_DEAD",
	"TREE_CAP_FLOOR2_DEAD", "TREE_CAP_FLOOR3", "TREE_CAP_FLOOR4",
	"TREE_CAP_FLOOR3_DEAD", "TREE_CAP_FLOOR4_DEAD",
	"TREE_TRUNK_INTERIOR", "TREE_TRUNK_INTERIOR_DEAD",
}

// FieldMerger selectively merges a pack's init fields into the live
// configuration. Only fields on the two allow-lists move, only when the
// active DF version supports them, and every other line of the live
// files is preserved byte for byte. Applying the same pack twice writes
// identical output.
type FieldMerger struct {
	fs      types.FS
	ctx     settings.Context
	session *settings.Session
}

// NewFieldMerger creates a merger writing into the given live session.
func NewFieldMerger(fs types.FS, ctx settings.Context, session *settings.Session) *FieldMerger {
	return &FieldMerger{fs: fs, ctx: ctx, session: session}
}

// PatchInits merges the allow-listed fields from the pack at packDir
// into the live init files and flushes them. Before 0.31.04 both lists
// read from the pack's single init.txt; from 0.31.04 on the appearance
// list reads d_init.txt.
func (m *FieldMerger) PatchInits(packDir string) error {
	engine := supportedFields(initFields, m.ctx.Version)
	appearance := supportedFields(dInitFields, m.ctx.Version)

	initDir := filepath.Join(packDir, paths.DataDirName, paths.InitDirName)
	src, err := initfile.Load(m.fs, filepath.Join(initDir, "init.txt"))
	if err != nil {
		return errors.Wrapf(err, errors.ErrPackInvalid,
			"cannot read init.txt of pack %s", filepath.Base(packDir))
	}

	dSrc := src
	if dfversion.HasDetailedInit(m.ctx.Version) {
		dSrc, err = initfile.Load(m.fs, filepath.Join(initDir, "d_init.txt"))
		if err != nil {
			return errors.Wrapf(err, errors.ErrPackInvalid,
				"cannot read d_init.txt of pack %s", filepath.Base(packDir))
		}
	}

	patched := m.session.PatchInit(src, engine)
	patched += m.session.PatchDInit(dSrc, appearance)
	log.Debug().Int("fields", patched).Str("pack", filepath.Base(packDir)).
		Msg("Merged init fields from pack")

	return m.session.Flush()
}

// supportedFields filters fields down to those the version knows.
func supportedFields(fields []string, version string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if dfversion.HasOption(f, version) {
			out = append(out, f)
		}
	}
	return out
}
