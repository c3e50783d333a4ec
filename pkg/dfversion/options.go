package dfversion

import (
	"github.com/fortresskit/gfxpack/pkg/logging"
)

// span records the version range in which an init option exists.
type span struct {
	added   string // first version with the option
	removed string // first version without it, empty when still present
}

// HasOption reports whether the named init option exists in the given
// DF version. Options this table does not know are assumed to belong to
// a later DF than this build and are reported absent, with a warning.
func HasOption(option, version string) bool {
	sp, ok := optionVersions[option]
	if !ok {
		logger := logging.GetLogger("dfversion")
		logger.Warn().Str("option", option).Msg("Unknown option")
		return false
	}
	if sp.removed != "" {
		return sp.added <= version && version < sp.removed
	}
	return sp.added <= version
}

// optionVersions maps init option tags to their version span.
// Keep the table sorted by first version, then last version (still
// present options last), then tag name.
var optionVersions = map[string]span{
	"EXTENDED_ASCII":      {"0.21.93.19a", "0.21.104.19d"},
	"BLACK_B":             {"0.21.93.19a", "0.31.04"},
	"BLACK_G":             {"0.21.93.19a", "0.31.04"},
	"BLACK_R":             {"0.21.93.19a", "0.31.04"},
	"BLUE_B":              {"0.21.93.19a", "0.31.04"},
	"BLUE_G":              {"0.21.93.19a", "0.31.04"},
	"BLUE_R":              {"0.21.93.19a", "0.31.04"},
	"BROWN_B":             {"0.21.93.19a", "0.31.04"},
	"BROWN_G":             {"0.21.93.19a", "0.31.04"},
	"BROWN_R":             {"0.21.93.19a", "0.31.04"},
	"CYAN_B":              {"0.21.93.19a", "0.31.04"},
	"CYAN_G":              {"0.21.93.19a", "0.31.04"},
	"CYAN_R":              {"0.21.93.19a", "0.31.04"},
	"DGRAY_B":             {"0.21.93.19a", "0.31.04"},
	"DGRAY_G":             {"0.21.93.19a", "0.31.04"},
	"DGRAY_R":             {"0.21.93.19a", "0.31.04"},
	"GREEN_B":             {"0.21.93.19a", "0.31.04"},
	"GREEN_G":             {"0.21.93.19a", "0.31.04"},
	"GREEN_R":             {"0.21.93.19a", "0.31.04"},
	"LBLUE_B":             {"0.21.93.19a", "0.31.04"},
	"LBLUE_G":             {"0.21.93.19a", "0.31.04"},
	"LBLUE_R":             {"0.21.93.19a", "0.31.04"},
	"LCYAN_B":             {"0.21.93.19a", "0.31.04"},
	"LCYAN_G":             {"0.21.93.19a", "0.31.04"},
	"LCYAN_R":             {"0.21.93.19a", "0.31.04"},
	"LGRAY_B":             {"0.21.93.19a", "0.31.04"},
	"LGRAY_G":             {"0.21.93.19a", "0.31.04"},
	"LGRAY_R":             {"0.21.93.19a", "0.31.04"},
	"LGREEN_B":            {"0.21.93.19a", "0.31.04"},
	"LGREEN_G":            {"0.21.93.19a", "0.31.04"},
	"LGREEN_R":            {"0.21.93.19a", "0.31.04"},
	"LMAGENTA_B":          {"0.21.93.19a", "0.31.04"},
	"LMAGENTA_G":          {"0.21.93.19a", "0.31.04"},
	"LMAGENTA_R":          {"0.21.93.19a", "0.31.04"},
	"LRED_B":              {"0.21.93.19a", "0.31.04"},
	"LRED_G":              {"0.21.93.19a", "0.31.04"},
	"LRED_R":              {"0.21.93.19a", "0.31.04"},
	"MAGENTA_B":           {"0.21.93.19a", "0.31.04"},
	"MAGENTA_G":           {"0.21.93.19a", "0.31.04"},
	"MAGENTA_R":           {"0.21.93.19a", "0.31.04"},
	"RED_B":               {"0.21.93.19a", "0.31.04"},
	"RED_G":               {"0.21.93.19a", "0.31.04"},
	"RED_R":               {"0.21.93.19a", "0.31.04"},
	"WHITE_B":             {"0.21.93.19a", "0.31.04"},
	"WHITE_G":             {"0.21.93.19a", "0.31.04"},
	"WHITE_R":             {"0.21.93.19a", "0.31.04"},
	"YELLOW_B":            {"0.21.93.19a", "0.31.04"},
	"YELLOW_G":            {"0.21.93.19a", "0.31.04"},
	"YELLOW_R":            {"0.21.93.19a", "0.31.04"},
	"DISPLAY_LENGTH":      {added: "0.21.93.19a"},
	"FONT":                {added: "0.21.93.19a"},
	"FULLFONT":            {added: "0.21.93.19a"},
	"FULLSCREENX":         {added: "0.21.93.19a"},
	"FULLSCREENY":         {added: "0.21.93.19a"},
	"MORE":                {added: "0.21.93.19a"},
	"VARIED_GROUND_TILES": {added: "0.21.93.19a"},
	"WINDOWEDX":           {added: "0.21.93.19a"},
	"WINDOWEDY":           {added: "0.21.93.19a"},
	"INTRO":               {added: "0.21.100.19a"},
	"SOUND":               {added: "0.21.100.19a"},
	"KEY_HOLD_MS":         {added: "0.21.101.19a"},
	"NICKNAME_ADVENTURE":  {added: "0.21.102.19a"},
	"NICKNAME_DWARF":      {added: "0.21.102.19a"},
	"NICKNAME_LEGENDS":    {added: "0.21.102.19a"},
	"WINDOWED":            {added: "0.21.102.19a"},
	"ENGRAVINGS_START_OBSCURED": {added: "0.21.104.19d"},
	"MOUSE":                     {added: "0.21.104.21a"},
	"MOUSE_PICTURE":             {added: "0.21.104.21a"},
	"ADVENTURER_TRAPS":          {added: "0.22.110.23a"},
	"BLACK_SPACE":               {added: "0.22.120.23a"},
	"GRAPHICS":                  {added: "0.22.120.23a"},
	"GRAPHICS_BLACK_SPACE":      {added: "0.22.120.23a"},
	"GRAPHICS_FONT":             {added: "0.22.120.23a"},
	"GRAPHICS_FULLFONT":         {added: "0.22.120.23a"},
	"GRAPHICS_FULLSCREENX":      {added: "0.22.120.23a"},
	"GRAPHICS_FULLSCREENY":      {added: "0.22.120.23a"},
	"GRAPHICS_WINDOWEDX":        {added: "0.22.120.23a"},
	"GRAPHICS_WINDOWEDY":        {added: "0.22.120.23a"},
	"FPS":                       {added: "0.22.121.23b"},
	"TEMPERATURE":               {added: "0.22.121.23b"},
	"WEATHER":                   {added: "0.22.121.23b"},
	"FPS_CAP":                   {added: "0.23.130.23a"},
	"POPULATION_CAP":            {added: "0.23.130.23a"},
	"ADVENTURER_ALWAYS_CENTER":  {added: "0.27.169.32a"},
	"ADVENTURER_Z_VIEWS":        {added: "0.27.169.32a"},
	"AQUIFER":                   {added: "0.27.169.32a"},
	"ARTIFACTS":                 {added: "0.27.169.32a"},
	"AUTOBACKUP":                {added: "0.27.169.32a"},
	"AUTOSAVE":                  {added: "0.27.169.32a"},
	"CAVEINS":                   {added: "0.27.169.32a"},
	"CHASM":                     {added: "0.27.169.32a"},
	"COFFIN_NO_PETS_DEFAULT":    {added: "0.27.169.32a"},
	"ECONOMY":                   {added: "0.27.169.32a"},
	"G_FPS_CAP":                 {added: "0.27.169.32a"},
	"INITIAL_SAVE":              {added: "0.27.169.32a"},
	"INVADERS":                  {added: "0.27.169.32a"},
	"LOG_MAP_REJECTS":           {added: "0.27.169.32a"},
	"PATH_COST":                 {added: "0.27.169.32a"},
	"RECENTER_INTERFACE_SHUTDOWN_MS": {added: "0.27.169.32a"},
	"SHOW_FLOW_AMOUNTS":              {added: "0.27.169.32a"},
	"SHOW_IMP_QUALITY":               {added: "0.27.169.32a"},
	"SKY":                            {added: "0.27.169.32a"},
	"TEXTURE_PARAM":                  {added: "0.27.169.32a"},
	"TOPMOST":                        {added: "0.27.169.32a"},
	"VOLUME":                         {added: "0.27.169.32a"},
	"VSYNC":                          {added: "0.27.169.32a"},
	"PRIORITY":                       {added: "0.27.169.33c"},
	"EMBARK_RECTANGLE":               {added: "0.27.169.33g"},
	"PAUSE_ON_LOAD":                  {added: "0.27.169.33g"},
	"BABY_CHILD_CAP":                 {added: "0.27.176.38a"},
	"ZERO_RENT":                      {added: "0.27.176.38a"},
	"AUTOSAVE_PAUSE":                 {added: "0.27.176.38b"},
	"EMBARK_WARNING_ALWAYS":          {added: "0.27.176.38b"},
	"IDLERS":                         {added: "0.28.181.39a"},
	"SHOW_ALL_HISTORY_IN_DWARF_MODE": {added: "0.28.181.39a"},
	"SHOW_EMBARK_CHASM":              {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_M_PIPE":             {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_M_POOL":             {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_OTHER":              {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_PIT":                {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_POOL":               {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_RIVER":              {"0.28.181.39d", "0.31.01"},
	"SHOW_EMBARK_TUNNEL":             {added: "0.28.181.39d"},
	"GRID":                           {added: "0.28.181.39f"},
	"STORE_DIST_BARREL_COMBINE":      {added: "0.28.181.40a"},
	"STORE_DIST_BIN_COMBINE":         {added: "0.28.181.40a"},
	"STORE_DIST_BUCKET_COMBINE":      {added: "0.28.181.40a"},
	"STORE_DIST_ITEM_DECREASE":       {added: "0.28.181.40a"},
	"STORE_DIST_SEED_COMBINE":        {added: "0.28.181.40a"},
	"FULLGRID":                       {added: "0.28.181.40b"},
	"PARTIAL_PRINT":                  {added: "0.28.181.40b"},
	"COMPRESSED_SAVES":               {added: "0.31.01"},
	"DIG_CANCEL_DAMP":                {added: "0.31.01"},
	"DIG_CANCEL_WARM":                {added: "0.31.01"},
	"TESTING_ARENA":                  {added: "0.31.01"},
	"WOUND_COLOR_BROKEN":             {added: "0.31.01"},
	"WOUND_COLOR_FUNCTION_LOSS":      {added: "0.31.01"},
	"WOUND_COLOR_INHIBITED":          {added: "0.31.01"},
	"WOUND_COLOR_MINOR":              {added: "0.31.01"},
	"WOUND_COLOR_MISSING":            {added: "0.31.01"},
	"WOUND_COLOR_NONE":               {added: "0.31.01"},
	"PILLAR_TILE":                    {added: "0.31.08"},
	"ARB_SYNC":                       {added: "0.31.13"},
	"KEY_REPEAT_ACCEL_LIMIT":         {added: "0.31.13"},
	"KEY_REPEAT_ACCEL_START":         {added: "0.31.13"},
	"KEY_REPEAT_MS":                  {added: "0.31.13"},
	"MACRO_MS":                       {added: "0.31.13"},
	"PRINT_MODE":                     {added: "0.31.13"},
	"RESIZABLE":                      {added: "0.31.13"},
	"SINGLE_BUFFER":                  {added: "0.31.13"},
	"TRUETYPE":                       {added: "0.31.13"},
	"ZOOM_SPEED":                     {added: "0.31.13"},
	"WALKING_SPREADS_SPATTER_ADV":    {added: "0.31.16"},
	"WALKING_SPREADS_SPATTER_DWF":    {added: "0.31.16"},
	"SET_LABOR_LISTS":                {added: "0.34.03"},
	"TRACK_E":                        {added: "0.34.08"},
	"TRACK_EW":                       {added: "0.34.08"},
	"TRACK_N":                        {added: "0.34.08"},
	"TRACK_NE":                       {added: "0.34.08"},
	"TRACK_NEW":                      {added: "0.34.08"},
	"TRACK_NS":                       {added: "0.34.08"},
	"TRACK_NSE":                      {added: "0.34.08"},
	"TRACK_NSEW":                     {added: "0.34.08"},
	"TRACK_NSW":                      {added: "0.34.08"},
	"TRACK_NW":                       {added: "0.34.08"},
	"TRACK_RAMP_E":                   {added: "0.34.08"},
	"TRACK_RAMP_EW":                  {added: "0.34.08"},
	"TRACK_RAMP_N":                   {added: "0.34.08"},
	"TRACK_RAMP_NE":                  {added: "0.34.08"},
	"TRACK_RAMP_NEW":                 {added: "0.34.08"},
	"TRACK_RAMP_NS":                  {added: "0.34.08"},
	"TRACK_RAMP_NSE":                 {added: "0.34.08"},
	"TRACK_RAMP_NSEW":                {added: "0.34.08"},
	"TRACK_RAMP_NSW":                 {added: "0.34.08"},
	"TRACK_RAMP_NW":                  {added: "0.34.08"},
	"TRACK_RAMP_S":                   {added: "0.34.08"},
	"TRACK_RAMP_SE":                  {added: "0.34.08"},
	"TRACK_RAMP_SEW":                 {added: "0.34.08"},
	"TRACK_RAMP_SW":                  {added: "0.34.08"},
	"TRACK_RAMP_W":                   {added: "0.34.08"},
	"TRACK_S":                        {added: "0.34.08"},
	"TRACK_SE":                       {added: "0.34.08"},
	"TRACK_SEW":                      {added: "0.34.08"},
	"TRACK_SW":                       {added: "0.34.08"},
	"TRACK_W":                        {added: "0.34.08"},
	"FORTRESS_SEED_CAP":              {added: "0.40.01"},
	"SPECIFIC_SEED_CAP":              {added: "0.40.01"},
	"TREE_BRANCH_EW":                 {added: "0.40.01"},
	"TREE_BRANCH_EW_DEAD":            {added: "0.40.01"},
	"TREE_BRANCH_NE":                 {added: "0.40.01"},
	"TREE_BRANCH_NE_DEAD":            {added: "0.40.01"},
	"TREE_BRANCH_NEW":                {added: "0.40.01"},
	"TREE_BRANCH_NEW_DEAD":           {added: "0.40.01"},
	"TREE_BRANCH_NS":                 {added: "0.40.01"},
	"TREE_BRANCH_NS_DEAD":            {added: "0.40.01"},
	"TREE_BRANCH_NSE":                {added: "0.40.01"},
	"TREE_BRANCH_NSE_DEAD":           {added: "0.40.01"},
	"TREE_BRANCH_NSEW":               {added: "0.40.01"},
	"TREE_BRANCH_NSEW_DEAD":          {added: "0.40.01"},
	"TREE_BRANCH_NSW":                {added: "0.40.01"},
	"TREE_BRANCH_NSW_DEAD":           {added: "0.40.01"},
	"TREE_BRANCH_NW":                 {added: "0.40.01"},
	"TREE_BRANCH_NW_DEAD":            {added: "0.40.01"},
	"TREE_BRANCH_SE":                 {added: "0.40.01"},
	"TREE_BRANCH_SE_DEAD":            {added: "0.40.01"},
	"TREE_BRANCH_SEW":                {added: "0.40.01"},
	"TREE_BRANCH_SEW_DEAD":           {added: "0.40.01"},
	"TREE_BRANCH_SW":                 {added: "0.40.01"},
	"TREE_BRANCH_SW_DEAD":            {added: "0.40.01"},
	"TREE_BRANCHES":                  {added: "0.40.01"},
	"TREE_BRANCHES_DEAD":             {added: "0.40.01"},
	"TREE_CAP_FLOOR1":                {added: "0.40.01"},
	"TREE_CAP_FLOOR1_DEAD":           {added: "0.40.01"},
	"TREE_CAP_FLOOR2":                {added: "0.40.01"},
	"TREE_CAP_FLOOR2_DEAD":           {added: "0.40.01"},
	"TREE_CAP_FLOOR3":                {added: "0.40.01"},
	"TREE_CAP_FLOOR3_DEAD":           {added: "0.40.01"},
	"TREE_CAP_FLOOR4":                {added: "0.40.01"},
	"TREE_CAP_FLOOR4_DEAD":           {added: "0.40.01"},
	"TREE_CAP_PILLAR":                {added: "0.40.01"},
	"TREE_CAP_PILLAR_DEAD":           {added: "0.40.01"},
	"TREE_CAP_RAMP":                  {added: "0.40.01"},
	"TREE_CAP_RAMP_DEAD":             {added: "0.40.01"},
	"TREE_CAP_WALL_E":                {added: "0.40.01"},
	"TREE_CAP_WALL_E_DEAD":           {added: "0.40.01"},
	"TREE_CAP_WALL_N":                {added: "0.40.01"},
	"TREE_CAP_WALL_N_DEAD":           {added: "0.40.01"},
	"TREE_CAP_WALL_NE":               {added: "0.40.01"},
	"TREE_CAP_WALL_NE_DEAD":          {added: "0.40.01"},
	"TREE_CAP_WALL_NW":               {added: "0.40.01"},
	"TREE_CAP_WALL_NW_DEAD":          {added: "0.40.01"},
	"TREE_CAP_WALL_S":                {added: "0.40.01"},
	"TREE_CAP_WALL_S_DEAD":           {added: "0.40.01"},
	"TREE_CAP_WALL_SE":               {added: "0.40.01"},
	"TREE_CAP_WALL_SE_DEAD":          {added: "0.40.01"},
	"TREE_CAP_WALL_SW":               {added: "0.40.01"},
	"TREE_CAP_WALL_SW_DEAD":          {added: "0.40.01"},
	"TREE_CAP_WALL_W":                {added: "0.40.01"},
	"TREE_CAP_WALL_W_DEAD":           {added: "0.40.01"},
	"TREE_ROOT_SLOPING":              {added: "0.40.01"},
	"TREE_ROOT_SLOPING_DEAD":         {added: "0.40.01"},
	"TREE_ROOTS":                     {added: "0.40.01"},
	"TREE_ROOTS_DEAD":                {added: "0.40.01"},
	"TREE_SMOOTH_BRANCHES":           {added: "0.40.01"},
	"TREE_SMOOTH_BRANCHES_DEAD":      {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_E":            {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_E_DEAD":       {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_N":            {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_N_DEAD":       {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_S":            {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_S_DEAD":       {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_W":            {added: "0.40.01"},
	"TREE_TRUNK_BRANCH_W_DEAD":       {added: "0.40.01"},
	"TREE_TRUNK_E":                   {added: "0.40.01"},
	"TREE_TRUNK_E_DEAD":              {added: "0.40.01"},
	"TREE_TRUNK_EW":                  {added: "0.40.01"},
	"TREE_TRUNK_EW_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_INTERIOR":            {added: "0.40.01"},
	"TREE_TRUNK_INTERIOR_DEAD":       {added: "0.40.01"},
	"TREE_TRUNK_N":                   {added: "0.40.01"},
	"TREE_TRUNK_N_DEAD":              {added: "0.40.01"},
	"TREE_TRUNK_NE":                  {added: "0.40.01"},
	"TREE_TRUNK_NE_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_NEW":                 {added: "0.40.01"},
	"TREE_TRUNK_NEW_DEAD":            {added: "0.40.01"},
	"TREE_TRUNK_NS":                  {added: "0.40.01"},
	"TREE_TRUNK_NS_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_NSE":                 {added: "0.40.01"},
	"TREE_TRUNK_NSE_DEAD":            {added: "0.40.01"},
	"TREE_TRUNK_NSEW":                {added: "0.40.01"},
	"TREE_TRUNK_NSEW_DEAD":           {added: "0.40.01"},
	"TREE_TRUNK_NSW":                 {added: "0.40.01"},
	"TREE_TRUNK_NSW_DEAD":            {added: "0.40.01"},
	"TREE_TRUNK_NW":                  {added: "0.40.01"},
	"TREE_TRUNK_NW_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_PILLAR":              {added: "0.40.01"},
	"TREE_TRUNK_PILLAR_DEAD":         {added: "0.40.01"},
	"TREE_TRUNK_S":                   {added: "0.40.01"},
	"TREE_TRUNK_S_DEAD":              {added: "0.40.01"},
	"TREE_TRUNK_SE":                  {added: "0.40.01"},
	"TREE_TRUNK_SE_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_SEW":                 {added: "0.40.01"},
	"TREE_TRUNK_SEW_DEAD":            {added: "0.40.01"},
	"TREE_TRUNK_SLOPING":             {added: "0.40.01"},
	"TREE_TRUNK_SLOPING_DEAD":        {added: "0.40.01"},
	"TREE_TRUNK_SW":                  {added: "0.40.01"},
	"TREE_TRUNK_SW_DEAD":             {added: "0.40.01"},
	"TREE_TRUNK_W":                   {added: "0.40.01"},
	"TREE_TRUNK_W_DEAD":              {added: "0.40.01"},
	"TREE_TWIGS":                     {added: "0.40.01"},
	"TREE_TWIGS_DEAD":                {added: "0.40.01"},
	"STRICT_POPULATION_CAP":          {added: "0.40.05"},
	"POST_PREPARE_EMBARK_CONFIRMATION": {added: "0.40.09"},
	"GRAZE_COEFFICIENT":               {added: "0.40.13"},
	"INVASION_MONSTER_CAP":            {added: "0.42.01"},
	"INVASION_SOLDIER_CAP":            {added: "0.42.01"},
	"VISITOR_CAP":                     {added: "0.42.01"},
	"GUILD_UNIT_COUNTS":               {added: "0.47.01"},
	"GUILDHALL_VALUE_LEVELS":          {added: "0.47.01"},
	"PRIESTHOOD_UNIT_COUNTS":          {added: "0.47.01"},
	"TEMPLE_VALUE_LEVELS":             {added: "0.47.01"},
}
