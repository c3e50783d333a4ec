package types

// Pack represents a single graphics pack directory under the packs root.
// The directory name doubles as the pack's identity everywhere a pack is
// referenced: provenance logs, savegame raws and CLI arguments.
type Pack struct {
	// Name is the pack's directory name and unique identifier.
	Name string

	// Path is the absolute path to the pack directory.
	Path string

	// Title is the display name from the pack manifest. Falls back to
	// Name when no manifest is present.
	Title string

	// Tooltip is an optional longer description from the manifest.
	Tooltip string

	// FolderPrefix is an alternate identity the pack was historically
	// distributed under. Provenance checks accept it in place of Name.
	// Falls back to Name when the manifest does not set one.
	FolderPrefix string

	// Font is the FONT tileset recorded in the pack's data/init/init.txt.
	Font string

	// GraphicsFont is the GRAPHICS_FONT tileset recorded in the pack's
	// data/init/init.txt.
	GraphicsFont string
}

// DisplayName returns the manifest title when present, otherwise the
// directory name.
func (p Pack) DisplayName() string {
	if p.Title != "" {
		return p.Title
	}
	return p.Name
}

// Identities returns all names the pack answers to when matched against
// a provenance record.
func (p Pack) Identities() []string {
	if p.FolderPrefix == "" || p.FolderPrefix == p.Name {
		return []string{p.Name}
	}
	return []string{p.Name, p.FolderPrefix}
}
