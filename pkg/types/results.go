package types

// InstallResult is the outcome of installing a graphics pack into a
// Dwarf Fortress folder.
type InstallResult int

const (
	// InstallError means the install failed partway. The folder may
	// hold a partial copy and should be reverted or retried.
	InstallError InstallResult = iota

	// InstallSuccess means the pack was fully installed and recorded.
	InstallSuccess

	// InstallDeclined means a pre-flight check rejected the pack and
	// nothing was modified.
	InstallDeclined

	// InstallMissingBaseline means the vanilla baseline needed for raw
	// merging could not be produced and nothing was modified.
	InstallMissingBaseline
)

// Ok reports whether the install mutated the target folder successfully.
func (r InstallResult) Ok() bool {
	return r == InstallSuccess
}

func (r InstallResult) String() string {
	switch r {
	case InstallSuccess:
		return "success"
	case InstallDeclined:
		return "declined"
	case InstallMissingBaseline:
		return "missing-baseline"
	default:
		return "error"
	}
}

// UpdateResult is the outcome of updating the raws of a single savegame
// region to the currently installed graphics pack.
type UpdateResult int

const (
	// UpdateError means the merge engine failed on this region.
	UpdateError UpdateResult = iota

	// UpdateApplied means the region's raws were rewritten.
	UpdateApplied

	// UpdateDeclined means the region was skipped because its raws came
	// from a different pack and strict checking was requested.
	UpdateDeclined
)

// Applied reports whether the region's raws were rewritten.
func (r UpdateResult) Applied() bool {
	return r == UpdateApplied
}

func (r UpdateResult) String() string {
	switch r {
	case UpdateApplied:
		return "applied"
	case UpdateDeclined:
		return "declined"
	default:
		return "error"
	}
}
