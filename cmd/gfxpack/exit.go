package gfxpack

import (
	"fmt"

	"github.com/fortresskit/gfxpack/pkg/types"
)

// ExitError carries a specific process exit code through cobra's error
// path. main turns it into os.Exit; every other error exits 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// installExitCode maps install outcomes to the documented exit codes:
// 0 success, 1 error, 2 declined, 3 missing baseline.
func installExitCode(result types.InstallResult) int {
	switch result {
	case types.InstallSuccess:
		return 0
	case types.InstallDeclined:
		return 2
	case types.InstallMissingBaseline:
		return 3
	default:
		return 1
	}
}
