package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fortresskit/gfxpack/cmd/gfxpack"
	"github.com/fortresskit/gfxpack/pkg/output/styles"
)

func main() {
	rootCmd := gfxpack.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Install reports its outcome through the documented exit codes
		var exitErr *gfxpack.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}
