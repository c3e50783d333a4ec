// Package output decides how gfxpack draws on the terminal: whether
// styled output is available at all, and the process-wide color mode
// for the rendering libraries when it is.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Format is the rendering mode for command output.
type Format int

const (
	// FormatTerminal renders styled output with colors.
	FormatTerminal Format = iota

	// FormatText renders plain text, for pipes and NO_COLOR terminals.
	FormatText
)

// String returns the format's flag spelling.
func (f Format) String() string {
	switch f {
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	default:
		return "unknown"
	}
}

// DetectFormat determines the output format for the given stream from
// the environment and the terminal's capabilities.
func DetectFormat(out *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return FormatText
	}
	if termenv.ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}

// SetupColor fixes the process-wide color mode for pterm and lipgloss
// and returns the format it settled on. noColor forces plain text
// regardless of what the terminal supports.
func SetupColor(noColor bool, out *os.File) Format {
	format := DetectFormat(out)
	if noColor {
		format = FormatText
	}
	if format == FormatText {
		pterm.DisableColor()
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return format
}
