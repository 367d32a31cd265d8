// Package output provides styled terminal rendering helpers for crechestat.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and facility names.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for high satisfaction figures.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for low satisfaction figures.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for quality warnings.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for positive values.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for negative values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for cautionary values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for stat labels.
	StyleLabel = lipgloss.NewStyle().Width(28)

	// StyleValue is used for stat values.
	StyleValue = lipgloss.NewStyle().Bold(true).Width(10)
)

// noColor tracks whether color output is disabled.
var noColor bool

// Init decides whether color output is enabled: disabled explicitly, by
// config, or automatically when stdout is not a terminal.
func Init(disableFlag, configColor bool) {
	disabled := disableFlag || !configColor || !stdoutIsTerminal()
	SetNoColor(disabled)
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(28)
		StyleValue = plain.Width(10)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}
