// Package color defines the terminal color palette shared by CLI output.
package color

import "github.com/charmbracelet/lipgloss"

var (
	Purple = lipgloss.Color("#cba6f7")
	Red    = lipgloss.Color("#f38ba8")
	Yellow = lipgloss.Color("#f9e2af")
	Green  = lipgloss.Color("#a6e3a1")
	Blue   = lipgloss.Color("#89b4fa")
	Cyan   = lipgloss.Color("#94e2d5")
	Faint  = lipgloss.Color("#6c7086")
)
