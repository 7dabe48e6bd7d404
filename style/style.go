// Package style provides a functional API for composing and applying lipgloss-based terminal styles.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/stormychel/YouTubePlayerKit/color"
)

// New returns an empty lipgloss.Style used as a foundation for visual composition.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a stateless rendering function that applies the specified foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

// Bold renders the given string in bold.
func Bold(s string) string {
	return New().Bold(true).Render(s)
}

// Italic renders the given string in italics.
func Italic(s string) string {
	return New().Italic(true).Render(s)
}

// Faint renders the given string dimmed.
func Faint(s string) string {
	return Fg(color.Faint)(s)
}
