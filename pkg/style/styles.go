// Package style defines the terminal styling for inflate's command output.
//
// All styles use adaptive colors that adjust to light and dark terminal
// themes. Rendering degrades to plain text automatically when stdout is not
// a terminal, so command output stays grep-friendly in pipes.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// badgeWidth keeps the file path column aligned; "VERBATIM" is the widest badge.
const badgeWidth = 10

// Base styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PathColor)
)

// Classification badge styles
var (
	ExpandBadgeStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true).
				Width(badgeWidth)

	VerbatimBadgeStyle = lipgloss.NewStyle().
				Foreground(InfoColor).
				Bold(true).
				Width(badgeWidth)
)

// ExpandBadge renders the badge marking a file that runs through the
// expansion engine.
func ExpandBadge() string {
	return ExpandBadgeStyle.Render("EXPAND")
}

// VerbatimBadge renders the badge marking a file that is copied byte for byte.
func VerbatimBadge() string {
	return VerbatimBadgeStyle.Render("VERBATIM")
}

// Helper functions
func Bold(s string) string {
	return lipgloss.NewStyle().Bold(true).Render(s)
}

func Muted(s string) string {
	return MutedStyle.Render(s)
}

func Indent(s string, level int) string {
	return lipgloss.NewStyle().PaddingLeft(level * 2).Render(s)
}
