package ui

import (
	"github.com/charmbracelet/lipgloss"

	"fasguide/internal/scheme"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected keys
	ColorDanger    = "196" // Red - for errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for labels
	ColorWarning   = "208" // Orange - for confirmation titles

	ColorTier1    = "33"  // Blue
	ColorTier2    = "135" // Purple
	ColorBridging = "214" // Amber
	ColorSuccess  = "35"  // Green - call to action
	ColorTabBg    = "236" // Active tab background
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title    lipgloss.Style // page title
	Subtitle lipgloss.Style // page subtitle

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style

	BoxWarning lipgloss.Style // confirmation modal

	Selected lipgloss.Style // highlighted keys
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Bold     lipgloss.Style
	Label    lipgloss.Style // upper-case field labels
	Status   lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Link     lipgloss.Style
	Footer   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	TabActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color(ColorTabBg)).
		Padding(0, 2),
	TabInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 2),
	BoxWarning: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 2),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Bold: lipgloss.NewStyle().
		Bold(true),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDim)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning)),
	Link: lipgloss.NewStyle().
		Underline(true).
		Foreground(lipgloss.Color(ColorSuccess)),
	Footer: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// categoryColor returns the accent color for a tier's display category.
func categoryColor(c scheme.DisplayCategory) lipgloss.Color {
	switch c {
	case scheme.CategoryTier1:
		return lipgloss.Color(ColorTier1)
	case scheme.CategoryTier2:
		return lipgloss.Color(ColorTier2)
	case scheme.CategoryBridging:
		return lipgloss.Color(ColorBridging)
	default:
		return lipgloss.Color(ColorMuted)
	}
}

// cardStyle returns a bordered box in the tier's color with total width w.
func cardStyle(c scheme.DisplayCategory, w int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(categoryColor(c)).
		Padding(0, 1).
		Width(max(w-2, 1))
}
