package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, counts
	ColorHighlight = "205" // Magenta - selected row, borders
	ColorDanger    = "196" // Red - removal, errors
	ColorMuted     = "241" // Gray - hints, table borders
	ColorText      = "252" // Light gray - normal rows
	ColorWarning   = "208" // Orange - inline validation
)

// Styles contains shared style definitions used across screens.
var Styles = struct {
	Title        lipgloss.Style // Bold accent - screen titles
	TitleWarning lipgloss.Style // Bold danger - confirm titles

	Box       lipgloss.Style // Overlay box (highlight border)
	BoxDanger lipgloss.Style // Confirm box (danger border)

	Header   lipgloss.Style // Table header cells
	Selected lipgloss.Style // Selected table row
	Normal   lipgloss.Style // Unselected table rows
	Count    lipgloss.Style // Lookup count column
	Border   lipgloss.Style // Table border
	Hint     lipgloss.Style // Help text
	Status   lipgloss.Style // Status line
	Empty    lipgloss.Style // Empty table text
	Label    lipgloss.Style // Form labels
	Error    lipgloss.Style // Inline validation error
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		Padding(0, 1),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Padding(0, 1),
	Count: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Border: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// newHelp returns a help model styled like the rest of the UI.
func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = Styles.Hint
	h.Styles.FullSeparator = Styles.Hint
	return h
}
