// Package formatter renders engine output for the terminal: chat bubbles,
// reports, and transcripts, styled with lipgloss.
package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired palettes, one per background.
var (
	darkFg     = lipgloss.Color("#ebdbb2")
	darkDim    = lipgloss.Color("#928374")
	darkAccent = lipgloss.Color("#fe8019")
	darkGreen  = lipgloss.Color("#8ec07c")
	darkBlue   = lipgloss.Color("#83a598")
	darkRed    = lipgloss.Color("#fb4934")

	lightFg     = lipgloss.Color("#3c3836")
	lightDim    = lipgloss.Color("#7c6f64")
	lightAccent = lipgloss.Color("#af3a03")
	lightGreen  = lipgloss.Color("#79740e")
	lightBlue   = lipgloss.Color("#076678")
	lightRed    = lipgloss.Color("#9d0006")
)

// Styles bundles every lipgloss style the CLI uses, resolved once for the
// active color scheme.
type Styles struct {
	Header   lipgloss.Style
	Category lipgloss.Style
	Question lipgloss.Style
	Answer   lipgloss.Style
	Option   lipgloss.Style
	Notice   lipgloss.Style
	Dim      lipgloss.Style
	Error    lipgloss.Style
}

// NewStyles builds the style set for a dark or light terminal.
func NewStyles(dark bool) Styles {
	fg, dim, accent, green, blue, red := lightFg, lightDim, lightAccent, lightGreen, lightBlue, lightRed
	if dark {
		fg, dim, accent, green, blue, red = darkFg, darkDim, darkAccent, darkGreen, darkBlue, darkRed
	}
	return Styles{
		Header:   lipgloss.NewStyle().Foreground(accent).Bold(true),
		Category: lipgloss.NewStyle().Foreground(blue).Bold(true),
		Question: lipgloss.NewStyle().Foreground(fg),
		Answer:   lipgloss.NewStyle().Foreground(green),
		Option:   lipgloss.NewStyle().Foreground(fg),
		Notice:   lipgloss.NewStyle().Foreground(accent),
		Dim:      lipgloss.NewStyle().Foreground(dim),
		Error:    lipgloss.NewStyle().Foreground(red),
	}
}
