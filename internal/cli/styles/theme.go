// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/tintbar/internal/domain/entity"
)

// Theme holds lipgloss colors and styles for the CLI.
type Theme struct {
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
	Error  lipgloss.Color

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// NewTheme creates the default dark theme.
func NewTheme() *Theme {
	t := &Theme{
		Text:   lipgloss.Color("#ffffff"),
		Muted:  lipgloss.Color("#909090"),
		Accent: lipgloss.Color("#4ade80"),
		Error:  lipgloss.Color("#f87171"),
	}

	t.Title = lipgloss.NewStyle().Bold(true).Foreground(t.Text)
	t.Normal = lipgloss.NewStyle().Foreground(t.Text)
	t.Subtle = lipgloss.NewStyle().Foreground(t.Muted)
	t.Highlight = lipgloss.NewStyle().Foreground(t.Accent)
	t.ErrorStyle = lipgloss.NewStyle().Foreground(t.Error)
	t.SuccessStyle = lipgloss.NewStyle().Foreground(t.Accent)

	t.ListItem = lipgloss.NewStyle().PaddingLeft(2)
	t.ListItemSelected = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	t.HelpKey = lipgloss.NewStyle().Foreground(t.Accent)
	t.HelpDesc = lipgloss.NewStyle().Foreground(t.Muted)

	return t
}

// swatchWidth is sized so the tint block reads as a color chip.
const swatchWidth = 4

// Swatch renders a solid block in the given color.
func Swatch(c entity.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Width(swatchWidth).
		Render("")
}

// SwatchLabel renders a swatch followed by the color's hex code.
func SwatchLabel(c entity.Color) string {
	return Swatch(c) + " " + c.Hex()
}
