package styles

import (
	"strings"

	"github.com/bnema/tintbar/internal/domain/entity"
)

// RenderProjectColors renders stored project colors as aligned rows with a
// color swatch, hex code, origin badge, and project path.
func RenderProjectColors(theme *Theme, entries []*entity.ProjectColor) string {
	if len(entries) == 0 {
		return theme.Subtle.Render("no project colors saved") + "\n"
	}

	var b strings.Builder
	for _, e := range entries {
		origin := "picked"
		if e.AutoPicked {
			origin = "auto"
		}
		b.WriteString(Swatch(e.Color))
		b.WriteString(" ")
		b.WriteString(theme.Normal.Render(e.Color.Hex()))
		b.WriteString("  ")
		b.WriteString(theme.Subtle.Render(origin))
		b.WriteString("  ")
		b.WriteString(theme.Normal.Render(e.Path))
		b.WriteString("\n")
	}
	return b.String()
}
