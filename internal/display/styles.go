// Package display renders user-facing output: the plan preview, the optional
// listing diff, the banner, and small formatting helpers. Presentation only;
// nothing here mutates state.
package display

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/backmassage/renumber/internal/term"
)

var (
	okColor       = lipgloss.Color("#10B981") // Green
	conflictColor = lipgloss.Color("#F87171") // Red
	mutedColor    = lipgloss.Color("#9CA3AF") // Gray
	titleColor    = lipgloss.Color("#60A5FA") // Blue

	okStyle       = lipgloss.NewStyle().Foreground(okColor)
	conflictStyle = lipgloss.NewStyle().Foreground(conflictColor)
	mutedStyle    = lipgloss.NewStyle().Foreground(mutedColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(titleColor)
)

// render applies st only when colors are active. The --color flag resolves to
// a single [term.Configure] call at startup; honoring it here keeps lipgloss
// from re-deciding based on its own terminal detection.
func render(st lipgloss.Style, s string) string {
	if !term.Enabled() {
		return s
	}
	return st.Render(s)
}
