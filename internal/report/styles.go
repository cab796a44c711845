package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
	ColorPrimary = lipgloss.Color("39")  // Blue
)

// Styles bundles the lipgloss styles of the text renderer. Styles are bound
// to a renderer so color detection follows the destination writer.
type Styles struct {
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Muted   lipgloss.Style
	Summary lipgloss.Style
}

// NewStyles creates styles for w. colorMode is "auto", "always" or "never";
// auto inspects w (a non-terminal writer gets no escape codes).
func NewStyles(w io.Writer, colorMode string) Styles {
	r := lipgloss.NewRenderer(w)
	switch colorMode {
	case "always":
		r.SetColorProfile(termenv.ANSI256)
	case "never":
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Valid:   r.NewStyle().Foreground(ColorSuccess).Bold(true),
		Invalid: r.NewStyle().Foreground(ColorError).Bold(true),
		Muted:   r.NewStyle().Foreground(ColorMuted),
		Summary: r.NewStyle().Foreground(ColorPrimary),
	}
}
