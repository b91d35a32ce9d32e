// Package present draws render.View values for terminals.
package present

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/doeshing/autopilot-go/internal/application/render"
)

// Semantic colors.
var (
	colorGreen   = lipgloss.Color("#2E7D32")
	colorRed     = lipgloss.Color("#C62828")
	colorYellow  = lipgloss.Color("#F9A825")
	colorNeutral = lipgloss.Color("#9E9E9E")
	colorAccent  = lipgloss.Color("#2196F3")
)

// Styles holds every style used by the writers.
type Styles struct {
	Title       lipgloss.Style
	Heading     lipgloss.Style
	Muted       lipgloss.Style
	Code        lipgloss.Style
	ErrorText   lipgloss.Style
	ErrorBanner lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Selected    lipgloss.Style

	badges map[render.Color]lipgloss.Style
}

// NewRenderer returns a lipgloss renderer for w. When color is false every
// style renders as plain text.
func NewRenderer(w io.Writer, color bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	} else if r.ColorProfile() == termenv.Ascii {
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// NewStyles builds the style set on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	badge := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true)
	}
	return Styles{
		Title:       r.NewStyle().Bold(true),
		Heading:     r.NewStyle().Bold(true).Underline(true),
		Muted:       r.NewStyle().Foreground(colorNeutral),
		Code:        r.NewStyle().Foreground(colorNeutral),
		ErrorText:   r.NewStyle().Foreground(colorRed),
		ErrorBanner: r.NewStyle().Foreground(colorRed).Bold(true),
		Tab:         r.NewStyle().Foreground(colorNeutral).Padding(0, 1),
		ActiveTab:   r.NewStyle().Foreground(colorAccent).Bold(true).Underline(true).Padding(0, 1),
		Selected:    r.NewStyle().Foreground(colorAccent).Bold(true),
		badges: map[render.Color]lipgloss.Style{
			render.ColorGreen:   badge(colorGreen),
			render.ColorRed:     badge(colorRed),
			render.ColorYellow:  badge(colorYellow),
			render.ColorNeutral: badge(colorNeutral),
		},
	}
}

// Glyph returns the terminal symbol for an icon.
func Glyph(icon render.Icon) string {
	switch icon {
	case render.IconCheck:
		return "✓"
	case render.IconCross:
		return "✗"
	case render.IconWarning:
		return "!"
	default:
		return ""
	}
}

// Badge renders a classification as "[glyph label]".
func (s Styles) Badge(c render.Classification) string {
	text := Glyph(c.Icon)
	if c.Label != "" {
		if text != "" {
			text += " "
		}
		text += c.Label
	}
	style, ok := s.badges[c.Color]
	if !ok {
		style = s.badges[render.ColorNeutral]
	}
	return style.Render("[" + text + "]")
}

// Icon renders only the glyph of a classification, for compact step rows.
func (s Styles) Icon(c render.Classification) string {
	style, ok := s.badges[c.Color]
	if !ok {
		style = s.badges[render.ColorNeutral]
	}
	glyph := Glyph(c.Icon)
	if glyph == "" {
		glyph = " "
	}
	return style.Render("[" + glyph + "]")
}
