package styles

import "github.com/charmbracelet/lipgloss"

// Theme holds the colors of the split view and the styles built from them.
type Theme struct {
	// Segment colors run from Primary to Secondary.
	Primary   lipgloss.Color
	Secondary lipgloss.Color

	Text      lipgloss.Color // labels and durations
	Dim       lipgloss.Color // percentages, idle handles, status
	Faint     lipgloss.Color // empty bar
	OnSegment lipgloss.Color // label text drawn over a segment

	Border      lipgloss.Color
	BorderFocus lipgloss.Color

	Success lipgloss.Color // push mode
	Warning lipgloss.Color // locked separators, refused moves

	styles *Styles
}

// Styles are the lipgloss styles derived from a Theme.
type Styles struct {
	Base    lipgloss.Style
	Muted   lipgloss.Style
	Subtle  lipgloss.Style
	Title   lipgloss.Style
	Active  lipgloss.Style // grabbed or selected separator handle
	Handle  lipgloss.Style // other separator handles
	Success lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   "#a78bfa",
	Secondary: "#f1a208",

	Text:      "#c0c0c0",
	Dim:       "#808080",
	Faint:     "#585858",
	OnSegment: "#1a1a1a",

	Border:      "#585858",
	BorderFocus: "#a78bfa",

	Success: "#42b883",
	Warning: "#f1a208",
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the styles for this theme, building them on first use.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
		t.styles = &Styles{
			Base:    fg(t.Text),
			Muted:   fg(t.Dim),
			Subtle:  fg(t.Faint),
			Title:   fg(t.Text).Bold(true),
			Active:  fg(t.Primary).Bold(true),
			Handle:  fg(t.Dim),
			Success: fg(t.Success),
			Warning: fg(t.Warning),
		}
	}
	return t.styles
}

// Segment returns the style of one bar segment.
func (t *Theme) Segment(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Background(bg).Foreground(t.OnSegment)
}
