package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// neutral stands in for colors that are not #rrggbb, such as ANSI indexes.
var neutral = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// ApplyBoldGradient renders bold text with a horizontal color gradient,
// one color step per grapheme cluster.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	for i, c := range blend(len(clusters), from, to) {
		b.WriteString(lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(c.Hex())).
			Render(clusters[i]))
	}
	return b.String()
}

// Palette returns n segment colors running from the theme's primary to its
// secondary color.
func (t *Theme) Palette(n int) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	out := make([]lipgloss.Color, 0, n)
	for _, c := range blend(n, t.Primary, t.Secondary) {
		out = append(out, lipgloss.Color(c.Hex()))
	}
	return out
}

// blend returns n colors from one end to the other, interpolated in HCL so
// steps look even.
func blend(n int, from, to lipgloss.Color) []colorful.Color {
	if n <= 0 {
		return nil
	}
	start, end := parseHex(from), parseHex(to)
	if n == 1 {
		return []colorful.Color{start}
	}
	colors := make([]colorful.Color, n)
	colors[0], colors[n-1] = start, end
	for i := 1; i < n-1; i++ {
		colors[i] = start.BlendHcl(end, float64(i)/float64(n-1)).Clamped()
	}
	return colors
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return neutral
	}
	return col
}
