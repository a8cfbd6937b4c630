package splitter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/timesplit/internal/duration"
	"github.com/llehouerou/timesplit/internal/partition"
	"github.com/llehouerou/timesplit/internal/ui/layout"
	"github.com/llehouerou/timesplit/internal/ui/render"
	"github.com/llehouerou/timesplit/internal/ui/styles"
)

const (
	activeHandle = "▲"
	idleHandle   = "△"
	legendSwatch = "■"

	maxLegendLabel = 24
)

// View renders the bar, its handle row, a blank line and the legend.
func (m Model[T]) View() string {
	if m.width <= 0 {
		return ""
	}

	b := partition.BoundariesOf(m.transition.Items, m.state.Shares)

	lines := []string{
		m.renderBar(b),
		m.renderHandles(b),
		"",
	}
	lines = append(lines, m.renderLegend()...)
	if !m.Feasible() {
		lines = append(lines, "", m.renderInfeasible())
	}
	return strings.Join(lines, "\n")
}

func (m Model[T]) renderBar(b partition.Boundaries) string {
	t := styles.T()
	items := m.transition.Items
	if len(items) == 0 {
		return t.S().Subtle.Render(strings.Repeat("░", m.width))
	}

	cells := layout.SegmentCells(b, m.width)
	var sb strings.Builder
	for i, it := range items {
		if cells[i] == 0 {
			continue
		}
		sb.WriteString(t.Segment(m.palette[i]).Render(render.Center(it.DisplayName(), cells[i])))
	}
	return sb.String()
}

func (m Model[T]) renderHandles(b partition.Boundaries) string {
	s := styles.T().S()
	row := make([]string, m.width)
	for i := range row {
		row[i] = " "
	}

	highlight := m.selected
	if m.state.Active != NoSeparator {
		highlight = m.state.Active
	}

	// Draw idle handles first so the highlighted one wins a shared column.
	separators := b.Items() - 1
	for sep := range separators {
		if sep == highlight {
			continue
		}
		row[layout.HandleColumn(b[sep+1], m.width)] = s.Handle.Render(idleHandle)
	}
	if highlight >= 0 && highlight < separators {
		row[layout.HandleColumn(b[highlight+1], m.width)] = s.Active.Render(activeHandle)
	}
	return strings.Join(row, "")
}

func (m Model[T]) renderLegend() []string {
	s := styles.T().S()
	entries := m.Entries()

	labelWidth := 0
	for _, e := range entries {
		labelWidth = max(labelWidth, runewidth.StringWidth(render.Sanitize(e.Item.DisplayName())))
	}
	labelWidth = min(labelWidth, maxLegendLabel)

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		swatch := lipgloss.NewStyle().Foreground(m.palette[i]).Render(legendSwatch)
		label := s.Base.Render(render.TruncateAndPad(e.Item.DisplayName(), labelWidth))
		dur := s.Title.Render(fmt.Sprintf("%8s", duration.Format(e.Duration)))
		pct := s.Muted.Render(fmt.Sprintf("%6s", FormatPercent(e.Share)))
		line := swatch + " " + label + "  " + dur + "  " + pct
		lines = append(lines, render.TruncateStyled(line, m.width))
	}
	return lines
}

func (m Model[T]) renderInfeasible() string {
	c := m.transition.Constraints
	msg := fmt.Sprintf("Minimum share %s cannot hold for %d items: separators are locked",
		FormatPercent(c.MinShare), len(m.transition.Items))
	return render.TruncateStyled(styles.T().S().Warning.Render(msg), m.width)
}

// FormatPercent renders a fraction as a percentage with at most one decimal.
func FormatPercent(share float64) string {
	return humanize.FtoaWithDigits(share*100, 1) + "%"
}
