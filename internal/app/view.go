// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/llehouerou/timesplit/internal/duration"
	"github.com/llehouerou/timesplit/internal/keymap"
	"github.com/llehouerou/timesplit/internal/splitter"
	"github.com/llehouerou/timesplit/internal/ui/layout"
	"github.com/llehouerou/timesplit/internal/ui/render"
	"github.com/llehouerou/timesplit/internal/ui/styles"
)

const appTitle = "timesplit"

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	// Header: title line and a blank line (layout.HeaderHeight rows)
	subtitle := fmt.Sprintf("splitting %s across %d items",
		duration.Format(m.Splitter.Total()), len(m.Splitter.Items()))
	header := render.TruncateStyled(
		styles.ApplyBoldGradient(appTitle, t.Primary, t.Secondary)+"  "+s.Muted.Render(subtitle),
		m.Width,
	)

	panel := styles.PanelStyle(true).
		Width(layout.PanelWidth(m.Width)).
		Render(m.Splitter.View())

	lines := []string{header, "", panel, m.renderStatus()}
	if m.Notice != "" {
		lines = append(lines, render.TruncateStyled(s.Warning.Render(m.Notice), m.Width))
	}
	lines = append(lines, m.Help.View(keymap.HelpMap{}))

	return strings.Join(lines, "\n")
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	c := m.Splitter.Constraints()

	mode := s.Muted.Render("clamp")
	if c.EnablePush {
		mode = s.Success.Render("push")
	}
	left := mode + s.Muted.Render(" · min "+splitter.FormatPercent(c.MinShare))

	var right string
	if label := m.separatorLabel(m.Splitter.Selected()); label != "" {
		right = s.Muted.Render("selected ") + s.Base.Render(label)
	}

	return render.Row(" "+left, right+" ", m.Width)
}
