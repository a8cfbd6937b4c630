package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/timesplit/internal/ui/layout"
)

// PanelStyle returns the bordered panel style based on focus state.
func PanelStyle(focused bool) lipgloss.Style {
	border := T().Border
	if focused {
		border = T().BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, layout.PanelPadding)
}
