// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/timesplit/internal/errmsg"
	"github.com/llehouerou/timesplit/internal/keymap"
	"github.com/llehouerou/timesplit/internal/splitter"
	"github.com/llehouerou/timesplit/internal/ui/layout"
)

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		m.Splitter.SetSize(layout.BarWidth(msg.Width))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.Splitter, cmd = m.Splitter.Update(msg)
		return m, cmd

	case splitter.SharesChangedMsg:
		m.Notice = ""
		m.Logger.V(1).Info("shares changed", "shares", msg.Shares)
		return m, nil

	case splitter.DragRejectedMsg:
		m.Notice = errmsg.FormatWith(errmsg.OpSplitUpdate, m.separatorLabel(msg.Separator), errLocked)
		return m, nil
	}

	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Keys.ResolveMsg(msg) { //nolint:exhaustive // splitter actions are forwarded below
	case keymap.ActionQuit:
		m.Logger.Info("quitting")
		return m, tea.Quit
	case keymap.ActionHelp:
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.Splitter, cmd = m.Splitter.Update(msg)
	return m, cmd
}

// separatorLabel names the two items around a separator: "Focus | Meetings".
func (m Model) separatorLabel(separator int) string {
	items := m.Splitter.Items()
	if separator < 0 || separator+1 >= len(items) {
		return ""
	}
	return items[separator].DisplayName() + " | " + items[separator+1].DisplayName()
}
