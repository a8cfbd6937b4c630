package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "splitter"
}

// Bindings contains all key bindings of the application.
var Bindings = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Toggle help", "global"},

	// Splitter
	{ActionNextSeparator, []string{"tab", "]"}, "Next separator", "splitter"},
	{ActionPrevSeparator, []string{"shift+tab", "["}, "Previous separator", "splitter"},
	{ActionNudgeLeft, []string{"left", "h"}, "Move separator left", "splitter"},
	{ActionNudgeRight, []string{"right", "l"}, "Move separator right", "splitter"},
	{ActionNudgeLeftLarge, []string{"shift+left", "H"}, "Move separator left (large)", "splitter"},
	{ActionNudgeRightLarge, []string{"shift+right", "L"}, "Move separator right (large)", "splitter"},
	{ActionTogglePush, []string{"p"}, "Toggle push mode", "splitter"},
	{ActionReset, []string{"r"}, "Reset to equal shares", "splitter"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range Bindings {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// shortHelp lists the actions shown in the one-line footer.
var shortHelp = []Action{
	ActionNextSeparator, ActionNudgeLeft, ActionNudgeRight, ActionTogglePush, ActionHelp, ActionQuit,
}

// HelpMap implements help.KeyMap over the application bindings.
type HelpMap struct{}

// ShortHelp returns the bindings shown in the one-line footer.
func (HelpMap) ShortHelp() []key.Binding {
	r := ForContexts("splitter", "global")
	keys := make([]key.Binding, 0, len(shortHelp))
	for _, a := range shortHelp {
		if r.Has(a) {
			keys = append(keys, r.HelpKey(a))
		}
	}
	return keys
}

// FullHelp returns all bindings grouped by context.
func (HelpMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		ForContexts("splitter").HelpKeys(),
		ForContexts("global").HelpKeys(),
	}
}
