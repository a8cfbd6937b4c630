package keymap

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Resolver maps key presses to actions.
type Resolver struct {
	actions map[string]Action   // key -> action, last binding wins
	keys    map[Action][]string // action -> keys, for help text
	descs   map[Action]string
	order   []Action // actions in binding order
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		actions: make(map[string]Action, len(bindings)*2),
		keys:    make(map[Action][]string, len(bindings)),
		descs:   make(map[Action]string, len(bindings)),
	}
	for _, b := range bindings {
		for _, k := range b.Keys {
			r.actions[k] = b.Action
		}
		if _, seen := r.keys[b.Action]; !seen {
			r.order = append(r.order, b.Action)
			r.descs[b.Action] = b.Description
		}
		r.keys[b.Action] = dedupe(append(r.keys[b.Action], b.Keys...))
	}
	return r
}

// ForContexts creates a resolver over the bindings of the given contexts.
func ForContexts(contexts ...string) *Resolver {
	var bindings []Binding
	for _, c := range contexts {
		bindings = append(bindings, ByContext(c)...)
	}
	return NewResolver(bindings)
}

// Resolve returns the action bound to a key string such as "shift+left",
// or the empty action.
func (r *Resolver) Resolve(key string) Action {
	return r.actions[key]
}

// ResolveMsg returns the action bound to a key press.
func (r *Resolver) ResolveMsg(msg tea.KeyMsg) Action {
	return r.Resolve(msg.String())
}

// Has reports whether any key is bound to action.
func (r *Resolver) Has(action Action) bool {
	return len(r.keys[action]) > 0
}

// KeysFor returns the keys bound to an action.
func (r *Resolver) KeysFor(action Action) []string {
	return r.keys[action]
}

// HelpKey returns the help binding of an action. The first key is the one
// shown.
func (r *Resolver) HelpKey(action Action) key.Binding {
	keys := r.KeysFor(action)
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], r.descs[action]),
	)
}

// HelpKeys returns the help bindings of every action, in binding order.
func (r *Resolver) HelpKeys() []key.Binding {
	out := make([]key.Binding, len(r.order))
	for i, a := range r.order {
		out[i] = r.HelpKey(a)
	}
	return out
}

func dedupe(s []string) []string {
	seen := make(map[string]struct{}, len(s))
	out := s[:0:0]
	for _, v := range s {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
