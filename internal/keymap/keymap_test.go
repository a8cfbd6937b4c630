//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"testing"
)

func TestByContext(t *testing.T) {
	tests := []struct {
		name            string
		context         string
		expectNonEmpty  bool
		expectMinLength int
	}{
		{"global context", "global", true, 2},
		{"splitter context", "splitter", true, 8},
		{"unknown context returns empty", "unknown", false, 0},
		{"empty context returns empty", "", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ByContext(tt.context)

			if tt.expectNonEmpty && len(result) == 0 {
				t.Errorf("ByContext(%q) returned empty, expected non-empty", tt.context)
			}

			if !tt.expectNonEmpty && len(result) != 0 {
				t.Errorf("ByContext(%q) returned %d items, expected empty", tt.context, len(result))
			}

			if len(result) < tt.expectMinLength {
				t.Errorf("ByContext(%q) returned %d items, expected at least %d", tt.context, len(result), tt.expectMinLength)
			}

			for _, binding := range result {
				if binding.Context != tt.context {
					t.Errorf("binding context = %q, want %q", binding.Context, tt.context)
				}
			}
		})
	}
}

func TestBindingsHaveRequiredFields(t *testing.T) {
	for _, b := range Bindings {
		if b.Action == "" {
			t.Errorf("binding %v has empty action", b.Keys)
		}
		if len(b.Keys) == 0 {
			t.Errorf("binding %q has no keys", b.Action)
		}
		if b.Description == "" {
			t.Errorf("binding %q has no description", b.Action)
		}
	}
}

func TestBindingsHaveUniqueKeys(t *testing.T) {
	seen := make(map[string]Action)
	for _, b := range Bindings {
		for _, k := range b.Keys {
			if prev, ok := seen[k]; ok && prev != b.Action {
				t.Errorf("key %q bound to both %q and %q", k, prev, b.Action)
			}
			seen[k] = b.Action
		}
	}
}

func TestHelpMap(t *testing.T) {
	var m HelpMap

	if got := len(m.ShortHelp()); got != 6 {
		t.Errorf("ShortHelp() returned %d bindings, want 6", got)
	}

	full := m.FullHelp()
	if len(full) != 2 {
		t.Fatalf("FullHelp() returned %d groups, want 2", len(full))
	}
	if len(full[0]) != len(ByContext("splitter")) {
		t.Errorf("first help group has %d bindings, want %d", len(full[0]), len(ByContext("splitter")))
	}
}

func TestHelpMap_ShortHelpKeys(t *testing.T) {
	short := HelpMap{}.ShortHelp()

	want := []string{"tab", "left", "right", "p", "?", "q"}
	for i, k := range short {
		if got := k.Help().Key; got != want[i] {
			t.Errorf("ShortHelp()[%d].Help().Key = %q, want %q", i, got, want[i])
		}
	}
	if got := short[len(short)-1].Keys(); len(got) != 2 {
		t.Errorf("quit help binding keys = %v, want q and ctrl+c", got)
	}
}
