package splitter

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"

	"github.com/llehouerou/timesplit/internal/duration"
	"github.com/llehouerou/timesplit/internal/keymap"
	"github.com/llehouerou/timesplit/internal/partition"
	"github.com/llehouerou/timesplit/internal/ui/layout"
	"github.com/llehouerou/timesplit/internal/ui/styles"
)

// Keyboard nudge sizes, as durations of the total.
const (
	SmallStep = 5 * time.Minute
	LargeStep = 30 * time.Minute
)

// fallbackStep is the nudge fraction used when the total is unknown.
const fallbackStep = 0.01

// SharesChangedMsg is sent after every update that changed the shares.
type SharesChangedMsg struct {
	Shares partition.ShareMap
}

// DragRejectedMsg is sent when an update was refused and nothing changed.
type DragRejectedMsg struct {
	Separator int
}

// Options configures a splitter.
type Options struct {
	Total       time.Duration
	Constraints partition.Constraints
	MaxDistance float64 // grab distance in cells
	Logger      logr.Logger
}

// Model is the split bar component.
type Model[T partition.Item] struct {
	transition Transition[T]
	state      State
	total      time.Duration
	resolver   *keymap.Resolver
	palette    []lipgloss.Color
	logger     logr.Logger

	selected int // separator targeted by keyboard nudges
	width    int // bar width in cells
	originX  int
	originY  int
	focused  bool
}

// New creates a splitter over items starting from initial shares.
// initial is normalized, so nil starts every item equal.
func New[T partition.Item](items []T, initial partition.ShareMap, opts Options) Model[T] {
	logger := opts.Logger
	if logger.GetSink() == nil {
		logger = logr.Discard()
	}
	originX, originY := layout.BarOrigin()

	selected := NoSeparator
	if len(items) > 1 {
		selected = 0
	}

	return Model[T]{
		transition: Transition[T]{
			Items:       items,
			Constraints: opts.Constraints,
			MaxDistance: opts.MaxDistance,
		},
		state:    NewState(partition.Normalize(items, initial)),
		total:    opts.Total,
		resolver: keymap.ForContexts("splitter"),
		palette:  styles.T().Palette(len(items)),
		logger:   logger,
		selected: selected,
		originX:  originX,
		originY:  originY,
		focused:  true,
	}
}

// Items returns the items in display order.
func (m Model[T]) Items() []T {
	return m.transition.Items
}

// Shares returns the current share map.
func (m Model[T]) Shares() partition.ShareMap {
	return m.state.Shares
}

// State returns the current state.
func (m Model[T]) State() State {
	return m.state
}

// Entries projects the current shares onto the total duration.
func (m Model[T]) Entries() []duration.Entry[T] {
	return duration.Project(m.transition.Items, m.state.Shares, m.total)
}

// Total returns the duration being split.
func (m Model[T]) Total() time.Duration {
	return m.total
}

// Constraints returns the active constraints.
func (m Model[T]) Constraints() partition.Constraints {
	return m.transition.Constraints
}

// Feasible reports whether every item can hold the minimum share.
func (m Model[T]) Feasible() bool {
	return m.transition.Constraints.Feasible(len(m.transition.Items))
}

// Selected returns the separator targeted by keyboard nudges.
func (m Model[T]) Selected() int {
	return m.selected
}

// SetSize sets the bar width in cells.
func (m *Model[T]) SetSize(width int) {
	m.width = max(width, 0)
}

// SetOrigin sets the screen cell of the bar's first column.
func (m *Model[T]) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// SetFocused controls whether key presses are handled.
func (m *Model[T]) SetFocused(focused bool) {
	m.focused = focused
}

// SetPush switches between cascading and clamping drags.
func (m *Model[T]) SetPush(enabled bool) {
	m.transition.Constraints.EnablePush = enabled
}

// Update handles mouse and key messages.
func (m Model[T]) Update(msg tea.Msg) (Model[T], tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model[T]) handleMouse(msg tea.MouseMsg) (Model[T], tea.Cmd) {
	x := layout.PointerX(msg.X, m.originX)
	width := float64(m.width)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !layout.InHandleRows(msg.Y, m.originY) {
			return m, nil
		}
		return m.apply(GestureStart{X: x, Width: width})

	case tea.MouseActionMotion:
		if !m.state.Dragging {
			return m, nil
		}
		return m.apply(GestureMove{X: x, Width: width})

	case tea.MouseActionRelease:
		return m.apply(GestureEnd{})
	}
	return m, nil
}

func (m Model[T]) handleKey(msg tea.KeyMsg) (Model[T], tea.Cmd) {
	separators := len(m.transition.Items) - 1

	switch m.resolver.ResolveMsg(msg) { //nolint:exhaustive // global actions are handled by the app
	case keymap.ActionNextSeparator:
		if separators > 0 {
			m.selected = (m.selected + 1) % separators
		}
	case keymap.ActionPrevSeparator:
		if separators > 0 {
			m.selected = (m.selected - 1 + separators) % separators
		}
	case keymap.ActionNudgeLeft:
		return m.apply(Nudge{Separator: m.selected, Delta: -m.step(SmallStep)})
	case keymap.ActionNudgeRight:
		return m.apply(Nudge{Separator: m.selected, Delta: m.step(SmallStep)})
	case keymap.ActionNudgeLeftLarge:
		return m.apply(Nudge{Separator: m.selected, Delta: -m.step(LargeStep)})
	case keymap.ActionNudgeRightLarge:
		return m.apply(Nudge{Separator: m.selected, Delta: m.step(LargeStep)})
	case keymap.ActionTogglePush:
		m.SetPush(!m.transition.Constraints.EnablePush)
		m.logger.V(1).Info("push mode changed", "enabled", m.transition.Constraints.EnablePush)
	case keymap.ActionReset:
		return m.apply(Reset{})
	}
	return m, nil
}

// step converts a duration to a fraction of the total.
func (m Model[T]) step(d time.Duration) float64 {
	if m.total <= 0 {
		return fallbackStep
	}
	return float64(d) / float64(m.total)
}

// apply runs ev through the transition and reports the outcome.
func (m Model[T]) apply(ev Event) (Model[T], tea.Cmd) {
	next, outcome := m.transition.Apply(m.state, ev)
	m.state = next

	switch outcome { //nolint:exhaustive // remaining outcomes need no reaction
	case OutcomeGrabbed:
		m.selected = next.Active
		m.logger.V(1).Info("separator grabbed", "separator", next.Active)
	case OutcomeMissed:
		m.logger.V(1).Info("no separator near pointer")
	case OutcomeMoved, OutcomeReset:
		shares := next.Shares
		return m, func() tea.Msg { return SharesChangedMsg{Shares: shares} }
	case OutcomeRejected:
		separator := m.selected
		if next.Active != NoSeparator {
			separator = next.Active
		}
		m.logger.V(1).Info("update rejected",
			"separator", separator,
			"minShare", m.transition.Constraints.MinShare,
			"items", len(m.transition.Items))
		return m, func() tea.Msg { return DragRejectedMsg{Separator: separator} }
	}
	return m, nil
}
