// Package splitter is the interactive split bar: it turns pointer gestures
// and key presses into partition updates and renders the result.
package splitter

import (
	"github.com/llehouerou/timesplit/internal/partition"
)

// NoSeparator marks a gesture or selection that holds no separator.
const NoSeparator = -1

// State is everything the splitter changes in response to events.
// Shares is replaced, never modified in place.
type State struct {
	Shares   partition.ShareMap
	Active   int  // separator held by the current gesture
	Dragging bool // a gesture is in progress, with or without a separator
}

// NewState returns an idle state over the given shares.
func NewState(shares partition.ShareMap) State {
	return State{Shares: shares, Active: NoSeparator}
}

// Event is an input to Transition.Apply.
type Event interface {
	event()
}

// GestureStart begins a drag at X on a bar Width units wide.
type GestureStart struct {
	X, Width float64
}

// GestureMove continues the current drag.
type GestureMove struct {
	X, Width float64
}

// GestureEnd releases the current drag.
type GestureEnd struct{}

// Nudge moves a separator by Delta, a signed fraction of the whole.
type Nudge struct {
	Separator int
	Delta     float64
}

// Reset gives every item an equal share.
type Reset struct{}

func (GestureStart) event() {}
func (GestureMove) event()  {}
func (GestureEnd) event()   {}
func (Nudge) event()        {}
func (Reset) event()        {}

// Outcome reports what Apply did with an event.
type Outcome int

const (
	OutcomeIgnored  Outcome = iota // nothing to do
	OutcomeGrabbed                 // gesture started on a separator
	OutcomeMissed                  // gesture started away from every separator
	OutcomeMoved                   // shares changed
	OutcomeRejected                // update refused, shares unchanged
	OutcomeReleased                // gesture ended
	OutcomeReset                   // shares reset to uniform
)

// Transition holds the fixed inputs of the state machine.
type Transition[T partition.Item] struct {
	Items       []T
	Constraints partition.Constraints
	MaxDistance float64 // grab distance, in the same unit as gesture X
}

// Apply returns the state after ev. s is not modified.
func (t Transition[T]) Apply(s State, ev Event) (State, Outcome) {
	switch ev := ev.(type) {
	case GestureStart:
		b := partition.BoundariesOf(t.Items, s.Shares)
		idx, ok := partition.Locate(ev.X, ev.Width, b, t.MaxDistance)
		s.Dragging = true
		s.Active = idx
		if !ok {
			s.Active = NoSeparator
			return s, OutcomeMissed
		}
		return s, OutcomeGrabbed

	case GestureMove:
		// The separator chosen at gesture start is kept until release.
		if !s.Dragging || s.Active == NoSeparator || ev.Width <= 0 {
			return s, OutcomeIgnored
		}
		return t.update(s, s.Active, ev.X/ev.Width)

	case GestureEnd:
		if !s.Dragging {
			return s, OutcomeIgnored
		}
		s.Dragging = false
		s.Active = NoSeparator
		return s, OutcomeReleased

	case Nudge:
		if ev.Separator < 0 || ev.Separator > len(t.Items)-2 || ev.Delta == 0 {
			return s, OutcomeIgnored
		}
		b := partition.BoundariesOf(t.Items, s.Shares)
		return t.update(s, ev.Separator, b[ev.Separator+1]+ev.Delta)

	case Reset:
		s.Shares = partition.Uniform(t.Items)
		return s, OutcomeReset
	}
	return s, OutcomeIgnored
}

func (t Transition[T]) update(s State, separator int, target float64) (State, Outcome) {
	shares, applied := partition.Update(t.Items, s.Shares, separator, target, t.Constraints)
	if !applied {
		return s, OutcomeRejected
	}
	s.Shares = shares
	return s, OutcomeMoved
}

func (o Outcome) String() string {
	switch o {
	case OutcomeGrabbed:
		return "grabbed"
	case OutcomeMissed:
		return "missed"
	case OutcomeMoved:
		return "moved"
	case OutcomeRejected:
		return "rejected"
	case OutcomeReleased:
		return "released"
	case OutcomeReset:
		return "reset"
	default:
		return "ignored"
	}
}
