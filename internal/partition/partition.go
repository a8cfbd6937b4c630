// Package partition splits the unit interval among a set of items and keeps
// every item above a minimum share while separators are dragged.
//
// Two representations are used. A ShareMap maps item ids to fractions that
// sum to 1 and is what callers hold. Boundaries are the N+1 cumulative cut
// points of the same partition and are what the update algorithms operate on.
package partition

import "math"

const (
	// Tolerance is the accepted deviation of a share sum from 1.
	Tolerance = 1e-4

	// DefaultMinShare is the minimum fraction each item keeps by default.
	DefaultMinShare = 0.05
)

// Item is anything with a stable identity and a display label.
// Ids must be unique within a single call.
type Item interface {
	ID() string
	DisplayName() string
}

// ShareMap maps item ids to their fraction of the whole.
type ShareMap map[string]float64

// Sum returns the total of all shares.
func (m ShareMap) Sum() float64 {
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum
}

// Clone returns an independent copy of the map.
func (m ShareMap) Clone() ShareMap {
	out := make(ShareMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Valid reports whether the map holds a share for every item, no share is
// negative, and the shares sum to 1 within Tolerance.
func Valid[T Item](items []T, m ShareMap) bool {
	if len(items) == 0 {
		return len(m) == 0
	}
	var sum float64
	for _, it := range items {
		v, ok := m[it.ID()]
		if !ok || v < 0 || math.IsNaN(v) {
			return false
		}
		sum += v
	}
	return math.Abs(sum-1) <= Tolerance
}

// Constraints controls how a drag is resolved.
type Constraints struct {
	MinShare   float64 // minimum fraction per item, in (0,1)
	EnablePush bool    // cascade neighboring separators instead of clamping
}

// DefaultConstraints returns the default minimum share with push enabled.
func DefaultConstraints() Constraints {
	return Constraints{MinShare: DefaultMinShare, EnablePush: true}
}

// Feasible reports whether n items can all hold MinShare at once.
func (c Constraints) Feasible(n int) bool {
	return c.MinShare*float64(n) <= 1
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
