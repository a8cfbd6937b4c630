package partition

import (
	"math"
	"slices"
)

// Update moves separator to the pointer fraction target and returns the
// resulting shares. The returned map is always freshly built and holds an
// entry for every item.
//
// applied is false, and current is returned as is, when the separator is out
// of range, target is NaN, or the constraints are infeasible for len(items).
func Update[T Item](items []T, current ShareMap, separator int, target float64, c Constraints) (result ShareMap, applied bool) {
	n := len(items)
	if separator < 0 || separator > n-2 || math.IsNaN(target) || !c.Feasible(n) {
		return current, false
	}

	shares := Ordered(items, Normalize(items, current))
	b := ToBoundaries(shares)

	if c.EnablePush {
		shares = ToShares(push(b, separator+1, target, c.MinShare))
		compensate(shares)
	} else {
		clampPair(shares, b, separator, target, c.MinShare)
	}

	return build(items, shares), true
}

// clampPair moves only the separator between items s and s+1. Everything
// outside the pair keeps its share.
func clampPair(shares []float64, b Boundaries, s int, target, minShare float64) {
	leftFixed := b[s]
	rightFixed := b[s+2]

	lo := math.Max(0, leftFixed+minShare)
	hi := math.Min(1, rightFixed-minShare)

	var t float64
	if lo > hi {
		// The pair cannot hold two minimums: settle in the middle.
		t = (lo + hi) / 2
	} else {
		t = clamp(target, lo, hi)
	}

	shares[s] = t - leftFixed
	shares[s+1] = rightFixed - t
}

// push places boundary idx at target and cascades minimum gap violations
// outward in both directions until a full pass changes nothing, giving up
// after 2n passes.
func push(b Boundaries, idx int, target, minShare float64) Boundaries {
	return pushWithin(b, idx, target, minShare, 2*b.Items())
}

func pushWithin(b Boundaries, idx int, target, minShare float64, passes int) Boundaries {
	n := b.Items()

	// Items on either side must still fit between the target and the ends.
	target = clamp(target, float64(idx)*minShare, 1-float64(n-idx)*minShare)
	b[idx] = target

	lo, hi := 0.0, 1.0
	prev := make(Boundaries, len(b))
	for range passes {
		copy(prev, b)

		for i := idx; i >= 1; i-- {
			if b[i]-b[i-1] < minShare {
				b[i-1] = b[i] - minShare
			}
		}
		b[0] = 0

		for i := idx; i < n; i++ {
			if b[i+1]-b[i] < minShare {
				b[i+1] = b[i] + minShare
			}
		}
		b[n] = 1

		minPossible := b[idx-1] + minShare
		maxPossible := b[idx+1] - minShare
		if minPossible <= maxPossible {
			lo, hi = minPossible, maxPossible
		}
		b[idx] = anchor(target, minPossible, maxPossible)

		if slices.Equal(prev, b) {
			return b
		}
	}

	// No fixed point within the cap: settle on the last range that held.
	b[idx] = clamp(target, lo, hi)
	return b
}

// anchor returns target, or the bound it crosses.
func anchor(target, lo, hi float64) float64 {
	switch {
	case target < lo:
		return lo
	case target > hi:
		return hi
	default:
		return target
	}
}

// compensate folds floating point drift into the last share.
func compensate(shares []float64) {
	if len(shares) == 0 {
		return
	}
	var sum float64
	for _, s := range shares {
		sum += s
	}
	if math.Abs(sum-1) > Tolerance {
		shares[len(shares)-1] += 1 - sum
	}
}

func build[T Item](items []T, shares []float64) ShareMap {
	out := make(ShareMap, len(items))
	for i, it := range items {
		out[it.ID()] = math.Max(shares[i], 0)
	}
	return out
}
