package partition

import "math"

// Locate finds the separator nearest to pointerX on a widget totalWidth
// units wide. Separator i sits at internal boundary i+1. The lowest index
// wins ties. ok is false when there are fewer than two items, the width is
// not positive, or the nearest separator is farther than maxDistance.
func Locate(pointerX, totalWidth float64, b Boundaries, maxDistance float64) (int, bool) {
	n := b.Items()
	if n < 2 || totalWidth <= 0 {
		return -1, false
	}

	best := -1
	bestDist := math.Inf(1)
	for i := 1; i < n; i++ {
		d := math.Abs(b[i]*totalWidth - pointerX)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}

	if best < 0 || bestDist > maxDistance {
		return -1, false
	}
	return best - 1, true
}
