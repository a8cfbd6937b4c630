package partition

// Boundaries holds the N+1 cumulative cut points of an N item partition.
// b[0] is 0, b[N] is 1 and b[i]-b[i-1] is the share of item i-1.
type Boundaries []float64

// ToBoundaries accumulates shares into cut points, pinning both ends.
// An empty input yields the single boundary 0.
func ToBoundaries(shares []float64) Boundaries {
	n := len(shares)
	b := make(Boundaries, n+1)
	for i, s := range shares {
		b[i+1] = b[i] + s
	}
	if n > 0 {
		b[n] = 1
	}
	return b
}

// ToShares returns the consecutive differences of the cut points.
func ToShares(b Boundaries) []float64 {
	if len(b) < 2 {
		return []float64{}
	}
	shares := make([]float64, len(b)-1)
	for i := 1; i < len(b); i++ {
		shares[i-1] = b[i] - b[i-1]
	}
	return shares
}

// Items returns the number of items the boundaries describe.
func (b Boundaries) Items() int {
	return max(len(b)-1, 0)
}
