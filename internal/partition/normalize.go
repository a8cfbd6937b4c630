package partition

import "math"

// Normalize derives a valid share map for items from raw input.
// Missing, negative and non-finite values count as 0. When nothing positive
// remains every item gets 1/n. Ids in raw that are not items are dropped.
func Normalize[T Item](items []T, raw ShareMap) ShareMap {
	out := make(ShareMap, len(items))
	if len(items) == 0 {
		return out
	}

	var sum float64
	for _, it := range items {
		v := raw[it.ID()]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
		}
		out[it.ID()] = v
		sum += v
	}

	if sum <= 0 {
		return Uniform(items)
	}
	for id, v := range out {
		out[id] = v / sum
	}
	return out
}

// Uniform gives every item an equal share.
func Uniform[T Item](items []T) ShareMap {
	out := make(ShareMap, len(items))
	if len(items) == 0 {
		return out
	}
	share := 1 / float64(len(items))
	for _, it := range items {
		out[it.ID()] = share
	}
	return out
}

// Ordered reads the shares of m in item order. Missing ids read as 0.
func Ordered[T Item](items []T, m ShareMap) []float64 {
	shares := make([]float64, len(items))
	for i, it := range items {
		shares[i] = m[it.ID()]
	}
	return shares
}

// BoundariesOf normalizes m and returns its cut points in item order.
func BoundariesOf[T Item](items []T, m ShareMap) Boundaries {
	return ToBoundaries(Ordered(items, Normalize(items, m)))
}
