package partition

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdate_SimpleMode(t *testing.T) {
	items := makeItems(3)
	c := Constraints{MinShare: 0.1}

	tests := []struct {
		name      string
		separator int
		target    float64
		want      []float64
	}{
		{
			name:      "moves only the adjacent pair",
			separator: 0,
			target:    0.5,
			want:      []float64{0.5, 1.0 / 6, 1.0 / 3},
		},
		{
			name:      "clamps below the left minimum",
			separator: 0,
			target:    -1,
			want:      []float64{0.1, 2.0/3 - 0.1, 1.0 / 3},
		},
		{
			name:      "clamps above the right minimum",
			separator: 1,
			target:    0.99,
			want:      []float64{1.0 / 3, 0.9 - 1.0/3, 0.1},
		},
		{
			name:      "does not cascade into the far item",
			separator: 0,
			target:    0.9,
			want:      []float64{2.0/3 - 0.1, 0.1, 1.0 / 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := Update(items, Uniform(items), tt.separator, tt.target, c)
			require.True(t, applied)
			assertShares(t, items, got, tt.want...)
			assert.InDelta(t, 1, got.Sum(), Tolerance)
		})
	}
}

func TestUpdate_SimpleModeDegenerateRange(t *testing.T) {
	items := makeItems(4)
	current := sharesOf(items, 0.3, 0.02, 0.08, 0.6)

	// The middle pair spans 0.1, less than two minimums of 0.1.
	got, applied := Update(items, current, 1, 0.31, Constraints{MinShare: 0.1})

	require.True(t, applied)
	assertShares(t, items, got, 0.3, 0.05, 0.05, 0.6)
}

func TestUpdate_PushCascade(t *testing.T) {
	items := makeItems(4)
	c := Constraints{MinShare: 0.1, EnablePush: true}

	got, applied := Update(items, Uniform(items), 1, 0.8, c)

	require.True(t, applied)
	assertShares(t, items, got, 0.25, 0.55, 0.1, 0.1)
	assert.InDelta(t, 1, got.Sum(), 1e-12)

	b := BoundariesOf(items, got)
	assert.InDeltaSlice(t, []float64{0, 0.25, 0.8, 0.9, 1}, []float64(b), 1e-9)
}

func TestUpdate_PushCascadeLeft(t *testing.T) {
	items := makeItems(4)
	c := Constraints{MinShare: 0.1, EnablePush: true}

	got, applied := Update(items, Uniform(items), 1, 0.15, c)

	require.True(t, applied)
	assertShares(t, items, got, 0.1, 0.1, 0.55, 0.25)
}

func TestUpdate_PushWithinRangeLeavesNeighbors(t *testing.T) {
	items := makeItems(4)
	c := Constraints{MinShare: 0.1, EnablePush: true}

	got, applied := Update(items, Uniform(items), 1, 0.6, c)

	require.True(t, applied)
	assertShares(t, items, got, 0.25, 0.35, 0.15, 0.25)
}

func TestUpdate_PushAtEdges(t *testing.T) {
	items := makeItems(10)
	c := Constraints{MinShare: 0.1, EnablePush: true}

	for _, target := range []float64{-5, 0, 0.001, 0.999, 1, 5} {
		for sep := range len(items) - 1 {
			got, applied := Update(items, Uniform(items), sep, target, c)
			require.True(t, applied)
			assert.InDelta(t, 1, got.Sum(), Tolerance)
			for _, it := range items {
				assert.InDelta(t, 0.1, got[it.ID()], 1e-9,
					"separator %d target %v item %s", sep, target, it.ID())
			}
		}
	}
}

func TestUpdate_PushDragToLeftEdgeKeepsMinimum(t *testing.T) {
	items := makeItems(3)
	current := sharesOf(items, 0.4, 0.2, 0.4)
	c := Constraints{MinShare: 0.2, EnablePush: true}

	got, applied := Update(items, current, 1, 0.1, c)

	require.True(t, applied)
	assertShares(t, items, got, 0.2, 0.2, 0.6)
}

func TestUpdate_Infeasible(t *testing.T) {
	items := makeItems(5)
	current := Uniform(items)
	before := current.Clone()

	for _, push := range []bool{true, false} {
		got, applied := Update(items, current, 2, 0.9, Constraints{MinShare: 0.25, EnablePush: push})

		assert.False(t, applied)
		assert.Equal(t, before, got)
		assert.Equal(t, before, current)
	}
}

func TestUpdate_InvalidInput(t *testing.T) {
	items := makeItems(3)
	current := Uniform(items)
	c := DefaultConstraints()

	tests := []struct {
		name      string
		items     []testItem
		separator int
		target    float64
	}{
		{"negative separator", items, -1, 0.5},
		{"separator past the last pair", items, 2, 0.5},
		{"single item", items[:1], 0, 0.5},
		{"no items", nil, 0, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := Update(tt.items, current, tt.separator, tt.target, c)
			assert.False(t, applied)
			assert.Equal(t, current, got)
		})
	}
}

func TestUpdate_ReplacesEveryEntry(t *testing.T) {
	items := makeItems(3)
	current := ShareMap{"item0": 2, "item1": 1, "item2": 1, "stale": 9}

	got, applied := Update(items, current, 1, 0.8, DefaultConstraints())

	require.True(t, applied)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, "stale")
	assert.Equal(t, 9.0, current["stale"], "input must not be modified")
}

func TestUpdate_Idempotent(t *testing.T) {
	items := makeItems(6)

	for _, push := range []bool{true, false} {
		c := Constraints{MinShare: 0.08, EnablePush: push}
		for sep := range len(items) - 1 {
			for _, target := range []float64{-0.3, 0.05, 0.33, 0.5, 0.71, 0.97, 1.4} {
				once, _ := Update(items, Uniform(items), sep, target, c)
				twice, _ := Update(items, once, sep, target, c)
				for _, it := range items {
					assert.InDelta(t, once[it.ID()], twice[it.ID()], 1e-9,
						"push=%v separator=%d target=%v", push, sep, target)
				}
			}
		}
	}
}

func TestUpdate_SumInvariantUnderRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	minShares := []float64{0.01, 0.05, 0.1, 0.2}

	for n := 1; n <= 50; n++ {
		items := makeItems(n)
		for _, minShare := range minShares {
			if minShare*float64(n) > 1 {
				continue
			}
			for _, push := range []bool{true, false} {
				c := Constraints{MinShare: minShare, EnablePush: push}
				shares := Uniform(items)
				for range 25 {
					if n > 1 {
						sep := rng.IntN(n - 1)
						target := rng.Float64()*1.4 - 0.2
						shares, _ = Update(items, shares, sep, target, c)
					}
					require.True(t, Valid(items, shares), "n=%d min=%v push=%v", n, minShare, push)
					for _, it := range items {
						require.GreaterOrEqual(t, shares[it.ID()], minShare-1e-9,
							"n=%d min=%v push=%v item=%s", n, minShare, push, it.ID())
					}
				}
			}
		}
	}
}

func TestPushWithin_PassLimit(t *testing.T) {
	const minShare = 0.1
	uniform := func() Boundaries { return Boundaries{0, 0.25, 0.5, 0.75, 1} }

	tests := []struct {
		name   string
		passes int
		want   []float64
	}{
		// The first pass already lands on the fixed point but cannot
		// confirm it, so the limit is hit.
		{"single pass", 1, []float64{0, 0.25, 0.8, 0.9, 1}},
		// Without any pass the target is only clamped into [0,1].
		{"no pass", 0, []float64{0, 0.25, 0.8, 0.75, 1}},
		{"default limit", 8, []float64{0, 0.25, 0.8, 0.9, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pushWithin(uniform(), 2, 0.8, minShare, tt.passes)
			assert.InDeltaSlice(t, tt.want, []float64(got), 1e-9)
		})
	}
}

func TestPushWithin_LimitKeepsTargetInRange(t *testing.T) {
	// n=3, min 0.2: the pre-clamp pulls a far-left target up to 0.4, and one
	// pass pushes boundary 1 down to hold the minimum.
	got := pushWithin(Boundaries{0, 0.4, 0.6, 1}, 2, 0.1, 0.2, 1)

	assert.InDeltaSlice(t, []float64{0, 0.2, 0.4, 1}, []float64(got), 1e-9)
	shares := ToShares(got)
	for i, s := range shares {
		assert.GreaterOrEqual(t, s, 0.2-1e-9, "share %d", i)
	}
}

func TestCompensate(t *testing.T) {
	tests := []struct {
		name   string
		shares []float64
		want   []float64
	}{
		{"residual goes to the last share", []float64{0.3, 0.3, 0.3}, []float64{0.3, 0.3, 0.4}},
		{"excess comes off the last share", []float64{0.5, 0.3, 0.3}, []float64{0.5, 0.3, 0.2}},
		{"drift within tolerance is kept", []float64{0.5, 0.49995}, []float64{0.5, 0.49995}},
		{"empty", []float64{}, []float64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			compensate(tt.shares)
			assert.InDeltaSlice(t, tt.want, tt.shares, 1e-12)
		})
	}
}
