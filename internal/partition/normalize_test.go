package partition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	items := makeItems(3)

	tests := []struct {
		name string
		raw  ShareMap
		want []float64
	}{
		{
			name: "nil input falls back to uniform",
			raw:  nil,
			want: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
		},
		{
			name: "zero sum falls back to uniform",
			raw:  ShareMap{"item0": 0, "item1": 0, "item2": 0},
			want: []float64{1.0 / 3, 1.0 / 3, 1.0 / 3},
		},
		{
			name: "scaled to sum one",
			raw:  ShareMap{"item0": 2, "item1": 1, "item2": 1},
			want: []float64{0.5, 0.25, 0.25},
		},
		{
			name: "missing item reads as zero",
			raw:  ShareMap{"item0": 1, "item2": 3},
			want: []float64{0.25, 0, 0.75},
		},
		{
			name: "negative and NaN read as zero",
			raw:  ShareMap{"item0": -4, "item1": math.NaN(), "item2": 2},
			want: []float64{0, 0, 1},
		},
		{
			name: "unknown ids are dropped",
			raw:  ShareMap{"item0": 1, "item1": 1, "item2": 2, "ghost": 100},
			want: []float64{0.25, 0.25, 0.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(items, tt.raw)
			assertShares(t, items, got, tt.want...)
			assert.InDelta(t, 1, got.Sum(), 1e-12)
		})
	}
}

func TestNormalize_NoItems(t *testing.T) {
	got := Normalize([]testItem{}, ShareMap{"item0": 1})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	items := makeItems(2)
	raw := ShareMap{"item0": 3, "item1": 1}

	Normalize(items, raw)

	assert.Equal(t, ShareMap{"item0": 3, "item1": 1}, raw)
}

func TestUniform(t *testing.T) {
	items := makeItems(4)
	assertShares(t, items, Uniform(items), 0.25, 0.25, 0.25, 0.25)
	assert.Empty(t, Uniform([]testItem{}))
}

func TestOrdered(t *testing.T) {
	items := makeItems(3)
	got := Ordered(items, ShareMap{"item2": 0.7, "item0": 0.3})
	assert.Equal(t, []float64{0.3, 0, 0.7}, got)
}

func TestBoundariesOf(t *testing.T) {
	items := makeItems(2)
	got := BoundariesOf(items, ShareMap{"item0": 3, "item1": 1})
	assert.InDeltaSlice(t, []float64{0, 0.75, 1}, []float64(got), 1e-12)
}
