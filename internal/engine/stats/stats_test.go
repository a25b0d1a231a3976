package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/island-randomizer/internal/engine/stats"
)

func TestMean(t *testing.T) {
	t.Run("averages values", func(t *testing.T) {
		assert.InDelta(t, 2.5, stats.Mean([]float64{1, 2, 3, 4}), 1e-12)
	})

	t.Run("empty input is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(stats.Mean(nil)))
	})
}

func TestMeanAbsoluteDeviation(t *testing.T) {
	testCases := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"equal values", []float64{7, 7, 7, 7, 7}, 0},
		{"two spirit team means", []float64{10, 10, 0, 0, 0}, 4.8},
		{"symmetric spread", []float64{1, 3}, 1},
		{"single value", []float64{42}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, stats.MeanAbsoluteDeviation(tc.values), 1e-12)
		})
	}

	t.Run("empty input is NaN", func(t *testing.T) {
		assert.True(t, math.IsNaN(stats.MeanAbsoluteDeviation([]float64{})))
	})
}

func TestMeanAbsoluteDeviation_NonNegative(t *testing.T) {
	inputs := [][]float64{
		{-5, 3, 12.5},
		{0.1, 0.2, 0.3, 19.9},
		{-1, -1, -1},
		{20, 6.5, 10, 2, 7.5},
	}

	for _, values := range inputs {
		mad := stats.MeanAbsoluteDeviation(values)
		assert.GreaterOrEqual(t, mad, 0.0)
	}

	assert.Zero(t, stats.MeanAbsoluteDeviation([]float64{3.5, 3.5}))
	assert.Greater(t, stats.MeanAbsoluteDeviation([]float64{3.5, 3.6}), 0.0)
}

func TestAttributeAverage(t *testing.T) {
	type item struct{ value float64 }
	items := []item{{2}, {4}, {9}}

	avg := stats.AttributeAverage(items, func(i item) float64 { return i.value })
	assert.InDelta(t, 5.0, avg, 1e-12)

	assert.True(t, math.IsNaN(stats.AttributeAverage([]item{}, func(i item) float64 { return i.value })))
}

func TestProfileMAD(t *testing.T) {
	a := []float64{20, 0, 0, 0, 0}
	b := []float64{0, 20, 0, 0, 0}

	// per-axis means [10,10,0,0,0], overall mean 4 -> (6+6+4+4+4)/5
	assert.InDelta(t, 4.8, stats.ProfileMAD([][]float64{a, b}), 1e-12)
	assert.True(t, math.IsNaN(stats.ProfileMAD(nil)))
}

func TestProjectedMAD(t *testing.T) {
	a := []float64{20, 0, 0, 0, 0}
	b := []float64{0, 20, 0, 0, 0}
	chosen := [][]float64{a}

	projected := stats.ProjectedMAD(chosen, b)

	require.Len(t, chosen, 1, "chosen set must not grow")
	assert.Equal(t, []float64{0, 20, 0, 0, 0}, b)
	assert.InDelta(t, stats.ProfileMAD([][]float64{a, b}), projected, 1e-12)

	t.Run("projection onto empty set is the candidate's own spread", func(t *testing.T) {
		assert.InDelta(t, stats.MeanAbsoluteDeviation(a), stats.ProjectedMAD(nil, a), 1e-12)
	})
}
