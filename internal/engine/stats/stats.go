// Package stats computes the averages and mean absolute deviation used to
// judge how evenly a spirit team's profile is spread across stat axes.
//
// Every function is pure. Empty input yields NaN rather than an error, which
// callers treat as the "nothing chosen" signal.
package stats

import "math"

// Mean returns the arithmetic mean of values, or NaN when values is empty
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// MeanAbsoluteDeviation returns the mean of |v - mean| over values, or NaN
// when values is empty
func MeanAbsoluteDeviation(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	mean := Mean(values)
	deviations := make([]float64, len(values))
	for i, v := range values {
		deviations[i] = math.Abs(v - mean)
	}
	return Mean(deviations)
}

// AttributeAverage returns the mean of one attribute across items
func AttributeAverage[T any](items []T, attribute func(T) float64) float64 {
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = attribute(item)
	}
	return Mean(values)
}

// AxisMeans returns the per-axis mean of a set of equally sized profiles.
// With no profiles every axis is NaN; the axis count is taken from width.
func AxisMeans(profiles [][]float64, width int) []float64 {
	means := make([]float64, width)
	for axis := range means {
		means[axis] = AttributeAverage(profiles, func(p []float64) float64 {
			return p[axis]
		})
	}
	return means
}

// ProfileMAD is the MAD of the per-axis means of profiles. It measures the
// spread of the group's average profile, not the variance of one axis.
func ProfileMAD(profiles [][]float64) float64 {
	if len(profiles) == 0 {
		return math.NaN()
	}
	return MeanAbsoluteDeviation(AxisMeans(profiles, len(profiles[0])))
}

// ProjectedMAD returns ProfileMAD as it would be with candidate added.
// Neither argument is modified.
func ProjectedMAD(profiles [][]float64, candidate []float64) float64 {
	projected := make([][]float64, 0, len(profiles)+1)
	projected = append(projected, profiles...)
	projected = append(projected, candidate)
	return ProfileMAD(projected)
}
