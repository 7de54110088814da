// Package formulas provides the statistical primitives shared by the risk
// metrics and curve packages. All functions are thin wrappers around gonum
// with empty-input guards, so callers never have to special-case N=0.
package formulas

import (
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// StdDev calculates the sample standard deviation (N-1 denominator) of a
// slice of float64 values. Returns 0 for fewer than two observations, where
// the estimator is undefined.
func StdDev(data []float64) float64 {
	if len(data) < 2 {
		return 0
	}
	return stat.StdDev(data, nil)
}

// Skew calculates the bias-adjusted sample skewness of a slice of float64
// values. Returns 0 for fewer than three observations or for a constant
// series, where the estimator is undefined.
func Skew(data []float64) float64 {
	if len(data) < 3 {
		return 0
	}
	if StdDev(data) == 0 {
		return 0
	}
	return stat.Skew(data, nil)
}

// Quantile calculates the linearly-interpolated quantile of sorted data.
// The input must already be sorted in ascending order; p is a fraction in
// [0, 1] (e.g. 0.95 for the 95th percentile).
func Quantile(p float64, sortedAscending []float64) float64 {
	if len(sortedAscending) == 0 {
		return 0
	}
	return stat.Quantile(p, stat.LinInterp, sortedAscending, nil)
}

// CountPositive returns the number of strictly positive values in data.
func CountPositive(data []float64) int {
	count := 0
	for _, v := range data {
		if v > 0 {
			count++
		}
	}
	return count
}
