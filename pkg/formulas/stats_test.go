package formulas

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
}

func TestStdDev(t *testing.T) {
	assert.Equal(t, 0.0, StdDev(nil))
	assert.Equal(t, 0.0, StdDev([]float64{5}), "sample estimator undefined for a single value")
	assert.InDelta(t, math.Sqrt2, StdDev([]float64{2, 4}), 1e-12)
}

func TestSkew(t *testing.T) {
	assert.Equal(t, 0.0, Skew([]float64{1, 2}))
	assert.Equal(t, 0.0, Skew([]float64{3, 3, 3, 3}), "constant series has no defined skewness")
	assert.Greater(t, Skew([]float64{0, 0, 0, 10}), 0.0)
	assert.Less(t, Skew([]float64{10, 10, 10, 0}), 0.0)
}

func TestQuantile(t *testing.T) {
	sorted := make([]float64, 100)
	for i := range sorted {
		sorted[i] = float64(i + 1)
	}

	assert.Equal(t, 0.0, Quantile(0.5, nil))
	assert.InDelta(t, 95, Quantile(0.95, sorted), 1e-9)
	assert.InDelta(t, 99, Quantile(0.99, sorted), 1e-9)
	assert.Equal(t, 100.0, Quantile(1, sorted))
}

func TestCountPositive(t *testing.T) {
	assert.Equal(t, 0, CountPositive(nil))
	assert.Equal(t, 2, CountPositive([]float64{-1, 0, 0.5, 3}))
}
