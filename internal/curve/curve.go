// Package curve builds empirical exceedance-probability (EP) curves from
// treaty-layer loss sequences.
package curve

import (
	"sort"
)

// Point is one entry of the EP curve: a layer loss and the empirical
// return period (in years) at which that loss is equaled or exceeded.
type Point struct {
	ReturnPeriod float64 `json:"return_period"`
	Loss         float64 `json:"loss"`
}

// Curve is an EP curve ordered by descending loss, one point per simulated
// year. The first point is the rarest (largest) loss with return period N,
// the last the most common with return period 1.
type Curve []Point

// Build ranks layerLosses in descending order and assigns rank i
// (0-indexed) the return period N/(i+1). Output length always equals the
// input length; N=1 yields the single point (1, loss). The sort is stable,
// so return-period assignment is deterministic for a fixed input.
func Build(layerLosses []float64) Curve {
	n := len(layerLosses)
	sorted := make([]float64, n)
	copy(sorted, layerLosses)
	sort.Stable(sort.Reverse(sort.Float64Slice(sorted)))

	points := make(Curve, n)
	for i, loss := range sorted {
		points[i] = Point{
			ReturnPeriod: float64(n) / float64(i+1),
			Loss:         loss,
		}
	}
	return points
}
