// Package tsp - cost utilities.
//
// TourCost sums the edges of a closed tour on a *matrix.Dense with strict
// shape checks and stabilises the sum to 1e-9 so equal tours compare equal
// across platforms.
package tsp

import (
	"math"

	"github.com/katalvlaran/antstar/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost returns Σ d(tour[i], tour[i+1]) rounded to 1e-9.
//
// Contract: len(tour) ≥ 2 and every index in [0, n). The tour does not have to
// be Hamiltonian; use ValidateTour for that.
//
// Errors: ErrDimensionMismatch.
// Complexity: O(len(tour)).
func TourCost(dist *matrix.Dense, tour []int) (float64, error) {
	if dist == nil || len(tour) < 2 || dist.Rows() != dist.Cols() {
		return 0, ErrDimensionMismatch
	}

	var (
		n    = dist.Rows()
		sum  float64
		i    int
		u, v int
	)
	for i = 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		sum += dist.Get(u, v)
	}

	return round1e9(sum), nil
}

// pathCost sums a pre-validated closed tour without rounding. Hot-path helper.
func pathCost(dist *matrix.Dense, tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += dist.Get(tour[i], tour[i+1])
	}

	return sum
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
