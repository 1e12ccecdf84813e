// Package tsp - validation of cities, distance matrices and Options.
//
// All helpers are side-effect free and return sentinels from types.go; the
// offending field is appended with %w so errors.Is keeps working.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antstar/matrix"
)

// symTol is the structural tolerance for symmetry checks on caller matrices.
const symTol = 1e-9

// validateCities checks N ≥ 1 and finite coordinates.
//
// Complexity: O(N).
func validateCities(cities []City) error {
	if len(cities) == 0 {
		return ErrNoCities
	}
	var (
		i int
		c City
	)
	for i, c = range cities {
		if !finite(c.X) || !finite(c.Y) {
			return fmt.Errorf("%w: city %d", ErrNonFiniteCoordinate, i)
		}
	}

	return nil
}

// validateDist checks a caller-supplied matrix: square, n ≥ 1, zero diagonal,
// finite non-negative entries, symmetric within symTol. It returns n.
//
// Complexity: O(n²).
func validateDist(dist *matrix.Dense) (int, error) {
	if dist == nil {
		return 0, ErrNoCities
	}
	if dist.Rows() != dist.Cols() {
		return 0, ErrDimensionMismatch
	}
	var (
		n    = dist.Rows()
		i, j int
		w    float64
	)
	for i = 0; i < n; i++ {
		if dist.Get(i, i) != 0 {
			return 0, fmt.Errorf("%w: non-zero diagonal at %d", ErrInvalidMatrix, i)
		}
		for j = 0; j < n; j++ {
			w = dist.Get(i, j)
			if !finite(w) || w < 0 {
				return 0, fmt.Errorf("%w: entry (%d,%d)", ErrInvalidMatrix, i, j)
			}
		}
	}
	if !dist.IsSymmetric(symTol) {
		return 0, fmt.Errorf("%w: not symmetric", ErrInvalidMatrix)
	}

	return n, nil
}

// validateOptions checks every field that the selected mode reads.
//
// Complexity: O(1).
func validateOptions(o Options) error {
	if !o.Mode.Valid() {
		return ErrUnsupportedMode
	}
	switch {
	case o.TimeLimit < 0:
		return invalid("TimeLimit must be >= 0")
	case !finite(o.Slack) || o.Slack < 1:
		return invalid("Slack must be >= 1")
	case !finite(o.Eps) || o.Eps < 0:
		return invalid("Eps must be >= 0")
	case o.CacheClearEvery < 0 || o.CacheMaxEntries < 0:
		return invalid("cache policy must be >= 0")
	case o.TwoOptMaxIters < 0:
		return invalid("TwoOptMaxIters must be >= 0")
	case o.ProgressInterval < 0:
		return invalid("ProgressInterval must be >= 0")
	}
	if o.Mode.UsesColony() {
		if err := o.Colony.Validate(); err != nil {
			return invalid("Colony: " + err.Error())
		}
	}
	if err := o.heuristicConfig().Validate(); err != nil {
		return invalid("heuristic: " + err.Error())
	}

	return nil
}

func invalid(detail string) error { return fmt.Errorf("%w: %s", ErrInvalidOptions, detail) }

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
