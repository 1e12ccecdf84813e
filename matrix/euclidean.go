// SPDX-License-Identifier: MIT

// Package matrix - Euclidean distance model.
//
// NewEuclidean converts planar points into the all-pairs distance matrix used by
// every solver component. Only the upper triangle is computed; the lower triangle
// is a mirror, so the result is exactly symmetric (not merely within tolerance)
// and the diagonal is exactly zero.
package matrix

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// NewEuclidean builds an n×n matrix with d[i][j] = ‖p_i − p_j‖₂.
//
// Errors:
//   - ErrInvalidDimensions if len(points) == 0.
//   - ErrNaNInf if any coordinate is NaN or ±Inf.
//
// Complexity: O(n²) time and space.
func NewEuclidean(points []r2.Vec) (*Dense, error) {
	var n = len(points)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	var i int
	for i = 0; i < n; i++ {
		if !finite(points[i].X) || !finite(points[i].Y) {
			return nil, ErrNaNInf
		}
	}

	d, err := NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		j    int
		dist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist = r2.Norm(r2.Sub(points[i], points[j]))
			d.data[i*n+j] = dist
			d.data[j*n+i] = dist
		}
	}

	return d, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
