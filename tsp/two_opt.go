// Package tsp - 2-opt local search used to polish the search result.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour:
//
//	Δ = d(a,c) + d(b,d) − d(a,b) − d(c,d),  a=T[i−1], b=T[i], c=T[k], d=T[k+1]
//
// and reverses T[i..k] whenever Δ < −eps. The start vertex stays in place.
//
// Complexity: O(n²) candidate checks per pass; a pass restarts after every
// accepted move. O(n) extra space for the working copy.
package tsp

import (
	"context"

	"github.com/katalvlaran/antstar/matrix"
)

// ctxCheckMask sets how often the scan polls the context (every 2048 candidates).
const ctxCheckMask = 2047

// TwoOpt improves tour (closed, Hamiltonian) until no move beats eps, maxIters
// moves were accepted (0 = unlimited) or ctx is done. It returns a new tour with
// the same start and its cost; the input is not modified. Stopping on ctx is
// not an error: the best tour so far is returned.
//
// Errors: ErrDimensionMismatch for an invalid tour or matrix.
func TwoOpt(ctx context.Context, dist *matrix.Dense, tour []int, eps float64, maxIters int) ([]int, float64, error) {
	if dist == nil || len(tour) < 2 {
		return nil, 0, ErrDimensionMismatch
	}
	n := len(tour) - 1
	if n != dist.Size() {
		return nil, 0, ErrDimensionMismatch
	}
	if err := ValidateTour(tour, n, tour[0]); err != nil {
		return nil, 0, err
	}
	if eps < 0 {
		eps = 0
	}

	cur := CopyTour(tour)
	cost := pathCost(dist, cur)

	var (
		accepted int
		step     int
		improved bool
		a, b     int
		c, d     int
		i, k     int
		delta    float64
	)
	for {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				step++
				if step&ctxCheckMask == 0 && ctx.Err() != nil {
					return cur, round1e9(cost), nil
				}

				a, b = cur[i-1], cur[i]
				c, d = cur[k], cur[k+1]
				delta = dist.Get(a, c) + dist.Get(b, d) - dist.Get(a, b) - dist.Get(c, d)
				if delta >= -eps {
					continue
				}
				if err := reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, err
				}
				cost += delta
				accepted++
				improved = true
				if maxIters > 0 && accepted >= maxIters {
					return cur, round1e9(pathCost(dist, cur)), nil
				}

				break scan
			}
		}
		if !improved {
			break
		}
	}

	// Recompute to drop the drift accumulated by incremental deltas.
	return cur, round1e9(pathCost(dist, cur)), nil
}
