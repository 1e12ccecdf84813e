package tsp

import (
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/antstar/matrix"
)

// NearestNeighbor builds the greedy tour from start: repeatedly move to the
// closest unvisited city (lowest index on ties), then return to start.
//
// The returned tour has length n+1 and the cost is the exact edge sum.
// n == 1 yields [start, start] with cost 0.
//
// Errors: ErrDimensionMismatch (nil or non-square), ErrStartOutOfRange.
// Complexity: O(n²) time, O(n) space.
func NearestNeighbor(dist *matrix.Dense, start int) ([]int, float64, error) {
	if dist == nil || dist.Rows() != dist.Cols() {
		return nil, 0, ErrDimensionMismatch
	}
	n := dist.Size()
	if start < 0 || start >= n {
		return nil, 0, ErrStartOutOfRange
	}

	var (
		visited = bitset.New(uint(n))
		tour    = make([]int, 0, n+1)
		cur     = start
		cost    float64
		step, j int
		next    int
		best    float64
		row     []float64
	)
	visited.Set(uint(start))
	tour = append(tour, start)

	for step = 1; step < n; step++ {
		row = dist.Row(cur)
		next, best = -1, math.Inf(1)
		for j = 0; j < n; j++ {
			if !visited.Test(uint(j)) && row[j] < best {
				next, best = j, row[j]
			}
		}
		visited.Set(uint(next))
		tour = append(tour, next)
		cost += best
		cur = next
	}
	cost += dist.Get(cur, start)
	tour = append(tour, start)

	return tour, cost, nil
}
