// Package prim_kruskal provides Kruskal's algorithm over a subset of a distance matrix.
package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/antstar/matrix"
)

// Kruskal returns the weight of the Minimum Spanning Tree over the cities in subset,
// using dist for edge weights. ws may be nil; passing a Workspace reuses its buffers.
//
// Error Conditions:
//   - ErrNilMatrix     : dist is nil.
//   - ErrInvalidSubset : index out of range or duplicated.
//
// Steps:
//  1. Validate; |S| ≤ 1 → 0.
//  2. Enumerate all |S|(|S|-1)/2 pairs with subset-local endpoints.
//  3. Sort ascending by weight, ties by (a, b) so the accepted edge set is deterministic.
//  4. Union-find over local indices; accumulate accepted weights; stop at |S|-1 edges.
//
// Complexity: O(S² log S) time, O(S²) memory.
func Kruskal(dist *matrix.Dense, subset []int, ws *Workspace) (float64, error) {
	ws, err := prepare(dist, subset, ws)
	if err != nil {
		return 0, err
	}
	var s = len(subset)
	if s <= 1 {
		return 0, nil
	}

	// 2. Collect the complete graph over the subset.
	var (
		i, j  int
		row   []float64
		edges = ws.edges[:0]
	)
	for i = 0; i < s; i++ {
		row = dist.Row(subset[i])
		for j = i + 1; j < s; j++ {
			edges = append(edges, edge{w: row[subset[j]], a: int32(i), b: int32(j)})
		}
	}
	ws.edges = edges

	// 3. Deterministic ascending order.
	sort.Slice(edges, func(x, y int) bool {
		if edges[x].w != edges[y].w {
			return edges[x].w < edges[y].w
		}
		if edges[x].a != edges[y].a {
			return edges[x].a < edges[y].a
		}
		return edges[x].b < edges[y].b
	})

	// 4. Grow the forest.
	ws.dsu.Reset(s)
	var (
		total    float64
		accepted int
		e        edge
	)
	for _, e = range edges {
		if ws.dsu.Union(int(e.a), int(e.b)) {
			total += e.w
			accepted++
			if accepted == s-1 {
				break
			}
		}
	}

	return total, nil
}
