// Package prim_kruskal provides dense Prim over a subset of a distance matrix.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/antstar/matrix"
)

// Prim returns the weight of the Minimum Spanning Tree over the cities in subset,
// growing the tree from subset[0] with a key array instead of a heap. On a
// complete graph that is the O(S²) optimum.
//
// Error Conditions match Kruskal.
//
// Steps:
//  1. Validate; |S| ≤ 1 → 0.
//  2. key[k] = d(subset[0], subset[k]); in[0] = true.
//  3. Repeat |S|-1 times: pick the cheapest outside vertex (lowest index on ties),
//     add its key to the total, relax the keys of the remaining outside vertices.
//
// Complexity: O(S²) time, O(S) memory.
func Prim(dist *matrix.Dense, subset []int, ws *Workspace) (float64, error) {
	ws, err := prepare(dist, subset, ws)
	if err != nil {
		return 0, err
	}
	var s = len(subset)
	if s <= 1 {
		return 0, nil
	}

	if cap(ws.key) < s {
		ws.key = make([]float64, s)
		ws.in = make([]bool, s)
	}
	key := ws.key[:s]
	in := ws.in[:s]

	var (
		k   int
		row = dist.Row(subset[0])
	)
	for k = 0; k < s; k++ {
		key[k] = row[subset[k]]
		in[k] = false
	}
	in[0] = true

	var (
		total float64
		step  int
		best  int
		bestW float64
		w     float64
	)
	for step = 1; step < s; step++ {
		best, bestW = -1, math.Inf(1)
		for k = 0; k < s; k++ {
			if !in[k] && key[k] < bestW {
				best, bestW = k, key[k]
			}
		}
		in[best] = true
		total += bestW

		row = dist.Row(subset[best])
		for k = 0; k < s; k++ {
			if in[k] {
				continue
			}
			if w = row[subset[k]]; w < key[k] {
				key[k] = w
			}
		}
	}

	return total, nil
}
