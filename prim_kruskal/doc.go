// Package prim_kruskal computes the Minimum Spanning Tree (MST) weight of a subset
// of cities taken from a complete Euclidean distance matrix.
//
// What & Why
//
//   - The A* TSP driver needs a lower bound on the cost of visiting every still
//     unvisited city. The MST over those cities is that bound: any open path through
//     them is itself a spanning tree, so it cannot be cheaper than the minimum one.
//   - The bound is recomputed for every expanded search state, so both algorithms
//     work on plain index slices over a *matrix.Dense and accept a reusable
//     Workspace to keep the hot loop allocation-free.
//
// Algorithms Provided
//
//   - Kruskal(dist, subset, ws) (float64, error)
//     Enumerate the |S|(|S|-1)/2 pairwise edges, sort ascending (weight, then
//     endpoint indices), merge components with a DisjointSet (path compression +
//     union by rank) and stop after |S|-1 accepted edges.
//     Complexity: O(S² log S) time, O(S²) space for the edge buffer.
//
//   - Prim(dist, subset, ws) (float64, error)
//     Dense Prim with a key array: O(S²) time, O(S) space. Produces the same
//     weight as Kruskal up to floating-point summation order.
//
//   - Compute(dist, subset, ws, opts) dispatches by MSTOptions.Method.
//
// Error Conditions
//
//   - ErrNilMatrix      : dist is nil.
//   - ErrInvalidSubset  : an index is outside [0, n) or appears twice.
//   - ErrUnknownMethod  : Compute got a method other than MethodKruskal/MethodPrim.
//
// |S| ≤ 1 is not an error: the tree is empty and its weight is 0.
package prim_kruskal
