// Package aco - Ant Colony Optimization over a Euclidean distance matrix.
//
// Two uses share one pheromone model:
//
//   - EstimateCompletion(start, visited): one colony iteration that sends Ants
//     ants from start through every unvisited city (open path, no return leg) and
//     reports the best path length found. The A* driver uses this as a completion
//     estimate. It is NOT a lower bound; a single iteration may overshoot the true
//     optimum, so A* guided by it is not guaranteed optimal.
//   - Optimize(start, iterations): a standalone closed-tour colony that yields a
//     baseline tour for comparison with the search result.
//
// Model:
//
//	τ_ij  pheromone, symmetric, initialised to 1/n
//	η_ij  = 1/d_ij (desirability)
//	p(j)  ∝ τ_ij^α · η_ij^β over unvisited j (roulette wheel)
//	after each iteration: τ ← (1-ρ)·τ, then deposit Q/L on both (i,j) and (j,i)
//
// Degenerate input: a candidate at distance 0 (duplicate point) has infinite
// desirability; all such candidates share the choice uniformly. When every
// weight underflows to 0 or the sum is not finite the choice is uniform over the
// candidates. Construction therefore never stalls.
//
// Determinism: all randomness comes from the *rand.Rand handed to New.
// A Colony is single-goroutine; do not share it between concurrent solves.
package aco
