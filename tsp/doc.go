// Package tsp solves the Euclidean Travelling Salesman Problem by time-boxed A*
// search over partial tours.
//
// A search state is (current city, visited set, partial path, g, h, f). The
// search starts from city 0, keeps the best complete tour found so far as the
// incumbent, and prunes any state that cannot beat it. The heuristic h is one of:
//
//   - ModeMST: MST over the unvisited cities plus the cheapest link to them.
//     A lower bound; pops are pruned with a 10% slack (f ≥ 1.1·incumbent).
//   - ModeACO: one ant-colony iteration from the current city. Not a lower
//     bound; pruning is strict.
//   - ModeHybrid: an adaptive weighted blend of both. Strict pruning.
//
// The incumbent is seeded by the nearest-neighbor tour, so every call returns a
// valid closed tour even when the time limit expires immediately. Results are
// approximate in general: the time limit, the slack and the non-admissible
// estimators all trade optimality for speed.
//
// Entry points:
//   - Solve / SolveMatrix / SolveMST / SolveACO / SolveHybrid: one search.
//   - SolveAll / SolveAsync: isolated concurrent searches.
//   - NearestNeighbor, TwoOpt, TourCost, ValidateTour: standalone utilities.
//
// Determinism: MST mode is fully deterministic for a given input. ACO and Hybrid
// draw from a generator seeded by Options.Seed, so a fixed seed reproduces a run
// as long as the time limit does not cut it short at a different point.
//
// Concurrency: a single search is single-threaded and lock-free. Searches share
// nothing; SolveAll gives each mode its own matrix, colony, cache and RNG stream.
package tsp
