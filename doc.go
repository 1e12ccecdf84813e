// Package antstar approximates the Euclidean travelling salesman problem with a
// time-boxed A* search over partial tours.
//
// The search is seeded with a nearest-neighbor tour and guided by one of three
// completion estimates:
//
//	mst     minimum spanning tree over the unvisited cities plus the two
//	        cheapest connections (an admissible lower bound)
//	aco     the best open path a short ant colony run finds through them
//	hybrid  a weighted blend of both whose weights adapt to which estimate
//	        keeps winning
//
// Subpackages:
//
//	matrix/        dense distance matrix and the Euclidean distance model
//	prim_kruskal/  MST lower bound (Kruskal with union-find, Prim cross-check)
//	aco/           pheromone colony: completion estimates and a standalone optimizer
//	heuristic/     strategy selection, hybrid weight adaptation, estimate cache
//	tsp/           A* driver, seeding, tour utilities, concurrent multi-mode solves
//	metrics/       Prometheus observer
//	tsplib/        TSPLIB NODE_COORD_SECTION reader
//	config/        YAML run configuration
//	cmd/antstar/   command-line interface
//
// Quick example:
//
//	cities := []tsp.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
//	res, err := tsp.Solve(ctx, cities, tsp.DefaultOptions(tsp.ModeHybrid))
//	// res.Tour == [0 1 2 3 0], res.Cost == 4
//
// Deadlines and cancellation are not errors: the best tour found so far is
// returned with Result.Termination set accordingly.
package antstar
