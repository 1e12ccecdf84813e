// Package heuristic estimates the remaining cost of completing a partial tour.
//
// An Evaluator answers h(current, visited): the cost to leave current, visit
// every city not in visited and (implicitly) stop. Three strategies exist:
//
//	ModeMST    MST(unvisited) + min_u d(current, u); one unvisited city gives
//	           d(current, u) exactly. Admissible for the open-path completion.
//	ModeACO    one ant-colony iteration from current (see package aco). Not
//	           admissible.
//	ModeHybrid wMST·MST + wACO·ACO with wMST + wACO = 1; weights adapt every
//	           AdaptEvery computed evaluations toward the component that has
//	           been "winning" and stay inside [WeightMin, WeightMax].
//
// Results are memoised in a Cache keyed by (current, visited). ACO estimates
// are stochastic and the hybrid weights drift, so a cached value is the value
// first computed for that key; clearing the cache can change later answers in
// those modes but never in MST mode.
//
// An Evaluator is single-goroutine and scoped to one solve.
package heuristic
