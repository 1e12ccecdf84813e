package aco

import "math"

// Optimize runs a closed-tour colony for the given number of iterations and
// returns the best tour found, rotated to begin and end at start, with its cost.
//
// Each ant starts at a random city and builds a full Hamiltonian cycle. After
// every iteration the pheromone evaporates and every ant deposits Q/L on the
// edges of its cycle (closing edge included). The reported cost is the exact
// sum over the returned tour.
//
// Errors: ErrStartOutOfRange, ErrInvalidIterations.
// Complexity: O(iterations · Ants · n²).
func (c *Colony) Optimize(start, iterations int) ([]int, float64, error) {
	if start < 0 || start >= c.n {
		return nil, 0, ErrStartOutOfRange
	}
	if iterations < 1 {
		return nil, 0, ErrInvalidIterations
	}
	if c.n == 1 {
		return []int{start, start}, 0, nil
	}

	var (
		all      = make([]int, c.n)
		tours    = make([][]int, c.cfg.Ants)
		lengths  = make([]float64, c.cfg.Ants)
		bestTour []int
		bestCost = math.Inf(1)
		it, ant  int
		origin   int
		length   float64
	)
	for i := range all {
		all[i] = i
	}

	for it = 0; it < iterations; it++ {
		for ant = 0; ant < c.cfg.Ants; ant++ {
			origin = c.rng.Intn(c.n)
			length = c.walk(origin, without(all, origin))
			length += c.dist.Get(c.path[len(c.path)-1], origin)
			c.path = append(c.path, origin)

			tours[ant] = append(tours[ant][:0], c.path...)
			lengths[ant] = length
			if length < bestCost {
				bestCost = length
				bestTour = append(bestTour[:0], c.path...)
			}
		}

		c.evaporate()
		for ant = 0; ant < c.cfg.Ants; ant++ {
			c.depositPath(tours[ant], lengths[ant])
		}
	}

	tour := rotateClosed(bestTour, start)

	return tour, closedCost(c, tour), nil
}

// without returns all minus the single value skip, preserving order.
func without(all []int, skip int) []int {
	out := make([]int, 0, len(all)-1)
	for _, v := range all {
		if v != skip {
			out = append(out, v)
		}
	}

	return out
}

// rotateClosed re-bases a closed cycle (first == last) so it starts at start.
func rotateClosed(cycle []int, start int) []int {
	n := len(cycle) - 1
	pos := 0
	for i := 0; i < n; i++ {
		if cycle[i] == start {
			pos = i
			break
		}
	}
	out := make([]int, 0, n+1)
	for i := 0; i < n; i++ {
		out = append(out, cycle[(pos+i)%n])
	}

	return append(out, start)
}

func closedCost(c *Colony, tour []int) float64 {
	var sum float64
	for k := 1; k < len(tour); k++ {
		sum += c.dist.Get(tour[k-1], tour[k])
	}

	return sum
}
