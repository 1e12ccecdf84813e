package aco

import (
	"math"
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/antstar/matrix"
)

// Colony owns the pheromone matrix and the scratch buffers of one solve.
type Colony struct {
	n    int
	dist *matrix.Dense
	tau  []float64 // row-major n×n pheromone
	cfg  Config
	rng  *rand.Rand

	// scratch, reused between iterations
	pool    []int
	path    []int
	best    []int
	weights []float64
	zeros   []int
}

// New builds a colony over dist with τ_ij = 1/n everywhere.
// A nil rng is replaced by a generator seeded with 1 so runs stay reproducible.
//
// Errors: ErrNilMatrix, ErrInvalidConfig.
// Complexity: O(n²).
func New(dist *matrix.Dense, cfg Config, rng *rand.Rand) (*Colony, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	var (
		n    = dist.Size()
		tau  = make([]float64, n*n)
		tau0 = 1.0 / float64(n)
	)
	for i := range tau {
		tau[i] = tau0
	}

	return &Colony{
		n:       n,
		dist:    dist,
		tau:     tau,
		cfg:     cfg,
		rng:     rng,
		pool:    make([]int, 0, n),
		path:    make([]int, 0, n+1),
		best:    make([]int, 0, n+1),
		weights: make([]float64, 0, n),
		zeros:   make([]int, 0, n),
	}, nil
}

// Size returns the number of cities.
func (c *Colony) Size() int { return c.n }

// Config returns the parameters the colony was built with.
func (c *Colony) Config() Config { return c.cfg }

// Pheromone returns τ_ij. Indices are not checked.
func (c *Colony) Pheromone(i, j int) float64 { return c.tau[i*c.n+j] }

// EstimateCompletion runs one iteration from start over the cities not set in
// visited and returns the iteration-best open path length. start is treated as
// visited whether or not its bit is set.
//
// When no city remains the result is 0 and the pheromone is left untouched.
//
// Complexity: O(Ants · U²) with U unvisited cities, plus O(n²) evaporation.
func (c *Colony) EstimateCompletion(start int, visited *bitset.BitSet) float64 {
	var (
		remaining = c.remaining(start, visited)
		u         = len(remaining)
	)
	if u == 0 {
		return 0
	}

	var (
		ant     int
		length  float64
		bestLen = math.Inf(1)
	)
	for ant = 0; ant < c.cfg.Ants; ant++ {
		length = c.walk(start, remaining)
		if length < bestLen {
			bestLen = length
			c.best = append(c.best[:0], c.path...)
		}
	}

	c.evaporate()
	c.depositPath(c.best, bestLen)

	return bestLen
}

// remaining collects the unvisited cities other than start into a fresh slice.
// The slice is owned by the caller for the duration of one iteration.
func (c *Colony) remaining(start int, visited *bitset.BitSet) []int {
	out := make([]int, 0, c.n)
	for i := 0; i < c.n; i++ {
		if i == start || (visited != nil && visited.Test(uint(i))) {
			continue
		}
		out = append(out, i)
	}

	return out
}

// walk builds one open path from start through every city in cities and leaves
// it in c.path (start first). It returns the path length.
func (c *Colony) walk(start int, cities []int) float64 {
	c.pool = append(c.pool[:0], cities...)
	c.path = append(c.path[:0], start)

	var (
		cur    = start
		length float64
		k      int
		next   int
	)
	for len(c.pool) > 0 {
		k = c.choose(cur, c.pool)
		next = c.pool[k]
		// swap-remove keeps the pool compact
		last := len(c.pool) - 1
		c.pool[k] = c.pool[last]
		c.pool = c.pool[:last]

		length += c.dist.Get(cur, next)
		c.path = append(c.path, next)
		cur = next
	}

	return length
}

// choose returns the index in candidates of the next city, by roulette wheel
// over τ^α · (1/d)^β.
func (c *Colony) choose(cur int, candidates []int) int {
	if len(candidates) == 1 {
		return 0
	}

	var (
		row   = c.dist.Row(cur)
		tau   = c.tau[cur*c.n : (cur+1)*c.n]
		total float64
		w     float64
		d     float64
		k     int
		city  int
	)
	c.weights = c.weights[:0]
	c.zeros = c.zeros[:0]
	for k, city = range candidates {
		d = row[city]
		if d == 0 {
			c.zeros = append(c.zeros, k)
			c.weights = append(c.weights, 0)
			continue
		}
		w = pow(tau[city], c.cfg.Alpha) * pow(1/d, c.cfg.Beta)
		c.weights = append(c.weights, w)
		total += w
	}

	// Duplicate points win outright and share the draw.
	if len(c.zeros) > 0 {
		return c.zeros[c.rng.Intn(len(c.zeros))]
	}
	if total <= 0 || !finite(total) {
		return c.rng.Intn(len(candidates))
	}

	var (
		r   = c.rng.Float64() * total
		cum float64
	)
	for k, w = range c.weights {
		cum += w
		if r < cum {
			return k
		}
	}
	// Rounding can leave r == total; fall back to the last positive weight.
	for k = len(c.weights) - 1; k > 0; k-- {
		if c.weights[k] > 0 {
			break
		}
	}

	return k
}

// evaporate applies τ ← (1-ρ)·τ to every entry.
func (c *Colony) evaporate() {
	f := 1 - c.cfg.Evaporation
	for i := range c.tau {
		c.tau[i] *= f
	}
}

// depositPath adds Q/length to every consecutive edge of path in both directions.
// A zero-length path deposits Q.
func (c *Colony) depositPath(path []int, length float64) {
	amount := c.cfg.Deposit
	if length > 0 {
		amount = c.cfg.Deposit / length
	}
	var a, b int
	for k := 1; k < len(path); k++ {
		a, b = path[k-1], path[k]
		c.tau[a*c.n+b] += amount
		c.tau[b*c.n+a] += amount
	}
}

// pow avoids math.Pow for the exponents used in practice.
func pow(x, e float64) float64 {
	switch e {
	case 0:
		return 1
	case 1:
		return x
	case 2:
		return x * x
	case 3:
		return x * x * x
	default:
		return math.Pow(x, e)
	}
}
