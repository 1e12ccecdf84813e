// Package tsp_test provides helpers shared across the *_test.go files of this package.
package tsp_test

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/antstar/matrix"
	"github.com/katalvlaran/antstar/tsp"
)

const (
	// epsTiny matches tsp.DefaultEps.
	epsTiny = 1e-12

	// costTol absorbs the 1e-9 rounding applied to reported costs.
	costTol = 1e-8

	// seedDet is the deterministic seed for ACO-based tests.
	seedDet = int64(42)

	// testBudget keeps every solve well below the default 99s.
	testBudget = 10 * time.Second
)

// unitSquare is the 4-city instance whose optimal tour has cost 4.
func unitSquare() []tsp.City {
	return []tsp.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

// randomCities returns n cities uniformly in [0,100)² from a fixed seed.
func randomCities(n int, seed int64) []tsp.City {
	r := rand.New(rand.NewSource(seed))
	out := make([]tsp.City, n)
	for i := range out {
		out[i] = tsp.City{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return out
}

// circleCities places n cities on a circle; the optimal tour follows the rim.
func circleCities(n int, radius float64) []tsp.City {
	out := make([]tsp.City, n)
	for i := range out {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = tsp.City{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}

	return out
}

// distOf builds the Euclidean matrix of cities.
func distOf(t testing.TB, cities []tsp.City) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewEuclidean(toVecs(cities))
	require.NoError(t, err)

	return d
}

func toVecs(cities []tsp.City) []r2.Vec {
	out := make([]r2.Vec, len(cities))
	for i, c := range cities {
		out[i] = c.Vec()
	}

	return out
}

// optsFor returns DefaultOptions(mode) with a test-sized budget and fixed seed.
func optsFor(mode tsp.Mode) tsp.Options {
	o := tsp.DefaultOptions(mode)
	o.TimeLimit = testBudget
	o.Seed = seedDet

	return o
}

// requireValidResult checks the tour contract and that Cost is its edge sum.
func requireValidResult(t *testing.T, cities []tsp.City, r tsp.Result) {
	t.Helper()
	n := len(cities)
	require.NoError(t, tsp.ValidateTour(r.Tour, n, 0), "tour %v", r.Tour)

	inner := append([]int(nil), r.Tour[:n]...)
	sort.Ints(inner)
	for i, v := range inner {
		require.Equal(t, i, v)
	}

	d := distOf(t, cities)
	var sum float64
	for i := 0; i+1 < len(r.Tour); i++ {
		sum += d.Get(r.Tour[i], r.Tour[i+1])
	}
	require.InDelta(t, sum, r.Cost, costTol)
	require.LessOrEqual(t, r.Cost, r.Baseline+costTol)
}

// bruteForce returns the optimal closed-tour cost from city 0 by enumeration.
// Only for n ≤ 9.
func bruteForce(d *matrix.Dense) float64 {
	n := d.Size()
	if n <= 1 {
		return 0
	}
	rest := make([]int, 0, n-1)
	for i := 1; i < n; i++ {
		rest = append(rest, i)
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			c := d.Get(0, rest[0])
			for i := 1; i < len(rest); i++ {
				c += d.Get(rest[i-1], rest[i])
			}
			c += d.Get(rest[len(rest)-1], 0)
			if c < best {
				best = c
			}
			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}

// recordingObserver captures observer callbacks; safe for concurrent use.
type recordingObserver struct {
	mu           sync.Mutex
	improvements []float64
	finished     []tsp.Result
}

func (o *recordingObserver) IncumbentImproved(_ tsp.Mode, cost float64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.improvements = append(o.improvements, cost)
}

func (o *recordingObserver) SolveFinished(r tsp.Result) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.finished = append(o.finished, r)
}
