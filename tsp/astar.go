// Package tsp - A* search engine.
//
// The engine owns everything a single solve mutates: the open set, the
// incumbent, the evaluator (and its cache and colony) and the counters. It is
// created per call and never shared.
//
// Loop (one iteration per popped state):
//  1. stop on context cancellation or when the deadline has passed;
//  2. pop the min-f state;
//  3. complete state → close the cycle, replace the incumbent if cheaper by > Eps;
//  4. f ≥ incumbent·Slack → discard;
//  5. expand: for each unvisited city, skip when g' ≥ incumbent or g'+h' ≥ incumbent;
//  6. every CacheClearEvery pops, clear the heuristic cache if it is too large.
//
// Complexity: exponential in the worst case; bounded in practice by the
// incumbent prunes and the time limit. Memory grows with the open set.
package tsp

import (
	"context"
	"time"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/katalvlaran/antstar/heuristic"
	"github.com/katalvlaran/antstar/matrix"
)

type engine struct {
	ctx  context.Context
	dist *matrix.Dense
	n    int
	opts Options
	eval *heuristic.Evaluator
	log  *zap.Logger
	prog *progressReporter

	open openSet
	seq  uint64

	bestTour []int
	bestCost float64

	explored int
	stats    SearchStats

	unlimited bool
	deadline  time.Time
}

func newEngine(ctx context.Context, dist *matrix.Dense, opts Options, eval *heuristic.Evaluator,
	log *zap.Logger, prog *progressReporter, seedTour []int, seedCost float64, started time.Time) *engine {
	e := &engine{
		ctx:       ctx,
		dist:      dist,
		n:         dist.Size(),
		opts:      opts,
		eval:      eval,
		log:       log,
		prog:      prog,
		open:      make(openSet, 0, 1024),
		bestTour:  seedTour,
		bestCost:  seedCost,
		unlimited: opts.TimeLimit == NoTimeLimit,
	}
	if !e.unlimited {
		e.deadline = started.Add(opts.TimeLimit)
	}

	return e
}

// expired reports whether the wall-clock budget is used up.
func (e *engine) expired() bool {
	if e.unlimited {
		return false
	}

	return !time.Now().Before(e.deadline)
}

// run executes the search and reports why it stopped.
func (e *engine) run() (Termination, error) {
	if e.opts.TimeLimit == 0 {
		return Deadline, nil
	}

	visited := bitset.New(uint(e.n)).Set(0)
	h, err := e.eval.Evaluate(0, visited)
	if err != nil {
		return Exhausted, err
	}
	e.pushState(&state{city: 0, visited: visited, depth: 1, h: h, f: h})

	var (
		s     *state
		total float64
	)
	for e.open.Len() > 0 {
		if e.ctx.Err() != nil {
			return Cancelled, nil
		}
		if e.expired() {
			return Deadline, nil
		}

		s = e.open.pop()
		e.explored++
		e.prog.tick(e.explored, e.bestCost, e.open.Len())

		if s.depth == e.n {
			total = s.g + e.dist.Get(s.city, 0)
			if total < e.bestCost-e.opts.Eps {
				e.improve(s, total)
			}
			continue
		}

		if s.f >= e.bestCost*e.opts.Slack {
			e.stats.PrunedAtPop++
			continue
		}

		if err = e.expand(s); err != nil {
			return Exhausted, err
		}

		if e.opts.CacheClearEvery > 0 && e.explored%e.opts.CacheClearEvery == 0 {
			if e.eval.ClearCacheIfLarger(e.opts.CacheMaxEntries) {
				e.stats.CacheClears++
			}
		}
	}

	return Exhausted, nil
}

// expand pushes every child of s that survives the incumbent prunes.
func (e *engine) expand(s *state) error {
	e.stats.Expanded++

	var (
		row     = e.dist.Row(s.city)
		v       int
		g, h    float64
		visited *bitset.BitSet
		err     error
	)
	for v = 0; v < e.n; v++ {
		if s.visited.Test(uint(v)) {
			continue
		}
		g = s.g + row[v]
		if g >= e.bestCost {
			e.stats.PrunedChildren++
			continue
		}

		visited = s.visited.Clone().Set(uint(v))
		if h, err = e.eval.Evaluate(v, visited); err != nil {
			return err
		}
		if g+h >= e.bestCost {
			e.stats.PrunedChildren++
			continue
		}

		e.pushState(&state{
			city:    v,
			visited: visited,
			prev:    s,
			depth:   s.depth + 1,
			g:       g,
			h:       h,
			f:       g + h,
		})
	}

	return nil
}

func (e *engine) pushState(s *state) {
	s.seq = e.seq
	e.seq++
	e.open.push(s)
	e.stats.Generated++
	if l := e.open.Len(); l > e.stats.MaxOpen {
		e.stats.MaxOpen = l
	}
}

// improve installs the closed tour ending in s as the new incumbent.
func (e *engine) improve(s *state, total float64) {
	tour := append(s.path(), 0)
	e.bestTour = tour
	e.bestCost = total
	e.stats.Improvements++

	e.log.Debug("incumbent improved",
		zap.Float64("cost", total),
		zap.Int("nodes_explored", e.explored))
	if e.opts.Observer != nil {
		e.opts.Observer.IncumbentImproved(e.opts.Mode, total)
	}
}
