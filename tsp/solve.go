// Package tsp - entry points.
//
//   - Solve: cities → Euclidean matrix → SolveMatrix.
//   - SolveMatrix: validate, seed with nearest neighbor, run A*, optionally polish.
//   - SolveMST / SolveACO / SolveHybrid: Solve with the mode forced.
//   - SolveAll: one isolated solve per mode, concurrently.
//   - SolveAsync: Solve on a goroutine, result delivered on a channel.
package tsp

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/heuristic"
	"github.com/katalvlaran/antstar/matrix"
)

// Outcome pairs a Result with its error for asynchronous delivery.
type Outcome struct {
	Result Result
	Err    error
}

// Solve computes an approximate shortest closed tour over cities, starting
// and ending at city 0.
//
// Errors: ErrNoCities, ErrNonFiniteCoordinate, ErrUnsupportedMode,
// ErrInvalidOptions. Deadline and cancellation are not errors; they are
// reported through Result.Termination with the best tour found so far.
func Solve(ctx context.Context, cities []City, opts Options) (Result, error) {
	dist, err := DistanceMatrix(cities)
	if err != nil {
		return Result{}, err
	}

	return solve(ctx, dist, opts)
}

// SolveMST is Solve with opts.Mode = ModeMST.
func SolveMST(ctx context.Context, cities []City, opts Options) (Result, error) {
	opts.Mode = ModeMST
	return Solve(ctx, cities, opts)
}

// SolveACO is Solve with opts.Mode = ModeACO.
func SolveACO(ctx context.Context, cities []City, opts Options) (Result, error) {
	opts.Mode = ModeACO
	return Solve(ctx, cities, opts)
}

// SolveHybrid is Solve with opts.Mode = ModeHybrid.
func SolveHybrid(ctx context.Context, cities []City, opts Options) (Result, error) {
	opts.Mode = ModeHybrid
	return Solve(ctx, cities, opts)
}

// SolveMatrix runs the search on a caller-supplied distance matrix, which must
// be symmetric, finite and non-negative with a zero diagonal. The matrix is
// read, never written.
func SolveMatrix(ctx context.Context, dist *matrix.Dense, opts Options) (Result, error) {
	if _, err := validateDist(dist); err != nil {
		return Result{}, err
	}

	return solve(ctx, dist, opts)
}

// SolveAll runs one solve per mode concurrently and returns the results in the
// order of modes. Each lane gets its own copy of the distance matrix, its own
// colony and cache, and an RNG stream derived from opts.Seed and the lane index.
// opts is used as is for the lane whose mode equals opts.Mode; other lanes take
// their mode tuning from DefaultOptions and share opts' time, seed, eps, polish
// and hooks. Progress, Logger and Observer must be safe for concurrent use.
//
// The first lane error cancels the others and is returned.
func SolveAll(ctx context.Context, cities []City, modes []Mode, opts Options) ([]Result, error) {
	if len(modes) == 0 {
		modes = Modes
	}
	base, err := DistanceMatrix(cities)
	if err != nil {
		return nil, err
	}

	var (
		results = make([]Result, len(modes))
		g, gctx = errgroup.WithContext(ctx)
	)
	for i, m := range modes {
		i, m := i, m
		lane := opts.forMode(m)
		lane.Seed = deriveSeed(opts.Seed, uint64(i))
		dist := base.CloneDense()
		g.Go(func() error {
			r, err := solve(gctx, dist, lane)
			if err != nil {
				return fmt.Errorf("%s lane: %w", m, err)
			}
			results[i] = r

			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// SolveAsync starts Solve on a new goroutine. The returned channel receives
// exactly one Outcome and is then closed.
func SolveAsync(ctx context.Context, cities []City, opts Options) <-chan Outcome {
	out := make(chan Outcome, 1)
	go func() {
		defer close(out)
		r, err := Solve(ctx, cities, opts)
		out <- Outcome{Result: r, Err: err}
	}()

	return out
}

// DistanceMatrix validates cities and returns their Euclidean distance matrix,
// the input SolveMatrix expects.
//
// Errors: ErrNoCities, ErrNonFiniteCoordinate.
func DistanceMatrix(cities []City) (*matrix.Dense, error) {
	if err := validateCities(cities); err != nil {
		return nil, err
	}
	pts := make([]r2.Vec, len(cities))
	for i, c := range cities {
		pts[i] = c.Vec()
	}
	dist, err := matrix.NewEuclidean(pts)
	if err != nil {
		// Coordinates were validated above.
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	return dist, nil
}

// solve is the shared core behind every entry point. dist is already valid.
func solve(ctx context.Context, dist *matrix.Dense, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var (
		started = time.Now()
		runID   = uuid.NewString()
		n       = dist.Size()
		log     = opts.Logger
	)
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(
		zap.String("run_id", runID),
		zap.Stringer("mode", opts.Mode),
		zap.Int("cities", n))

	if n == 1 {
		r := Result{
			RunID:       runID,
			Mode:        opts.Mode,
			Tour:        []int{0, 0},
			Termination: Trivial,
			Elapsed:     time.Since(started),
		}
		log.Info("trivial instance")
		finish(opts, r)

		return r, nil
	}

	seedTour, seedCost, err := NearestNeighbor(dist, 0)
	if err != nil {
		return Result{}, fmt.Errorf("%w: seed: %v", ErrInternal, err)
	}
	log.Info("seed tour", zap.Float64("cost", seedCost))

	var colony *aco.Colony
	if opts.Mode.UsesColony() {
		if colony, err = aco.New(dist, opts.Colony, rngFromSeed(opts.Seed)); err != nil {
			return Result{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
		}
	}
	eval, err := heuristic.New(dist, opts.heuristicConfig(), colony, heuristic.WithLogger(log))
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}

	prog := newProgressReporter(opts, log, runID, started)
	eng := newEngine(ctx, dist, opts, eval, log, prog, seedTour, seedCost, started)
	term, err := eng.run()
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	tour := eng.bestTour
	cost := eng.bestCost
	if opts.Polish && n >= 4 {
		polished, pc, perr := TwoOpt(ctx, dist, tour, opts.Eps, opts.TwoOptMaxIters)
		if perr == nil && pc < cost-opts.Eps {
			log.Debug("2-opt polish improved tour", zap.Float64("from", cost), zap.Float64("to", pc))
			tour, cost = polished, pc
			if opts.Observer != nil {
				opts.Observer.IncumbentImproved(opts.Mode, pc)
			}
		}
	}
	if err = ValidateTour(tour, n, 0); err != nil {
		return Result{}, fmt.Errorf("%w: final tour: %v", ErrInternal, err)
	}

	eng.stats.Heuristic = eval.Stats()
	r := Result{
		RunID:         runID,
		Mode:          opts.Mode,
		Tour:          tour,
		Cost:          round1e9(pathCost(dist, tour)),
		Baseline:      round1e9(seedCost),
		NodesExplored: eng.explored,
		Termination:   term,
		Elapsed:       time.Since(started),
		Stats:         eng.stats,
	}
	prog.done(r.NodesExplored, r.Cost, eng.open.Len())

	fields := []zap.Field{
		zap.Float64("cost", r.Cost),
		zap.Float64("baseline", r.Baseline),
		zap.Int("nodes_explored", r.NodesExplored),
		zap.Duration("elapsed", r.Elapsed),
	}
	switch term {
	case Deadline:
		log.Info("deadline reached", fields...)
	case Cancelled:
		log.Info("search cancelled", fields...)
	default:
		log.Info("search exhausted", fields...)
	}
	finish(opts, r)

	return r, nil
}

func finish(opts Options, r Result) {
	if opts.Observer != nil {
		opts.Observer.SolveFinished(r)
	}
}
