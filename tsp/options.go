package tsp

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/heuristic"
	"github.com/katalvlaran/antstar/prim_kruskal"
)

const (
	// DefaultTimeLimit is the wall-clock budget of a search.
	DefaultTimeLimit = 99 * time.Second

	// NoTimeLimit disables the wall-clock budget; only the context bounds the search.
	NoTimeLimit = time.Duration(math.MaxInt64)

	// DefaultEps is the improvement tolerance for incumbent replacement and 2-opt.
	DefaultEps = 1e-12

	// DefaultProgressInterval is the minimum spacing of Progress callbacks.
	DefaultProgressInterval = time.Second

	// mstSlack multiplies the incumbent in the pop-time prune for ModeMST.
	mstSlack = 1.1

	cacheClearEvery       = 10000
	cacheMaxEntries       = 1000000
	hybridCacheClearEvery = 1000
)

// Options configures a solve. Start from DefaultOptions; the zero value is not valid.
type Options struct {
	// Mode selects the heuristic.
	Mode Mode

	// TimeLimit bounds the search. 0 means already expired (the nearest-neighbor
	// seed is returned); NoTimeLimit disables the bound. Negative is invalid.
	TimeLimit time.Duration

	// Slack ≥ 1: a popped state is discarded when f ≥ incumbent·Slack.
	Slack float64

	// Eps ≥ 0: a complete tour replaces the incumbent only when cheaper by more than Eps.
	Eps float64

	// Seed drives every random choice (ACO). 0 selects a fixed default seed.
	Seed int64

	// Colony configures the ant colony in ModeACO and ModeHybrid.
	Colony aco.Config

	// Hybrid weight adaptation (ModeHybrid only). See heuristic.Config.
	WeightMST  float64
	AdaptEvery int
	AdaptStep  float64
	WeightMin  float64
	WeightMax  float64

	// MSTMethod is prim_kruskal.MethodKruskal (default) or MethodPrim.
	MSTMethod string

	// Every CacheClearEvery explored states the heuristic cache is cleared when it
	// holds more than CacheMaxEntries values. CacheClearEvery == 0 disables clearing.
	CacheClearEvery int
	CacheMaxEntries int

	// Polish runs 2-opt on the final tour; at most TwoOptMaxIters accepted moves (0 = until local optimum).
	Polish         bool
	TwoOptMaxIters int

	// Progress, when set, receives snapshots at most once per ProgressInterval
	// and once more on completion.
	Progress         func(Progress)
	ProgressInterval time.Duration

	// Logger receives structured events; nil disables logging.
	Logger *zap.Logger

	// Observer receives incumbent and completion events; nil disables them.
	Observer Observer
}

// DefaultOptions returns the tuning for mode.
//
//	MST:    slack 1.1, cache cleared every 10 000 states when above 1 000 000 entries.
//	ACO:    100 ants, ρ 0.2, α 1, β 3; strict pruning; same cache policy as MST.
//	Hybrid: 10 ants, ρ 0.1, α 1, β 2; strict pruning; cache cleared every 1 000 states.
func DefaultOptions(mode Mode) Options {
	o := Options{
		Mode:             mode,
		TimeLimit:        DefaultTimeLimit,
		Slack:            1,
		Eps:              DefaultEps,
		WeightMST:        heuristic.DefaultWeightMST,
		AdaptEvery:       heuristic.DefaultAdaptEvery,
		AdaptStep:        heuristic.DefaultAdaptStep,
		WeightMin:        heuristic.DefaultWeightMin,
		WeightMax:        heuristic.DefaultWeightMax,
		MSTMethod:        prim_kruskal.MethodKruskal,
		CacheClearEvery:  cacheClearEvery,
		CacheMaxEntries:  cacheMaxEntries,
		ProgressInterval: DefaultProgressInterval,
	}
	switch mode {
	case ModeMST:
		o.Slack = mstSlack
	case ModeACO:
		o.Colony = aco.DefaultConfig()
	case ModeHybrid:
		o.Colony = aco.HybridConfig()
		o.CacheClearEvery = hybridCacheClearEvery
		o.CacheMaxEntries = 0
	}

	return o
}

// forMode derives the options of one SolveAll lane. When o already targets m it
// is kept as is; otherwise the mode-specific tuning comes from DefaultOptions(m)
// and the shared knobs (time, seed, eps, polish, hooks) come from o.
func (o Options) forMode(m Mode) Options {
	if o.Mode == m {
		return o
	}
	d := DefaultOptions(m)
	d.TimeLimit = o.TimeLimit
	d.Eps = o.Eps
	d.Seed = o.Seed
	d.Polish = o.Polish
	d.TwoOptMaxIters = o.TwoOptMaxIters
	d.Progress = o.Progress
	d.ProgressInterval = o.ProgressInterval
	d.Logger = o.Logger
	d.Observer = o.Observer
	d.MSTMethod = o.MSTMethod

	return d
}

func (o Options) heuristicConfig() heuristic.Config {
	return heuristic.Config{
		Mode:       o.Mode,
		WeightMST:  o.WeightMST,
		AdaptEvery: o.AdaptEvery,
		AdaptStep:  o.AdaptStep,
		WeightMin:  o.WeightMin,
		WeightMax:  o.WeightMax,
		MSTMethod:  o.MSTMethod,
	}
}
