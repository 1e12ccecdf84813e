package heuristic

import (
	"errors"
	"math"

	"github.com/bits-and-blooms/bitset"
	"go.uber.org/zap"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/matrix"
	"github.com/katalvlaran/antstar/prim_kruskal"
)

var (
	// ErrNilMatrix indicates that New got no distance matrix.
	ErrNilMatrix = errors.New("heuristic: nil distance matrix")

	// ErrColonyRequired indicates ModeACO/ModeHybrid without a colony.
	ErrColonyRequired = errors.New("heuristic: mode requires an ant colony")

	// ErrInvalidConfig indicates a weight or window parameter out of domain.
	ErrInvalidConfig = errors.New("heuristic: invalid config")

	// ErrCityOutOfRange indicates current outside [0, n).
	ErrCityOutOfRange = errors.New("heuristic: city out of range")
)

// Default hybrid tuning.
const (
	DefaultWeightMST  = 0.6
	DefaultAdaptEvery = 100
	DefaultAdaptStep  = 0.1
	DefaultWeightMin  = 0.2
	DefaultWeightMax  = 0.8

	// mstWinRatio: an MST bound within 10% of the ACO path counts as an MST success.
	mstWinRatio = 0.9
)

// Config tunes an Evaluator. The weight fields only matter in ModeHybrid.
type Config struct {
	Mode Mode

	// WeightMST is the initial MST weight; the ACO weight is 1-WeightMST.
	WeightMST float64
	// AdaptEvery is the window of computed evaluations between weight updates (0 disables).
	AdaptEvery int
	// AdaptStep is the shift applied toward the winning component.
	AdaptStep float64
	// WeightMin and WeightMax bound each of the two weights.
	WeightMin, WeightMax float64

	// CacheCapacity presizes the cache map.
	CacheCapacity int
	// MSTMethod selects prim_kruskal.MethodKruskal (default) or MethodPrim.
	MSTMethod string
}

// DefaultConfig returns the tuning for mode.
func DefaultConfig(mode Mode) Config {
	return Config{
		Mode:       mode,
		WeightMST:  DefaultWeightMST,
		AdaptEvery: DefaultAdaptEvery,
		AdaptStep:  DefaultAdaptStep,
		WeightMin:  DefaultWeightMin,
		WeightMax:  DefaultWeightMax,
		MSTMethod:  prim_kruskal.MethodKruskal,
	}
}

// Validate checks mode and, for ModeHybrid, the weight parameters.
func (c Config) Validate() error {
	if !c.Mode.Valid() {
		return ErrUnknownMode
	}
	if c.MSTMethod != "" && c.MSTMethod != prim_kruskal.MethodKruskal && c.MSTMethod != prim_kruskal.MethodPrim {
		return ErrInvalidConfig
	}
	if c.Mode != ModeHybrid {
		return nil
	}
	switch {
	case c.WeightMin < 0 || c.WeightMax > 1 || c.WeightMin > c.WeightMax:
		return ErrInvalidConfig
	case c.WeightMST < 0 || c.WeightMST > 1:
		return ErrInvalidConfig
	case c.AdaptEvery < 0 || c.AdaptStep < 0 || math.IsNaN(c.AdaptStep):
		return ErrInvalidConfig
	case math.Max(c.WeightMin, 1-c.WeightMax) > math.Min(c.WeightMax, 1-c.WeightMin):
		// no wMST satisfies both bounds
		return ErrInvalidConfig
	}

	return nil
}

// Stats reports evaluator activity.
type Stats struct {
	Cache       CacheStats
	Evaluations uint64 // computed (non-cached) evaluations
	Adaptations uint64 // hybrid weight shifts applied
}

// Option customises an Evaluator.
type Option func(*Evaluator)

// WithLogger routes debug events (weight shifts, cache clears) to l.
func WithLogger(l *zap.Logger) Option {
	return func(e *Evaluator) {
		if l != nil {
			e.log = l
		}
	}
}

// Evaluator computes and caches heuristic values for one solve.
type Evaluator struct {
	dist   *matrix.Dense
	n      int
	cfg    Config
	mstOpt prim_kruskal.MSTOptions
	colony *aco.Colony
	cache  *Cache
	ws     *prim_kruskal.Workspace
	subset []int
	log    *zap.Logger

	wMST, lo, hi    float64
	window, mstWins int
	stats           Stats
}

// New validates cfg and builds an Evaluator over dist. colony must be non-nil
// for ModeACO and ModeHybrid and is ignored for ModeMST.
func New(dist *matrix.Dense, cfg Config, colony *aco.Colony, opts ...Option) (*Evaluator, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Mode.UsesColony() && colony == nil {
		return nil, ErrColonyRequired
	}
	if cfg.MSTMethod == "" {
		cfg.MSTMethod = prim_kruskal.MethodKruskal
	}

	n := dist.Size()
	e := &Evaluator{
		dist:   dist,
		n:      n,
		cfg:    cfg,
		mstOpt: prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(cfg.MSTMethod)),
		colony: colony,
		cache:  NewCache(cfg.CacheCapacity),
		ws:     prim_kruskal.NewWorkspace(n),
		subset: make([]int, 0, n),
		log:    zap.NewNop(),
		wMST:   1,
	}
	switch cfg.Mode {
	case ModeACO:
		e.wMST = 0
	case ModeHybrid:
		e.lo = math.Max(cfg.WeightMin, 1-cfg.WeightMax)
		e.hi = math.Min(cfg.WeightMax, 1-cfg.WeightMin)
		e.wMST = clamp(cfg.WeightMST, e.lo, e.hi)
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Mode returns the configured strategy.
func (e *Evaluator) Mode() Mode { return e.cfg.Mode }

// Evaluate returns h(current, visited). visited must have length n and must
// not be mutated afterwards (the cache keeps a reference).
//
// Complexity: cache hit O(n/64); MST miss O(U² log U); ACO miss O(Ants·U²).
func (e *Evaluator) Evaluate(current int, visited *bitset.BitSet) (float64, error) {
	if current < 0 || current >= e.n {
		return 0, ErrCityOutOfRange
	}
	if v, ok := e.cache.Get(current, visited); ok {
		return v, nil
	}

	v, err := e.compute(current, visited)
	if err != nil {
		return 0, err
	}
	e.cache.Put(current, visited, v)

	return v, nil
}

func (e *Evaluator) compute(current int, visited *bitset.BitSet) (float64, error) {
	e.subset = e.subset[:0]
	for i := 0; i < e.n; i++ {
		if i != current && !visited.Test(uint(i)) {
			e.subset = append(e.subset, i)
		}
	}
	if len(e.subset) == 0 {
		return 0, nil
	}
	e.stats.Evaluations++

	switch e.cfg.Mode {
	case ModeMST:
		return e.mstPart(current)
	case ModeACO:
		return e.colony.EstimateCompletion(current, visited), nil
	default:
		mst, err := e.mstPart(current)
		if err != nil {
			return 0, err
		}
		est := e.colony.EstimateCompletion(current, visited)
		v := e.wMST*mst + (1-e.wMST)*est
		e.adapt(mst, est)

		return v, nil
	}
}

// mstPart computes the bound over e.subset.
func (e *Evaluator) mstPart(current int) (float64, error) {
	row := e.dist.Row(current)
	if len(e.subset) == 1 {
		return row[e.subset[0]], nil
	}

	tree, err := prim_kruskal.Compute(e.dist, e.subset, e.ws, e.mstOpt)
	if err != nil {
		return 0, err
	}
	near := math.Inf(1)
	for _, u := range e.subset {
		if row[u] < near {
			near = row[u]
		}
	}

	return tree + near, nil
}

// adapt scores one hybrid evaluation and, at the end of a window, shifts the
// weights toward the component with a success rate above one half.
func (e *Evaluator) adapt(mst, est float64) {
	if e.cfg.AdaptEvery <= 0 {
		return
	}
	e.window++
	if mst >= mstWinRatio*est {
		e.mstWins++
	}
	if e.window < e.cfg.AdaptEvery {
		return
	}

	var (
		mstRate = float64(e.mstWins) / float64(e.window)
		acoRate = 1 - mstRate
		before  = e.wMST
	)
	switch {
	case mstRate > 0.5:
		e.wMST = clamp(e.wMST+e.cfg.AdaptStep, e.lo, e.hi)
	case acoRate > 0.5:
		e.wMST = clamp(e.wMST-e.cfg.AdaptStep, e.lo, e.hi)
	}
	e.window, e.mstWins = 0, 0

	if e.wMST != before {
		e.stats.Adaptations++
		e.log.Debug("hybrid weights shifted",
			zap.Float64("mst_rate", mstRate),
			zap.Float64("w_mst", e.wMST),
			zap.Float64("w_aco", 1-e.wMST))
	}
}

// Weights returns the current (wMST, wACO). MST mode reports (1, 0), ACO (0, 1).
func (e *Evaluator) Weights() (float64, float64) { return e.wMST, 1 - e.wMST }

// ClearCache drops every cached value.
func (e *Evaluator) ClearCache() {
	n := e.cache.Len()
	e.cache.Clear()
	e.log.Debug("heuristic cache cleared", zap.Int("entries", n))
}

// ClearCacheIfLarger clears the cache when it holds more than limit entries and
// reports whether it did.
func (e *Evaluator) ClearCacheIfLarger(limit int) bool {
	if e.cache.Len() <= limit {
		return false
	}
	e.ClearCache()

	return true
}

// CacheLen returns the number of cached values.
func (e *Evaluator) CacheLen() int { return e.cache.Len() }

// Stats returns a snapshot of the evaluator counters.
func (e *Evaluator) Stats() Stats {
	s := e.stats
	s.Cache = e.cache.Stats()

	return s
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
