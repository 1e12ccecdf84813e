package tsp

import (
	"errors"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/antstar/heuristic"
)

// Sentinel errors. Callers test them with errors.Is.
var (
	// ErrNoCities is returned when the input holds no city.
	ErrNoCities = errors.New("tsp: no cities")

	// ErrNonFiniteCoordinate is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite coordinate")

	// ErrUnsupportedMode is returned for a Mode outside MST/ACO/Hybrid.
	ErrUnsupportedMode = errors.New("tsp: unsupported heuristic mode")

	// ErrInvalidOptions is returned when an Options field is out of domain.
	ErrInvalidOptions = errors.New("tsp: invalid options")

	// ErrInvalidMatrix is returned for a distance matrix that is not symmetric,
	// finite and non-negative with a zero diagonal.
	ErrInvalidMatrix = errors.New("tsp: invalid distance matrix")

	// ErrDimensionMismatch is returned for shape violations (non-square matrix,
	// wrong tour length, out-of-range or repeated vertex).
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrStartOutOfRange is returned when a start vertex is outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInternal signals a broken internal invariant. It should be unreachable.
	ErrInternal = errors.New("tsp: internal error")
)

// Mode selects the heuristic strategy. It is an alias so values flow between
// packages without conversion.
type Mode = heuristic.Mode

// Supported modes.
const (
	ModeMST    = heuristic.ModeMST
	ModeACO    = heuristic.ModeACO
	ModeHybrid = heuristic.ModeHybrid
)

// Modes lists every supported mode in SolveAll's default order.
var Modes = heuristic.Modes

// ParseMode maps "mst", "aco" or "hybrid" to a Mode.
func ParseMode(s string) (Mode, error) {
	m, err := heuristic.ParseMode(s)
	if err != nil {
		return 0, ErrUnsupportedMode
	}

	return m, nil
}

// City is a point in the plane. Its index is its position in the input slice.
type City struct {
	X, Y float64
}

// Vec converts c to a gonum vector.
func (c City) Vec() r2.Vec { return r2.Vec{X: c.X, Y: c.Y} }

// Termination tells why a search stopped.
type Termination uint8

const (
	// Exhausted: the open set emptied; every surviving branch was examined.
	Exhausted Termination = iota
	// Deadline: the time limit elapsed.
	Deadline
	// Cancelled: the context was cancelled.
	Cancelled
	// Trivial: N ≤ 1, no search was needed.
	Trivial
)

// String returns a lower-case label used in logs and metrics.
func (t Termination) String() string {
	switch t {
	case Exhausted:
		return "exhausted"
	case Deadline:
		return "deadline"
	case Cancelled:
		return "cancelled"
	case Trivial:
		return "trivial"
	default:
		return "unknown"
	}
}

// SearchStats counts what the engine did during one solve.
type SearchStats struct {
	Expanded       int // states whose children were generated
	Generated      int // states pushed onto the open set
	PrunedAtPop    int // popped states discarded by the slack test
	PrunedChildren int // children discarded by the g or f test
	Improvements   int // incumbent replacements after the seed
	MaxOpen        int // peak open-set size
	CacheClears    int // heuristic cache clears triggered by the engine
	Heuristic      heuristic.Stats
}

// Result is the outcome of a solve.
//
// Tour has length N+1, starts and ends at city 0 and visits every city once in
// between. Cost is the sum of distances along Tour, rounded to 1e-9. Baseline is
// the nearest-neighbor cost the search started from; Cost ≤ Baseline always.
type Result struct {
	RunID         string
	Mode          Mode
	Tour          []int
	Cost          float64
	Baseline      float64
	NodesExplored int
	Termination   Termination
	Elapsed       time.Duration
	Stats         SearchStats
}

// Progress is an advisory snapshot emitted during a solve.
type Progress struct {
	RunID         string
	Mode          Mode
	NodesExplored int
	BestCost      float64
	OpenSet       int
	Elapsed       time.Duration
	Final         bool
}

// Observer receives solver events. Implementations used with SolveAll must be
// safe for concurrent use.
type Observer interface {
	// IncumbentImproved is called each time the search finds a cheaper tour.
	IncumbentImproved(mode Mode, cost float64)
	// SolveFinished is called once per completed solve.
	SolveFinished(r Result)
}
