// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"

	"github.com/katalvlaran/antstar/matrix"
)

// ErrNilMatrix indicates that no distance matrix was supplied.
var ErrNilMatrix = errors.New("prim_kruskal: nil distance matrix")

// ErrInvalidSubset indicates that the subset holds an index outside the matrix
// or the same index twice.
var ErrInvalidSubset = errors.New("prim_kruskal: invalid subset")

// ErrUnknownMethod is returned by Compute for an unrecognised MSTOptions.Method.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// MethodPrim selects dense Prim (key array, O(S²)).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm Compute runs.
// Use DefaultOptions() to get a default setup (Kruskal).
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// DefaultOptions returns MSTOptions with Method = MethodKruskal, then applies opts.
func DefaultOptions(opts ...Option) MSTOptions {
	o := MSTOptions{Method: MethodKruskal}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(dist, subset, ws).
//	– MethodPrim:    Prim(dist, subset, ws).
//	– otherwise:     ErrUnknownMethod.
func Compute(dist *matrix.Dense, subset []int, ws *Workspace, opts MSTOptions) (float64, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(dist, subset, ws)
	case MethodPrim:
		return Prim(dist, subset, ws)
	default:
		return 0, ErrUnknownMethod
	}
}

// edge is one candidate MST edge expressed in subset-local indices.
type edge struct {
	w    float64
	a, b int32
}

// Workspace holds the scratch buffers reused across MST calls.
// A Workspace is not safe for concurrent use; give each goroutine its own.
type Workspace struct {
	edges []edge
	dsu   DisjointSet
	key   []float64
	in    []bool
	seen  []bool
}

// NewWorkspace preallocates buffers for subsets of up to n cities.
func NewWorkspace(n int) *Workspace {
	if n < 0 {
		n = 0
	}

	return &Workspace{
		edges: make([]edge, 0, n*(n-1)/2+1),
		key:   make([]float64, 0, n),
		in:    make([]bool, 0, n),
		seen:  make([]bool, n),
	}
}

// validateSubset checks that every index is in [0, n) and unique.
//
// Complexity: O(|S|) plus a one-off O(n) growth of the seen buffer.
func (ws *Workspace) validateSubset(n int, subset []int) error {
	if len(subset) == 0 {
		return nil
	}
	if cap(ws.seen) < n {
		ws.seen = make([]bool, n)
	}
	ws.seen = ws.seen[:n]

	var (
		i   int
		v   int
		err error
	)
	for i, v = range subset {
		if v < 0 || v >= n || ws.seen[v] {
			err = ErrInvalidSubset
			break
		}
		ws.seen[v] = true
	}
	// Reset only what we touched so the buffer stays clean for the next call.
	for _, v = range subset[:i+1] {
		if v >= 0 && v < n {
			ws.seen[v] = false
		}
	}

	return err
}

// prepare validates inputs and returns a usable workspace.
func prepare(dist *matrix.Dense, subset []int, ws *Workspace) (*Workspace, error) {
	if dist == nil {
		return nil, ErrNilMatrix
	}
	if ws == nil {
		ws = NewWorkspace(0)
	}
	if len(subset) == 0 {
		return ws, nil
	}
	if err := ws.validateSubset(dist.Size(), subset); err != nil {
		return nil, err
	}

	return ws, nil
}
