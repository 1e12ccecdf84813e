package prim_kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/antstar/matrix"
	"github.com/katalvlaran/antstar/prim_kruskal" // package under test
	"github.com/stretchr/testify/assert"          // assertion library
	"gonum.org/v1/gonum/spatial/r2"
)

// buildCloud returns the Euclidean matrix of n random points in [0,100)².
// The generator is seeded so every run sees the same points.
func buildCloud(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	r := rand.New(rand.NewSource(seed))
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: r.Float64() * 100, Y: r.Float64() * 100}
	}
	d, err := matrix.NewEuclidean(pts)
	if err != nil {
		tb.Fatalf("NewEuclidean: %v", err)
	}

	return d
}

// buildLine places n points on the x axis at 0,1,2,...; its MST weight is n-1.
func buildLine(tb testing.TB, n int) *matrix.Dense {
	tb.Helper()
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: float64(i)}
	}
	d, err := matrix.NewEuclidean(pts)
	if err != nil {
		tb.Fatalf("NewEuclidean: %v", err)
	}

	return d
}

func allIndices(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}

	return s
}

// TestTrivialSubsets: |S| ≤ 1 has an empty tree.
func TestTrivialSubsets(t *testing.T) {
	d := buildCloud(t, 5, 1)
	for _, subset := range [][]int{nil, {}, {3}} {
		w, err := prim_kruskal.Kruskal(d, subset, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, w)

		w, err = prim_kruskal.Prim(d, subset, nil)
		assert.NoError(t, err)
		assert.Equal(t, 0.0, w)
	}
}

// TestLineMST checks the exact weight on a collinear layout and on a sparse subset of it.
func TestLineMST(t *testing.T) {
	d := buildLine(t, 6)

	w, err := prim_kruskal.Kruskal(d, allIndices(6), nil)
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, w, 1e-12)

	// {0, 2, 5}: edges 0-2 (2) and 2-5 (3).
	w, err = prim_kruskal.Prim(d, []int{5, 0, 2}, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 5.0, w, 1e-12)
}

// TestKruskalEqualsPrim cross-checks both algorithms on random subsets.
func TestKruskalEqualsPrim(t *testing.T) {
	d := buildCloud(t, 60, 42)
	r := rand.New(rand.NewSource(7))
	ws := prim_kruskal.NewWorkspace(60)

	for trial := 0; trial < 50; trial++ {
		perm := r.Perm(60)
		subset := perm[:2+r.Intn(58)]

		k, err := prim_kruskal.Kruskal(d, subset, ws)
		assert.NoError(t, err)
		p, err := prim_kruskal.Prim(d, subset, ws)
		assert.NoError(t, err)

		assert.InDelta(t, k, p, 1e-9, "trial %d, |S|=%d", trial, len(subset))
		assert.Greater(t, k, 0.0)
	}
}

// TestWorkspaceReuseIsTransparent ensures a shared workspace never changes answers.
func TestWorkspaceReuseIsTransparent(t *testing.T) {
	d := buildCloud(t, 30, 3)
	ws := prim_kruskal.NewWorkspace(4)
	subsets := [][]int{allIndices(30), {1, 2, 3}, allIndices(12), {29, 0}}

	for _, s := range subsets {
		fresh, err := prim_kruskal.Kruskal(d, s, nil)
		assert.NoError(t, err)
		reused, err := prim_kruskal.Kruskal(d, s, ws)
		assert.NoError(t, err)
		assert.Equal(t, fresh, reused)
	}
}

// TestDuplicatePointsZeroWeight: identical points give a zero-weight tree.
func TestDuplicatePointsZeroWeight(t *testing.T) {
	d, err := matrix.NewEuclidean([]r2.Vec{{X: 2, Y: 2}, {X: 2, Y: 2}, {X: 2, Y: 2}})
	assert.NoError(t, err)

	w, err := prim_kruskal.Kruskal(d, allIndices(3), nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, w)
}

func TestInvalidInputs(t *testing.T) {
	d := buildLine(t, 4)

	_, err := prim_kruskal.Kruskal(nil, []int{0, 1}, nil)
	assert.ErrorIs(t, err, prim_kruskal.ErrNilMatrix)

	cases := [][]int{{0, 4}, {-1, 2}, {1, 2, 1}}
	ws := prim_kruskal.NewWorkspace(4)
	for _, s := range cases {
		_, err = prim_kruskal.Kruskal(d, s, ws)
		assert.ErrorIs(t, err, prim_kruskal.ErrInvalidSubset, "subset %v", s)
		_, err = prim_kruskal.Prim(d, s, ws)
		assert.ErrorIs(t, err, prim_kruskal.ErrInvalidSubset, "subset %v", s)
	}

	// A failed validation must not poison the workspace.
	w, err := prim_kruskal.Kruskal(d, []int{0, 1, 2, 3}, ws)
	assert.NoError(t, err)
	assert.InDelta(t, 3.0, w, 1e-12)
}

func TestComputeDispatch(t *testing.T) {
	d := buildLine(t, 3)

	w, err := prim_kruskal.Compute(d, allIndices(3), nil, prim_kruskal.DefaultOptions())
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)

	w, err = prim_kruskal.Compute(d, allIndices(3), nil,
		prim_kruskal.DefaultOptions(prim_kruskal.WithMethod(prim_kruskal.MethodPrim)))
	assert.NoError(t, err)
	assert.InDelta(t, 2.0, w, 1e-12)

	_, err = prim_kruskal.Compute(d, allIndices(3), nil, prim_kruskal.MSTOptions{Method: "boruvka"})
	assert.ErrorIs(t, err, prim_kruskal.ErrUnknownMethod)
}

// TestDisjointSet exercises union-find bookkeeping.
func TestDisjointSet(t *testing.T) {
	ds := prim_kruskal.NewDisjointSet(5)
	assert.Equal(t, 5, ds.Sets())
	assert.Equal(t, 5, ds.Len())

	assert.True(t, ds.Union(0, 1))
	assert.True(t, ds.Union(2, 3))
	assert.False(t, ds.Union(1, 0))
	assert.True(t, ds.Union(1, 3))

	assert.True(t, ds.Connected(0, 2))
	assert.False(t, ds.Connected(0, 4))
	assert.Equal(t, 2, ds.Sets())
	assert.Equal(t, ds.Find(3), ds.Find(0))

	ds.Reset(2)
	assert.Equal(t, 2, ds.Sets())
	assert.False(t, ds.Connected(0, 1))
}
