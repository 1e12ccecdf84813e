// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/antstar/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

// randomPoints returns n points in [0,100)² from a fixed seed.
func randomPoints(n int, seed int64) []r2.Vec {
	r := rand.New(rand.NewSource(seed))
	pts := make([]r2.Vec, n)
	for i := range pts {
		pts[i] = r2.Vec{X: r.Float64() * 100, Y: r.Float64() * 100}
	}

	return pts
}

func TestNewEuclideanUnitSquare(t *testing.T) {
	d, err := matrix.NewEuclidean([]r2.Vec{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	require.NoError(t, err)
	require.Equal(t, 4, d.Size())

	assert.Equal(t, 1.0, d.Get(0, 1))
	assert.Equal(t, 1.0, d.Get(1, 2))
	assert.InDelta(t, math.Sqrt2, d.Get(0, 2), 1e-15)
	assert.InDelta(t, math.Sqrt2, d.Get(3, 1), 1e-15)
}

// TestNewEuclideanInvariants checks zero diagonal, exact symmetry and
// non-negativity on a random cloud.
func TestNewEuclideanInvariants(t *testing.T) {
	pts := randomPoints(40, 7)
	d, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)

	require.True(t, d.IsSymmetric(0))
	for i := 0; i < d.Size(); i++ {
		require.Equal(t, 0.0, d.Get(i, i), "diagonal at %d", i)
		for j := 0; j < d.Size(); j++ {
			require.GreaterOrEqual(t, d.Get(i, j), 0.0)
		}
	}
}

// TestNewEuclideanDeterministic builds the same cloud twice and expects bit-identical output.
func TestNewEuclideanDeterministic(t *testing.T) {
	pts := randomPoints(25, 99)
	a, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)
	b, err := matrix.NewEuclidean(pts)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
}

func TestNewEuclideanErrors(t *testing.T) {
	_, err := matrix.NewEuclidean(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewEuclidean([]r2.Vec{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewEuclidean([]r2.Vec{{X: math.Inf(-1), Y: 0}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestNewEuclideanSinglePoint(t *testing.T) {
	d, err := matrix.NewEuclidean([]r2.Vec{{X: 3, Y: 4}})
	require.NoError(t, err)
	require.Equal(t, 1, d.Size())
	require.Equal(t, 0.0, d.Get(0, 0))
}

func BenchmarkNewEuclidean200(b *testing.B) {
	pts := randomPoints(200, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = matrix.NewEuclidean(pts)
	}
}
