package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antstar/matrix"
	"github.com/katalvlaran/antstar/tsp"
)

func TestNearestNeighbor_UnitSquare(t *testing.T) {
	tour, cost, err := tsp.NearestNeighbor(distOf(t, unitSquare()), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
	assert.Equal(t, 4.0, cost)
}

// TestNearestNeighbor_LowestIndexTie: equidistant candidates resolve to the smaller index.
func TestNearestNeighbor_LowestIndexTie(t *testing.T) {
	// 1 and 2 are both at distance 1 from 0; 3 is far.
	cities := []tsp.City{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}, {X: 10, Y: 0}}
	tour, _, err := tsp.NearestNeighbor(distOf(t, cities), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 0}, tour)
}

func TestNearestNeighbor_OtherStart(t *testing.T) {
	cities := randomCities(15, 2)
	d := distOf(t, cities)
	tour, cost, err := tsp.NearestNeighbor(d, 7)
	require.NoError(t, err)
	require.NoError(t, tsp.ValidateTour(tour, 15, 7))

	sum, err := tsp.TourCost(d, tour)
	require.NoError(t, err)
	assert.InDelta(t, sum, cost, costTol)
}

func TestNearestNeighbor_Degenerate(t *testing.T) {
	one, err := matrix.NewSquare(1)
	require.NoError(t, err)
	tour, cost, err := tsp.NearestNeighbor(one, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, tour)
	assert.Equal(t, 0.0, cost)

	_, _, err = tsp.NearestNeighbor(one, 1)
	assert.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	_, _, err = tsp.NearestNeighbor(nil, 0)
	assert.ErrorIs(t, err, tsp.ErrDimensionMismatch)
}
