package tsplib_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antstar/tsp"
	"github.com/katalvlaran/antstar/tsplib"
)

func TestReadFile_Square(t *testing.T) {
	inst, err := tsplib.ReadFile("testdata/square4.tsp")
	require.NoError(t, err)

	assert.Equal(t, "square4", inst.Name)
	assert.Equal(t, "unit square, optimal tour 4", inst.Comment)
	assert.Equal(t, 4, inst.Dimension)
	assert.Equal(t, []tsp.City{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}, inst.Cities)

	opts := tsp.DefaultOptions(tsp.ModeMST)
	res, err := tsp.Solve(context.Background(), inst.Cities, opts)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := tsplib.ReadFile("testdata/nope.tsp")
	assert.Error(t, err)
}

func TestParse_Variants(t *testing.T) {
	// Compact "KEY: value" headers, no DIMENSION, no EOF, scientific notation.
	src := "NAME: tri\nNODE_COORD_SECTION\n1 0 0\n2 3.0e0 0\n\n3 3 4\n"
	inst, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "tri", inst.Name)
	assert.Equal(t, 3, inst.Dimension)
	assert.Equal(t, tsp.City{X: 3, Y: 4}, inst.Cities[2])

	// Lines after EOF are ignored; unknown keys are skipped.
	src = "DISPLAY_DATA_TYPE : COORD_DISPLAY\nNODE_COORD_SECTION\n1 1 1\nEOF\ngarbage\n"
	inst, err = tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Len(t, inst.Cities, 1)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no section", "NAME : x\nDIMENSION : 2\n", tsplib.ErrNoCoordSection},
		{"bad header", "just words\nNODE_COORD_SECTION\n", tsplib.ErrMalformedLine},
		{"bad dimension", "DIMENSION : two\nNODE_COORD_SECTION\n", tsplib.ErrMalformedLine},
		{"short node", "NODE_COORD_SECTION\n1 0\n", tsplib.ErrMalformedLine},
		{"bad coord", "NODE_COORD_SECTION\n1 a 0\n", tsplib.ErrMalformedLine},
		{"duplicate id", "NODE_COORD_SECTION\n1 0 0\n1 1 1\n", tsplib.ErrDuplicateNode},
		{"dimension mismatch", "DIMENSION : 3\nNODE_COORD_SECTION\n1 0 0\n2 1 1\nEOF\n", tsplib.ErrDimensionMismatch},
		{"geo", "EDGE_WEIGHT_TYPE : GEO\nNODE_COORD_SECTION\n", tsplib.ErrUnsupported},
		{"atsp", "TYPE : ATSP\nNODE_COORD_SECTION\n", tsplib.ErrUnsupported},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
