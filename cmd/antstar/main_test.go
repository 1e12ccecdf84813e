package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/gonuts/flag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/antstar/config"
	"github.com/katalvlaran/antstar/tsp"
)

func newFlags(t *testing.T, args ...string) (*commonFlags, *flag.FlagSet) {
	t.Helper()
	f := &commonFlags{}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	f.register(fs)
	require.NoError(t, fs.Parse(args))

	return f, fs
}

func TestCommonFlags_ExplicitFlagsWin(t *testing.T) {
	f, fs := newFlags(t, "-mode", "hybrid", "-time", "3s", "-seed", "5", "-polish")
	cfg, err := f.load(fs)
	require.NoError(t, err)

	assert.Equal(t, "hybrid", cfg.Mode)
	assert.Equal(t, 3*time.Second, cfg.Search.TimeLimit)
	assert.Equal(t, int64(5), cfg.Search.Seed)
	assert.True(t, cfg.Search.Polish)
}

func TestCommonFlags_DefaultsUntouched(t *testing.T) {
	f, fs := newFlags(t)
	cfg, err := f.load(fs)
	require.NoError(t, err)
	assert.Equal(t, config.Default().Search.TimeLimit, cfg.Search.TimeLimit)
}

func TestCommonFlags_InvalidMode(t *testing.T) {
	f, fs := newFlags(t, "-mode", "greedy")
	_, err := f.load(fs)
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestCommonFlags_Cities(t *testing.T) {
	f, _ := newFlags(t)
	_, _, err := f.cities()
	assert.ErrorIs(t, err, errNoInput)

	f, _ = newFlags(t, "-random", "12", "-in", "x.tsp")
	_, _, err = f.cities()
	assert.ErrorIs(t, err, errNoInput)

	f, _ = newFlags(t, "-random", "12", "-random-seed", "3")
	name, cities, err := f.cities()
	require.NoError(t, err)
	assert.Equal(t, "random-12", name)
	assert.Len(t, cities, 12)
	_, again, _ := f.cities()
	assert.Equal(t, cities, again)

	f, _ = newFlags(t, "-in", "../../tsplib/testdata/square4.tsp")
	name, cities, err = f.cities()
	require.NoError(t, err)
	assert.Equal(t, "square4", name)
	assert.Len(t, cities, 4)
}

func TestParseModes(t *testing.T) {
	modes, err := parseModes("mst, hybrid,,aco")
	require.NoError(t, err)
	assert.Equal(t, []tsp.Mode{tsp.ModeMST, tsp.ModeHybrid, tsp.ModeACO}, modes)

	_, err = parseModes("mst,dfs")
	assert.ErrorIs(t, err, tsp.ErrUnsupportedMode)
}

func TestPrintRace_CheapestFirst(t *testing.T) {
	var buf bytes.Buffer
	printRace(&buf, []tsp.Result{
		{Mode: tsp.ModeACO, Cost: 12},
		{Mode: tsp.ModeMST, Cost: 10},
		{Mode: tsp.ModeHybrid, Cost: 12},
	})
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "mst"))
	assert.True(t, strings.HasPrefix(lines[2], "aco"))
	assert.True(t, strings.HasPrefix(lines[3], "hybrid"))
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "square4", 4, tsp.Result{
		Mode: tsp.ModeMST, Tour: []int{0, 1, 2, 3, 0}, Cost: 4, Baseline: 4, Termination: tsp.Exhausted,
	})
	out := buf.String()
	assert.Contains(t, out, "square4 (4 cities)")
	assert.Contains(t, out, "0 → 1 → 2 → 3 → 0")
	assert.Contains(t, out, "termination: exhausted")
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(config.Log{Level: "debug", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = newLogger(config.Log{Level: "loud", Format: "console"})
	assert.Error(t, err)
}
