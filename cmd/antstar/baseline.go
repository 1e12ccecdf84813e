package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"

	"github.com/katalvlaran/antstar/aco"
	"github.com/katalvlaran/antstar/tsp"
)

var (
	baselineFlags      commonFlags
	baselineIterations int
	baselineAnts       int
)

func baselineCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runBaseline,
		UsageLine: "baseline [options]",
		Short:     "run the standalone ant colony optimizer",
		Long: `
baseline runs a plain ant colony optimizer (no search tree) and compares its
tour with the nearest-neighbor seed. Useful as a reference for solve.

	$ antstar baseline -in berlin52.tsp -iterations 200 -seed 7
`,
		Flag: *flag.NewFlagSet("baseline", flag.ExitOnError),
	}
	baselineFlags.register(&cmd.Flag)
	cmd.Flag.IntVar(&baselineIterations, "iterations", 100, "colony iterations")
	cmd.Flag.IntVar(&baselineAnts, "ants", aco.BaselineConfig().Ants, "ants per iteration")

	return cmd
}

func runBaseline(cmd *commander.Command, _ []string) error {
	name, cities, err := baselineFlags.cities()
	if err != nil {
		return err
	}
	cfg, _, log, stop, err := baselineFlags.setup(&cmd.Flag)
	if err != nil {
		return err
	}
	defer stop()

	dist, err := tsp.DistanceMatrix(cities)
	if err != nil {
		return err
	}
	_, nnCost, err := tsp.NearestNeighbor(dist, 0)
	if err != nil {
		return err
	}

	colonyCfg := aco.BaselineConfig()
	colonyCfg.Ants = baselineAnts
	seed := cfg.Search.Seed
	if seed == 0 {
		seed = 1
	}
	colony, err := aco.New(dist, colonyCfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}
	tour, cost, err := colony.Optimize(0, baselineIterations)
	if err != nil {
		return err
	}
	log.Info("baseline finished",
		zap.Int("iterations", baselineIterations),
		zap.Float64("cost", cost),
		zap.Float64("nearest_neighbor", nnCost))

	fmt.Fprintf(os.Stdout, "instance:         %s (%d cities)\n", name, len(cities))
	fmt.Fprintf(os.Stdout, "tour:             %s\n", tsp.FormatTour(tour))
	fmt.Fprintf(os.Stdout, "cost:             %.6f\n", cost)
	fmt.Fprintf(os.Stdout, "nearest neighbor: %.6f\n", nnCost)

	return nil
}
