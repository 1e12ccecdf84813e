package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/antstar/tsp"
)

var solveFlags commonFlags

func solveCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runSolve,
		UsageLine: "solve [options]",
		Short:     "search one instance with a single heuristic",
		Long: `
solve runs the A* search seeded with the nearest-neighbor tour and prints the
best tour found before the time limit.

	$ antstar solve -in berlin52.tsp -mode hybrid -time 30s -polish
`,
		Flag: *flag.NewFlagSet("solve", flag.ExitOnError),
	}
	solveFlags.register(&cmd.Flag)

	return cmd
}

func runSolve(cmd *commander.Command, _ []string) error {
	name, cities, err := solveFlags.cities()
	if err != nil {
		return err
	}
	_, opts, _, stop, err := solveFlags.setup(&cmd.Flag)
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	res, err := tsp.Solve(ctx, cities, opts)
	if err != nil {
		return err
	}
	printResult(os.Stdout, name, len(cities), res)

	return nil
}

func printResult(w io.Writer, name string, n int, r tsp.Result) {
	fmt.Fprintf(w, "instance:    %s (%d cities)\n", name, n)
	fmt.Fprintf(w, "mode:        %s\n", r.Mode)
	fmt.Fprintf(w, "tour:        %s\n", tsp.FormatTour(r.Tour))
	fmt.Fprintf(w, "cost:        %.6f\n", r.Cost)
	fmt.Fprintf(w, "baseline:    %.6f (nearest neighbor)\n", r.Baseline)
	fmt.Fprintf(w, "nodes:       %d\n", r.NodesExplored)
	fmt.Fprintf(w, "termination: %s\n", r.Termination)
	fmt.Fprintf(w, "elapsed:     %s\n", r.Elapsed)
}
