package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/antstar/tsp"
)

var (
	raceFlags commonFlags
	raceModes string
)

func raceCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runRace,
		UsageLine: "race [options]",
		Short:     "run several heuristics concurrently on the same instance",
		Long: `
race starts one isolated search per mode, all sharing the time limit, and
prints a comparison table. The first row is the cheapest tour.

	$ antstar race -random 40 -modes mst,hybrid -time 10s
`,
		Flag: *flag.NewFlagSet("race", flag.ExitOnError),
	}
	raceFlags.register(&cmd.Flag)
	cmd.Flag.StringVar(&raceModes, "modes", "mst,aco,hybrid", "comma-separated modes to race")

	return cmd
}

func parseModes(s string) ([]tsp.Mode, error) {
	var modes []tsp.Mode
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		m, err := tsp.ParseMode(part)
		if err != nil {
			return nil, fmt.Errorf("mode %q: %w", part, err)
		}
		modes = append(modes, m)
	}

	return modes, nil
}

func runRace(cmd *commander.Command, _ []string) error {
	modes, err := parseModes(raceModes)
	if err != nil {
		return err
	}
	name, cities, err := raceFlags.cities()
	if err != nil {
		return err
	}
	_, opts, _, stop, err := raceFlags.setup(&cmd.Flag)
	if err != nil {
		return err
	}
	defer stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	results, err := tsp.SolveAll(ctx, cities, modes, opts)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "instance: %s (%d cities)\n", name, len(cities))
	printRace(os.Stdout, results)

	return nil
}

// printRace writes results cheapest first; ties keep the requested order.
func printRace(w io.Writer, results []tsp.Result) {
	order := make([]int, len(results))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return results[order[a]].Cost < results[order[b]].Cost })

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODE\tCOST\tBASELINE\tNODES\tTERMINATION\tELAPSED")
	for _, i := range order {
		r := results[i]
		fmt.Fprintf(tw, "%s\t%.6f\t%.6f\t%d\t%s\t%s\n",
			r.Mode, r.Cost, r.Baseline, r.NodesExplored, r.Termination, r.Elapsed)
	}
	_ = tw.Flush()
}
