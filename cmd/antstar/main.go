// Command antstar solves Euclidean TSP instances with the antstar search.
//
//	antstar solve    -in berlin52.tsp -mode hybrid -time 30s
//	antstar race     -random 40 -time 10s
//	antstar baseline -in berlin52.tsp -iterations 200
//
// Every subcommand accepts -config (YAML, see package config), reads
// ANTSTAR_* environment variables, and lets explicit flags win over both.
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
)

func newRootCommand() *commander.Command {
	return &commander.Command{
		UsageLine: "antstar <command> [options]",
		Short:     "time-boxed A* TSP solver with MST and ant-colony heuristics",
		Subcommands: []*commander.Command{
			solveCmd(),
			raceCmd(),
			baselineCmd(),
		},
	}
}

func main() {
	if err := newRootCommand().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "antstar: %v\n", err)
		os.Exit(1)
	}
}
