package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/timebound/metrics"
	"github.com/katalvlaran/timebound/valve"
)

func newValvesCmd(a *app) *cobra.Command {
	var (
		start       string
		minutes     int
		pair        bool
		pairMinutes int
		workers     int
	)

	cmd := &cobra.Command{
		Use:   "valves FILE",
		Short: "Maximize the value released from a valve network",
		Long: `Reads a valve network and prints the largest total release reachable
within the minute budget. With --pair, two agents split the valves between them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net, docStart, err := loadNetwork(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("start") && docStart != "" {
				start = docStart
			}

			pl, err := valve.NewPlanner(net,
				valve.WithStart(start),
				valve.WithMinutes(minutes),
				valve.WithPairMinutes(pairMinutes),
				valve.WithPruning(a.pruning),
				valve.WithWorkers(workers),
				valve.WithLogger(a.log),
			)
			if err != nil {
				return err
			}

			started := time.Now()
			if !pair {
				res, err := pl.Solve()
				if err != nil {
					return err
				}
				a.observe(metrics.VariantValves, res.Released, res.Stats, time.Since(started))
				fmt.Fprintln(a.out, res.Released)

				return nil
			}

			res, err := pl.SolvePair(cmd.Context())
			if err != nil {
				return err
			}
			a.observe(metrics.VariantValvePair, res.Released, res.Stats, time.Since(started))
			fmt.Fprintln(a.out, res.Released)
			a.log.Info("pair split",
				"first", strings.Join(res.First, ","),
				"second", strings.Join(res.Second, ","),
				"splits", res.Splits)

			return nil
		},
	}

	defaults := valve.DefaultOptions()
	cmd.Flags().StringVar(&start, "start", defaults.Start, "Start node (overrides the document)")
	cmd.Flags().IntVar(&minutes, "minutes", defaults.Minutes, "Single-agent minute budget")
	cmd.Flags().BoolVar(&pair, "pair", false, "Split the valves between two agents")
	cmd.Flags().IntVar(&pairMinutes, "pair-minutes", defaults.PairMinutes, "Per-agent minute budget with --pair")
	cmd.Flags().IntVar(&workers, "workers", defaults.Workers, "Concurrent subset searches with --pair")

	return cmd
}
