package main

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/timebound/internal/logging"
	"github.com/katalvlaran/timebound/metrics"
	"github.com/katalvlaran/timebound/search"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out io.Writer
	err io.Writer

	logLevel    string
	metricsFile string
	pruningName string

	log     *slog.Logger
	pruning search.Pruning
	reg     *prometheus.Registry
	rec     *metrics.Recorder
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, err: stderr, log: logging.NewNop()}

	root := &cobra.Command{
		Use:           "timebound",
		Short:         "Time-bounded planning over flow networks and recipe books",
		Long:          `timebound finds the best plan that fits a minute budget, for valve networks and for production recipe books described in YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.flush()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Persistent flags (available to all commands)
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.metricsFile, "metrics-file", "", "Write Prometheus metrics to this file after the run")
	root.PersistentFlags().StringVar(&a.pruningName, "pruning", search.MemoAndBound.String(), "Search pruning: memo+bound, memo, bound or none")

	root.AddCommand(newValvesCmd(a), newRecipesCmd(a), newVersionCmd(a))

	return root
}

func (a *app) setup() error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.log = logging.New(a.err, level)

	if a.pruning, err = search.ParsePruning(a.pruningName); err != nil {
		return err
	}

	a.reg = prometheus.NewRegistry()
	a.rec = metrics.NewRecorder(a.reg)

	return nil
}

func (a *app) flush() error {
	if a.metricsFile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.reg, a.metricsFile); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	a.log.Info("metrics written", "path", a.metricsFile)

	return nil
}

// observe records one search and logs it.
func (a *app) observe(variant string, value int, st search.Stats, elapsed time.Duration) {
	a.rec.Observe(variant, value, st, elapsed)
	a.log.Info("search finished",
		"variant", variant, "value", value, "pruning", a.pruning,
		"expanded", st.Expanded, "cache_hits", st.CacheHits, "pruned", st.Pruned,
		"elapsed", elapsed)
}
