// SPDX-License-Identifier: MIT

package valve

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"runtime"

	"github.com/katalvlaran/timebound/core"
	"github.com/katalvlaran/timebound/distance"
	"github.com/katalvlaran/timebound/search"
)

// Sentinel errors for valve planning.
var (
	// ErrNilNetwork is returned when a nil *core.Network is passed.
	ErrNilNetwork = errors.New("valve: network is nil")

	// ErrStartNotFound is returned when the start node is not declared.
	ErrStartNotFound = errors.New("valve: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("valve: invalid option supplied")
)

// Defaults mirror the classic single-agent and teach-an-elephant budgets.
const (
	DefaultStart       = "AA"
	DefaultMinutes     = 30
	DefaultPairMinutes = 26
)

// Option configures a Planner.
type Option func(*Options)

// Options holds planning parameters.
type Options struct {
	// Start is the ID of the node every agent starts at.
	Start string

	// Minutes is the single-agent budget.
	Minutes int

	// PairMinutes is the per-agent budget when two agents share the work.
	PairMinutes int

	// Pruning selects the search strategy.
	Pruning search.Pruning

	// Method selects the distance preprocessing strategy.
	Method distance.Method

	// Workers bounds concurrent subset searches in SolvePair.
	Workers int

	// Logger receives debug progress from SolvePair.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns start "AA", 30/26 minutes, MemoAndBound pruning,
// relaxation distances, GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Start:       DefaultStart,
		Minutes:     DefaultMinutes,
		PairMinutes: DefaultPairMinutes,
		Pruning:     search.MemoAndBound,
		Method:      distance.Relaxation,
		Workers:     runtime.GOMAXPROCS(0),
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func (o *Options) violate(format string, args ...any) {
	if o.err == nil {
		o.err = fmt.Errorf("%w: "+format, append([]any{ErrOptionViolation}, args...)...)
	}
}

// WithStart sets the start node ID.
func WithStart(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.violate("empty start node")
			return
		}
		o.Start = id
	}
}

// WithMinutes sets the single-agent budget (0..MaxInt32).
func WithMinutes(m int) Option {
	return func(o *Options) {
		if m < 0 || m > math.MaxInt32 {
			o.violate("minutes out of range (%d)", m)
			return
		}
		o.Minutes = m
	}
}

// WithPairMinutes sets the per-agent budget for SolvePair (0..MaxInt32).
func WithPairMinutes(m int) Option {
	return func(o *Options) {
		if m < 0 || m > math.MaxInt32 {
			o.violate("pair minutes out of range (%d)", m)
			return
		}
		o.PairMinutes = m
	}
}

// WithPruning selects the search strategy.
func WithPruning(p search.Pruning) Option {
	return func(o *Options) {
		if _, err := search.ParsePruning(p.String()); err != nil {
			o.violate("%v", p)
			return
		}
		o.Pruning = p
	}
}

// WithDistanceMethod selects the distance preprocessing strategy.
func WithDistanceMethod(m distance.Method) Option {
	return func(o *Options) { o.Method = m }
}

// WithWorkers bounds concurrent subset searches (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.violate("workers must be positive (%d)", n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the progress logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// State is one node of the single-agent search tree.
type State struct {
	// Remaining is the number of minutes left.
	Remaining int
	// At is the index of the current node.
	At int
	// Open holds the eligible ranks already opened.
	Open core.Mask
	// Rate is the value released per minute by opened nodes.
	Rate int
	// Released is the value released so far.
	Released int
}

// Key is the canonical memoization key of a State.
type Key struct {
	Remaining int32
	At        int32
	Open      core.Mask
}

// Result is the outcome of a single-agent solve.
type Result struct {
	// Released is the maximum total value released by the deadline.
	Released int
	// Stats describes the search effort.
	Stats search.Stats
}

// PairResult is the outcome of a two-agent solve.
type PairResult struct {
	// Released is the maximum combined value.
	Released int
	// First and Second list the node IDs assigned to each agent.
	First, Second []string
	// Splits is the number of splits compared.
	Splits int
	// Stats sums the effort of every subset search.
	Stats search.Stats
}
