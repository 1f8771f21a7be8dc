// SPDX-License-Identifier: MIT

package recipe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/timebound/core"
	"github.com/katalvlaran/timebound/search"
)

// Budgets of the two classic batch questions.
const (
	QualityMinutes = 24
	ProductMinutes = 32
	ProductCount   = 3
)

// Sentinel errors for recipe planning.
var (
	// ErrNilCookbook is returned when a nil *core.Cookbook is passed.
	ErrNilCookbook = errors.New("recipe: cookbook is nil")

	// ErrNegativeMinutes is returned for a negative budget.
	ErrNegativeMinutes = errors.New("recipe: minutes cannot be negative")

	// ErrOutOfRange is returned when stock could outgrow int64 within the budget.
	ErrOutOfRange = errors.New("recipe: budget too large for the cookbook's quantities")

	// ErrBadCount is returned when TopProduct is asked for fewer than one result.
	ErrBadCount = errors.New("recipe: count must be positive")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("recipe: invalid option supplied")
)

// Option configures Solve and the batch helpers.
type Option func(*Options)

// Options holds recipe planning parameters.
type Options struct {
	// Pruning selects the search strategy.
	Pruning search.Pruning

	// Workers bounds concurrent cookbook searches in batch helpers.
	Workers int

	// Logger receives one debug record per solved cookbook.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns MemoAndBound pruning, GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Pruning: search.MemoAndBound,
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithPruning selects the search strategy.
func WithPruning(p search.Pruning) Option {
	return func(o *Options) {
		if _, err := search.ParsePruning(p.String()); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
			return
		}
		o.Pruning = p
	}
}

// WithWorkers bounds concurrent cookbook searches (≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
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

func apply(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// Result is the outcome of one cookbook search.
type Result struct {
	// CookbookID is the searched cookbook's ID.
	CookbookID int
	// Best is the largest scored stock reachable at the deadline.
	Best int
	// Stats describes the search effort.
	Stats search.Stats
	// Elapsed is the wall time of this search alone.
	Elapsed time.Duration
}

// Summary is the outcome of a batch question.
type Summary struct {
	// Value is the combined answer (quality sum or product).
	Value int
	// Results holds one entry per searched cookbook, in input order.
	Results []Result
}

// Solve returns the best scored stock cb can reach within minutes.
//
// Errors: ErrNilCookbook, ErrNegativeMinutes, ErrOutOfRange, ErrOptionViolation.
func Solve(cb *core.Cookbook, minutes int, opts ...Option) (Result, error) {
	o, err := apply(opts)
	if err != nil {
		return Result{}, err
	}

	return solve(cb, minutes, o)
}

func solve(cb *core.Cookbook, minutes int, o Options) (Result, error) {
	if cb == nil {
		return Result{}, ErrNilCookbook
	}
	if minutes < 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNegativeMinutes, minutes)
	}

	p := NewProblem(cb)
	if !p.fits(minutes) {
		return Result{}, fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	e, err := search.New[State, State](p, search.WithPruning(o.Pruning))
	if err != nil {
		return Result{}, err
	}
	started := time.Now()
	r := e.Solve(p.Root(minutes))

	return Result{CookbookID: cb.ID(), Best: r.Value, Stats: r.Stats, Elapsed: time.Since(started)}, nil
}

// SolveAll solves every cookbook within minutes, Options.Workers at a time.
// Results are returned in input order.
//
// Errors: as Solve, prefixed with the failing cookbook; context errors.
func SolveAll(ctx context.Context, books []*core.Cookbook, minutes int, opts ...Option) ([]Result, error) {
	o, err := apply(opts)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(books))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i, cb := range books {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			r, err := solve(cb, minutes, o)
			if err != nil {
				return fmt.Errorf("recipe: cookbook #%d: %w", i, err)
			}
			o.Logger.Debug("recipe: cookbook solved",
				"id", r.CookbookID, "best", r.Best, "minutes", minutes,
				"expanded", r.Stats.Expanded, "cache_hits", r.Stats.CacheHits, "pruned", r.Stats.Pruned)
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// QualitySum returns Σ ID × best over every cookbook.
func QualitySum(ctx context.Context, books []*core.Cookbook, minutes int, opts ...Option) (Summary, error) {
	results, err := SolveAll(ctx, books, minutes, opts...)
	if err != nil {
		return Summary{}, err
	}

	sum := 0
	for _, r := range results {
		sum += r.CookbookID * r.Best
	}

	return Summary{Value: sum, Results: results}, nil
}

// TopProduct returns the product of the best values of the first n cookbooks
// (all of them if fewer than n are given).
//
// Errors: ErrBadCount, plus those of SolveAll.
func TopProduct(ctx context.Context, books []*core.Cookbook, n, minutes int, opts ...Option) (Summary, error) {
	if n < 1 {
		return Summary{}, fmt.Errorf("%w: %d", ErrBadCount, n)
	}
	results, err := SolveAll(ctx, books[:min(n, len(books))], minutes, opts...)
	if err != nil {
		return Summary{}, err
	}

	product := 1
	for _, r := range results {
		product *= r.Best
	}

	return Summary{Value: product, Results: results}, nil
}
