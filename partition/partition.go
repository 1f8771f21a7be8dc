// SPDX-License-Identifier: MIT

package partition

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/timebound/core"
)

// MaxElements caps the eligible-set size accepted by Best.
const MaxElements = 24

// Sentinel errors for partition search.
var (
	// ErrNilSolver is returned when the first agent's SolveFunc is nil.
	ErrNilSolver = errors.New("partition: solver is nil")

	// ErrTooManyElements is returned when the eligible set exceeds MaxElements.
	ErrTooManyElements = errors.New("partition: too many eligible elements")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("partition: invalid option supplied")
)

// SolveFunc returns the best value one agent achieves when restricted to subset.
type SolveFunc func(subset core.Mask) (int, error)

// Option configures Best.
type Option func(*Options)

// Options holds Best parameters.
type Options struct {
	// Workers bounds concurrent subset evaluations.
	Workers int

	// Logger receives progress records at debug level.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns GOMAXPROCS workers and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithWorkers bounds concurrent subset evaluations. n must be ≥ 1.
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

// Result is the winning split.
type Result struct {
	// Value is solveA(A) + solveB(B).
	Value int

	// A and B are the winning disjoint subsets.
	A, B core.Mask

	// Splits is the number of splits compared.
	Splits int
}

// Splits yields every ordered split (A, eligible \ A) in ascending order of A.
func Splits(eligible core.Mask) iter.Seq2[core.Mask, core.Mask] {
	return func(yield func(core.Mask, core.Mask) bool) {
		for a := core.Mask(0); ; a = (a - eligible) & eligible {
			if !yield(a, eligible&^a) {
				return
			}
			if a == eligible {
				return
			}
		}
	}
}

// Best returns the split of eligible maximizing solveA(A) + solveB(B).
func Best(ctx context.Context, eligible core.Mask, solveA, solveB SolveFunc, opts ...Option) (Result, error) {
	if solveA == nil {
		return Result{}, ErrNilSolver
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	k := eligible.Count()
	if k > MaxElements {
		return Result{}, fmt.Errorf("%w: %d > %d", ErrTooManyElements, k, MaxElements)
	}

	// Submasks enumerated in ascending order map one-to-one onto 0..2^k-1, so the
	// tables are indexed by that rank and the complement's rank is full^rank.
	subsets := make([]core.Mask, 0, 1<<k)
	for a := range Splits(eligible) {
		subsets = append(subsets, a)
	}

	o.Logger.Debug("partition: evaluating subsets", "elements", k, "subsets", len(subsets), "workers", o.Workers)

	valA, err := evaluate(ctx, subsets, solveA, o.Workers)
	if err != nil {
		return Result{}, err
	}
	valB := valA
	if solveB != nil {
		if valB, err = evaluate(ctx, subsets, solveB, o.Workers); err != nil {
			return Result{}, err
		}
	}

	full := len(subsets) - 1
	res := Result{Splits: len(subsets)}
	for rank, a := range subsets {
		if v := valA[rank] + valB[full^rank]; rank == 0 || v > res.Value {
			res.Value = v
			res.A, res.B = a, eligible&^a
		}
	}

	o.Logger.Debug("partition: best split", "value", res.Value, "a", res.A.Count(), "b", res.B.Count())

	return res, nil
}

// evaluate fills vals[i] = solve(subsets[i]) with at most workers goroutines.
func evaluate(ctx context.Context, subsets []core.Mask, solve SolveFunc, workers int) ([]int, error) {
	vals := make([]int, len(subsets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range subsets {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			v, err := solve(subsets[i])
			if err != nil {
				return fmt.Errorf("partition: subset %#x: %w", uint64(subsets[i]), err)
			}
			vals[i] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// A cancellation observed before scheduling leaves no goroutine error behind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return vals, nil
}
