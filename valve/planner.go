// SPDX-License-Identifier: MIT

package valve

import (
	"context"
	"fmt"
	"sync"

	"github.com/katalvlaran/timebound/core"
	"github.com/katalvlaran/timebound/distance"
	"github.com/katalvlaran/timebound/partition"
	"github.com/katalvlaran/timebound/search"
)

// Planner holds a validated network, its distance matrix and the resolved start.
// It is safe for concurrent use: every solve builds its own engine.
type Planner struct {
	net   *core.Network
	dist  *distance.Matrix
	start int
	opts  Options
}

// NewPlanner validates options, resolves the start node and precomputes distances.
//
// Errors: ErrNilNetwork, ErrOptionViolation, ErrStartNotFound, distance errors.
func NewPlanner(net *core.Network, opts ...Option) (*Planner, error) {
	if net == nil {
		return nil, ErrNilNetwork
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	start, ok := net.Index(o.Start)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, o.Start)
	}

	dist, err := distance.AllPairs(net, distance.WithMethod(o.Method))
	if err != nil {
		return nil, fmt.Errorf("valve: distances: %w", err)
	}

	return &Planner{net: net, dist: dist, start: start, opts: o}, nil
}

// Network returns the planned network.
func (pl *Planner) Network() *core.Network { return pl.net }

// Distances returns the precomputed distance matrix.
func (pl *Planner) Distances() *distance.Matrix { return pl.dist }

// Eligible returns the full rank set of openable nodes.
func (pl *Planner) Eligible() core.Mask { return core.FullMask(len(pl.net.Eligible())) }

// SolveSubset returns the best single-agent release over minutes when only
// the eligible ranks in allowed may be opened.
//
// Errors: search engine construction errors.
func (pl *Planner) SolveSubset(allowed core.Mask, minutes int) (Result, error) {
	p := NewProblem(pl.net, pl.dist, allowed)
	e, err := search.New[State, Key](p, search.WithPruning(pl.opts.Pruning))
	if err != nil {
		return Result{}, fmt.Errorf("valve: %w", err)
	}
	r := e.Solve(p.Root(pl.start, minutes))

	return Result{Released: r.Value, Stats: r.Stats}, nil
}

// Solve returns the best single-agent release over Options.Minutes.
func (pl *Planner) Solve() (Result, error) {
	return pl.SolveSubset(pl.Eligible(), pl.opts.Minutes)
}

// SolvePair splits the eligible nodes between two identical agents that both
// start at Options.Start with Options.PairMinutes each.
//
// Errors: partition errors (too many eligible nodes), SolveSubset and context errors.
func (pl *Planner) SolvePair(ctx context.Context) (PairResult, error) {
	var (
		mu    sync.Mutex
		stats search.Stats
	)
	minutes := pl.opts.PairMinutes
	solve := func(subset core.Mask) (int, error) {
		r, err := pl.SolveSubset(subset, minutes)
		if err != nil {
			return 0, err
		}
		mu.Lock()
		stats = stats.Add(r.Stats)
		mu.Unlock()

		return r.Released, nil
	}

	res, err := partition.Best(ctx, pl.Eligible(), solve, nil,
		partition.WithWorkers(pl.opts.Workers),
		partition.WithLogger(pl.opts.Logger),
	)
	if err != nil {
		return PairResult{}, fmt.Errorf("valve: pair: %w", err)
	}

	return PairResult{
		Released: res.Value,
		First:    pl.ids(res.A),
		Second:   pl.ids(res.B),
		Splits:   res.Splits,
		Stats:    stats,
	}, nil
}

// ids maps a rank set back to node IDs in rank order.
func (pl *Planner) ids(m core.Mask) []string {
	eligible := pl.net.Eligible()
	out := make([]string, 0, m.Count())
	for r := range m.Bits() {
		out = append(out, pl.net.ID(eligible[r]))
	}

	return out
}

// Solve is a one-shot NewPlanner(...).Solve().
func Solve(net *core.Network, opts ...Option) (Result, error) {
	pl, err := NewPlanner(net, opts...)
	if err != nil {
		return Result{}, err
	}

	return pl.Solve()
}

// SolvePair is a one-shot NewPlanner(...).SolvePair(ctx).
func SolvePair(ctx context.Context, net *core.Network, opts ...Option) (PairResult, error) {
	pl, err := NewPlanner(net, opts...)
	if err != nil {
		return PairResult{}, err
	}

	return pl.SolvePair(ctx)
}
