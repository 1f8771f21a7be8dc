// SPDX-License-Identifier: MIT

package search

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine construction.
var (
	// ErrNilProblem is returned when New receives a nil Problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// Problem describes a time-bounded maximization state space.
//
// S is the state value type; K is its canonical, comparable memoization key.
// Implementations must be pure: the same state always yields the same key,
// idle value, bound and successors.
type Problem[S any, K comparable] interface {
	// Key returns the canonical cache key of s. Two states with equal keys must
	// have the same achievable gain above Idle.
	Key(s S) K

	// Idle returns the final value obtained by taking no further action from s.
	Idle(s S) int

	// Bound returns an upper bound on every final value reachable from s.
	// It must never be lower than the true optimum from s.
	Bound(s S) int

	// Successors appends the legal children of s to dst and returns it.
	Successors(s S, dst []S) []S
}

// Pruning selects which pruning mechanisms the engine applies.
type Pruning int

const (
	// MemoAndBound applies both the cache and the bound test.
	MemoAndBound Pruning = iota
	// MemoOnly applies only the cache.
	MemoOnly
	// BoundOnly applies only the bound test.
	BoundOnly
	// NoPruning explores every branch.
	NoPruning
)

// String implements fmt.Stringer.
func (p Pruning) String() string {
	switch p {
	case MemoAndBound:
		return "memo+bound"
	case MemoOnly:
		return "memo"
	case BoundOnly:
		return "bound"
	case NoPruning:
		return "none"
	default:
		return fmt.Sprintf("Pruning(%d)", int(p))
	}
}

// ParsePruning maps a String() form back to a Pruning value.
func ParsePruning(s string) (Pruning, error) {
	for _, p := range []Pruning{MemoAndBound, MemoOnly, BoundOnly, NoPruning} {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("%w: unknown pruning %q", ErrOptionViolation, s)
}

func (p Pruning) memo() bool  { return p == MemoAndBound || p == MemoOnly }
func (p Pruning) bound() bool { return p == MemoAndBound || p == BoundOnly }

// Option configures an Engine.
type Option func(*Options)

// Options holds engine parameters and hooks.
type Options struct {
	// Pruning selects the pruning strategy.
	Pruning Pruning

	// OnImprove is called whenever the incumbent value increases.
	OnImprove func(value int)

	// OnPrune is called when a subtree is skipped, with the bound that failed
	// and the incumbent it failed against.
	OnPrune func(bound, incumbent int)

	err error
}

// DefaultOptions returns MemoAndBound pruning and no hooks.
func DefaultOptions() Options {
	return Options{
		Pruning:   MemoAndBound,
		OnImprove: func(int) {},
		OnPrune:   func(int, int) {},
	}
}

// WithPruning selects the pruning strategy.
func WithPruning(p Pruning) Option {
	return func(o *Options) {
		switch p {
		case MemoAndBound, MemoOnly, BoundOnly, NoPruning:
			o.Pruning = p
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, p)
		}
	}
}

// WithOnImprove registers a hook fired on every incumbent improvement.
func WithOnImprove(fn func(value int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnImprove = fn
		}
	}
}

// WithOnPrune registers a hook fired on every bound cut.
func WithOnPrune(fn func(bound, incumbent int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrune = fn
		}
	}
}

// Stats counts the work done by one Solve.
type Stats struct {
	// Expanded is the number of states visited (cache hits included).
	Expanded int
	// CacheHits is the number of states answered from the cache.
	CacheHits int
	// Pruned is the number of subtrees skipped by the bound.
	Pruned int
	// Stored is the number of exact results written to the cache.
	Stored int
	// MaxDepth is the deepest action count reached.
	MaxDepth int
}

// Add returns the field-wise sum of s and o (MaxDepth takes the maximum).
func (s Stats) Add(o Stats) Stats {
	s.Expanded += o.Expanded
	s.CacheHits += o.CacheHits
	s.Pruned += o.Pruned
	s.Stored += o.Stored
	s.MaxDepth = max(s.MaxDepth, o.MaxDepth)

	return s
}

// Result holds the outcome of Solve.
type Result struct {
	// Value is the best final value reachable from the root.
	Value int

	// Stats describes the search effort.
	Stats Stats
}
