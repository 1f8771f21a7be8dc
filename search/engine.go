// SPDX-License-Identifier: MIT

package search

import "math"

// Engine holds the search policy, the cache, and the incumbent of one run.
type Engine[S any, K comparable] struct {
	p    Problem[S, K]
	opts Options

	memo map[K]int // Key(s) → best final value − Idle(s), exact results only
	best int       // incumbent
	st   Stats

	// scratch[d] holds the successor buffer of depth d; siblings never share a level.
	scratch [][]S
}

// New builds an Engine for p.
//
// Errors: ErrNilProblem, ErrOptionViolation.
func New[S any, K comparable](p Problem[S, K], opts ...Option) (*Engine[S, K], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Engine[S, K]{p: p, opts: o}, nil
}

// Pruning reports the configured strategy.
func (e *Engine[S, K]) Pruning() Pruning { return e.opts.Pruning }

// Solve returns the best final value reachable from root.
// Every call starts from an empty cache and a fresh incumbent.
func (e *Engine[S, K]) Solve(root S) Result {
	e.best = math.MinInt
	e.st = Stats{}
	e.memo = nil
	if e.opts.Pruning.memo() {
		e.memo = make(map[K]int)
	}

	e.visit(root, 0)

	res := Result{Value: e.best, Stats: e.st}
	e.memo = nil

	return res
}

// improve raises the incumbent to v if v is larger.
func (e *Engine[S, K]) improve(v int) {
	if v > e.best {
		e.best = v
		e.opts.OnImprove(v)
	}
}

// visit returns the best final value found below s and whether that value is
// exact (no bound cut anywhere in the subtree).
func (e *Engine[S, K]) visit(s S, depth int) (int, bool) {
	e.st.Expanded++
	if depth > e.st.MaxDepth {
		e.st.MaxDepth = depth
	}

	idle := e.p.Idle(s)
	e.improve(idle)

	var key K
	if e.memo != nil {
		key = e.p.Key(s)
		if gain, ok := e.memo[key]; ok {
			e.st.CacheHits++
			e.improve(idle + gain)

			return idle + gain, true
		}
	}

	if e.opts.Pruning.bound() {
		if b := e.p.Bound(s); b <= e.best {
			e.st.Pruned++
			e.opts.OnPrune(b, e.best)
			if b > idle {
				return idle, false
			}
			// Bound == Idle means nothing can be gained: idle is the exact optimum.
			if e.memo != nil {
				e.memo[key] = 0
				e.st.Stored++
			}

			return idle, true
		}
	}

	if depth == len(e.scratch) {
		e.scratch = append(e.scratch, nil)
	}
	children := e.p.Successors(s, e.scratch[depth][:0])
	e.scratch[depth] = children

	best, exact := idle, true
	for i := range children {
		v, ok := e.visit(children[i], depth+1)
		if v > best {
			best = v
		}
		exact = exact && ok
	}

	if e.memo != nil && exact {
		e.memo[key] = best - idle
		e.st.Stored++
	}

	return best, exact
}
