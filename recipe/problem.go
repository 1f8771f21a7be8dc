// SPDX-License-Identifier: MIT

package recipe

import (
	"math"

	"github.com/katalvlaran/timebound/core"
)

// State is one node of the build-order search tree.
// It is a comparable value and serves as its own cache key once canonicalized.
type State struct {
	// Remaining is the number of minutes left.
	Remaining int
	// Stock holds the amount of each resource on hand.
	Stock core.Resources
	// Rate holds the per-minute production of each resource.
	Rate core.Resources
}

// Problem is the build-order search space of one Cookbook.
// It implements search.Problem[State, State].
type Problem struct {
	cb       *core.Cookbook
	target   int
	order    []int // recipe indices: target producers first, then the rest last-declared first
	outputs  []int
	costs    []core.Resources
	need     core.Resources // MaxRequired
	consumed [core.MaxResources]bool
}

// NewProblem indexes cb for searching.
func NewProblem(cb *core.Cookbook) *Problem {
	n := cb.NumRecipes()
	p := &Problem{
		cb:      cb,
		target:  cb.Target(),
		order:   make([]int, 0, n),
		outputs: make([]int, n),
		costs:   make([]core.Resources, n),
		need:    cb.MaxRequired(),
	}
	for i := 0; i < n; i++ {
		p.outputs[i], p.costs[i] = cb.Recipe(i)
	}
	for r := range p.need {
		p.consumed[r] = p.need[r] > 0
	}

	for i := 0; i < n; i++ {
		if p.outputs[i] == p.target {
			p.order = append(p.order, i)
		}
	}
	for i := n - 1; i >= 0; i-- {
		if p.outputs[i] != p.target {
			p.order = append(p.order, i)
		}
	}

	return p
}

// Cookbook returns the searched cookbook.
func (p *Problem) Cookbook() *core.Cookbook { return p.cb }

// Root returns the starting state: empty stock, initial production, minutes left.
func (p *Problem) Root(minutes int) State {
	return State{Remaining: minutes, Rate: p.cb.Initial()}
}

// Key caps every non-scored stock at Remaining·MaxRequired.
func (p *Problem) Key(s State) State {
	limit := int64(s.Remaining)
	for r := range s.Stock {
		if r == p.target {
			continue
		}
		if c := limit * p.need[r]; s.Stock[r] > c {
			s.Stock[r] = c
		}
	}

	return s
}

// Idle is the scored stock at the deadline if nothing more is built.
func (p *Problem) Idle(s State) int {
	return int(s.Stock[p.target]) + int(s.Rate[p.target])*s.Remaining
}

// Bound assumes a new scored producer is finished every remaining minute.
func (p *Problem) Bound(s State) int {
	t := s.Remaining

	return p.Idle(s) + t*(t-1)/2
}

// Successors appends one child per recipe that can be finished before the
// deadline and is not saturated.
func (p *Problem) Successors(s State, dst []State) []State {
	for _, i := range p.order {
		out := p.outputs[i]
		if p.saturated(s, out) {
			continue
		}
		wait, ok := p.wait(s, p.costs[i])
		if !ok {
			continue
		}
		elapsed := wait + 1
		if elapsed >= s.Remaining {
			continue
		}

		c := State{
			Remaining: s.Remaining - elapsed,
			Stock:     s.Stock.AddScaled(s.Rate, int64(elapsed)).Sub(p.costs[i]),
			Rate:      s.Rate,
		}
		c.Rate[out]++
		dst = append(dst, c)
	}

	return dst
}

// fits reports whether every stock, rate and key cap reachable within minutes
// stays representable: (largest rate or requirement + minutes)·minutes ≤ MaxInt64.
func (p *Problem) fits(minutes int) bool {
	if minutes == 0 {
		return true
	}
	var peak int64
	initial := p.cb.Initial()
	for r := range initial {
		peak = max(peak, initial[r], p.need[r])
	}
	t := int64(minutes)

	return peak <= math.MaxInt64-t && peak+t <= math.MaxInt64/t
}

// SaturatedMask returns the recipes (by cookbook index) that s no longer builds.
func (p *Problem) SaturatedMask(s State) core.Mask {
	var m core.Mask
	for i, out := range p.outputs {
		if p.saturated(s, out) {
			m = m.With(i)
		}
	}

	return m
}

// saturated reports whether more production of out can never be spent.
func (p *Problem) saturated(s State, out int) bool {
	if out == p.target {
		return false
	}

	return !p.consumed[out] || s.Rate[out] >= p.need[out]
}

// wait returns the minutes until s can afford cost, or false if some input
// is short and not being produced.
func (p *Problem) wait(s State, cost core.Resources) (int, bool) {
	var wait int64
	for r := range cost {
		short := cost[r] - s.Stock[r]
		if short <= 0 {
			continue
		}
		if s.Rate[r] == 0 {
			return 0, false
		}
		if w := (short + s.Rate[r] - 1) / s.Rate[r]; w > wait {
			wait = w
		}
	}

	return int(wait), true
}
