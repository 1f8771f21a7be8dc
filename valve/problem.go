// SPDX-License-Identifier: MIT

package valve

import (
	"github.com/katalvlaran/timebound/core"
	"github.com/katalvlaran/timebound/distance"
)

// target is one openable node as seen from the compact rank space.
type target struct {
	node int
	rate int
}

// Problem is the single-agent valve search space restricted to an allowed set
// of eligible ranks. It implements search.Problem[State, Key].
type Problem struct {
	dist    *distance.Matrix
	targets []target  // targets[r] is the r-th eligible node
	allowed core.Mask // ranks the agent may open
}

// NewProblem builds the search space over net's eligible nodes, restricted to
// the ranks in allowed.
func NewProblem(net *core.Network, dist *distance.Matrix, allowed core.Mask) *Problem {
	eligible := net.Eligible()
	targets := make([]target, len(eligible))
	for r, v := range eligible {
		targets[r] = target{node: v, rate: net.Rate(v)}
	}

	return &Problem{
		dist:    dist,
		targets: targets,
		allowed: allowed & core.FullMask(len(targets)),
	}
}

// Root returns the initial state at node start with minutes left.
func (p *Problem) Root(start, minutes int) State {
	return State{Remaining: minutes, At: start}
}

// Key drops the path-derived accumulators.
func (p *Problem) Key(s State) Key {
	return Key{Remaining: int32(s.Remaining), At: int32(s.At), Open: s.Open}
}

// Idle is the value at the deadline if no further node is opened.
func (p *Problem) Idle(s State) int {
	return s.Released + s.Rate*s.Remaining
}

// Bound adds, for every node still openable, its rate times the minutes left
// after the shortest possible trip to it.
func (p *Problem) Bound(s State) int {
	b := p.Idle(s)
	for r := range (p.allowed &^ s.Open).Bits() {
		if left := p.minutesAfter(s, r); left > 0 {
			b += p.targets[r].rate * left
		}
	}

	return b
}

// Successors appends one child per legal open action, in rank order.
func (p *Problem) Successors(s State, dst []State) []State {
	for r := range (p.allowed &^ s.Open).Bits() {
		left := p.minutesAfter(s, r)
		if left <= 0 {
			continue
		}
		spent := s.Remaining - left
		t := p.targets[r]
		dst = append(dst, State{
			Remaining: left,
			At:        t.node,
			Open:      s.Open.With(r),
			Rate:      s.Rate + t.rate,
			Released:  s.Released + s.Rate*spent,
		})
	}

	return dst
}

// minutesAfter returns the minutes left once rank r is reached and opened,
// or 0 when it cannot be done before the deadline.
func (p *Problem) minutesAfter(s State, r int) int {
	v := p.targets[r].node
	if !p.dist.Reachable(s.At, v) {
		return 0
	}
	left := s.Remaining - p.dist.At(s.At, v) - 1

	return max(left, 0)
}
