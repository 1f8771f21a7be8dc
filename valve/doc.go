// SPDX-License-Identifier: MIT

// Package valve maximizes the value released from a flow network within a
// minute budget, for one agent or for two agents sharing the work.
//
// Model
//
//	An agent starts at a node with every node closed. Travelling to a node and
//	opening it costs distance+1 minutes; from then on the node's rate is released
//	every remaining minute. Only positive-rate nodes are worth opening, so the
//	search state tracks them in a compact Mask (bit r ↔ r-th eligible node).
//
//	State{Remaining, At, Open, Rate, Released}
//	  Key   = (Remaining, At, Open)            rate and released value are path-derived
//	  Idle  = Released + Rate·Remaining        value if nothing else is opened
//	  Bound = Idle + Σ rate(v)·(Remaining − d(At,v) − 1) over openable v
//
//	The bound is admissible: by the triangle inequality of shortest paths, no route
//	reaches v sooner than d(At,v), so v releases for at most that many minutes.
//
// Entry points
//
//	Solve(net, opts...)          single agent, Options.Minutes (default 30).
//	SolvePair(ctx, net, opts...) two agents from the same start, Options.PairMinutes
//	                             (default 26); the eligible nodes are split between
//	                             them with package partition.
//	NewPlanner(net, opts...)     precomputes distances once for repeated solves.
//
// Errors
//
//	ErrNilNetwork, ErrStartNotFound, ErrOptionViolation, plus partition and
//	context errors from SolvePair.
package valve
