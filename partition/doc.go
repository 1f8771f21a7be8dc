// SPDX-License-Identifier: MIT

// Package partition splits a set of actions between two independent agents
// and finds the split with the largest combined value.
//
// What
//
//   - Splits(eligible) yields every ordered pair (A, B) with A ∪ B == eligible and
//     A ∩ B == ∅, including (∅, eligible) and (eligible, ∅): 2^k pairs for |eligible| = k.
//   - Best(ctx, eligible, solveA, solveB, opts...) evaluates each agent on every
//     subset once, then returns max over splits of solveA(A) + solveB(B).
//     A nil solveB means the agents are interchangeable and share one table.
//
// Every evaluation is handed its own subset; callers must build a fresh search
// engine (and therefore a fresh cache) per call, because cached states from one
// subset are meaningless in another.
//
// Concurrency
//
//	Subset evaluations fan out over an errgroup limited to Options.Workers.
//	Results land in disjoint table slots, so no locking is needed. The context is
//	checked between evaluations only; a single evaluation always runs to completion.
//
// Complexity
//
//   - 2^k evaluations per agent, 2^k additions for the final sweep.
//   - Memory: O(2^k) integers; k is capped at MaxElements.
//
// Errors
//
//   - ErrNilSolver          if solveA is nil.
//   - ErrTooManyElements    if |eligible| > MaxElements.
//   - ErrOptionViolation    for invalid options (Workers < 1).
//   - ctx.Err() or the first error returned by a solver.
package partition
