// SPDX-License-Identifier: MIT

// Package search implements a memoized Branch-and-Bound (BnB) maximizer over
// time-bounded action sequences.
//
// A Problem describes the state space; the Engine explores it depth-first:
//
//  1. Idle(s) is the value of taking no further action from s: the accumulated
//     value plus the remaining minutes credited at the current rate, in one
//     closed-form step. Every final value is the Idle value of some reachable
//     state, so the running maximum of Idle over visited states (the incumbent)
//     is the answer once the search finishes.
//  2. Key(s) is the canonical memoization key. The cache stores the gain above
//     Idle(s), so states that differ only in path-derived accumulators share an
//     entry as long as their future is identical.
//  3. Bound(s) is an admissible upper bound on any final value reachable from s.
//     When Bound(s) ≤ incumbent the subtree is skipped.
//  4. Successors(s) yields the legal child states, each a fresh value.
//
// Pruning interplay: a subtree cut by the bound returns an under-estimate that
// is only valid relative to the incumbent of that moment. Such results are
// flagged inexact and never stored in the cache; exact results (no bound cut
// anywhere below) are. This keeps memoization and bounding composable without
// changing the optimum.
//
// Strategies (Options.Pruning):
//
//	NoPruning    → plain exhaustive recursion (reference oracle for tests).
//	MemoOnly     → memoization, no bound.
//	BoundOnly    → bound cuts, no cache.
//	MemoAndBound → both (default).
//
// Complexity:
//   - Worst case exponential in the number of actions; pruning and caching
//     decide practical speed, never the returned value.
//   - Memory: O(depth) recursion + O(|cache|).
//
// Concurrency:
//   - An Engine is single-threaded. Solve resets the cache, so one engine can
//     be reused sequentially, but concurrent searches need one engine each.
package search
